package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"stylewriter/internal/domain"
	"stylewriter/internal/guidelines"
	"stylewriter/internal/llm"
	"stylewriter/internal/port"
)

// ExtractStyleInput is the DTO for extracting and saving a new style.
type ExtractStyleInput struct {
	Name                  string
	Text                  string
	AdditionalInstruction string
	CreatedBy             string
}

// StyleService defines the style library contract.
type StyleService interface {
	Extract(ctx context.Context, input *ExtractStyleInput) (*domain.Style, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Style, error)
	GetByName(ctx context.Context, name string) (*domain.Style, error)
	List(ctx context.Context, offset, limit int) ([]domain.Style, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type styleService struct {
	repo        port.StyleRepository
	model       port.ChatModel
	library     *guidelines.Library
	temperature float64
}

// NewStyleService creates a new StyleService implementation.
func NewStyleService(repo port.StyleRepository, model port.ChatModel, library *guidelines.Library, temperature float64) StyleService {
	return &styleService{
		repo:        repo,
		model:       model,
		library:     library,
		temperature: temperature,
	}
}

func (s *styleService) Extract(ctx context.Context, input *ExtractStyleInput) (*domain.Style, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrStyleNameRequired
	}
	if strings.TrimSpace(input.Text) == "" {
		return nil, domain.ErrEmptyContent
	}

	existing, err := s.repo.GetByName(ctx, name)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("checking style name: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicateStyleName
	}

	req := llm.BuildStyleExtractionRequest(s.library.FewShot(), input.Text, input.AdditionalInstruction, s.temperature)
	out, err := s.model.Complete(ctx, req)
	if err != nil {
		return nil, modelError("styleService.Extract", err)
	}

	style := &domain.Style{
		ID:                    uuid.New(),
		Name:                  name,
		Style:                 out.Text,
		Example:               input.Text,
		AdditionalInstruction: strings.TrimSpace(input.AdditionalInstruction),
		ModelUsed:             out.ModelUsed,
		CreatedBy:             input.CreatedBy,
	}
	if err := s.repo.Create(ctx, style); err != nil {
		if errors.Is(err, domain.ErrDuplicateStyleName) {
			return nil, err
		}
		return nil, fmt.Errorf("creating style: %w", err)
	}

	log.Printf("styleService.Extract: saved style %q (%s) using %s", style.Name, style.ID, style.ModelUsed)
	return style, nil
}

func (s *styleService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Style, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *styleService) GetByName(ctx context.Context, name string) (*domain.Style, error) {
	return s.repo.GetByName(ctx, strings.TrimSpace(name))
}

func (s *styleService) List(ctx context.Context, offset, limit int) ([]domain.Style, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *styleService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("styleService.Delete: deleted style %s", id)
	return nil
}
