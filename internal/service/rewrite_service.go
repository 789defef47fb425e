package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"stylewriter/internal/domain"
	"stylewriter/internal/guidelines"
	"stylewriter/internal/llm"
	"stylewriter/internal/port"
	"stylewriter/internal/report"
)

// RewriteInput is the DTO for a rewrite request.
type RewriteInput struct {
	Content               string
	StyleName             string
	Guidelines            []string
	MaxOutputLength       int
	AdditionalInstruction string
	CreatedBy             string
}

// RewriteResult is a persisted rewrite with its rendered artifacts.
type RewriteResult struct {
	Rewrite   *domain.Rewrite       `json:"rewrite"`
	Artifacts []domain.Artifact     `json:"artifacts"`
	Outline   []report.OutlineEntry `json:"outline"`
}

// RewriteOptions tunes the rewrite call and artifact storage.
type RewriteOptions struct {
	Temperature   float64
	MaxTokens     int
	Bucket        string
	PresignExpiry int64
}

// RewriteService defines the rewrite contract.
type RewriteService interface {
	Rewrite(ctx context.Context, input *RewriteInput) (*RewriteResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Rewrite, error)
	List(ctx context.Context, styleID *uuid.UUID, offset, limit int) ([]domain.Rewrite, int, error)
	Download(ctx context.Context, id uuid.UUID, format domain.ExportFormat) (*Download, error)
}

type rewriteService struct {
	styleRepo   port.StyleRepository
	rewriteRepo port.RewriteRepository
	model       port.ChatModel
	library     *guidelines.Library
	exports     ExportService
	storage     port.ObjectStorage
	opts        RewriteOptions
	now         func() time.Time
}

// NewRewriteService creates a new RewriteService implementation. storage may be
// nil, in which case artifacts are described but not uploaded.
func NewRewriteService(
	styleRepo port.StyleRepository,
	rewriteRepo port.RewriteRepository,
	model port.ChatModel,
	library *guidelines.Library,
	exports ExportService,
	storage port.ObjectStorage,
	opts RewriteOptions,
) RewriteService {
	return &rewriteService{
		styleRepo:   styleRepo,
		rewriteRepo: rewriteRepo,
		model:       model,
		library:     library,
		exports:     exports,
		storage:     storage,
		opts:        opts,
		now:         time.Now,
	}
}

// BaseName is the file stem shared by a rewrite's artifacts.
func BaseName(styleName string, at time.Time) string {
	name := strings.ReplaceAll(strings.TrimSpace(styleName), " ", "_")
	if name == "" {
		name = "Style"
	}
	return fmt.Sprintf("rewrite_%s_%s", name, at.Format(BaseNameLayout))
}

// RewriteTitle is the document title of a rewrite export.
func RewriteTitle(styleName string) string {
	name := strings.TrimSpace(styleName)
	if name == "" {
		name = "Selected Style"
	}
	return "Rewrite • " + name
}

func (s *rewriteService) Rewrite(ctx context.Context, input *RewriteInput) (*RewriteResult, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, domain.ErrEmptyContent
	}

	style, err := s.styleRepo.GetByName(ctx, strings.TrimSpace(input.StyleName))
	if err != nil {
		return nil, err
	}

	selected, err := s.library.Resolve(input.Guidelines)
	if err != nil {
		return nil, err
	}
	guidelineText, err := s.library.Select(selected)
	if err != nil {
		return nil, err
	}

	maxLen := domain.ClampOutputLength(input.MaxOutputLength)
	req := llm.BuildRewriteRequest(llm.RewritePrompt{
		Style:                 style.Style,
		Guidelines:            guidelineText,
		Example:               style.Example,
		Content:               input.Content,
		AdditionalInstruction: input.AdditionalInstruction,
		MaxWords:              maxLen,
		Temperature:           s.opts.Temperature,
		MaxTokens:             s.opts.MaxTokens,
	})
	out, err := s.model.Complete(ctx, req)
	if err != nil {
		return nil, modelError("rewriteService.Rewrite", err)
	}

	now := s.now()
	selectedJSON, err := json.Marshal(selected)
	if err != nil {
		return nil, fmt.Errorf("rewriteService.Rewrite: encoding guidelines: %w", err)
	}
	rw := &domain.Rewrite{
		ID:                    uuid.New(),
		StyleID:               style.ID,
		StyleName:             style.Name,
		Title:                 RewriteTitle(style.Name),
		BaseName:              BaseName(style.Name, now),
		Input:                 input.Content,
		Output:                out.Text,
		MaxOutputLength:       maxLen,
		Guidelines:            selectedJSON,
		AdditionalInstruction: strings.TrimSpace(input.AdditionalInstruction),
		ModelUsed:             out.ModelUsed,
		CreatedBy:             input.CreatedBy,
		CreatedAt:             now.UTC(),
	}

	rendered, err := s.exports.Both(rw.Output, rw.Title)
	if err != nil {
		return nil, err
	}

	artifacts := []domain.Artifact{
		newArtifact(rw, domain.ExportDOCX, rendered.Flow.Data),
		newArtifact(rw, domain.ExportPDF, rendered.Fixed.Data),
	}
	s.upload(ctx, rw, artifacts, [][]byte{rendered.Flow.Data, rendered.Fixed.Data})
	rw.DocxKey, rw.PdfKey = artifacts[0].S3Key, artifacts[1].S3Key

	if err := s.rewriteRepo.Create(ctx, rw); err != nil {
		s.discard(ctx, artifacts)
		return nil, fmt.Errorf("creating rewrite: %w", err)
	}
	s.presign(ctx, artifacts)

	log.Printf("rewriteService.Rewrite: rewrite %s with style %q (%d words max) using %s",
		rw.ID, rw.StyleName, maxLen, rw.ModelUsed)
	return &RewriteResult{Rewrite: rw, Artifacts: artifacts, Outline: rendered.Outline}, nil
}

func newArtifact(rw *domain.Rewrite, format domain.ExportFormat, data []byte) domain.Artifact {
	return domain.Artifact{
		Format:      format,
		FileName:    rw.BaseName + "." + string(format),
		ContentType: format.ContentType(),
		Size:        int64(len(data)),
	}
}

// upload stores the artifacts as a pair. If any upload fails the ones already
// stored are deleted and every artifact is left without a key; Download then
// re-renders from the saved output.
func (s *rewriteService) upload(ctx context.Context, rw *domain.Rewrite, arts []domain.Artifact, data [][]byte) {
	if s.storage == nil {
		return
	}
	for i := range arts {
		key := s.storage.Key("rewrites", rw.ID.String(), arts[i].FileName)
		_, err := s.storage.Upload(ctx, port.UploadInput{
			Bucket:             s.opts.Bucket,
			Key:                key,
			Body:               bytes.NewReader(data[i]),
			ContentType:        arts[i].ContentType,
			ContentDisposition: fmt.Sprintf("attachment; filename=%q", arts[i].FileName),
			Size:               arts[i].Size,
		})
		if err != nil {
			log.Printf("rewriteService.upload: %v: %s: %v", domain.ErrUploadFailed, key, err)
			s.discard(ctx, arts[:i])
			return
		}
		arts[i].S3Key = key
	}
}

// discard deletes stored artifacts and clears their keys.
func (s *rewriteService) discard(ctx context.Context, arts []domain.Artifact) {
	for i := range arts {
		if arts[i].S3Key == "" {
			continue
		}
		if err := s.storage.Delete(ctx, s.opts.Bucket, arts[i].S3Key); err != nil {
			log.Printf("rewriteService.discard: orphaned %s: %v", arts[i].S3Key, err)
		}
		arts[i].S3Key = ""
	}
}

func (s *rewriteService) presign(ctx context.Context, arts []domain.Artifact) {
	for i := range arts {
		if arts[i].S3Key == "" {
			continue
		}
		url, err := s.storage.GetPresignedURL(ctx, s.opts.Bucket, arts[i].S3Key, s.opts.PresignExpiry)
		if err != nil {
			log.Printf("rewriteService.presign: %s: %v", arts[i].S3Key, err)
			continue
		}
		arts[i].URL = url
	}
}

func (s *rewriteService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rewrite, error) {
	return s.rewriteRepo.GetByID(ctx, id)
}

func (s *rewriteService) List(ctx context.Context, styleID *uuid.UUID, offset, limit int) ([]domain.Rewrite, int, error) {
	if styleID != nil {
		return s.rewriteRepo.ListByStyle(ctx, *styleID, offset, limit)
	}
	return s.rewriteRepo.List(ctx, offset, limit)
}

// Download serves the stored artifact when one exists and re-renders the saved
// output otherwise.
func (s *rewriteService) Download(ctx context.Context, id uuid.UUID, format domain.ExportFormat) (*Download, error) {
	if _, ok := domain.ExportContentTypes[format]; !ok {
		return nil, domain.ErrUnsupportedFormat
	}
	rw, err := s.rewriteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dl := &Download{
		FileName:    rw.BaseName + "." + string(format),
		ContentType: format.ContentType(),
	}

	if key := rw.ArtifactKey(format); key != "" && s.storage != nil {
		data, err := s.storage.Download(ctx, s.opts.Bucket, key)
		if err == nil {
			dl.Data = data
			return dl, nil
		}
		log.Printf("rewriteService.Download: %s: %v; re-rendering", key, err)
	}

	if dl.Data, err = s.exports.Render(rw.Output, rw.Title, format); err != nil {
		return nil, err
	}
	return dl, nil
}
