package port

import (
	"context"

	"github.com/google/uuid"

	"stylewriter/internal/domain"
)

// StyleRepository defines the contract for style library persistence.
type StyleRepository interface {
	Create(ctx context.Context, style *domain.Style) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Style, error)
	GetByName(ctx context.Context, name string) (*domain.Style, error)
	List(ctx context.Context, offset, limit int) ([]domain.Style, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RewriteRepository defines the contract for rewrite history persistence.
type RewriteRepository interface {
	Create(ctx context.Context, rewrite *domain.Rewrite) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Rewrite, error)
	List(ctx context.Context, offset, limit int) ([]domain.Rewrite, int, error)
	ListByStyle(ctx context.Context, styleID uuid.UUID, offset, limit int) ([]domain.Rewrite, int, error)
}
