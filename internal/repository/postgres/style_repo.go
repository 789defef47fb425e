package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"stylewriter/internal/domain"
	"stylewriter/internal/port"
)

type styleRepo struct {
	db *sqlx.DB
}

// NewStyleRepo creates a new PostgreSQL-backed StyleRepository.
func NewStyleRepo(db *sqlx.DB) port.StyleRepository {
	return &styleRepo{db: db}
}

func (r *styleRepo) Create(ctx context.Context, s *domain.Style) error {
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now

	query := `INSERT INTO styles (id, name, style, example, additional_instruction, model_used, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.Name, s.Style, s.Example, s.AdditionalInstruction, s.ModelUsed, s.CreatedBy, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "styles_name_key") {
			return domain.ErrDuplicateStyleName
		}
		return fmt.Errorf("styleRepo.Create: %w", err)
	}
	return nil
}

func (r *styleRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Style, error) {
	var s domain.Style
	err := r.db.GetContext(ctx, &s, "SELECT * FROM styles WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("styleRepo.GetByID: %w", err)
	}
	return &s, nil
}

func (r *styleRepo) GetByName(ctx context.Context, name string) (*domain.Style, error) {
	var s domain.Style
	err := r.db.GetContext(ctx, &s, "SELECT * FROM styles WHERE name = $1", name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("styleRepo.GetByName: %w", err)
	}
	return &s, nil
}

func (r *styleRepo) List(ctx context.Context, offset, limit int) ([]domain.Style, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM styles"); err != nil {
		return nil, 0, fmt.Errorf("styleRepo.List count: %w", err)
	}

	var styles []domain.Style
	err := r.db.SelectContext(ctx, &styles,
		"SELECT * FROM styles ORDER BY name ASC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("styleRepo.List: %w", err)
	}
	return styles, total, nil
}

func (r *styleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM styles WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("styleRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
