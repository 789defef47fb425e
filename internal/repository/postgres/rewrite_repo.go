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

type rewriteRepo struct {
	db *sqlx.DB
}

// NewRewriteRepo creates a new PostgreSQL-backed RewriteRepository.
func NewRewriteRepo(db *sqlx.DB) port.RewriteRepository {
	return &rewriteRepo{db: db}
}

func (r *rewriteRepo) Create(ctx context.Context, rw *domain.Rewrite) error {
	if rw.CreatedAt.IsZero() {
		rw.CreatedAt = time.Now().UTC()
	}
	if len(rw.Guidelines) == 0 {
		rw.Guidelines = []byte("[]")
	}

	query := `INSERT INTO rewrites (id, style_id, style_name, title, base_name, input, output,
		max_output_length, guidelines, additional_instruction, model_used, docx_key, pdf_key,
		created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.db.ExecContext(ctx, query,
		rw.ID, rw.StyleID, rw.StyleName, rw.Title, rw.BaseName, rw.Input, rw.Output,
		rw.MaxOutputLength, rw.Guidelines, rw.AdditionalInstruction, rw.ModelUsed, rw.DocxKey, rw.PdfKey,
		rw.CreatedBy, rw.CreatedAt)
	if err != nil {
		return fmt.Errorf("rewriteRepo.Create: %w", err)
	}
	return nil
}

func (r *rewriteRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rewrite, error) {
	var rw domain.Rewrite
	err := r.db.GetContext(ctx, &rw, "SELECT * FROM rewrites WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("rewriteRepo.GetByID: %w", err)
	}
	return &rw, nil
}

func (r *rewriteRepo) List(ctx context.Context, offset, limit int) ([]domain.Rewrite, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM rewrites"); err != nil {
		return nil, 0, fmt.Errorf("rewriteRepo.List count: %w", err)
	}

	var rewrites []domain.Rewrite
	err := r.db.SelectContext(ctx, &rewrites,
		"SELECT * FROM rewrites ORDER BY created_at DESC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("rewriteRepo.List: %w", err)
	}
	return rewrites, total, nil
}

func (r *rewriteRepo) ListByStyle(ctx context.Context, styleID uuid.UUID, offset, limit int) ([]domain.Rewrite, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM rewrites WHERE style_id = $1", styleID)
	if err != nil {
		return nil, 0, fmt.Errorf("rewriteRepo.ListByStyle count: %w", err)
	}

	var rewrites []domain.Rewrite
	err = r.db.SelectContext(ctx, &rewrites,
		`SELECT * FROM rewrites WHERE style_id = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		styleID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("rewriteRepo.ListByStyle: %w", err)
	}
	return rewrites, total, nil
}
