package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"stylewriter/internal/domain"
)

// MockRewriteRepo is a mock implementation of port.RewriteRepository.
type MockRewriteRepo struct {
	mock.Mock
}

func (m *MockRewriteRepo) Create(ctx context.Context, rewrite *domain.Rewrite) error {
	args := m.Called(ctx, rewrite)
	return args.Error(0)
}

func (m *MockRewriteRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rewrite, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rewrite), args.Error(1)
}

func (m *MockRewriteRepo) List(ctx context.Context, offset, limit int) ([]domain.Rewrite, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Rewrite), args.Int(1), args.Error(2)
}

func (m *MockRewriteRepo) ListByStyle(ctx context.Context, styleID uuid.UUID, offset, limit int) ([]domain.Rewrite, int, error) {
	args := m.Called(ctx, styleID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Rewrite), args.Int(1), args.Error(2)
}
