package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"stylewriter/internal/domain"
)

// MockStyleRepo is a mock implementation of port.StyleRepository.
type MockStyleRepo struct {
	mock.Mock
}

func (m *MockStyleRepo) Create(ctx context.Context, style *domain.Style) error {
	args := m.Called(ctx, style)
	return args.Error(0)
}

func (m *MockStyleRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Style, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Style), args.Error(1)
}

func (m *MockStyleRepo) GetByName(ctx context.Context, name string) (*domain.Style, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Style), args.Error(1)
}

func (m *MockStyleRepo) List(ctx context.Context, offset, limit int) ([]domain.Style, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Style), args.Int(1), args.Error(2)
}

func (m *MockStyleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
