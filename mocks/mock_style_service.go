package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"stylewriter/internal/domain"
	"stylewriter/internal/service"
)

// MockStyleService is a mock implementation of service.StyleService.
type MockStyleService struct {
	mock.Mock
}

func (m *MockStyleService) Extract(ctx context.Context, input *service.ExtractStyleInput) (*domain.Style, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Style), args.Error(1)
}

func (m *MockStyleService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Style, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Style), args.Error(1)
}

func (m *MockStyleService) GetByName(ctx context.Context, name string) (*domain.Style, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Style), args.Error(1)
}

func (m *MockStyleService) List(ctx context.Context, offset, limit int) ([]domain.Style, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Style), args.Int(1), args.Error(2)
}

func (m *MockStyleService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
