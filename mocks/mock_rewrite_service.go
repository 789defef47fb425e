package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"stylewriter/internal/domain"
	"stylewriter/internal/service"
)

// MockRewriteService is a mock implementation of service.RewriteService.
type MockRewriteService struct {
	mock.Mock
}

func (m *MockRewriteService) Rewrite(ctx context.Context, input *service.RewriteInput) (*service.RewriteResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RewriteResult), args.Error(1)
}

func (m *MockRewriteService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rewrite, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rewrite), args.Error(1)
}

func (m *MockRewriteService) List(ctx context.Context, styleID *uuid.UUID, offset, limit int) ([]domain.Rewrite, int, error) {
	args := m.Called(ctx, styleID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Rewrite), args.Int(1), args.Error(2)
}

func (m *MockRewriteService) Download(ctx context.Context, id uuid.UUID, format domain.ExportFormat) (*service.Download, error) {
	args := m.Called(ctx, id, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Download), args.Error(1)
}
