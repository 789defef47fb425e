package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"stylewriter/internal/domain"
	"stylewriter/internal/report"
	"stylewriter/internal/service"
)

// MockExportService is a mock implementation of service.ExportService.
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Export(ctx context.Context, input *service.ExportInput) (*service.Download, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Download), args.Error(1)
}

func (m *MockExportService) ExportMany(ctx context.Context, text, title string, formats []domain.ExportFormat) ([]*service.Download, error) {
	args := m.Called(ctx, text, title, formats)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*service.Download), args.Error(1)
}

func (m *MockExportService) Render(text, title string, format domain.ExportFormat) ([]byte, error) {
	args := m.Called(text, title, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockExportService) Both(text, title string) (*report.Result, error) {
	args := m.Called(text, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Result), args.Error(1)
}

func (m *MockExportService) Outline(text string) []report.OutlineEntry {
	args := m.Called(text)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]report.OutlineEntry)
}
