package mocks

import (
	"github.com/stretchr/testify/mock"

	"stylewriter/internal/port"
)

// MockTextExtractor is a mock implementation of port.TextExtractor.
type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) Extract(filename string, data []byte) (string, error) {
	args := m.Called(filename, data)
	return args.String(0), args.Error(1)
}

func (m *MockTextExtractor) ExtractAll(files []port.SourceFile) (string, error) {
	args := m.Called(files)
	return args.String(0), args.Error(1)
}
