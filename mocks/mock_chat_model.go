package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"stylewriter/internal/port"
)

// MockChatModel is a mock implementation of port.ChatModel.
type MockChatModel struct {
	mock.Mock
}

func (m *MockChatModel) Complete(ctx context.Context, req port.ChatRequest) (*port.ChatResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.ChatResponse), args.Error(1)
}
