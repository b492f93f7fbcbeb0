package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockChatService is a mock implementation of the chat service
type MockChatService struct {
	mock.Mock
}

// Chat mocks the Chat method
func (m *MockChatService) Chat(ctx context.Context, message string) (string, error) {
	args := m.Called(ctx, message)
	return args.String(0), args.Error(1)
}
