package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"legalease/internal/domain"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendProcessingComplete(ctx context.Context, toEmail, toName string, result *domain.DocumentProcessingResult) error {
	args := m.Called(ctx, toEmail, toName, result)
	return args.Error(0)
}

func (m *MockEmailSender) SendProcessingFailed(ctx context.Context, toEmail, toName, fileName, reason string) error {
	args := m.Called(ctx, toEmail, toName, fileName, reason)
	return args.Error(0)
}
