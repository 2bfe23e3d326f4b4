package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"legalease/internal/domain"
	"legalease/internal/service"
)

// MockQAService is a mock implementation of service.QAService.
type MockQAService struct {
	mock.Mock
}

func (m *MockQAService) Ask(ctx context.Context, input service.AskInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *MockQAService) History(documentID uuid.UUID) []domain.ConversationTurn {
	args := m.Called(documentID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.ConversationTurn)
}

func (m *MockQAService) Evict(documentID uuid.UUID) {
	m.Called(documentID)
}
