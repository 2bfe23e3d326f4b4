package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"legalease/internal/domain"
)

// MockTextGenerator is a mock implementation of port.TextGenerator.
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Simplify(ctx context.Context, originalText string, docType domain.DocumentType) (*domain.SimplificationResult, error) {
	args := m.Called(ctx, originalText, docType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SimplificationResult), args.Error(1)
}

func (m *MockTextGenerator) Answer(ctx context.Context, question, documentContext string, docType domain.DocumentType, history []domain.ConversationTurn) (string, error) {
	args := m.Called(ctx, question, documentContext, docType, history)
	return args.String(0), args.Error(1)
}

func (m *MockTextGenerator) AnalyzeSecurity(ctx context.Context, metadata domain.DocumentMetadata) (*domain.SecurityAnalysis, error) {
	args := m.Called(ctx, metadata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SecurityAnalysis), args.Error(1)
}
