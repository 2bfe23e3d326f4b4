package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"legalease/internal/domain"
)

// MockScorer is a mock implementation of authenticity.Scorer.
type MockScorer struct {
	mock.Mock
}

func (m *MockScorer) Score(ctx context.Context, meta domain.DocumentMetadata) (*domain.AuthenticityReport, error) {
	args := m.Called(ctx, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthenticityReport), args.Error(1)
}
