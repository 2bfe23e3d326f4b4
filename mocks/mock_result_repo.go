package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"legalease/internal/domain"
)

// MockResultRepo is a mock implementation of port.ResultRepository.
type MockResultRepo struct {
	mock.Mock
}

func (m *MockResultRepo) Create(ctx context.Context, result *domain.DocumentProcessingResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockResultRepo) GetByID(ctx context.Context, resultID uuid.UUID) (*domain.DocumentProcessingResult, error) {
	args := m.Called(ctx, resultID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentProcessingResult), args.Error(1)
}

func (m *MockResultRepo) List(ctx context.Context, offset, limit int) ([]domain.DocumentProcessingResult, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.DocumentProcessingResult), args.Int(1), args.Error(2)
}

func (m *MockResultRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.DocumentProcessingResult, int, error) {
	args := m.Called(ctx, ownerID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.DocumentProcessingResult), args.Int(1), args.Error(2)
}

func (m *MockResultRepo) Delete(ctx context.Context, resultID uuid.UUID) error {
	args := m.Called(ctx, resultID)
	return args.Error(0)
}
