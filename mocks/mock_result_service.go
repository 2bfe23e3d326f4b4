package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"legalease/internal/domain"
)

// MockResultService is a mock implementation of service.ResultService.
type MockResultService struct {
	mock.Mock
}

func (m *MockResultService) GetByID(ctx context.Context, resultID uuid.UUID) (*domain.DocumentProcessingResult, error) {
	args := m.Called(ctx, resultID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentProcessingResult), args.Error(1)
}

func (m *MockResultService) List(ctx context.Context, offset, limit int) ([]domain.DocumentProcessingResult, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.DocumentProcessingResult), args.Int(1), args.Error(2)
}

func (m *MockResultService) ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.DocumentProcessingResult, int, error) {
	args := m.Called(ctx, ownerID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.DocumentProcessingResult), args.Int(1), args.Error(2)
}

func (m *MockResultService) Delete(ctx context.Context, resultID uuid.UUID) error {
	args := m.Called(ctx, resultID)
	return args.Error(0)
}

func (m *MockResultService) ExportXLSX(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockResultService) DownloadURL(ctx context.Context, resultID uuid.UUID) (string, error) {
	args := m.Called(ctx, resultID)
	return args.String(0), args.Error(1)
}
