package port

import (
	"context"

	"github.com/google/uuid"

	"legalease/internal/domain"
)

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

// FileMetaRepository defines the contract for uploaded-file metadata persistence.
type FileMetaRepository interface {
	Create(ctx context.Context, meta *domain.FileMeta) error
	GetByID(ctx context.Context, fileID uuid.UUID) (*domain.FileMeta, error)
}

// ResultRepository defines the contract for processing-result persistence.
// Results are immutable: create once, then read or delete.
type ResultRepository interface {
	Create(ctx context.Context, result *domain.DocumentProcessingResult) error
	GetByID(ctx context.Context, resultID uuid.UUID) (*domain.DocumentProcessingResult, error)
	List(ctx context.Context, offset, limit int) ([]domain.DocumentProcessingResult, int, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.DocumentProcessingResult, int, error)
	Delete(ctx context.Context, resultID uuid.UUID) error
}
