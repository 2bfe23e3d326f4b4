package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"legalease/internal/config"
	"legalease/internal/domain"
	"legalease/internal/export"
	"legalease/internal/port"
)

// ResultService exposes completed processing results.
type ResultService interface {
	GetByID(ctx context.Context, resultID uuid.UUID) (*domain.DocumentProcessingResult, error)
	List(ctx context.Context, offset, limit int) ([]domain.DocumentProcessingResult, int, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.DocumentProcessingResult, int, error)
	Delete(ctx context.Context, resultID uuid.UUID) error
	ExportXLSX(ctx context.Context) ([]byte, error)
	DownloadURL(ctx context.Context, resultID uuid.UUID) (string, error)
}

type resultService struct {
	results  port.ResultRepository
	files    port.FileMetaRepository
	storage  port.ObjectStorage
	qa       QAService
	s3Config config.S3Config
}

// NewResultService creates a ResultService.
func NewResultService(
	results port.ResultRepository,
	files port.FileMetaRepository,
	storage port.ObjectStorage,
	qa QAService,
	s3Config config.S3Config,
) ResultService {
	return &resultService{
		results:  results,
		files:    files,
		storage:  storage,
		qa:       qa,
		s3Config: s3Config,
	}
}

func (s *resultService) GetByID(ctx context.Context, resultID uuid.UUID) (*domain.DocumentProcessingResult, error) {
	return s.results.GetByID(ctx, resultID)
}

func (s *resultService) List(ctx context.Context, offset, limit int) ([]domain.DocumentProcessingResult, int, error) {
	return s.results.List(ctx, offset, limit)
}

func (s *resultService) ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.DocumentProcessingResult, int, error) {
	return s.results.ListByOwner(ctx, ownerID, offset, limit)
}

// Delete removes a result, its conversation session and the stored
// original document. The object-store delete is best effort.
func (s *resultService) Delete(ctx context.Context, resultID uuid.UUID) error {
	result, err := s.results.GetByID(ctx, resultID)
	if err != nil {
		return err
	}

	if err := s.results.Delete(ctx, resultID); err != nil {
		return err
	}
	s.qa.Evict(resultID)

	meta, err := s.files.GetByID(ctx, result.FileID)
	if err != nil {
		log.Printf("resultService.Delete: file metadata for %s: %v", result.FileID, err)
		return nil
	}
	if err := s.storage.Delete(ctx, meta.S3Bucket, meta.S3Key); err != nil {
		log.Printf("resultService.Delete: removing object %s/%s: %v", meta.S3Bucket, meta.S3Key, err)
	}
	return nil
}

func (s *resultService) ExportXLSX(ctx context.Context) ([]byte, error) {
	results, _, err := s.results.List(ctx, 0, exportBatchLimit)
	if err != nil {
		return nil, fmt.Errorf("resultService.ExportXLSX: %w", err)
	}
	return export.ResultsWorkbook(results)
}

func (s *resultService) DownloadURL(ctx context.Context, resultID uuid.UUID) (string, error) {
	result, err := s.results.GetByID(ctx, resultID)
	if err != nil {
		return "", err
	}

	meta, err := s.files.GetByID(ctx, result.FileID)
	if err != nil {
		return "", err
	}

	expiry := s.s3Config.PresignExpiry
	if expiry <= 0 {
		expiry = 900
	}
	return s.storage.GetPresignedURL(ctx, meta.S3Bucket, meta.S3Key, expiry)
}

const exportBatchLimit = 10000
