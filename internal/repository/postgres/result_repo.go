package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"legalease/internal/domain"
	"legalease/internal/port"
)

type resultRepo struct {
	db *sqlx.DB
}

// NewResultRepo creates a new PostgreSQL-backed ResultRepository.
func NewResultRepo(db *sqlx.DB) port.ResultRepository {
	return &resultRepo{db: db}
}

func (r *resultRepo) Create(ctx context.Context, result *domain.DocumentProcessingResult) error {
	if result.CreatedAt.IsZero() {
		result.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO processed_documents
		(id, file_id, owner_id, file_name, document_type, security_score,
		 original_text, simplified_text, processing_time_ms, extraction_confidence,
		 reading_level_original, reading_level_simplified, key_points, warnings,
		 forgery_analysis, fairness_score, pages, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	_, err := r.db.ExecContext(ctx, query,
		result.ID, result.FileID, result.OwnerID, result.FileName, result.DocumentType,
		result.SecurityScore, result.OriginalText, result.SimplifiedText,
		result.ProcessingTimeMs, result.ExtractionConfidence,
		result.ReadingLevelOriginal, result.ReadingLevelSimple,
		result.KeyPoints, result.Warnings, result.ForgeryAnalysis,
		result.FairnessScore, result.Pages, result.CreatedAt)
	if err != nil {
		return fmt.Errorf("resultRepo.Create: %w", err)
	}
	return nil
}

func (r *resultRepo) GetByID(ctx context.Context, resultID uuid.UUID) (*domain.DocumentProcessingResult, error) {
	var result domain.DocumentProcessingResult
	err := r.db.GetContext(ctx, &result,
		"SELECT * FROM processed_documents WHERE id = $1", resultID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("resultRepo.GetByID: %w", err)
	}
	return &result, nil
}

func (r *resultRepo) List(ctx context.Context, offset, limit int) ([]domain.DocumentProcessingResult, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM processed_documents"); err != nil {
		return nil, 0, fmt.Errorf("resultRepo.List count: %w", err)
	}

	var results []domain.DocumentProcessingResult
	err := r.db.SelectContext(ctx, &results,
		"SELECT * FROM processed_documents ORDER BY created_at DESC LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("resultRepo.List: %w", err)
	}
	return results, total, nil
}

func (r *resultRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.DocumentProcessingResult, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM processed_documents WHERE owner_id = $1", ownerID)
	if err != nil {
		return nil, 0, fmt.Errorf("resultRepo.ListByOwner count: %w", err)
	}

	var results []domain.DocumentProcessingResult
	err = r.db.SelectContext(ctx, &results,
		`SELECT * FROM processed_documents
		 WHERE owner_id = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		ownerID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("resultRepo.ListByOwner: %w", err)
	}
	return results, total, nil
}

func (r *resultRepo) Delete(ctx context.Context, resultID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM processed_documents WHERE id = $1", resultID)
	if err != nil {
		return fmt.Errorf("resultRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
