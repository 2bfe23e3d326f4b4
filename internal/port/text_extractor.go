package port

import (
	"context"

	"legalease/internal/domain"
)

// ExtractInput carries the data needed for text extraction.
type ExtractInput struct {
	FileBytes   []byte
	ContentType string
	FileName    string
	FileSize    int64
}

// TextExtractor abstracts OCR / text extraction for uploaded documents.
type TextExtractor interface {
	Extract(ctx context.Context, input ExtractInput) (*domain.ExtractionResult, error)
}
