package port

import (
	"context"

	"legalease/internal/domain"
)

// TextGenerator abstracts the external generative-language service.
//
// Implementations behind the resilient wrapper never surface upstream
// failures from Simplify or Answer; callers receive fallback content
// instead. The only error that reaches callers is
// domain.ErrGenAINotConfigured.
type TextGenerator interface {
	Simplify(ctx context.Context, originalText string, docType domain.DocumentType) (*domain.SimplificationResult, error)
	Answer(ctx context.Context, question, documentContext string, docType domain.DocumentType, history []domain.ConversationTurn) (string, error)
	AnalyzeSecurity(ctx context.Context, metadata domain.DocumentMetadata) (*domain.SecurityAnalysis, error)
}
