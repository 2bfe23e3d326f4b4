package genai

import (
	"context"
	"errors"
	"log"

	"legalease/internal/domain"
	"legalease/internal/fallback"
	"legalease/internal/port"
)

// Resilient wraps a TextGenerator so that upstream failures degrade to canned
// content instead of failing the caller. A missing API key is not degraded:
// domain.ErrGenAINotConfigured passes through so handlers can report it.
type Resilient struct {
	inner port.TextGenerator
}

// NewResilient wraps the given generator with fallback behavior.
func NewResilient(inner port.TextGenerator) *Resilient {
	return &Resilient{inner: inner}
}

func (r *Resilient) Simplify(ctx context.Context, originalText string, docType domain.DocumentType) (*domain.SimplificationResult, error) {
	result, err := r.inner.Simplify(ctx, originalText, docType)
	if err != nil {
		if errors.Is(err, domain.ErrGenAINotConfigured) {
			return nil, err
		}
		log.Printf("genai.Resilient.Simplify: falling back: %v", err)
		return fallback.Simplification(docType), nil
	}
	return result, nil
}

func (r *Resilient) Answer(ctx context.Context, question, documentContext string, docType domain.DocumentType, history []domain.ConversationTurn) (string, error) {
	answer, err := r.inner.Answer(ctx, question, documentContext, docType, history)
	if err != nil {
		if errors.Is(err, domain.ErrGenAINotConfigured) {
			return "", err
		}
		log.Printf("genai.Resilient.Answer: falling back: %v", err)
		return fallback.ContextualAnswer(question) + fallback.AnswerDisclaimer, nil
	}
	return answer, nil
}

func (r *Resilient) AnalyzeSecurity(ctx context.Context, metadata domain.DocumentMetadata) (*domain.SecurityAnalysis, error) {
	analysis, err := r.inner.AnalyzeSecurity(ctx, metadata)
	if err != nil {
		if errors.Is(err, domain.ErrGenAINotConfigured) {
			return nil, err
		}
		log.Printf("genai.Resilient.AnalyzeSecurity: falling back: %v", err)
		return fallback.SecurityAnalysisFallback(), nil
	}
	return analysis, nil
}
