// Package authenticity scores documents for forgery indicators.
//
// The composite scorer owns the reporting contract: fixed component weights,
// risk banding, threshold-driven issue lists, and tiered recommendations.
// The three component analyses are pluggable strategies so the placeholder
// heuristics can be swapped for real detectors without touching the pipeline.
package authenticity

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"legalease/internal/domain"
)

// Component weights for the overall score.
const (
	metadataWeight  = 0.3
	signatureWeight = 0.4
	imageWeight     = 0.3
)

// SubScore is a component verdict before issue derivation.
type SubScore struct {
	Score   int
	Details json.RawMessage
}

// SubScorer produces one component score for a document.
type SubScorer interface {
	Score(ctx context.Context, meta domain.DocumentMetadata) (SubScore, error)
}

// Scorer produces a composite authenticity report for a document.
type Scorer interface {
	Score(ctx context.Context, meta domain.DocumentMetadata) (*domain.AuthenticityReport, error)
}

type compositeScorer struct {
	metadata  SubScorer
	signature SubScorer
	image     SubScorer
}

// NewScorer creates a composite Scorer from the three component strategies.
func NewScorer(metadata, signature, image SubScorer) Scorer {
	return &compositeScorer{metadata: metadata, signature: signature, image: image}
}

// NewDefaultScorer creates a Scorer backed by the built-in heuristic strategies.
func NewDefaultScorer() Scorer {
	return NewScorer(MetadataHeuristic{}, SignatureHeuristic{}, ImageHeuristic{})
}

func (s *compositeScorer) Score(ctx context.Context, meta domain.DocumentMetadata) (*domain.AuthenticityReport, error) {
	start := time.Now()

	md, err := s.metadata.Score(ctx, meta)
	if err != nil {
		return nil, fmt.Errorf("metadata analysis: %w", err)
	}
	sig, err := s.signature.Score(ctx, meta)
	if err != nil {
		return nil, fmt.Errorf("signature analysis: %w", err)
	}
	img, err := s.image.Score(ctx, meta)
	if err != nil {
		return nil, fmt.Errorf("image forensics: %w", err)
	}

	overall := int(math.Round(
		float64(md.Score)*metadataWeight +
			float64(sig.Score)*signatureWeight +
			float64(img.Score)*imageWeight,
	))

	metadata := domain.ComponentReport{Score: md.Score, Issues: metadataIssues(md.Score), Details: md.Details}
	signature := domain.ComponentReport{Score: sig.Score, Issues: signatureIssues(sig.Score), Details: sig.Details}
	image := domain.ComponentReport{Score: img.Score, Issues: imageIssues(img.Score), Details: img.Details}

	return &domain.AuthenticityReport{
		OverallScore:    overall,
		RiskLevel:       domain.RiskLevelForScore(overall),
		Confidence:      0.85 + float64(overall)/1000.0,
		AnalysisTimeMs:  time.Since(start).Milliseconds(),
		Metadata:        metadata,
		Signature:       signature,
		ImageForensics:  image,
		Recommendations: recommendations(overall, metadata, signature, image),
	}, nil
}

// Issue lists appear as a component score falls below its cut points.

func metadataIssues(score int) []string {
	issues := []string{}
	if score < 85 {
		issues = append(issues, "Creation and modification dates are suspiciously close")
	}
	if score < 80 {
		issues = append(issues, "Author information appears to be modified")
	}
	if score < 75 {
		issues = append(issues, "Document software version inconsistencies detected")
	}
	return issues
}

func signatureIssues(score int) []string {
	issues := []string{}
	if score < 90 {
		issues = append(issues, "Signature positioning appears inconsistent with document flow")
	}
	if score < 85 {
		issues = append(issues, "Name in signature doesn't match document parties")
	}
	if score < 80 {
		issues = append(issues, "Digital signature timestamp inconsistencies")
	}
	return issues
}

func imageIssues(score int) []string {
	issues := []string{}
	if score < 95 {
		issues = append(issues, "Minor compression artifacts detected")
	}
	if score < 90 {
		issues = append(issues, "Slight pixel inconsistencies in text regions")
	}
	if score < 85 {
		issues = append(issues, "Error level analysis shows potential manipulation")
	}
	return issues
}

func recommendations(overall int, metadata, signature, image domain.ComponentReport) []string {
	var recs []string

	switch {
	case overall >= 90:
		recs = append(recs,
			"Document appears authentic with high confidence",
			"No immediate security concerns detected",
		)
	case overall >= 80:
		recs = append(recs,
			"Document shows minor inconsistencies but appears largely authentic",
			"Consider verifying with the document source if concerns arise",
		)
	case overall >= 70:
		recs = append(recs,
			"Document shows several suspicious indicators",
			"Strongly recommend independent verification before signing",
			"Consider consulting with a legal professional",
		)
	default:
		recs = append(recs,
			"HIGH RISK: Document shows multiple signs of potential tampering",
			"DO NOT SIGN without thorough verification",
			"Immediately contact the document source to verify authenticity",
			"Consider involving law enforcement if fraud is suspected",
		)
	}

	if len(metadata.Issues) > 0 {
		recs = append(recs, "Verify document creation and modification history with the source")
	}
	if len(signature.Issues) > 0 {
		recs = append(recs, "Confirm signature authenticity with the signing parties")
	}
	if len(image.Issues) > 0 {
		recs = append(recs, "Request original document for comparison")
	}

	return recs
}
