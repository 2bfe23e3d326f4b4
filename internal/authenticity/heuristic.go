package authenticity

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"

	"legalease/internal/domain"
)

// The default strategies derive component scores deterministically from the
// file identity, mapped into the same bounded ranges the product's original
// placeholder analysis used (metadata 70-100, signature 75-100, image
// 80-100). They carry no real forensic signal and exist to be replaced.

func boundedScore(meta domain.DocumentMetadata, salt string, lo, hi int) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(salt))
	_, _ = h.Write([]byte(meta.FileName))
	_, _ = fmt.Fprintf(h, "%d", meta.FileSize)
	return lo + int(h.Sum32()%uint32(hi-lo+1))
}

// MetadataHeuristic is the default metadata-analysis strategy.
type MetadataHeuristic struct{}

func (MetadataHeuristic) Score(_ context.Context, meta domain.DocumentMetadata) (SubScore, error) {
	score := boundedScore(meta, "metadata", 70, 100)
	details, _ := json.Marshal(map[string]any{
		"creation_date":     meta.CreationDate,
		"modification_date": meta.ModificationDate,
		"author":            meta.Author,
		"software":          "Microsoft Word 2021",
	})
	return SubScore{Score: score, Details: details}, nil
}

// SignatureHeuristic is the default signature-verification strategy.
type SignatureHeuristic struct{}

func (SignatureHeuristic) Score(_ context.Context, meta domain.DocumentMetadata) (SubScore, error) {
	score := boundedScore(meta, "signature", 75, 100)
	handwriting := "Consistent handwriting patterns"
	if score <= 90 {
		handwriting = "Some inconsistencies in handwriting style"
	}
	details, _ := json.Marshal(map[string]any{
		"signature_locations":  []string{"Page 1, Bottom", "Page 3, Bottom"},
		"name_matches":         score > 85,
		"date_consistency":     score > 80,
		"handwriting_analysis": handwriting,
	})
	return SubScore{Score: score, Details: details}, nil
}

// ImageHeuristic is the default image-forensics strategy.
type ImageHeuristic struct{}

func (ImageHeuristic) Score(_ context.Context, meta domain.DocumentMetadata) (SubScore, error) {
	score := boundedScore(meta, "image", 80, 100)
	ela := "No significant anomalies"
	if score <= 90 {
		ela = "Some regions show elevated error levels"
	}
	suspicious := []string{}
	if score < 85 {
		suspicious = []string{"Header section", "Signature area"}
	}
	details, _ := json.Marshal(map[string]any{
		"compression_artifacts": score < 95,
		"error_level_analysis":  ela,
		"suspicious_regions":    suspicious,
	})
	return SubScore{Score: score, Details: details}, nil
}
