package fallback_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"legalease/internal/domain"
	"legalease/internal/fallback"
)

func TestSimplificationPerDocumentType(t *testing.T) {
	rental := fallback.Simplification(domain.DocTypeRentalAgreement)
	assert.Contains(t, rental.SimplifiedText, "Rental Agreement")
	assert.Contains(t, rental.KeyPoints, "Rent must be paid on time every month")
	assert.Equal(t, fallback.FallbackFairnessScore, rental.FairnessScore)
	assert.Equal(t, fallback.SimplifyDisclaimer, rental.Warnings[len(rental.Warnings)-1])

	employment := fallback.Simplification(domain.DocTypeEmploymentContract)
	assert.Contains(t, employment.SimplifiedText, "Employment Contract")
	assert.NotEqual(t, rental.SimplifiedText, employment.SimplifiedText)

	generic := fallback.Simplification(domain.DocTypeLegalDocument)
	assert.Contains(t, generic.SimplifiedText, "Legal Document")
	assert.Len(t, generic.KeyPoints, 3)
}

func TestSimplificationReadingLevelsDiffer(t *testing.T) {
	res := fallback.Simplification(domain.DocTypeLoanAgreement)
	assert.NotEqual(t, res.ReadingLevel.Original, res.ReadingLevel.Simplified)
}

func TestExtractedTextTemplates(t *testing.T) {
	assert.Contains(t, fallback.ExtractedText(domain.DocTypeRentalAgreement), "RESIDENTIAL LEASE AGREEMENT")
	assert.Contains(t, fallback.ExtractedText(domain.DocTypeEmploymentContract), "EMPLOYMENT AGREEMENT")
	assert.Contains(t, fallback.ExtractedText(domain.DocTypeInsurancePolicy), "LEGAL DOCUMENT")
}

func TestContextualAnswerKeywordRouting(t *testing.T) {
	assert.Contains(t, fallback.ContextualAnswer("When is my rent due?"), "first of each month")
	assert.Contains(t, fallback.ContextualAnswer("Do I get my deposit back?"), "security deposit")
	assert.Contains(t, fallback.ContextualAnswer("Can I break the lease?"), "termination clauses")
	assert.Contains(t, fallback.ContextualAnswer("What is my salary?"), "compensation structure")
	assert.Contains(t, fallback.ContextualAnswer("Can I quit?"), "at-will")
	assert.Contains(t, fallback.ContextualAnswer("???"), "more specific")
}

func TestSecurityAnalysisFallbackPayload(t *testing.T) {
	got := fallback.SecurityAnalysisFallback()
	assert.Equal(t, 85, got.Score)
	assert.Equal(t, []string{"Unable to perform full security analysis"}, got.Risks)
	assert.Equal(t, []string{"Manual review recommended"}, got.Recommendations)
}
