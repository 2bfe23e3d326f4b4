package pdftext_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalease/internal/extractor/pdftext"
	"legalease/internal/port"
)

func TestExtract_ImageFallsBackToTemplate(t *testing.T) {
	e := pdftext.New()

	result, err := e.Extract(context.Background(), port.ExtractInput{
		FileBytes:   []byte{0xFF, 0xD8, 0xFF},
		ContentType: "image/jpeg",
		FileName:    "rental_lease_scan.jpg",
		FileSize:    3,
	})

	require.NoError(t, err)
	assert.Contains(t, result.Text, "RESIDENTIAL LEASE AGREEMENT")
	assert.Equal(t, 0.95, result.Confidence)
	assert.Equal(t, 1, result.Pages)
	assert.Equal(t, "rental_lease_scan.jpg", result.Metadata.FileName)
	assert.Equal(t, int64(3), result.Metadata.FileSize)
}

func TestExtract_UnreadablePDFFallsBackToTemplate(t *testing.T) {
	e := pdftext.New()

	payload := []byte("%PDF-1.4 truncated garbage")
	result, err := e.Extract(context.Background(), port.ExtractInput{
		FileBytes:   payload,
		ContentType: "application/pdf",
		FileName:    "employment_offer.pdf",
		FileSize:    int64(len(payload)),
	})

	require.NoError(t, err)
	assert.Contains(t, result.Text, "EMPLOYMENT AGREEMENT")
	assert.Equal(t, 0.95, result.Confidence)
	assert.Equal(t, 1, result.Pages)
}

func TestExtract_UnknownTypeGetsGenericTemplate(t *testing.T) {
	e := pdftext.New()

	result, err := e.Extract(context.Background(), port.ExtractInput{
		FileBytes:   []byte{0x89, 0x50, 0x4E, 0x47},
		ContentType: "image/png",
		FileName:    "scan_001.png",
		FileSize:    4,
	})

	require.NoError(t, err)
	assert.Contains(t, result.Text, "LEGAL DOCUMENT")
}
