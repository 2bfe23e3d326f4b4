package export_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"legalease/internal/domain"
	"legalease/internal/export"
)

func TestResultsWorkbook(t *testing.T) {
	results := []domain.DocumentProcessingResult{
		{
			ID:                   uuid.New(),
			FileName:             "lease.pdf",
			DocumentType:         domain.DocTypeRentalAgreement,
			SecurityScore:        88,
			FairnessScore:        80,
			ExtractionConfidence: 0.98,
			Pages:                3,
			ProcessingTimeMs:     30123,
			CreatedAt:            time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:           uuid.New(),
			FileName:     "offer.pdf",
			DocumentType: domain.DocTypeEmploymentContract,
		},
	}

	data, err := export.ResultsWorkbook(results)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Results")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "File Name", rows[0][1])
	assert.Equal(t, "lease.pdf", rows[1][1])
	assert.Equal(t, "Rental Agreement", rows[1][2])
	assert.Equal(t, "88", rows[1][3])
	assert.Equal(t, "offer.pdf", rows[2][1])
}

func TestResultsWorkbookEmpty(t *testing.T) {
	data, err := export.ResultsWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Results")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
