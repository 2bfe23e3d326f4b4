// Package export renders processing results as downloadable workbooks.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"legalease/internal/domain"
)

const resultsSheet = "Results"

var resultsHeaders = []string{
	"ID",
	"File Name",
	"Document Type",
	"Security Score",
	"Fairness Score",
	"Extraction Confidence",
	"Pages",
	"Processing Time (ms)",
	"Created At",
}

// ResultsWorkbook builds an XLSX workbook with one row per processing
// result and returns the encoded bytes.
func ResultsWorkbook(results []domain.DocumentProcessingResult) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	f.SetSheetName("Sheet1", resultsSheet)

	for i, header := range resultsHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell %d: %w", i, err)
		}
		if err := f.SetCellValue(resultsSheet, cell, header); err != nil {
			return nil, fmt.Errorf("writing header %q: %w", header, err)
		}
	}

	for i, result := range results {
		row := i + 2
		values := []interface{}{
			result.ID.String(),
			result.FileName,
			string(result.DocumentType),
			result.SecurityScore,
			result.FairnessScore,
			result.ExtractionConfidence,
			result.Pages,
			result.ProcessingTimeMs,
			result.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return nil, fmt.Errorf("cell %d,%d: %w", j, row, err)
			}
			if err := f.SetCellValue(resultsSheet, cell, value); err != nil {
				return nil, fmt.Errorf("writing row %d: %w", row, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("encoding workbook: %w", err)
	}
	return buf.Bytes(), nil
}
