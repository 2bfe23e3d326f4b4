package noop

import (
	"context"
	"log"

	"legalease/internal/domain"
	"legalease/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs notifications to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendProcessingComplete(_ context.Context, toEmail, toName string, result *domain.DocumentProcessingResult) error {
	log.Printf("[NOOP EMAIL] Processing complete for %s (%s): %s scored %d/100",
		toName, toEmail, result.FileName, result.SecurityScore)
	return nil
}

func (s *noopSender) SendProcessingFailed(_ context.Context, toEmail, toName, fileName, reason string) error {
	log.Printf("[NOOP EMAIL] Processing failed for %s (%s): %s (%s)", toName, toEmail, fileName, reason)
	return nil
}
