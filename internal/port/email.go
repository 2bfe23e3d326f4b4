package port

import (
	"context"

	"legalease/internal/domain"
)

// EmailSender defines the contract for sending processing notifications.
type EmailSender interface {
	SendProcessingComplete(ctx context.Context, toEmail, toName string, result *domain.DocumentProcessingResult) error
	SendProcessingFailed(ctx context.Context, toEmail, toName, fileName, reason string) error
}
