package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"legalease/internal/domain"
	"legalease/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
	frontendURL string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName, frontendURL string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
		frontendURL: frontendURL,
	}, nil
}

func (s *sesSender) SendProcessingComplete(ctx context.Context, toEmail, toName string, result *domain.DocumentProcessingResult) error {
	resultURL := fmt.Sprintf("%s/results/%s", s.frontendURL, result.ID)

	subject := fmt.Sprintf("Your document %q is ready", result.FileName)
	htmlBody := buildCompletionHTML(toName, result, resultURL)
	textBody := fmt.Sprintf(
		"Hi %s,\n\nWe finished analyzing %q.\n\nDocument type: %s\nSecurity score: %d/100\n\nView the full report:\n%s\n\nLegalEase Team",
		toName, result.FileName, result.DocumentType, result.SecurityScore, resultURL)

	return s.send(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *sesSender) SendProcessingFailed(ctx context.Context, toEmail, toName, fileName, reason string) error {
	subject := fmt.Sprintf("We could not process %q", fileName)
	htmlBody := buildFailureHTML(toName, fileName)
	textBody := fmt.Sprintf(
		"Hi %s,\n\nProcessing of %q failed and no report was produced. Please upload the document again.\n\nReason: %s\n\nLegalEase Team",
		toName, fileName, reason)

	return s.send(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *sesSender) send(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildCompletionHTML(name string, result *domain.DocumentProcessingResult, resultURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Your document is ready</h2>
  <p>Hi %s,</p>
  <p>We finished analyzing <strong>%s</strong>.</p>
  <ul>
    <li>Document type: %s</li>
    <li>Security score: %d/100</li>
  </ul>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #4F46E5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">View Report</a>
  </p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">LegalEase - Legal Document Analysis</p>
</body>
</html>`, name, result.FileName, result.DocumentType, result.SecurityScore, resultURL)
}

func buildFailureHTML(name, fileName string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Processing failed</h2>
  <p>Hi %s,</p>
  <p>We could not process <strong>%s</strong> and no report was produced. Please upload the document again.</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">LegalEase - Legal Document Analysis</p>
</body>
</html>`, name, fileName)
}
