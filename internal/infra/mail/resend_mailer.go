// Package mail implements the outbound-email boundary on top of Resend.
package mail

import (
	"context"
	"log/slog"
	"strings"

	"bistro/config"
	"bistro/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
)

// resendEmailsAPI is the slice of the Resend client the mailer actually
// calls, kept narrow so tests can substitute it.
type resendEmailsAPI interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// resendMailer implements the service.Mailer interface.
type resendMailer struct {
	emails    resendEmailsAPI
	fromEmail string
	replyTo   string
	logger    *slog.Logger
}

// NewResendMailer is the constructor for resendMailer.
func NewResendMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.Mail == nil || strings.TrimSpace(cfg.Mail.APIKey) == "" {
		return nil, errors.New("resend: api key is required")
	}

	client := resend.NewClient(cfg.Mail.APIKey)

	return &resendMailer{
		emails:    client.Emails,
		fromEmail: cfg.Mail.FromEmail,
		replyTo:   cfg.Mail.ReplyTo,
		logger:    logger,
	}, nil
}

// Send delivers a single message. Both HTML and plain-text bodies are sent
// so clients that strip HTML still get a readable copy.
func (m *resendMailer) Send(ctx context.Context, message *service.EmailMessage) error {
	replyTo := message.ReplyTo
	if replyTo == "" {
		replyTo = m.replyTo
	}

	params := &resend.SendEmailRequest{
		From:    m.fromEmail,
		To:      []string{message.To},
		Subject: message.Subject,
		Html:    message.HTMLBody,
		Text:    message.PlainTextBody,
		ReplyTo: replyTo,
	}

	sent, err := m.emails.SendWithContext(ctx, params)
	if err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	m.logger.InfoContext(ctx, "email sent",
		slog.String("messageId", sent.Id),
		slog.String("subject", message.Subject),
	)

	return nil
}
