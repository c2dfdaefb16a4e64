package mail

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

// ResendMailer sends email through the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
	logger zerolog.Logger
}

// NewResendMailer creates a mailer on top of an existing Resend client. The
// client is injected so tests can point it at a mock server.
func NewResendMailer(client *resend.Client, from string, logger zerolog.Logger) *ResendMailer {
	return &ResendMailer{
		client: client,
		from:   from,
		logger: logger,
	}
}

// Send delivers a single message. Rate limit errors are reported without
// retrying; the caller decides whether to abort a batch.
func (m *ResendMailer) Send(ctx context.Context, msg Message) error {
	if m.client == nil {
		return fmt.Errorf("resend client not initialized")
	}

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{msg.To},
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	}
	for _, a := range msg.Attachments {
		params.Attachments = append(params.Attachments, &resend.Attachment{
			Filename: a.Filename,
			Content:  a.Content,
		})
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		var rateLimitErr *resend.RateLimitError
		if errors.As(err, &rateLimitErr) {
			m.logger.Warn().
				Str("limit", rateLimitErr.Limit).
				Str("remaining", rateLimitErr.Remaining).
				Str("reset", rateLimitErr.Reset).
				Msg("resend rate limit exceeded")
			return fmt.Errorf("email rate limit exceeded (resets in %s seconds): %w", rateLimitErr.Reset, err)
		}
		return fmt.Errorf("resend API error: %w", err)
	}

	m.logger.Info().
		Str("email_id", sent.Id).
		Str("to", msg.To).
		Msg("email sent")
	return nil
}
