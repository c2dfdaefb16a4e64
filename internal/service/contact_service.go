package service

import (
	"context"
	"fmt"

	"github.com/sereneHealth/web-api/internal/mail"
)

// ContactService relays messages from the public contact form to the site
// inbox.
type ContactService interface {
	Send(ctx context.Context, senderEmail, subject, message string) error
}

type contactService struct {
	mailer mail.Mailer
	inbox  string
}

// NewContactService creates a new contact service.
func NewContactService(mailer mail.Mailer, inbox string) ContactService {
	return &contactService{
		mailer: mailer,
		inbox:  inbox,
	}
}

// Send delivers the visitor's message to the inbox with Reply-To pointing
// back at the visitor, so staff can answer directly.
func (s *contactService) Send(ctx context.Context, senderEmail, subject, message string) error {
	msg := mail.Message{
		To:      s.inbox,
		ReplyTo: senderEmail,
		Subject: subject,
		Text:    message,
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("relay contact message: %w", err)
	}
	return nil
}
