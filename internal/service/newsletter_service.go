package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	apperrors "github.com/sereneHealth/web-api/internal/errors"
	"github.com/sereneHealth/web-api/internal/mail"
	"github.com/sereneHealth/web-api/internal/model"
	"github.com/sereneHealth/web-api/internal/repository"
)

var broadcastTemplate = template.Must(template.New("broadcast").Parse(`<html>
<body>
<h3>Dear {{if .Name}}{{.Name}}{{else}}friend of Serene Scheal{{end}},</h3>
<p>{{.Message}}</p>
<p>Warm regards,<br/>
<strong>Serene Scheal Initiative (School Health Program)</strong></p>
</body>
</html>
`))

// NewsletterService manages the subscriber list and bulk broadcasts.
type NewsletterService interface {
	Subscribe(ctx context.Context, email string) error
	Broadcast(ctx context.Context, subject, message string, attachment *mail.Attachment) error
}

type newsletterService struct {
	subscriberRepo repository.SubscriberRepository
	mailer         mail.Mailer
	logger         zerolog.Logger
}

// NewNewsletterService creates a new newsletter service.
func NewNewsletterService(subscriberRepo repository.SubscriberRepository, mailer mail.Mailer, logger zerolog.Logger) NewsletterService {
	return &newsletterService{
		subscriberRepo: subscriberRepo,
		mailer:         mailer,
		logger:         logger,
	}
}

// Subscribe adds an email to the newsletter list. Like registration, the
// friendly pre-check is backed by the unique index, so a concurrent duplicate
// signup surfaces as the same conflict instead of a second row.
func (s *newsletterService) Subscribe(ctx context.Context, email string) error {
	existing, err := s.subscriberRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return apperrors.ErrSubscriberExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check subscriber: %w", err)
	}

	if err := s.subscriberRepo.Create(ctx, &model.Subscriber{Email: email}); err != nil {
		if errors.Is(err, apperrors.ErrSubscriberExists) {
			return apperrors.ErrSubscriberExists
		}
		return fmt.Errorf("create subscriber: %w", err)
	}
	return nil
}

// Broadcast sends the message to every subscriber, one mail at a time. The
// first failed send aborts the remainder; mail already delivered stays
// delivered. There is no retry and no queue.
func (s *newsletterService) Broadcast(ctx context.Context, subject, message string, attachment *mail.Attachment) error {
	subscribers, err := s.subscriberRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list subscribers: %w", err)
	}

	for i, sub := range subscribers {
		var body bytes.Buffer
		if err := broadcastTemplate.Execute(&body, struct {
			Name    string
			Message string
		}{Name: sub.Name, Message: message}); err != nil {
			return fmt.Errorf("render broadcast body: %w", err)
		}

		msg := mail.Message{
			To:      sub.Email,
			Subject: subject,
			HTML:    body.String(),
		}
		if attachment != nil {
			msg.Attachments = []mail.Attachment{*attachment}
		}

		if err := s.mailer.Send(ctx, msg); err != nil {
			s.logger.Error().Err(err).
				Str("to", sub.Email).
				Int("sent", i).
				Int("remaining", len(subscribers)-i).
				Msg("broadcast aborted")
			return fmt.Errorf("send to %s: %w", sub.Email, err)
		}
	}

	s.logger.Info().Int("recipients", len(subscribers)).Msg("broadcast complete")
	return nil
}
