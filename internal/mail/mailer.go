package mail

import "context"

// Attachment is a file sent along with a message.
type Attachment struct {
	Filename string
	Content  []byte
}

// Message is a single outbound email.
type Message struct {
	To          string
	ReplyTo     string
	Subject     string
	HTML        string
	Text        string
	Attachments []Attachment
}

// Mailer sends email through the configured provider.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
