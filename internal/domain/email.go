package domain

import "context"

// Email is an outgoing HTML message. The sender address is configured on the
// EmailSender.
type Email struct {
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// EmailSender delivers outgoing email.
type EmailSender interface {
	Send(ctx context.Context, msg Email) error
}
