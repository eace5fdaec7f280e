package domain

import (
	"context"
	"time"
)

// ContactSubmission is a message left through the contact form.
type ContactSubmission struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Email       string    `json:"email" yaml:"email"`
	Subject     string    `json:"subject,omitempty" yaml:"subject"`
	Message     string    `json:"message" yaml:"message"`
	SubmittedAt time.Time `json:"submittedAt" yaml:"submittedAt"`
	RemoteIP    string    `json:"remoteIp,omitempty" yaml:"remoteIp"`
	UserAgent   string    `json:"userAgent,omitempty" yaml:"userAgent"`
}

// SubmissionWriter persists contact submissions in the content source.
type SubmissionWriter interface {
	CreateSubmission(ctx context.Context, sub *ContactSubmission) error
}
