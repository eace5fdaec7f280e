package contact

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/pubsub"
)

// SubmittedEvent is published after a submission has been stored.
var SubmittedEvent = pubsub.NewEvent[domain.ContactSubmission]("contact.submitted")

// Service validates and stores contact form submissions.
type Service struct {
	writer    domain.SubmissionWriter
	publisher pubsub.Publisher
	validate  *validator.Validate
	now       func() time.Time
}

// NewService creates a contact service. publisher may be nil.
func NewService(writer domain.SubmissionWriter, publisher pubsub.Publisher) *Service {
	return &Service{
		writer:    writer,
		publisher: publisher,
		validate:  newValidator(),
		now:       time.Now,
	}
}

// Submit validates the form, writes the submission and announces it.
// Invalid input yields a *ValidationError.
func (s *Service) Submit(ctx context.Context, form Form) (*domain.ContactSubmission, error) {
	form.Normalize()
	if err := s.validate.Struct(form); err != nil {
		return nil, toValidationError(err)
	}

	sub := &domain.ContactSubmission{
		ID:          uuid.NewString(),
		Name:        form.Name,
		Email:       form.Email,
		Subject:     form.Subject,
		Message:     form.Message,
		SubmittedAt: s.now().UTC(),
		RemoteIP:    form.RemoteIP,
		UserAgent:   form.UserAgent,
	}

	if form.Website != "" {
		slog.WarnContext(ctx, "Dropping contact submission that filled the honeypot", "remote_ip", form.RemoteIP)
		return sub, nil
	}

	if err := s.writer.CreateSubmission(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to store contact submission: %w", err)
	}
	slog.InfoContext(ctx, "Stored contact submission", "id", sub.ID)

	if s.publisher != nil {
		if err := pubsub.Publish(ctx, s.publisher, SubmittedEvent, *sub, map[string]string{"submission_id": sub.ID}); err != nil {
			slog.ErrorContext(ctx, "Failed to publish contact submission", "id", sub.ID, "error", err)
		}
	}
	return sub, nil
}
