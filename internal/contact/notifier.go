package contact

import (
	"context"
	"fmt"
	"log/slog"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/pubsub"
	"github.com/nfrund/folio/internal/rendering"
)

// Notifier emails the site owner about new submissions.
type Notifier struct {
	sender    domain.EmailSender
	recipient string
	renderer  *rendering.UniversalRenderer
}

// NewNotifier creates a notifier sending to recipient.
func NewNotifier(sender domain.EmailSender, recipient string) *Notifier {
	return &Notifier{sender: sender, recipient: recipient, renderer: rendering.NewUniversalRenderer()}
}

// Start subscribes the notifier to SubmittedEvent.
func (n *Notifier) Start(ctx context.Context, sub pubsub.Subscriber) error {
	return pubsub.Subscribe(ctx, sub, SubmittedEvent, func(ctx context.Context, s domain.ContactSubmission, _ pubsub.Message) error {
		return n.Notify(ctx, s)
	})
}

// Notify sends one notification email.
func (n *Notifier) Notify(ctx context.Context, s domain.ContactSubmission) error {
	if n.recipient == "" {
		slog.WarnContext(ctx, "No contact recipient configured, skipping notification", "id", s.ID)
		return nil
	}

	body, err := n.renderer.String(ctx, notificationBody(s))
	if err != nil {
		return fmt.Errorf("failed to render notification: %w", err)
	}

	msg := domain.Email{
		To:      n.recipient,
		ReplyTo: s.Email,
		Subject: notificationSubject(s),
		HTML:    body,
	}
	if err := n.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send contact notification %s: %w", s.ID, err)
	}
	return nil
}

func notificationSubject(s domain.ContactSubmission) string {
	if s.Subject != "" {
		return "New message: " + s.Subject
	}
	return "New message from " + s.Name
}

func notificationBody(s domain.ContactSubmission) cmp.Node {
	return g.Div(
		g.H2(cmp.Text("New contact form submission")),
		g.P(g.Strong(cmp.Text("From: ")), cmp.Textf("%s <%s>", s.Name, s.Email)),
		cmp.If(s.Subject != "", g.P(g.Strong(cmp.Text("Subject: ")), cmp.Text(s.Subject))),
		g.P(g.Strong(cmp.Text("Received: ")), cmp.Text(s.SubmittedAt.Format("2 Jan 2006 15:04 MST"))),
		g.Pre(cmp.Text(s.Message)),
	)
}
