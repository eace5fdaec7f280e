package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"github.com/nfrund/folio/internal/domain"
)

const resendEndpoint = "https://api.resend.com/emails"

var (
	_ domain.EmailSender = (*LogSender)(nil)
	_ domain.EmailSender = (*ResendSender)(nil)
)

// LogSender logs emails instead of sending them. Used in development.
type LogSender struct {
	senderAddress string
}

// Send logs the email content.
func (s *LogSender) Send(ctx context.Context, msg domain.Email) error {
	slog.InfoContext(ctx, "Email sent (logged)",
		"from", s.senderAddress,
		"to", msg.To,
		"reply_to", msg.ReplyTo,
		"subject", msg.Subject,
		"body", msg.HTML,
	)
	return nil
}

// ResendSender sends emails using the Resend API.
type ResendSender struct {
	apiKey        string
	senderAddress string
	endpoint      string
	client        *http.Client
}

// NewResendSender builds a sender with a bounded HTTP client.
func NewResendSender(apiKey, senderAddress string) *ResendSender {
	return &ResendSender{
		apiKey:        apiKey,
		senderAddress: senderAddress,
		endpoint:      resendEndpoint,
		client:        &http.Client{Timeout: 10 * time.Second},
	}
}

type resendPayload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	ReplyTo string `json:"reply_to,omitempty"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Send dispatches an email using the Resend API.
func (s *ResendSender) Send(ctx context.Context, msg domain.Email) error {
	sender := s.senderAddress
	if sender == "" {
		sender = "Folio <onboarding@resend.dev>" // Default sender for testing with Resend
	}

	body, err := json.Marshal(resendPayload{
		From:    sender,
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal resend payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create resend request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to resend: %w", err)
	}
	defer resp.Body.Close()

	var respBody bytes.Buffer
	_, _ = respBody.ReadFrom(resp.Body)

	if resp.StatusCode >= 400 {
		msg := gjson.GetBytes(respBody.Bytes(), "message").String()
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("resend API returned an error: status %d: %s", resp.StatusCode, msg)
	}

	slog.InfoContext(ctx, "Successfully sent email via Resend",
		"to", msg.To,
		"subject", msg.Subject,
		"id", gjson.GetBytes(respBody.Bytes(), "id").String(),
	)
	return nil
}
