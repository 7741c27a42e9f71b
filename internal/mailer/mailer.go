// Package mailer relays intake notifications through the Resend API. Every
// submission produces an admin notification and, for quote and carrier flows,
// a user receipt.
package mailer

import (
	"context"
	"errors"

	"github.com/resend/resend-go/v2"
)

// ErrNotConfigured is returned when no API key was provided at startup.
var ErrNotConfigured = errors.New("email service is not configured yet")

// Email is one outbound message; From is owned by the sender.
type Email struct {
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// Sender is the delivery seam; tests substitute a recorder.
type Sender interface {
	Send(ctx context.Context, e Email) error
}

// Resend sends through the Resend HTTP API.
type Resend struct {
	client *resend.Client
	from   string
}

// NewResend builds the relay. An empty API key yields a sender that reports
// ErrNotConfigured on use, so a half-configured deploy fails per-request
// instead of at boot.
func NewResend(apiKey, from string) *Resend {
	r := &Resend{from: from}
	if apiKey != "" {
		r.client = resend.NewClient(apiKey)
	}
	return r
}

func (r *Resend) Send(ctx context.Context, e Email) error {
	if r.client == nil {
		return ErrNotConfigured
	}
	params := &resend.SendEmailRequest{
		From:    r.from,
		To:      []string{e.To},
		Subject: e.Subject,
		Html:    e.HTML,
	}
	if e.ReplyTo != "" {
		params.ReplyTo = e.ReplyTo
	}
	_, err := r.client.Emails.SendWithContext(ctx, params)
	return err
}
