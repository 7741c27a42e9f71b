package services

import (
	"context"
	"strings"
	"time"

	"github.com/imabhi25/apex-freight-brokerage/internal/domain"
	"github.com/imabhi25/apex-freight-brokerage/internal/domain/models"
	"github.com/imabhi25/apex-freight-brokerage/internal/mailer"
	"github.com/imabhi25/apex-freight-brokerage/internal/refid"
	"github.com/imabhi25/apex-freight-brokerage/internal/utils"
	"github.com/imabhi25/apex-freight-brokerage/internal/validate"
)

// ContactService relays general inquiries to the configured inbox.
type ContactService struct {
	Mail      mailer.Sender
	ToEmail   string
	RequestID string
	Now       func() time.Time
}

// Submit returns the reference ID on success.
func (s ContactService) Submit(ctx context.Context, msg models.ContactMessage) (string, error) {
	if err := validateContactMessage(msg); err != nil {
		return "", err
	}

	ref := refid.Generate(refid.TypeContact)

	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	subject, html, err := mailer.ContactAdmin(msg, ref, now)
	if err != nil {
		return "", domain.InternalError{Msg: "failed to render inquiry", Err: err}
	}
	if err := s.Mail.Send(ctx, mailer.Email{To: s.ToEmail, ReplyTo: msg.Email, Subject: subject, HTML: html}); err != nil {
		return "", err
	}

	utils.LogEvent(s.RequestID, "contact", "submitted", "ref_id="+ref)
	return ref, nil
}

func validateContactMessage(msg models.ContactMessage) error {
	switch {
	case strings.TrimSpace(msg.Name) == "":
		return domain.ValidationError{Field: "name", Msg: "required"}
	case !validate.Email(msg.Email):
		return domain.ValidationError{Field: "email", Msg: "invalid email"}
	case strings.TrimSpace(msg.Message) == "":
		return domain.ValidationError{Field: "message", Msg: "required"}
	}
	return nil
}
