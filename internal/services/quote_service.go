package services

import (
	"context"
	"strings"

	"github.com/imabhi25/apex-freight-brokerage/internal/domain"
	"github.com/imabhi25/apex-freight-brokerage/internal/domain/models"
	"github.com/imabhi25/apex-freight-brokerage/internal/mailer"
	"github.com/imabhi25/apex-freight-brokerage/internal/refid"
	"github.com/imabhi25/apex-freight-brokerage/internal/utils"
	"github.com/imabhi25/apex-freight-brokerage/internal/validate"
)

// QuoteService receives a validated quote draft, assigns a reference ID and
// relays the admin notification plus user receipt.
type QuoteService struct {
	Mail       mailer.Sender
	AdminEmail string
	RequestID  string
}

// Submit returns the reference ID on success. The admin notification is
// mandatory; the user receipt is best-effort and only logged on failure, so a
// lead is never lost to a bouncing requester address.
func (s QuoteService) Submit(ctx context.Context, d models.QuoteDraft) (string, error) {
	if err := validateQuoteDraft(d); err != nil {
		return "", err
	}

	ref := refid.Generate(refid.TypeQuote)

	subject, html, err := mailer.QuoteAdmin(d, ref)
	if err != nil {
		return "", domain.InternalError{Msg: "failed to render quote notification", Err: err}
	}
	if err := s.Mail.Send(ctx, mailer.Email{To: s.AdminEmail, ReplyTo: d.Email, Subject: subject, HTML: html}); err != nil {
		return "", err
	}

	if subject, html, err = mailer.QuoteReceipt(d, ref); err == nil {
		if err := s.Mail.Send(ctx, mailer.Email{To: d.Email, Subject: subject, HTML: html}); err != nil {
			utils.LogEvent(s.RequestID, "quote", "receipt_failed", "ref_id="+ref+" err="+err.Error())
		}
	}

	utils.LogEvent(s.RequestID, "quote", "submitted", "ref_id="+ref)
	return ref, nil
}

func validateQuoteDraft(d models.QuoteDraft) error {
	switch {
	case strings.TrimSpace(d.Organization) == "":
		return domain.ValidationError{Field: "organization", Msg: "required"}
	case !validate.Email(d.Email):
		return domain.ValidationError{Field: "email", Msg: "invalid email"}
	case strings.TrimSpace(d.OriginCity) == "" || strings.TrimSpace(d.OriginZip) == "":
		return domain.ValidationError{Field: "origin", Msg: "required"}
	case strings.TrimSpace(d.DestinationCity) == "" || strings.TrimSpace(d.DestinationZip) == "":
		return domain.ValidationError{Field: "destination", Msg: "required"}
	case strings.TrimSpace(d.ContactName) == "":
		return domain.ValidationError{Field: "contactName", Msg: "required"}
	case !validate.Phone(d.Phone):
		return domain.ValidationError{Field: "phone", Msg: "must contain 10 digits"}
	}
	return nil
}
