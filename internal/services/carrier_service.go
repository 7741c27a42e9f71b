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

// CarrierService relays carrier applications. Both the compliance
// notification and the dispatcher receipt must go out for the submission to
// count as received.
type CarrierService struct {
	Mail       mailer.Sender
	AdminEmail string
	RequestID  string
}

// Submit returns the reference ID on success.
func (s CarrierService) Submit(ctx context.Context, app models.CarrierApplication) (string, error) {
	if err := validateCarrierApplication(app); err != nil {
		return "", err
	}

	ref := refid.Generate(refid.TypeCarrier)

	subject, html, err := mailer.CarrierAdmin(app, ref)
	if err != nil {
		return "", domain.InternalError{Msg: "failed to render carrier notification", Err: err}
	}
	if err := s.Mail.Send(ctx, mailer.Email{To: s.AdminEmail, ReplyTo: app.Email, Subject: subject, HTML: html}); err != nil {
		return "", err
	}

	subject, html, err = mailer.CarrierReceipt(app, ref)
	if err != nil {
		return "", domain.InternalError{Msg: "failed to render carrier receipt", Err: err}
	}
	if err := s.Mail.Send(ctx, mailer.Email{To: app.Email, Subject: subject, HTML: html}); err != nil {
		return "", err
	}

	utils.LogEvent(s.RequestID, "carrier", "submitted", "ref_id="+ref)
	return ref, nil
}

func validateCarrierApplication(app models.CarrierApplication) error {
	switch {
	case strings.TrimSpace(app.Organization) == "":
		return domain.ValidationError{Field: "organization", Msg: "required"}
	case strings.TrimSpace(app.DispatcherName) == "":
		return domain.ValidationError{Field: "dispatcherName", Msg: "required"}
	case !validate.Email(app.Email):
		return domain.ValidationError{Field: "email", Msg: "invalid email"}
	case validate.Authority(app.McDot) != validate.AuthorityOK:
		return domain.ValidationError{Field: "mcDot", Msg: "invalid authority number"}
	case !validate.EIN(app.TaxID):
		return domain.ValidationError{Field: "taxId", Msg: "invalid EIN"}
	}
	return nil
}
