package forms

import (
	"context"
	"strings"

	"github.com/imabhi25/apex-freight-brokerage/internal/domain"
	"github.com/imabhi25/apex-freight-brokerage/internal/domain/models"
	"github.com/imabhi25/apex-freight-brokerage/internal/validate"
)

// ContactSender is the transport slice the contact form needs.
type ContactSender interface {
	SubmitContact(ctx context.Context, msg models.ContactMessage) (domain.SubmissionResult, error)
}

// ContactForm is the minimal inquiry form: three fields, submit-time
// validation, same all-fields-at-once error guarantee as the other flows.
type ContactForm struct {
	sender ContactSender

	msg       models.ContactMessage
	errors    domain.FieldErrors
	submitted bool
	refID     string
}

func NewContactForm(sender ContactSender) *ContactForm {
	return &ContactForm{sender: sender, errors: domain.FieldErrors{}}
}

func (f *ContactForm) Submitted() bool                { return f.submitted }
func (f *ContactForm) RefID() string                  { return f.refID }
func (f *ContactForm) Message() models.ContactMessage { return f.msg }
func (f *ContactForm) Errors() domain.FieldErrors     { return f.errors.Copy() }

// SetField records one edit, clearing that field's error immediately.
func (f *ContactForm) SetField(field, value string) {
	f.errors.Clear(field)
	switch field {
	case "name":
		f.msg.Name = value
	case "email":
		f.msg.Email = value
	case "message":
		f.msg.Message = value
	}
}

// Submit validates all fields at once and posts the inquiry.
func (f *ContactForm) Submit(ctx context.Context) bool {
	if f.submitted {
		return false
	}

	errs := domain.FieldErrors{}
	if strings.TrimSpace(f.msg.Name) == "" {
		errs.Set("name", CodeRequired)
	}
	switch {
	case strings.TrimSpace(f.msg.Email) == "":
		errs.Set("email", CodeRequired)
	case !validate.Email(f.msg.Email):
		errs.Set("email", CodeInvalidEmail)
	}
	if strings.TrimSpace(f.msg.Message) == "" {
		errs.Set("message", CodeRequired)
	}
	if len(errs) > 0 {
		f.errors = errs
		return false
	}

	f.errors = domain.FieldErrors{}
	res, err := f.sender.SubmitContact(ctx, f.msg)
	if err != nil || !res.Success {
		f.errors.Set(SubmitErrorKey, CodeTransmissionFailed)
		return false
	}

	f.submitted = true
	f.refID = res.RefID
	return true
}

// Reset wipes the message after an acknowledged submission.
func (f *ContactForm) Reset() {
	f.msg = models.ContactMessage{}
	f.errors = domain.FieldErrors{}
	f.submitted = false
	f.refID = ""
}
