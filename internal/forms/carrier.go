package forms

import (
	"context"
	"strings"
	"time"

	"github.com/imabhi25/apex-freight-brokerage/internal/domain"
	"github.com/imabhi25/apex-freight-brokerage/internal/domain/models"
	"github.com/imabhi25/apex-freight-brokerage/internal/validate"
)

// CarrierSender is the transport slice the carrier form needs.
type CarrierSender interface {
	SubmitCarrier(ctx context.Context, app models.CarrierApplication) (domain.SubmissionResult, error)
}

// CarrierState is the single-page form lifecycle.
type CarrierState int

const (
	CarrierEditing CarrierState = iota
	CarrierSubmitting
	CarrierSubmitted
)

// Sleeper injects the delay of the cosmetic authority indicator so tests run
// without waiting.
type Sleeper func(ctx context.Context, d time.Duration)

func realSleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// authorityIndicatorDelay is the simulated latency of the verification badge.
const authorityIndicatorDelay = 1500 * time.Millisecond

// CarrierForm is the single-page carrier application controller. All required
// field validation happens at submit time, all failing fields at once. The
// authority-verification indicator is cosmetic: it always resolves to
// verified and never gates submission; the authoritative check at submit time
// is the independent format validator.
type CarrierForm struct {
	sender CarrierSender
	sleep  Sleeper

	app    models.CarrierApplication
	errors domain.FieldErrors
	state  CarrierState
	refID  string

	verifyingAuthority bool
	authorityVerified  bool
}

// NewCarrierForm starts a fresh editing session. A nil sleeper gets the real
// simulated delay.
func NewCarrierForm(sender CarrierSender, sleep Sleeper) *CarrierForm {
	if sleep == nil {
		sleep = realSleep
	}
	return &CarrierForm{
		sender: sender,
		sleep:  sleep,
		errors: domain.FieldErrors{},
		state:  CarrierEditing,
	}
}

func (f *CarrierForm) State() CarrierState                    { return f.state }
func (f *CarrierForm) RefID() string                          { return f.refID }
func (f *CarrierForm) Application() models.CarrierApplication { return f.app }
func (f *CarrierForm) Errors() domain.FieldErrors             { return f.errors.Copy() }
func (f *CarrierForm) VerifyingAuthority() bool               { return f.verifyingAuthority }
func (f *CarrierForm) AuthorityVerified() bool                { return f.authorityVerified }

// SetField records one edit, clearing that field's error immediately. The tax
// ID is live-formatted as NN-NNNNNNN. An authority number reaching 6 captured
// digits kicks off the cosmetic verification badge.
func (f *CarrierForm) SetField(ctx context.Context, field, value string) {
	f.errors.Clear(field)

	switch field {
	case "organization":
		f.app.Organization = value
	case "dispatcherName":
		f.app.DispatcherName = value
	case "email":
		f.app.Email = value
	case "taxId":
		f.app.TaxID = validate.FormatEIN(value)
	case "mcDot":
		changed := value != f.app.McDot
		f.app.McDot = value
		if len(validate.DigitsOnly(value)) >= 6 && changed {
			f.runAuthorityIndicator(ctx)
		} else if len(validate.DigitsOnly(value)) < 6 {
			f.verifyingAuthority = false
			f.authorityVerified = false
		}
	}
}

// runAuthorityIndicator simulates the upstream authority check. It touches
// only the badge flags, never the error map, and always lands on verified.
func (f *CarrierForm) runAuthorityIndicator(ctx context.Context) {
	f.verifyingAuthority = true
	f.authorityVerified = false
	f.sleep(ctx, authorityIndicatorDelay)
	f.verifyingAuthority = false
	f.authorityVerified = true
}

// ToggleEquipment adds or removes one equipment type from the profile.
func (f *CarrierForm) ToggleEquipment(name string) {
	for i, e := range f.app.Equipment {
		if e == name {
			f.app.Equipment = append(f.app.Equipment[:i], f.app.Equipment[i+1:]...)
			return
		}
	}
	f.app.Equipment = append(f.app.Equipment, name)
}

// BlurEmail sets a format error when focus leaves an invalid email.
func (f *CarrierForm) BlurEmail() {
	if strings.TrimSpace(f.app.Email) == "" {
		f.errors.Set("email", CodeRequired)
		return
	}
	if !validate.Email(f.app.Email) {
		f.errors.Set("email", CodeInvalidEmailFormat)
	}
}

// BlurTaxID flags a malformed EIN; an empty field waits for submit.
func (f *CarrierForm) BlurTaxID() {
	if f.app.TaxID != "" && !validate.EIN(f.app.TaxID) {
		f.errors.Set("taxId", CodeInvalidEIN)
	}
}

// BlurMcDot reports an in-progress entry that is still too short to verify.
func (f *CarrierForm) BlurMcDot() {
	digits := validate.DigitsOnly(f.app.McDot)
	if len(digits) > 0 && len(digits) < 6 {
		f.errors.Set("mcDot", CodeAuthorityShort)
		f.authorityVerified = false
	}
}

// Submit validates every required field at once and posts the application.
// The cosmetic badge plays no part here.
func (f *CarrierForm) Submit(ctx context.Context) bool {
	if f.state != CarrierEditing {
		return false
	}

	errs := domain.FieldErrors{}
	if strings.TrimSpace(f.app.Organization) == "" {
		errs.Set("organization", CodeRequired)
	}
	if strings.TrimSpace(f.app.DispatcherName) == "" {
		errs.Set("dispatcherName", CodeRequired)
	}
	switch {
	case strings.TrimSpace(f.app.Email) == "":
		errs.Set("email", CodeRequired)
	case !validate.Email(f.app.Email):
		errs.Set("email", CodeInvalidEmailFormat)
	}
	if strings.TrimSpace(f.app.McDot) == "" {
		errs.Set("mcDot", CodeRequired)
	} else {
		switch validate.Authority(f.app.McDot) {
		case validate.AuthorityTooShort:
			errs.Set("mcDot", CodeInvalid)
		case validate.AuthorityBadFormat:
			errs.Set("mcDot", CodeInvalidFormat)
		}
	}
	switch {
	case strings.TrimSpace(f.app.TaxID) == "":
		errs.Set("taxId", CodeRequired)
	case !validate.EIN(f.app.TaxID):
		errs.Set("taxId", CodeInvalidEIN)
	}

	if len(errs) > 0 {
		f.errors = errs
		return false
	}

	f.errors = domain.FieldErrors{}
	f.state = CarrierSubmitting
	res, err := f.sender.SubmitCarrier(ctx, f.app)
	if err != nil || !res.Success {
		f.state = CarrierEditing
		f.errors.Set(SubmitErrorKey, CodeTransmissionFailed)
		return false
	}

	f.state = CarrierSubmitted
	f.refID = res.RefID
	return true
}

// Reset returns to a blank editing session after an acknowledged submission.
func (f *CarrierForm) Reset() {
	f.app = models.CarrierApplication{}
	f.errors = domain.FieldErrors{}
	f.state = CarrierEditing
	f.refID = ""
	f.verifyingAuthority = false
	f.authorityVerified = false
}
