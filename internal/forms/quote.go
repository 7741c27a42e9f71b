package forms

import (
	"context"
	"strings"
	"time"

	"github.com/imabhi25/apex-freight-brokerage/internal/domain"
	"github.com/imabhi25/apex-freight-brokerage/internal/domain/models"
	"github.com/imabhi25/apex-freight-brokerage/internal/locations"
	"github.com/imabhi25/apex-freight-brokerage/internal/utils"
	"github.com/imabhi25/apex-freight-brokerage/internal/validate"
)

// PairValidator cross-checks a city/zip pair against the authoritative lookup.
type PairValidator interface {
	ValidatePair(ctx context.Context, zip, cityLabel string) locations.PairStatus
}

// QuoteSender is the transport slice the quote form needs.
type QuoteSender interface {
	SubmitQuote(ctx context.Context, d models.QuoteDraft) (domain.SubmissionResult, error)
}

// Quote flow steps. Forward moves are gated and monotonic; back moves are
// unconditional and never validate.
const (
	quoteFirstStep = 1
	quoteLastStep  = 3
)

// QuoteForm is the three-step quote request state machine. It owns one
// QuoteDraft for the life of a visit and gates each forward transition on the
// fields of the current step.
type QuoteForm struct {
	pairs  PairValidator
	sender QuoteSender

	draft     models.QuoteDraft
	errors    domain.FieldErrors
	step      int
	submitted bool
	refID     string

	// pairSeq discards a pair-check result that was superseded by newer
	// input before it resolved; last write wins on the error map.
	pairSeq map[string]uint64
}

// NewQuoteForm starts a fresh session at step 1 with an empty draft.
func NewQuoteForm(pairs PairValidator, sender QuoteSender) *QuoteForm {
	return &QuoteForm{
		pairs:   pairs,
		sender:  sender,
		draft:   models.QuoteDraft{DateReady: utils.FormatDate(time.Now())},
		errors:  domain.FieldErrors{},
		step:    quoteFirstStep,
		pairSeq: map[string]uint64{},
	}
}

func (f *QuoteForm) Step() int                  { return f.step }
func (f *QuoteForm) Submitted() bool            { return f.submitted }
func (f *QuoteForm) RefID() string              { return f.refID }
func (f *QuoteForm) Draft() models.QuoteDraft   { return f.draft }
func (f *QuoteForm) Errors() domain.FieldErrors { return f.errors.Copy() }

// SetField records one keystroke-level edit. Any error on the edited field is
// cleared immediately; re-validation only happens on blur or gating. Phone,
// weight and cargo value are live-formatted; zip fields capture digits only.
// A zip reaching exactly 5 digits with a non-empty paired city triggers the
// authoritative pair check.
func (f *QuoteForm) SetField(ctx context.Context, field, value string) {
	f.errors.Clear(field)

	switch field {
	case "organization":
		f.draft.Organization = value
	case "email":
		f.draft.Email = value
	case "originCity":
		f.setCity(&f.draft.OriginCity, &f.draft.OriginZip, "originCity", "originZip", value)
	case "destinationCity":
		f.setCity(&f.draft.DestinationCity, &f.draft.DestinationZip, "destinationCity", "destinationZip", value)
	case "originZip":
		f.setZip(ctx, &f.draft.OriginZip, f.draft.OriginCity, "originCity", "originZip", value)
	case "destinationZip":
		f.setZip(ctx, &f.draft.DestinationZip, f.draft.DestinationCity, "destinationCity", "destinationZip", value)
	case "commodity":
		f.draft.Commodity = value
	case "equipment":
		f.draft.Equipment = value
	case "weight":
		f.draft.Weight = validate.FormatThousands(value)
	case "cargoValue":
		f.draft.CargoValue = validate.FormatThousands(value)
	case "dateReady":
		f.draft.DateReady = value
	case "contactName":
		f.draft.ContactName = value
	case "phone":
		f.draft.Phone = validate.FormatPhone(value)
	case "jobTitle":
		f.draft.JobTitle = value
	case "notes":
		f.draft.Notes = value
	}
}

// SetHazardous flips the hazmat flag; it carries no validation.
func (f *QuoteForm) SetHazardous(v bool) {
	f.draft.IsHazardous = v
}

// SelectOrigin applies a directory pick: city label and zip together, both
// errors cleared. A picked pair is internally consistent, so no lookup fires.
func (f *QuoteForm) SelectOrigin(rec locations.Record) {
	f.draft.OriginCity = rec.Label()
	f.draft.OriginZip = rec.Zip
	f.errors.Clear("originCity")
	f.errors.Clear("originZip")
}

// SelectDestination is SelectOrigin for the destination pair.
func (f *QuoteForm) SelectDestination(rec locations.Record) {
	f.draft.DestinationCity = rec.Label()
	f.draft.DestinationZip = rec.Zip
	f.errors.Clear("destinationCity")
	f.errors.Clear("destinationZip")
}

// Blur re-runs the pair check when focus leaves a city or zip field and both
// halves of that pair are populated. Other fields validate at gate time only.
func (f *QuoteForm) Blur(ctx context.Context, field string) {
	switch field {
	case "originCity", "originZip":
		f.pairCheck(ctx, f.draft.OriginZip, f.draft.OriginCity, "originCity", "originZip")
	case "destinationCity", "destinationZip":
		f.pairCheck(ctx, f.draft.DestinationZip, f.draft.DestinationCity, "destinationCity", "destinationZip")
	}
}

// HandleNext gates the 1→2 and 2→3 transitions. All failing fields of the
// current step are reported at once; the step does not move unless every
// check passes. The step-1 gate re-runs both pair checks synchronously and
// blocks only on a resolved mismatch or a statically malformed zip; an
// unresolvable zip passes open.
func (f *QuoteForm) HandleNext(ctx context.Context) bool {
	if f.submitted || f.step >= quoteLastStep {
		return false
	}

	errs := domain.FieldErrors{}
	switch f.step {
	case 1:
		f.gateStepOne(ctx, errs)
	case 2:
		f.gateStepTwo(errs)
	}

	f.errors = errs
	if len(errs) > 0 {
		return false
	}
	f.step++
	return true
}

func (f *QuoteForm) gateStepOne(ctx context.Context, errs domain.FieldErrors) {
	if strings.TrimSpace(f.draft.Organization) == "" {
		errs.Set("organization", CodeRequired)
	}
	switch {
	case strings.TrimSpace(f.draft.Email) == "":
		errs.Set("email", CodeRequired)
	case !validate.Email(f.draft.Email):
		errs.Set("email", CodeInvalidEmail)
	}
	f.gatePair(ctx, errs, f.draft.OriginZip, f.draft.OriginCity, "originCity", "originZip")
	f.gatePair(ctx, errs, f.draft.DestinationZip, f.draft.DestinationCity, "destinationCity", "destinationZip")
}

func (f *QuoteForm) gatePair(ctx context.Context, errs domain.FieldErrors, zip, city, cityKey, zipKey string) {
	if strings.TrimSpace(city) == "" {
		errs.Set(cityKey, CodeRequired)
	}
	if strings.TrimSpace(zip) == "" {
		errs.Set(zipKey, CodeRequired)
		return
	}
	switch f.pairs.ValidatePair(ctx, zip, city) {
	case locations.PairInvalidZip:
		errs.Set(zipKey, CodeInvalidZip)
	case locations.PairCityMismatch:
		errs.Set(cityKey, CodeCityMismatch)
	case locations.PairZipNotFound:
		// unresolvable is advisory; never blocks the gate
	}
}

func (f *QuoteForm) gateStepTwo(errs domain.FieldErrors) {
	if strings.TrimSpace(f.draft.Commodity) == "" {
		errs.Set("commodity", CodeRequired)
	}
	switch {
	case f.draft.Equipment == "":
		errs.Set("equipment", CodeRequired)
	case !models.IsQuoteEquipment(f.draft.Equipment):
		errs.Set("equipment", CodeInvalid)
	}
	if strings.TrimSpace(f.draft.Weight) == "" {
		errs.Set("weight", CodeRequired)
	}
}

// HandleBack steps backward unconditionally, clearing only the errors of the
// step being left. Nothing is re-validated.
func (f *QuoteForm) HandleBack() {
	if f.submitted || f.step <= quoteFirstStep {
		return
	}
	for _, key := range quoteStepFields(f.step) {
		f.errors.Clear(key)
	}
	f.step--
}

// Submit gates the final step and posts the draft. On transport failure the
// machine stays in step 3 with a retry error and the draft untouched.
func (f *QuoteForm) Submit(ctx context.Context) bool {
	if f.submitted || f.step != quoteLastStep {
		return false
	}

	errs := domain.FieldErrors{}
	if strings.TrimSpace(f.draft.ContactName) == "" {
		errs.Set("contactName", CodeRequired)
	}
	switch {
	case strings.TrimSpace(f.draft.Phone) == "":
		errs.Set("phone", CodeRequired)
	case !validate.Phone(f.draft.Phone):
		errs.Set("phone", CodeInvalidPhone)
	}
	if len(errs) > 0 {
		f.errors = errs
		return false
	}

	f.errors = domain.FieldErrors{}
	res, err := f.sender.SubmitQuote(ctx, f.draft)
	if err != nil || !res.Success {
		f.errors.Set(SubmitErrorKey, CodeTransmissionFailed)
		return false
	}

	f.submitted = true
	f.refID = res.RefID
	return true
}

// Reset wipes the draft and errors and returns to step 1, for the
// "submit another" action after an acknowledged submission.
func (f *QuoteForm) Reset() {
	f.draft = models.QuoteDraft{DateReady: utils.FormatDate(time.Now())}
	f.errors = domain.FieldErrors{}
	f.step = quoteFirstStep
	f.submitted = false
	f.refID = ""
}

func (f *QuoteForm) setCity(city, zip *string, cityKey, zipKey, value string) {
	if strings.TrimSpace(value) == "" {
		// clearing the city empties the paired zip and both errors
		*city = ""
		*zip = ""
		f.errors.Clear(cityKey)
		f.errors.Clear(zipKey)
		return
	}
	*city = value
}

func (f *QuoteForm) setZip(ctx context.Context, zip *string, city, cityKey, zipKey, value string) {
	digits := validate.DigitsOnly(value)
	if len(digits) > 5 {
		digits = digits[:5]
	}
	if digits == *zip {
		// truncated input collapsed to the stored value; the 5-digit
		// boundary was already crossed, so no new check fires
		return
	}
	*zip = digits

	if len(digits) == 5 && strings.TrimSpace(city) != "" {
		f.pairCheck(ctx, digits, city, cityKey, zipKey)
		return
	}
	if len(digits) < 5 && f.errors[cityKey] == CodeCityMismatch {
		// a shortened zip withdraws the stale mismatch verdict
		f.errors.Clear(cityKey)
	}
}

// pairCheck runs one validation pass and surfaces the verdict: a mismatch
// lands on the city field (clearing the zip field's error), zip-shape and
// not-found verdicts land on the zip field, and OK clears both.
func (f *QuoteForm) pairCheck(ctx context.Context, zip, city, cityKey, zipKey string) {
	if strings.TrimSpace(zip) == "" || strings.TrimSpace(city) == "" {
		return
	}

	f.pairSeq[zipKey]++
	seq := f.pairSeq[zipKey]
	status := f.pairs.ValidatePair(ctx, zip, city)
	if seq != f.pairSeq[zipKey] {
		return // superseded by newer input while this pass was in flight
	}

	switch status {
	case locations.PairCityMismatch:
		f.errors.Set(cityKey, CodeCityMismatch)
		f.errors.Clear(zipKey)
	case locations.PairInvalidZip:
		f.errors.Set(zipKey, CodeInvalidZip)
	case locations.PairZipNotFound:
		f.errors.Set(zipKey, CodeZipNotFound)
	case locations.PairOK:
		f.errors.Clear(cityKey)
		f.errors.Clear(zipKey)
	}
}

// quoteStepFields lists the error-map keys owned by each step.
func quoteStepFields(step int) []string {
	switch step {
	case 1:
		return []string{"organization", "email", "originCity", "originZip", "destinationCity", "destinationZip"}
	case 2:
		return []string{"commodity", "equipment", "weight", "cargoValue"}
	case 3:
		return []string{"contactName", "phone", "jobTitle", "notes", SubmitErrorKey}
	default:
		return nil
	}
}
