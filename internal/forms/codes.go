// Package forms holds the session-scoped state machines behind the intake
// forms: a three-step quote flow, a single-page carrier application and the
// contact form. Each form owns exactly one draft plus its field-error map and
// is driven event-by-event (keystroke, blur, step, submit) by the caller's
// event loop. Forms are not goroutine-safe; one session drives one form.
package forms

// Field error codes surfaced to the UI. Errors are cleared eagerly the moment
// a field is edited and set lazily on blur or gating, never mid-keystroke.
const (
	CodeRequired           = "REQUIRED"
	CodeInvalidEmail       = "INVALID EMAIL"
	CodeInvalidEmailFormat = "INVALID EMAIL FORMAT"
	CodeInvalidZip         = "INVALID ZIP"
	CodeZipNotFound        = "ZIP NOT FOUND"
	CodeCityMismatch       = "CITY CODE MISMATCH"
	CodeInvalidPhone       = "INVALID PHONE"
	CodeInvalidEIN         = "INVALID EIN"
	CodeAuthorityShort     = "MINIMUM 6 DIGITS"
	CodeInvalid            = "INVALID"
	CodeInvalidFormat      = "INVALID FORMAT"
	CodeTransmissionFailed = "TRANSMISSION FAILED. PLEASE RETRY."
)

// SubmitErrorKey carries transport failures; it does not belong to any field.
const SubmitErrorKey = "submit"
