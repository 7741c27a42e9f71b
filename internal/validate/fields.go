package validate

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	einRe   = regexp.MustCompile(`^\d{2}-?\d{7}$`)
	mcRe    = regexp.MustCompile(`^(?i:mc)?\d{6,7}$`)
	dotRe   = regexp.MustCompile(`^\d{5,8}$`)
	zipRe   = regexp.MustCompile(`^\d{5}$`)
)

// Email reports whether s looks like a deliverable address. Consecutive dots
// pass the naive regexp but are rejected by most providers.
func Email(s string) bool {
	return emailRe.MatchString(s) && !strings.Contains(s, "..")
}

// EIN validates a federal tax ID, with or without the separating dash.
func EIN(s string) bool {
	return einRe.MatchString(s)
}

// Zip validates a strict 5-digit ZIP code.
func Zip(s string) bool {
	return zipRe.MatchString(s)
}

// Phone is valid iff exactly 10 digits were captured.
func Phone(s string) bool {
	return len(DigitsOnly(s)) == 10
}

// AuthorityStatus distinguishes an in-progress short entry from a value that
// can never become a valid MC or DOT number.
type AuthorityStatus int

const (
	AuthorityOK AuthorityStatus = iota
	AuthorityTooShort
	AuthorityBadFormat
)

// Authority checks an operating-authority number: "MC" plus 6-7 digits, or a
// bare 5-8 digit DOT number. Spaces and dashes are ignored.
func Authority(s string) AuthorityStatus {
	digits := DigitsOnly(s)
	if len(digits) < 5 {
		return AuthorityTooShort
	}
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(s)
	if mcRe.MatchString(cleaned) || dotRe.MatchString(cleaned) {
		return AuthorityOK
	}
	return AuthorityBadFormat
}
