package validate

import (
	"strconv"
	"strings"
)

// DigitsOnly strips everything except ASCII digits.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhone renders captured digits as (NNN) NNN-NNNN while typing. Partial
// input never produces a trailing dash.
func FormatPhone(s string) string {
	digits := DigitsOnly(s)
	switch {
	case len(digits) < 4:
		return digits
	case len(digits) < 7:
		return "(" + digits[:3] + ") " + digits[3:]
	default:
		return "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:min(len(digits), 10)]
	}
}

// FormatEIN renders captured digits as NN-NNNNNNN, capped at 9 digits.
func FormatEIN(s string) string {
	digits := DigitsOnly(s)
	if len(digits) > 9 {
		digits = digits[:9]
	}
	if len(digits) <= 2 {
		return digits
	}
	return digits[:2] + "-" + digits[2:]
}

// FormatThousands renders captured digits with en-US thousands separators, the
// display form of weight and cargo value fields. Non-digits are discarded.
func FormatThousands(s string) string {
	digits := DigitsOnly(s)
	if digits == "" {
		return ""
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		// more digits than int64 holds; keep raw digits rather than lie
		return digits
	}
	return groupThousands(n)
}

func groupThousands(n int64) string {
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
