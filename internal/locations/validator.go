package locations

import (
	"context"
	"errors"
	"strings"

	"github.com/imabhi25/apex-freight-brokerage/internal/utils"
	"github.com/imabhi25/apex-freight-brokerage/internal/validate"
)

// PairStatus is the outcome of cross-checking a city label against a zip.
type PairStatus string

const (
	PairOK           PairStatus = "OK"
	PairInvalidZip   PairStatus = "INVALID_ZIP"
	PairZipNotFound  PairStatus = "ZIP_NOT_FOUND"
	PairCityMismatch PairStatus = "CITY_MISMATCH"
)

// Lookup is the slice of LookupClient the validator needs; tests swap in fakes.
type Lookup interface {
	Lookup(ctx context.Context, zip string) (Place, error)
}

// Validator confirms a user-entered city and zip name the same place, using
// the external lookup as the authority. Lookup outages are deliberately
// fail-open: an unreachable authority must never block form progress.
type Validator struct {
	Lookup    Lookup
	RequestID string
}

// ValidatePair cross-checks one city/zip pair. It issues at most one network
// call and never retries.
func (v Validator) ValidatePair(ctx context.Context, zip, cityLabel string) PairStatus {
	if !validate.Zip(zip) {
		return PairInvalidZip
	}

	place, err := v.Lookup.Lookup(ctx, zip)
	if err != nil {
		if errors.Is(err, ErrZipNotFound) {
			return PairZipNotFound
		}
		utils.LogEvent(v.RequestID, "locations", "lookup_degraded", "zip="+zip+" err="+err.Error())
		return PairOK
	}

	if normalizePlace(place.Name) != normalizePlace(cityLabel) {
		return PairCityMismatch
	}
	return PairOK
}

// normalizePlace lowers the name, strips any trailing ", ST" suffix and
// removes all whitespace so "Los Angeles, CA" equals "los angeles".
func normalizePlace(label string) string {
	if i := strings.Index(label, ","); i >= 0 {
		label = label[:i]
	}
	return strings.ToLower(strings.Join(strings.Fields(label), ""))
}
