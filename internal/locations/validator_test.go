package locations

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// fakeLookup answers from a fixed table without touching the network.
type fakeLookup struct {
	places map[string]Place
	err    error
	calls  int
}

func (f *fakeLookup) Lookup(_ context.Context, zip string) (Place, error) {
	f.calls++
	if f.err != nil {
		return Place{}, f.err
	}
	p, ok := f.places[zip]
	if !ok {
		return Place{}, ErrZipNotFound
	}
	return p, nil
}

func TestValidatePairInvalidZipSkipsLookup(t *testing.T) {
	lk := &fakeLookup{}
	v := Validator{Lookup: lk}
	for _, zip := range []string{"", "1234", "123456", "90a01", "9 001"} {
		if got := v.ValidatePair(context.Background(), zip, "Los Angeles, CA"); got != PairInvalidZip {
			t.Errorf("zip %q: got %v, want PairInvalidZip", zip, got)
		}
	}
	if lk.calls != 0 {
		t.Fatalf("invalid zips must not reach the lookup, saw %d calls", lk.calls)
	}
}

func TestValidatePairMatches(t *testing.T) {
	lk := &fakeLookup{places: map[string]Place{
		"90001": {Name: "Los Angeles", StateAbbr: "CA"},
		"60601": {Name: "Chicago", StateAbbr: "IL"},
	}}
	v := Validator{Lookup: lk}

	cases := []struct {
		zip, city string
		want      PairStatus
	}{
		{"90001", "Los Angeles, CA", PairOK},
		{"90001", "los angeles", PairOK},
		{"90001", "LosAngeles", PairOK},
		{"90001", "  Los  Angeles , CA", PairOK},
		{"90001", "Fresno, CA", PairCityMismatch},
		{"60601", "Los Angeles, CA", PairCityMismatch},
		{"11111", "Anywhere", PairZipNotFound},
	}
	for _, tc := range cases {
		if got := v.ValidatePair(context.Background(), tc.zip, tc.city); got != tc.want {
			t.Errorf("ValidatePair(%q, %q) = %v, want %v", tc.zip, tc.city, got, tc.want)
		}
	}
}

func TestValidatePairFailsOpenOnTransportError(t *testing.T) {
	v := Validator{Lookup: &fakeLookup{err: errors.New("connection refused")}}
	if got := v.ValidatePair(context.Background(), "90001", "Nowhere"); got != PairOK {
		t.Fatalf("transport failure should pass open, got %v", got)
	}
}

func TestLookupClientAgainstFakeServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/90210":
			fmt.Fprint(w, `{"post code":"90210","places":[{"place name":"Beverly Hills","state abbreviation":"CA"}]}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewLookupClient(srv.URL, time.Second)

	place, err := c.Lookup(context.Background(), "90210")
	if err != nil {
		t.Fatalf("lookup error: %v", err)
	}
	if place.Name != "Beverly Hills" || place.StateAbbr != "CA" {
		t.Fatalf("unexpected place: %+v", place)
	}

	if _, err := c.Lookup(context.Background(), "00000"); !errors.Is(err, ErrZipNotFound) {
		t.Fatalf("missing zip should map to ErrZipNotFound, got %v", err)
	}
}
