package locations

import (
	"strings"
	"testing"
)

func TestSearchByCityPrefix(t *testing.T) {
	got := SearchByCityPrefix("los")
	if len(got) == 0 {
		t.Fatal("expected results for prefix \"los\"")
	}
	for _, r := range got {
		if !strings.HasPrefix(strings.ToLower(r.City), "los") {
			t.Errorf("record %q does not match prefix", r.City)
		}
	}
	if got[0].Label() != "Los Angeles, CA" {
		t.Errorf("Label() = %q, want %q", got[0].Label(), "Los Angeles, CA")
	}
}

func TestSearchByCityPrefixCaseInsensitive(t *testing.T) {
	lower := SearchByCityPrefix("chi")
	upper := SearchByCityPrefix("CHI")
	if len(lower) == 0 || len(lower) != len(upper) {
		t.Fatalf("case should not matter: %d vs %d results", len(lower), len(upper))
	}
}

func TestSearchShortQueryReturnsNothing(t *testing.T) {
	if got := SearchByCityPrefix("l"); got != nil {
		t.Errorf("1-char city query should return nil, got %d results", len(got))
	}
	if got := SearchByZipPrefix("9"); got != nil {
		t.Errorf("1-digit zip query should return nil, got %d results", len(got))
	}
	if got := SearchByCityPrefix("  "); got != nil {
		t.Errorf("blank query should return nil, got %d results", len(got))
	}
}

func TestSearchByZipPrefix(t *testing.T) {
	got := SearchByZipPrefix("900")
	if len(got) == 0 {
		t.Fatal("expected results for zip prefix 900")
	}
	for _, r := range got {
		if !strings.HasPrefix(r.Zip, "900") {
			t.Errorf("zip %q does not match prefix", r.Zip)
		}
	}
}

func TestSearchResultCap(t *testing.T) {
	for _, q := range []string{"sa", "ne", "ch"} {
		if got := SearchByCityPrefix(q); len(got) > maxResults {
			t.Errorf("query %q returned %d results, cap is %d", q, len(got), maxResults)
		}
	}
	for _, q := range []string{"90", "60", "77"} {
		if got := SearchByZipPrefix(q); len(got) > maxResults {
			t.Errorf("zip query %q returned %d results, cap is %d", q, len(got), maxResults)
		}
	}
}

func TestSearchDeterministic(t *testing.T) {
	a := SearchByZipPrefix("90")
	b := SearchByZipPrefix("90")
	if len(a) != len(b) {
		t.Fatal("same query should return same result count")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("result %d differs between identical queries", i)
		}
	}
}
