package assistant

import "testing"

func TestRespondRoutes(t *testing.T) {
	cases := []struct {
		message string
		route   string
	}{
		{"I need a QUOTE for a lane", "/quote"},
		{"what's your rate to Dallas", "/quote"},
		{"how do I join as a carrier?", "/carrier"},
		{"get in touch", "/contact"},
		{"help", "/contact"},
		{"take me home", "/"},
	}
	for _, tc := range cases {
		got := Respond(tc.message, 0)
		if got.Route != tc.route {
			t.Errorf("Respond(%q) route = %q, want %q", tc.message, got.Route, tc.route)
		}
		if !got.ActionPerformed {
			t.Errorf("Respond(%q) should perform an action", tc.message)
		}
	}
}

func TestRespondFallback(t *testing.T) {
	got := Respond("tell me about the weather", 0)
	if got.ActionPerformed || got.Route != "" {
		t.Fatalf("unmatched message should not navigate: %+v", got)
	}
	if got.Response == "" {
		t.Fatal("fallback should still answer")
	}
}

func TestRespondActionLimit(t *testing.T) {
	got := Respond("quote please", MaxActions)
	if got.ActionPerformed || got.Route != "" {
		t.Fatalf("limit reached must stop navigating: %+v", got)
	}
	if got.Response != limitResponse {
		t.Fatalf("expected limit response, got %q", got.Response)
	}
}
