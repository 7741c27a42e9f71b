package validate

import "testing"

func TestEmail(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"a@b.com", true},
		{"first.last@example.co.uk", true},
		{"", false},
		{"plain", false},
		{"no@tld", false},
		{"two@@example.com", false},
		{"sp ace@example.com", false},
		{"dotty..name@example.com", false},
		{"name@exa..mple.com", false},
	}
	for _, tc := range cases {
		if got := Email(tc.in); got != tc.want {
			t.Errorf("Email(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestEIN(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"12-3456789", true},
		{"123456789", true},
		{"12-345678", false},
		{"1-23456789", false},
		{"ab-cdefghi", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := EIN(tc.in); got != tc.want {
			t.Errorf("EIN(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestAuthority(t *testing.T) {
	cases := []struct {
		in   string
		want AuthorityStatus
	}{
		{"MC123456", AuthorityOK},
		{"mc 123-4567", AuthorityOK},
		{"1234567", AuthorityOK},
		{"12345", AuthorityOK},   // bare 5-digit DOT
		{"12345678", AuthorityOK}, // 8-digit DOT
		{"1234", AuthorityTooShort},
		{"MC1", AuthorityTooShort},
		{"", AuthorityTooShort},
		{"123456789", AuthorityBadFormat}, // 9 digits fits neither
		{"XX123456", AuthorityBadFormat},
	}
	for _, tc := range cases {
		if got := Authority(tc.in); got != tc.want {
			t.Errorf("Authority(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestPhone(t *testing.T) {
	if !Phone("(555) 123-4567") {
		t.Error("formatted 10-digit phone should be valid")
	}
	if Phone("555-1234") {
		t.Error("7-digit phone should be invalid")
	}
	if Phone("(555) 123-45678") {
		t.Error("11-digit phone should be invalid")
	}
}

func TestZip(t *testing.T) {
	if !Zip("90001") {
		t.Error("90001 should be a valid zip")
	}
	for _, bad := range []string{"9000", "900011", "9000a", "", "90 01"} {
		if Zip(bad) {
			t.Errorf("Zip(%q) should be invalid", bad)
		}
	}
}
