package strings

import (
	"testing"

	kit "wattpool/internal/platform/testkit"
)

func TestMustString(t *testing.T) {
	t.Parallel()

	if got := MustString("x", "name"); got != "x" {
		t.Fatalf("MustString = %q", got)
	}
	kit.MustPanic(t, func() { MustString("  ", "name") })
}

func TestMustPrefix(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"leaderboard": "/leaderboard",
		"/stats/":     "/stats",
		"  /meta  ":   "/meta",
		"//entries//": "/entries",
	}
	for in, want := range cases {
		if got := MustPrefix(in); got != want {
			t.Fatalf("MustPrefix(%q) = %q, want %q", in, got, want)
		}
	}
	kit.MustPanic(t, func() { MustPrefix(" / ") })
}

func TestCanonical(t *testing.T) {
	t.Parallel()

	opts := []string{"Heater", "Fridge", "TV"}
	cases := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"heater", "Heater", true},
		{"  FRIDGE ", "Fridge", true},
		{"tv", "TV", true},
		{"toaster", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := Canonical(c.in, opts...)
		if got != c.want || ok != c.wantOK {
			t.Fatalf("Canonical(%q) = %q,%v want %q,%v", c.in, got, ok, c.want, c.wantOK)
		}
	}
}

func TestKeyTitleOr(t *testing.T) {
	t.Parallel()

	if got := Key("  Solar "); got != "solar" {
		t.Fatalf("Key = %q", got)
	}
	if got := Title("solar"); got != "Solar" {
		t.Fatalf("Title = %q", got)
	}
	if got := Title("natural gas"); got != "Natural Gas" {
		t.Fatalf("Title = %q", got)
	}
	if got := Or(" ", "Unknown"); got != "Unknown" {
		t.Fatalf("Or blank = %q", got)
	}
	if got := Or("EU", "Unknown"); got != "EU" {
		t.Fatalf("Or = %q", got)
	}
}
