// Package strings provides small string helpers shared across packages
package strings

import (
	std "strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MustString returns s if it has non whitespace content otherwise panics
// name is used in the panic message so you can tell what was missing
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes and asserts a root path like /leaderboard or /stats
// ensures a single leading slash and no trailing slash
// panics if the input is empty after trimming
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}

// Canonical returns the option that equals in ignoring case and surrounding space
// ok is false when nothing matches
func Canonical(in string, options ...string) (string, bool) {
	in = std.TrimSpace(in)
	if in == "" {
		return "", false
	}
	for _, o := range options {
		if std.EqualFold(in, o) {
			return o, true
		}
	}
	return "", false
}

// Key lowercases and trims s for use as a lookup key
func Key(s string) string { return std.ToLower(std.TrimSpace(s)) }

// Title renders s in title case for display, "solar" -> "Solar"
// cases.Caser is not safe for concurrent use so one is built per call
func Title(s string) string {
	return cases.Title(language.Und).String(std.TrimSpace(s))
}

// Or returns s unless it is blank, in which case def
func Or(s, def string) string {
	if std.TrimSpace(s) == "" {
		return def
	}
	return s
}
