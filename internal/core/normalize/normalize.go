// Package normalize cleans free text from uploads before it is stored or matched
//
// Text pipeline order
// 1 drop invalid UTF-8 and control characters
// 2 Unicode NFKC normalization
// 3 strip format characters (ZWJ, ZWNJ, BOM)
// 4 width fold fullwidth forms to ASCII
// 5 collapse whitespace runs to one space and trim
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// transformers keep state, so chains are pooled rather than shared
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold,
		)
	},
}

// Text returns s cleaned for storage and display, case is kept
func Text(s string) string {
	if s == "" {
		return ""
	}
	s = strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, strings.ToValidUTF8(s, ""))

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(out), " ")
}

// Key folds s for case insensitive matching, "ＨＥＡＴＥＲ " -> "heater"
func Key(s string) string {
	return cases.Fold().String(Text(s))
}

// Match returns the option whose Key equals the Key of in
func Match(in string, options ...string) (string, bool) {
	k := Key(in)
	if k == "" {
		return "", false
	}
	for _, o := range options {
		if Key(o) == k {
			return o, true
		}
	}
	return "", false
}
