package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds an identifier to lower case and drops separators (_, -, spaces),
// so some_key, some-key, someKey and SomeKey all become "somekey".
func NormalizeIdent(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// SameIdent reports whether two identifiers normalize to the same form.
func SameIdent(a, b string) bool {
	return NormalizeIdent(a) == NormalizeIdent(b)
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
