package domain

import (
	"strings"
	"unicode"
)

// Normalize converts text into its canonical comparison form.
// The result is lower-case with all whitespace, periods and hyphens removed,
// so "Wirtschafts-Informatik" and " WIRTSCHAFTSINFORMATIK " compare equal.
//
// Every matcher must normalize both the query and the candidate.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsSpace(r) || r == '.' || r == '-' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
