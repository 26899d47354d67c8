// Package norm canonicalizes search input for comparison and matching.
package norm

import (
	"strings"
	"unicode"
)

// Normalize collapses a raw search string into its canonical comparable form:
// lower-case, ё folded to е and й to и, ъ/ь dropped, everything outside the
// Cyrillic/Latin/digit alphabet replaced by a space, whitespace runs collapsed,
// ends trimmed. Idempotent; empty input yields "".
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false

	for _, r := range strings.ToLower(s) {
		switch r {
		case 'ё':
			r = 'е'
		case 'й':
			r = 'и'
		case 'ъ', 'ь':
			continue
		}
		if !allowed(r) || unicode.IsSpace(r) {
			if b.Len() > 0 {
				pendingSpace = true
			}
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.WriteRune(r)
	}

	return b.String()
}

// allowed reports whether r belongs to the search alphabet:
// Cyrillic а-я, Latin a-z, digits, or whitespace.
func allowed(r rune) bool {
	switch {
	case r >= 'а' && r <= 'я':
		return true
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	}
	return unicode.IsSpace(r)
}
