// Package similarity scores string closeness by normalized edit distance.
package similarity

import (
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// Score returns the normalized Levenshtein similarity of a and b in [0,1]:
// (maxLen - distance) / maxLen over rune counts. Two empty strings score 1.0.
// Symmetric in its arguments.
func Score(a, b string) float64 {
	maxLen := utf8.RuneCountInString(a)
	if lb := utf8.RuneCountInString(b); lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1.0
	}

	dist := edlib.LevenshteinDistance(a, b)
	return float64(maxLen-dist) / float64(maxLen)
}
