package db

import (
	"strings"
	"unicode/utf8"
)

// minFullTextRunes is the shortest alternative worth sending to the FTS index;
// shorter fragments match too broadly to rank.
const minFullTextRunes = 3

// SearchFilter is a fluent builder for the smart-search candidate WHERE
// clause: one case-insensitive substring group per alternative across the
// searched columns, OR-combined with an optional FTS5 match over the same
// columns.
type SearchFilter struct {
	ftsTable     string
	columns      []string
	alternatives []string
	fullText     string
}

// NewSearchFilter starts building a filter over the given FTS shadow table
// and searched columns.
func NewSearchFilter(ftsTable string, columns ...string) *SearchFilter {
	return &SearchFilter{ftsTable: ftsTable, columns: columns}
}

// Alternatives adds substring-match alternatives.
func (f *SearchFilter) Alternatives(alts ...string) *SearchFilter {
	f.alternatives = append(f.alternatives, alts...)
	return f
}

// FullText sets the FTS5 match expression. Empty disables the full-text arm.
func (f *SearchFilter) FullText(query string) *SearchFilter {
	f.fullText = query
	return f
}

// Build renders the WHERE clause body and its positional arguments.
// Renders to "1=0" when the filter has nothing to match on.
func (f *SearchFilter) Build() (string, []any) {
	var groups []string
	var args []any

	for _, alt := range f.alternatives {
		conds := make([]string, len(f.columns))
		for i, col := range f.columns {
			conds[i] = "fold(COALESCE(" + col + ", '')) LIKE ?"
			args = append(args, "%"+strings.ToLower(alt)+"%")
		}
		groups = append(groups, "("+strings.Join(conds, " OR ")+")")
	}

	if f.fullText != "" {
		groups = append(groups,
			"id IN (SELECT rowid FROM "+f.ftsTable+" WHERE "+f.ftsTable+" MATCH ?)")
		args = append(args, f.fullText)
	}

	if len(groups) == 0 {
		return "1=0", nil
	}
	return "(" + strings.Join(groups, " OR ") + ")", args
}

// FullTextQuery renders alternatives into an FTS5 boolean expression:
// quoted phrases OR-joined. Alternatives shorter than three runes are
// skipped; returns "" when nothing qualifies.
func FullTextQuery(alternatives []string) string {
	var phrases []string
	for _, alt := range alternatives {
		if utf8.RuneCountInString(alt) < minFullTextRunes {
			continue
		}
		phrases = append(phrases, `"`+strings.ReplaceAll(alt, `"`, `""`)+`"`)
	}
	return strings.Join(phrases, " OR ")
}
