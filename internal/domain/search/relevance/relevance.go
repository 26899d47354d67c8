// Package relevance buckets search candidates by how directly they matched
// the query. Only the ordering of the tiers is meaningful; hits inside one
// tier are ordered by similarity downstream.
package relevance

import (
	"strings"

	"github.com/partitura-app/partitura/internal/domain"
	"github.com/partitura-app/partitura/internal/domain/search/norm"
)

// Tiers, strictly descending. A candidate that matched only through the
// full-text predicate or an expanded alternative lands in TierBaseline.
const (
	TierExactPrimary       = 20
	TierExactSecondary     = 16
	TierSubstringPrimary   = 12
	TierSubstringSecondary = 8
	TierBaseline           = 1
)

// RankWork ranks a work against a normalized query. Composer is the primary
// field, the work title the secondary one.
func RankWork(w domain.Work, query string) int {
	composer := norm.Normalize(w.Composer)
	title := norm.Normalize(w.Title)

	switch {
	case composer == query:
		return TierExactPrimary
	case title == query:
		return TierExactSecondary
	case strings.Contains(composer, query):
		return TierSubstringPrimary
	case strings.Contains(title, query):
		return TierSubstringSecondary
	}
	return TierBaseline
}

// RankTerm ranks a glossary term against a normalized query. The term name is
// primary, the definition secondary; terms have no exact-secondary tier.
func RankTerm(t domain.Term, query string) int {
	name := norm.Normalize(t.Name)

	switch {
	case name == query:
		return TierExactPrimary
	case strings.Contains(name, query):
		return TierSubstringPrimary
	case strings.Contains(norm.Normalize(t.Definition), query):
		return TierSubstringSecondary
	}
	return TierBaseline
}
