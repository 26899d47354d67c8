// Package result holds scored search hits and per-call outcomes.
package result

import "github.com/partitura-app/partitura/internal/domain"

// MatchType names the field whose normalized form produced the best
// similarity for a hit.
type MatchType string

const (
	MatchComposer   MatchType = "composer"
	MatchTitle      MatchType = "title"
	MatchCategory   MatchType = "category"
	MatchTerm       MatchType = "term"
	MatchDefinition MatchType = "definition"
)

// WorkHit is one scored work candidate.
type WorkHit struct {
	Work       domain.Work
	Similarity float64
	Relevance  int
	Match      MatchType
}

// TermHit is one scored glossary candidate.
type TermHit struct {
	Term       domain.Term
	Similarity float64
	Relevance  int
	Match      MatchType
}

// WorksOutcome is the full response of one works search call. Total counts
// candidates that survived the similarity filter, before paging.
type WorksOutcome struct {
	Results       []WorkHit
	Total         int
	Query         string
	Alternatives  []string
	MinSimilarity float64
}

// TermsOutcome is the full response of one terms search call.
type TermsOutcome struct {
	Results       []TermHit
	Total         int
	Query         string
	Alternatives  []string
	MinSimilarity float64
}
