package search

import (
	"context"

	"github.com/partitura-app/partitura/internal/domain"
)

// WorkFinder retrieves smart-search candidate works: every record where any
// alternative is a case-insensitive substring of a searched field, or the
// full-text expression matches.
type WorkFinder interface {
	SearchCandidates(ctx context.Context, alternatives []string, fullText string) ([]domain.Work, error)
}

// TermFinder retrieves smart-search candidate glossary terms.
type TermFinder interface {
	SearchCandidates(ctx context.Context, alternatives []string, fullText string) ([]domain.Term, error)
}
