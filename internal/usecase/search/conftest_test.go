package search

import (
	"context"

	"github.com/partitura-app/partitura/internal/domain"
)

// mockWorkFinder records the last call and replays canned candidates.
type mockWorkFinder struct {
	works            []domain.Work
	err              error
	lastAlternatives []string
	lastFullText     string
	calls            int
}

func (m *mockWorkFinder) SearchCandidates(
	_ context.Context, alternatives []string, fullText string,
) ([]domain.Work, error) {
	m.calls++
	m.lastAlternatives = alternatives
	m.lastFullText = fullText
	if m.err != nil {
		return nil, m.err
	}
	return m.works, nil
}

type mockTermFinder struct {
	terms []domain.Term
	err   error
	calls int
}

func (m *mockTermFinder) SearchCandidates(
	_ context.Context, _ []string, _ string,
) ([]domain.Term, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.terms, nil
}

func newTestService(works *mockWorkFinder, terms *mockTermFinder) *Service {
	if works == nil {
		works = &mockWorkFinder{}
	}
	if terms == nil {
		terms = &mockTermFinder{}
	}
	return New(works, terms, Defaults{WorksMinSimilarity: 0.6, TermsMinSimilarity: 0.5})
}
