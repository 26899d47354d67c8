package suggest

import (
	"context"

	domsug "github.com/partitura-app/partitura/internal/domain/suggest"
)

type mockSource struct {
	composers  []domsug.Suggestion
	titles     []domsug.Suggestion
	categories []domsug.Suggestion

	composersErr error

	composerCalls int
	titleCalls    int
	categoryCalls int
	lastLimit     int
	lastQuery     string
}

func (m *mockSource) DistinctComposers(
	_ context.Context, query string, limit int,
) ([]domsug.Suggestion, error) {
	m.composerCalls++
	m.lastQuery = query
	m.lastLimit = limit
	if m.composersErr != nil {
		return nil, m.composersErr
	}
	return m.composers, nil
}

func (m *mockSource) DistinctTitles(
	_ context.Context, _ string, _ int,
) ([]domsug.Suggestion, error) {
	m.titleCalls++
	return m.titles, nil
}

func (m *mockSource) DistinctCategories(
	_ context.Context, _ string, _ int,
) ([]domsug.Suggestion, error) {
	m.categoryCalls++
	return m.categories, nil
}

// mockCache replays one canned entry and records what was stored.
type mockCache struct {
	items []domsug.Suggestion
	hit   bool

	getCalls int
	setCalls int
	setItems []domsug.Suggestion
	setKind  string
	setLimit int
}

func (m *mockCache) Get(
	_ context.Context, _, _ string, _ int,
) ([]domsug.Suggestion, bool) {
	m.getCalls++
	return m.items, m.hit
}

func (m *mockCache) Set(
	_ context.Context, _, kind string, limit int, items []domsug.Suggestion,
) {
	m.setCalls++
	m.setKind = kind
	m.setLimit = limit
	m.setItems = items
}
