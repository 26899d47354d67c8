package suggest

import (
	"context"

	domsug "github.com/partitura-app/partitura/internal/domain/suggest"
)

// Source provides distinct field values with occurrence counts for
// autocomplete. Implemented by the work repository.
type Source interface {
	DistinctComposers(ctx context.Context, query string, limit int) ([]domsug.Suggestion, error)
	DistinctTitles(ctx context.Context, query string, limit int) ([]domsug.Suggestion, error)
	DistinctCategories(ctx context.Context, query string, limit int) ([]domsug.Suggestion, error)
}

// Cache is an optional read-through cache in front of Source. A Get miss
// returns false; Set failures are the cache's problem, not the caller's.
type Cache interface {
	Get(ctx context.Context, query, kind string, limit int) ([]domsug.Suggestion, bool)
	Set(ctx context.Context, query, kind string, limit int, items []domsug.Suggestion)
}
