// Package request carries caller-supplied smart-search options.
package request

// Paging bounds.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Options controls paging and fuzzy filtering for one search call.
// A nil MinSimilarity selects the collection default.
type Options struct {
	Limit         int
	Offset        int
	MinSimilarity *float64
}

// Resolve clamps paging values and picks the effective similarity threshold.
// The threshold is clamped into [0,1].
func (o Options) Resolve(defaultMinSimilarity float64) (limit, offset int, minSimilarity float64) {
	limit = o.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	offset = o.Offset
	if offset < 0 {
		offset = 0
	}

	minSimilarity = defaultMinSimilarity
	if o.MinSimilarity != nil {
		minSimilarity = *o.MinSimilarity
	}
	if minSimilarity < 0 {
		minSimilarity = 0
	}
	if minSimilarity > 1 {
		minSimilarity = 1
	}

	return limit, offset, minSimilarity
}
