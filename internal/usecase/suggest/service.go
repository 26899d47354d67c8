// Package suggest produces ranked autocomplete entries for composers, work
// titles, and categories. Non-critical: store failures degrade to an empty
// list instead of erroring.
package suggest

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/partitura-app/partitura/internal/domain/search/norm"
	domsug "github.com/partitura-app/partitura/internal/domain/suggest"
	"github.com/partitura-app/partitura/internal/logger"
)

const (
	minQueryRunes = 2
	maxLimit      = 50
)

// Service merges per-kind distinct-value lookups into one ranked list.
type Service struct {
	source       Source
	cache        Cache // nil disables caching
	defaultLimit int
}

// New creates a suggestion service. cache may be nil.
func New(source Source, cache Cache, defaultLimit int) *Service {
	if defaultLimit <= 0 {
		defaultLimit = 10
	}
	return &Service{source: source, cache: cache, defaultLimit: defaultLimit}
}

// Suggest returns at most limit autocomplete entries for the query. Entries
// whose normalized value starts with the normalized query come first, then
// higher occurrence counts. Store failures are logged and skipped.
func (s *Service) Suggest(
	ctx context.Context, query string, kind domsug.Kind, limit int,
) []domsug.Suggestion {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if utf8.RuneCountInString(strings.TrimSpace(query)) < minQueryRunes {
		return []domsug.Suggestion{}
	}

	normalized := norm.Normalize(query)

	if s.cache != nil {
		if items, ok := s.cache.Get(ctx, normalized, string(kind), limit); ok {
			return items
		}
	}

	log := logger.FromContext(ctx)
	// Per-kind caps follow the original tuning: half the limit for composers
	// and titles, a third for categories.
	halfCap := (limit + 1) / 2
	thirdCap := (limit + 2) / 3

	var merged []domsug.Suggestion
	if kind == domsug.KindAll || kind == domsug.KindComposers {
		merged = collect(log, merged, "composers", func() ([]domsug.Suggestion, error) {
			return s.source.DistinctComposers(ctx, normalized, halfCap)
		})
	}
	if kind == domsug.KindAll || kind == domsug.KindWorks {
		merged = collect(log, merged, "works", func() ([]domsug.Suggestion, error) {
			return s.source.DistinctTitles(ctx, normalized, halfCap)
		})
	}
	if kind == domsug.KindAll || kind == domsug.KindCategories {
		merged = collect(log, merged, "categories", func() ([]domsug.Suggestion, error) {
			return s.source.DistinctCategories(ctx, normalized, thirdCap)
		})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		iPrefix := strings.HasPrefix(norm.Normalize(merged[i].Value), normalized)
		jPrefix := strings.HasPrefix(norm.Normalize(merged[j].Value), normalized)
		if iPrefix != jPrefix {
			return iPrefix
		}
		return merged[i].Count > merged[j].Count
	})

	if len(merged) > limit {
		merged = merged[:limit]
	}
	if merged == nil {
		merged = []domsug.Suggestion{}
	}

	if s.cache != nil {
		s.cache.Set(ctx, normalized, string(kind), limit, merged)
	}
	return merged
}

func collect(
	log *zap.Logger,
	merged []domsug.Suggestion, source string,
	fetch func() ([]domsug.Suggestion, error),
) []domsug.Suggestion {
	items, err := fetch()
	if err != nil {
		log.Warn("suggestion source failed", zap.String("source", source), zap.Error(err))
		return merged
	}
	return append(merged, items...)
}
