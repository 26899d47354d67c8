// Package search implements the fuzzy catalog search pipeline: normalize the
// query, expand it into alternate spellings, pull candidates from the store,
// then score, filter, rank, and page them.
package search

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/partitura-app/partitura/internal/db"
	"github.com/partitura-app/partitura/internal/domain"
	"github.com/partitura-app/partitura/internal/domain/search/alt"
	"github.com/partitura-app/partitura/internal/domain/search/norm"
	"github.com/partitura-app/partitura/internal/domain/search/relevance"
	"github.com/partitura-app/partitura/internal/domain/search/request"
	"github.com/partitura-app/partitura/internal/domain/search/result"
	"github.com/partitura-app/partitura/internal/domain/search/similarity"
	"github.com/partitura-app/partitura/internal/logger"
	"github.com/partitura-app/partitura/internal/metrics"
)

// minQueryRunes is the shortest query worth searching; shorter input returns
// an empty outcome without touching the store.
const minQueryRunes = 2

// Defaults carries the per-collection minimum similarity thresholds.
type Defaults struct {
	WorksMinSimilarity float64
	TermsMinSimilarity float64
}

// Service is the smart-search engine over the works and terms collections.
// Stateless; every call derives its values fresh.
type Service struct {
	works    WorkFinder
	terms    TermFinder
	defaults Defaults
}

// New creates a search service.
func New(works WorkFinder, terms TermFinder, defaults Defaults) *Service {
	return &Service{works: works, terms: terms, defaults: defaults}
}

// SearchWorks runs the fuzzy pipeline over the works collection.
func (s *Service) SearchWorks(
	ctx context.Context, query string, opts request.Options,
) (result.WorksOutcome, error) {
	limit, offset, minSim := opts.Resolve(s.defaults.WorksMinSimilarity)

	if tooShort(query) {
		return result.WorksOutcome{Results: []result.WorkHit{}, MinSimilarity: minSim}, nil
	}

	start := time.Now()
	normalized := norm.Normalize(query)
	alternatives := alt.Generate(normalized)

	candidates, err := s.works.SearchCandidates(ctx, alternatives, db.FullTextQuery(alternatives))
	if err != nil {
		return result.WorksOutcome{}, fmt.Errorf("query works: %w", err)
	}

	hits := make([]result.WorkHit, 0, len(candidates))
	for _, w := range candidates {
		hit := scoreWork(w, normalized, alternatives)
		if hit.Similarity >= minSim {
			hits = append(hits, hit)
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Relevance != hits[j].Relevance {
			return hits[i].Relevance > hits[j].Relevance
		}
		if hits[i].Similarity != hits[j].Similarity {
			return hits[i].Similarity > hits[j].Similarity
		}
		if hits[i].Work.Composer != hits[j].Work.Composer {
			return hits[i].Work.Composer < hits[j].Work.Composer
		}
		return hits[i].Work.Title < hits[j].Work.Title
	})

	total := len(hits)
	page := slicePage(hits, offset, limit)

	metrics.SearchDuration.WithLabelValues("works").Observe(time.Since(start).Seconds())
	metrics.SearchResultsTotal.WithLabelValues("works").Add(float64(total))
	logger.FromContext(ctx).Info("smart search executed",
		zap.String("collection", "works"),
		zap.String("query", normalized),
		zap.Int("alternatives", len(alternatives)),
		zap.Int("candidates", len(candidates)),
		zap.Int("total", total),
	)

	return result.WorksOutcome{
		Results:       page,
		Total:         total,
		Query:         normalized,
		Alternatives:  alternatives,
		MinSimilarity: minSim,
	}, nil
}

// SearchTerms runs the fuzzy pipeline over the glossary.
func (s *Service) SearchTerms(
	ctx context.Context, query string, opts request.Options,
) (result.TermsOutcome, error) {
	limit, offset, minSim := opts.Resolve(s.defaults.TermsMinSimilarity)

	if tooShort(query) {
		return result.TermsOutcome{Results: []result.TermHit{}, MinSimilarity: minSim}, nil
	}

	start := time.Now()
	normalized := norm.Normalize(query)
	alternatives := alt.Generate(normalized)

	candidates, err := s.terms.SearchCandidates(ctx, alternatives, db.FullTextQuery(alternatives))
	if err != nil {
		return result.TermsOutcome{}, fmt.Errorf("query terms: %w", err)
	}

	hits := make([]result.TermHit, 0, len(candidates))
	for _, t := range candidates {
		hit := scoreTerm(t, normalized, alternatives)
		if hit.Similarity >= minSim {
			hits = append(hits, hit)
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Relevance != hits[j].Relevance {
			return hits[i].Relevance > hits[j].Relevance
		}
		if hits[i].Similarity != hits[j].Similarity {
			return hits[i].Similarity > hits[j].Similarity
		}
		return hits[i].Term.Name < hits[j].Term.Name
	})

	total := len(hits)
	page := slicePage(hits, offset, limit)

	metrics.SearchDuration.WithLabelValues("terms").Observe(time.Since(start).Seconds())
	metrics.SearchResultsTotal.WithLabelValues("terms").Add(float64(total))
	logger.FromContext(ctx).Info("smart search executed",
		zap.String("collection", "terms"),
		zap.String("query", normalized),
		zap.Int("alternatives", len(alternatives)),
		zap.Int("candidates", len(candidates)),
		zap.Int("total", total),
	)

	return result.TermsOutcome{
		Results:       page,
		Total:         total,
		Query:         normalized,
		Alternatives:  alternatives,
		MinSimilarity: minSim,
	}, nil
}

// scoreWork computes the candidate's similarity over its searched fields and
// its relevance tier. On equal similarity the higher-priority field wins the
// match type.
func scoreWork(w domain.Work, query string, alternatives []string) result.WorkHit {
	fields := []struct {
		match result.MatchType
		value string
	}{
		{result.MatchComposer, w.Composer},
		{result.MatchTitle, w.Title},
		{result.MatchCategory, w.Category},
	}

	best, match := -1.0, result.MatchComposer
	for _, f := range fields {
		if score := fieldSimilarity(alternatives, f.value); score > best {
			best, match = score, f.match
		}
	}

	return result.WorkHit{
		Work:       w,
		Similarity: best,
		Relevance:  relevance.RankWork(w, query),
		Match:      match,
	}
}

func scoreTerm(t domain.Term, query string, alternatives []string) result.TermHit {
	best, match := fieldSimilarity(alternatives, t.Name), result.MatchTerm
	if score := fieldSimilarity(alternatives, t.Definition); score > best {
		best, match = score, result.MatchDefinition
	}

	return result.TermHit{
		Term:       t,
		Similarity: best,
		Relevance:  relevance.RankTerm(t, query),
		Match:      match,
	}
}

// fieldSimilarity scores a field against every query alternative. Each
// alternative is compared to the whole normalized field and to each of its
// words, so a short query still scores 1.0 against one word of a long field
// ("бах" against "иоганн себастьян бах") and a transliterated alternative
// scores against Latin spellings ("bach" against composer "Bach").
func fieldSimilarity(alternatives []string, field string) float64 {
	normalized := norm.Normalize(field)
	segments := append(strings.Fields(normalized), normalized)

	best := 0.0
	for _, alt := range alternatives {
		for _, seg := range segments {
			if score := similarity.Score(alt, seg); score > best {
				best = score
			}
		}
	}
	return best
}

func tooShort(query string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(query)) < minQueryRunes
}

// slicePage applies offset/limit after scoring so totals reflect the whole
// filtered candidate set.
func slicePage[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
