// Package catalog serves plain (non-fuzzy) listing and lookup of works and
// glossary terms.
package catalog

import (
	"context"
	"fmt"

	"github.com/partitura-app/partitura/internal/domain"
)

// Paging bounds for catalog listings.
const (
	defaultLimit = 20
	maxLimit     = 100
)

// Service wraps the catalog stores with paging hygiene. Listing filters pass
// straight through to the store.
type Service struct {
	works WorkStore
	terms TermStore
}

// New creates a catalog service.
func New(works WorkStore, terms TermStore) *Service {
	return &Service{works: works, terms: terms}
}

// ListWorks returns one page of works plus the unpaged total.
func (s *Service) ListWorks(ctx context.Context, f domain.WorkFilter) ([]domain.Work, int, error) {
	f.Limit, f.Offset = clampPage(f.Limit, f.Offset)

	works, total, err := s.works.List(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("list works: %w", err)
	}
	return works, total, nil
}

// GetWork returns one work by id. Missing ids surface domain.ErrWorkNotFound.
func (s *Service) GetWork(ctx context.Context, id int64) (domain.Work, error) {
	return s.works.Get(ctx, id)
}

// Categories returns every distinct category with its work count.
func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	cats, err := s.works.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

// ListTerms returns one page of glossary terms plus the unpaged total.
// search is an optional case-insensitive filter over name and definition.
func (s *Service) ListTerms(ctx context.Context, search string, limit, offset int) ([]domain.Term, int, error) {
	limit, offset = clampPage(limit, offset)

	terms, total, err := s.terms.List(ctx, search, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list terms: %w", err)
	}
	return terms, total, nil
}

// GetTerm returns one term by id. Missing ids surface domain.ErrTermNotFound.
func (s *Service) GetTerm(ctx context.Context, id int64) (domain.Term, error) {
	return s.terms.Get(ctx, id)
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
