package catalog

import (
	"context"

	"github.com/partitura-app/partitura/internal/domain"
)

// WorkStore defines the storage contract for catalog works.
type WorkStore interface {
	List(ctx context.Context, f domain.WorkFilter) ([]domain.Work, int, error)
	Get(ctx context.Context, id int64) (domain.Work, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}

// TermStore defines the storage contract for glossary terms.
type TermStore interface {
	List(ctx context.Context, search string, limit, offset int) ([]domain.Term, int, error)
	Get(ctx context.Context, id int64) (domain.Term, error)
}
