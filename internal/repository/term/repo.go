// Package term is the storage adapter for the glossary.
package term

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/partitura-app/partitura/internal/db"
	"github.com/partitura-app/partitura/internal/domain"
)

const termColumns = "id, term, definition, created_at"

// Repo reads glossary terms from the catalog store.
type Repo struct {
	store *db.Store
}

// New creates a terms repository.
func New(store *db.Store) *Repo {
	return &Repo{store: store}
}

// SearchCandidates returns every term where any alternative is a
// case-insensitive substring of the name or definition, or the full-text
// query matches. fullText may be empty.
func (r *Repo) SearchCandidates(
	ctx context.Context, alternatives []string, fullText string,
) ([]domain.Term, error) {
	where, args := db.NewSearchFilter("terms_fts", "term", "definition").
		Alternatives(alternatives...).
		FullText(fullText).
		Build()

	query := "SELECT " + termColumns + " FROM terms WHERE " + where + " ORDER BY term ASC"

	var rows []termRow
	if err := r.store.Select(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("search term candidates: %w", err)
	}
	return rowsToDomain(rows), nil
}

// List returns a page of terms plus the unpaged total. A non-empty search
// narrows the listing via the full-text index with a substring fallback for
// short inputs.
func (r *Repo) List(ctx context.Context, search string, limit, offset int) ([]domain.Term, int, error) {
	where := ""
	var args []any

	if search != "" {
		where = " WHERE (id IN (SELECT rowid FROM terms_fts WHERE terms_fts MATCH ?)" +
			" OR fold(term) LIKE ? OR fold(definition) LIKE ?)"
		pattern := "%" + strings.ToLower(search) + "%"
		args = append(args, quotePhrase(search), pattern, pattern)
	}

	var total int
	if err := r.store.Get(ctx, &total, "SELECT COUNT(*) FROM terms"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count terms: %w", err)
	}

	query := "SELECT " + termColumns + " FROM terms" + where + " ORDER BY term ASC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	var rows []termRow
	if err := r.store.Select(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list terms: %w", err)
	}
	return rowsToDomain(rows), total, nil
}

// Get returns one term by id.
func (r *Repo) Get(ctx context.Context, id int64) (domain.Term, error) {
	var row termRow
	err := r.store.Get(ctx, &row, "SELECT "+termColumns+" FROM terms WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Term{}, domain.ErrTermNotFound
	}
	if err != nil {
		return domain.Term{}, fmt.Errorf("get term %d: %w", id, err)
	}
	return row.toDomain(), nil
}

// Insert adds a glossary term. Used by import tooling and tests.
func (r *Repo) Insert(ctx context.Context, t domain.Term) error {
	err := r.store.Exec(ctx,
		"INSERT INTO terms (term, definition) VALUES (?, ?)", t.Name, t.Definition)
	if err != nil {
		return fmt.Errorf("insert term: %w", err)
	}
	return nil
}

// quotePhrase renders user input as a single FTS5 phrase so raw punctuation
// cannot break the match expression.
func quotePhrase(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
