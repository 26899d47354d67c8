// Package work is the storage adapter for the works catalog.
package work

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/partitura-app/partitura/internal/db"
	"github.com/partitura-app/partitura/internal/domain"
	"github.com/partitura-app/partitura/internal/domain/suggest"
)

const workColumns = "id, composer, work_title, category, subcategory, file_path, file_size, created_at"

// Repo reads works from the catalog store.
type Repo struct {
	store *db.Store
}

// New creates a works repository.
func New(store *db.Store) *Repo {
	return &Repo{store: store}
}

// SearchCandidates returns every work where any alternative is a
// case-insensitive substring of a searched field, or the full-text query
// matches. fullText may be empty.
func (r *Repo) SearchCandidates(
	ctx context.Context, alternatives []string, fullText string,
) ([]domain.Work, error) {
	where, args := db.NewSearchFilter("works_fts", "composer", "work_title", "category", "subcategory").
		Alternatives(alternatives...).
		FullText(fullText).
		Build()

	query := "SELECT " + workColumns + " FROM works WHERE " + where +
		" ORDER BY composer ASC, work_title ASC"

	var rows []workRow
	if err := r.store.Select(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("search work candidates: %w", err)
	}
	return rowsToDomain(rows), nil
}

// List returns a page of works matching the filter plus the unpaged total.
func (r *Repo) List(ctx context.Context, f domain.WorkFilter) ([]domain.Work, int, error) {
	var conds []string
	var args []any

	if f.Composer != "" {
		conds = append(conds, "fold(composer) LIKE ?")
		args = append(args, "%"+strings.ToLower(f.Composer)+"%")
	}
	if f.Title != "" {
		conds = append(conds, "fold(work_title) LIKE ?")
		args = append(args, "%"+strings.ToLower(f.Title)+"%")
	}
	if f.Category != "" {
		conds = append(conds, "fold(category) = ?")
		args = append(args, strings.ToLower(f.Category))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.store.Get(ctx, &total, "SELECT COUNT(*) FROM works"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count works: %w", err)
	}

	query := "SELECT " + workColumns + " FROM works" + where +
		" ORDER BY composer ASC, work_title ASC LIMIT ? OFFSET ?"
	args = append(args, f.Limit, f.Offset)

	var rows []workRow
	if err := r.store.Select(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list works: %w", err)
	}
	return rowsToDomain(rows), total, nil
}

// Get returns one work by id.
func (r *Repo) Get(ctx context.Context, id int64) (domain.Work, error) {
	var row workRow
	err := r.store.Get(ctx, &row, "SELECT "+workColumns+" FROM works WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Work{}, domain.ErrWorkNotFound
	}
	if err != nil {
		return domain.Work{}, fmt.Errorf("get work %d: %w", id, err)
	}
	return row.toDomain(), nil
}

// Categories returns distinct categories with their work counts.
func (r *Repo) Categories(ctx context.Context) ([]domain.Category, error) {
	var rows []countRow
	err := r.store.Select(ctx, &rows,
		`SELECT category AS value, COUNT(*) AS count
		 FROM works WHERE category != ''
		 GROUP BY category ORDER BY count DESC, category ASC`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	cats := make([]domain.Category, len(rows))
	for i, row := range rows {
		cats[i] = domain.Category{Name: row.Value, Count: row.Count}
	}
	return cats, nil
}

// DistinctComposers returns composer suggestions containing the query.
func (r *Repo) DistinctComposers(ctx context.Context, query string, limit int) ([]suggest.Suggestion, error) {
	return r.distinct(ctx, "composer", "composer", query, limit)
}

// DistinctTitles returns work-title suggestions containing the query.
func (r *Repo) DistinctTitles(ctx context.Context, query string, limit int) ([]suggest.Suggestion, error) {
	return r.distinct(ctx, "work_title", "work", query, limit)
}

// DistinctCategories returns category suggestions containing the query.
func (r *Repo) DistinctCategories(ctx context.Context, query string, limit int) ([]suggest.Suggestion, error) {
	return r.distinct(ctx, "category", "category", query, limit)
}

func (r *Repo) distinct(
	ctx context.Context, column, kind, query string, limit int,
) ([]suggest.Suggestion, error) {
	sqlQuery := fmt.Sprintf(
		`SELECT %s AS value, COUNT(*) AS count
		 FROM works WHERE fold(%s) LIKE ? AND %s != ''
		 GROUP BY %s ORDER BY count DESC, %s ASC LIMIT ?`,
		column, column, column, column, column)

	var rows []countRow
	if err := r.store.Select(ctx, &rows, sqlQuery, "%"+strings.ToLower(query)+"%", limit); err != nil {
		return nil, fmt.Errorf("distinct %s: %w", column, err)
	}

	items := make([]suggest.Suggestion, len(rows))
	for i, row := range rows {
		items[i] = suggest.Suggestion{Value: row.Value, Type: kind, Count: row.Count}
	}
	return items, nil
}

// Insert adds a work to the catalog. Used by import tooling and tests.
func (r *Repo) Insert(ctx context.Context, w domain.Work) error {
	err := r.store.Exec(ctx,
		`INSERT INTO works (composer, work_title, category, subcategory, file_path, file_size)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		w.Composer, w.Title, w.Category, nullable(w.Subcategory), w.FilePath, w.FileSize)
	if err != nil {
		return fmt.Errorf("insert work: %w", err)
	}
	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
