package work

import (
	"database/sql"
	"time"

	"github.com/partitura-app/partitura/internal/domain"
)

// workRow is the sqlx scan target for the works table.
type workRow struct {
	ID          int64          `db:"id"`
	Composer    string         `db:"composer"`
	Title       string         `db:"work_title"`
	Category    string         `db:"category"`
	Subcategory sql.NullString `db:"subcategory"`
	FilePath    string         `db:"file_path"`
	FileSize    int64          `db:"file_size"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (r workRow) toDomain() domain.Work {
	return domain.Work{
		ID:          r.ID,
		Composer:    r.Composer,
		Title:       r.Title,
		Category:    r.Category,
		Subcategory: r.Subcategory.String,
		FilePath:    r.FilePath,
		FileSize:    r.FileSize,
		CreatedAt:   r.CreatedAt,
	}
}

func rowsToDomain(rows []workRow) []domain.Work {
	works := make([]domain.Work, len(rows))
	for i, r := range rows {
		works[i] = r.toDomain()
	}
	return works
}

// countRow is the scan target for value/count aggregations.
type countRow struct {
	Value string `db:"value"`
	Count int    `db:"count"`
}
