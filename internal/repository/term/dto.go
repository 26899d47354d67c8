package term

import (
	"time"

	"github.com/partitura-app/partitura/internal/domain"
)

// termRow is the sqlx scan target for the terms table.
type termRow struct {
	ID         int64     `db:"id"`
	Name       string    `db:"term"`
	Definition string    `db:"definition"`
	CreatedAt  time.Time `db:"created_at"`
}

func (r termRow) toDomain() domain.Term {
	return domain.Term{
		ID:         r.ID,
		Name:       r.Name,
		Definition: r.Definition,
		CreatedAt:  r.CreatedAt,
	}
}

func rowsToDomain(rows []termRow) []domain.Term {
	terms := make([]domain.Term, len(rows))
	for i, r := range rows {
		terms[i] = r.toDomain()
	}
	return terms
}
