package domain

import "time"

// Work is a catalog record for a single sheet-music edition.
// Subcategory is empty when the work has none.
type Work struct {
	ID          int64
	Composer    string
	Title       string
	Category    string
	Subcategory string
	FilePath    string
	FileSize    int64
	CreatedAt   time.Time
}

// WorkFilter narrows a catalog listing. String fields are case-insensitive
// substring filters; zero values are ignored.
type WorkFilter struct {
	Composer string
	Title    string
	Category string
	Limit    int
	Offset   int
}

// Category is a distinct work category with its number of works.
type Category struct {
	Name  string
	Count int
}
