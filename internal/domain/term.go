package domain

import "time"

// Term is a glossary entry.
type Term struct {
	ID         int64
	Name       string
	Definition string
	CreatedAt  time.Time
}
