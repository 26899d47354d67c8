package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrWorkNotFound signals a missing catalog work.
	ErrWorkNotFound = errors.New("work not found")
	// ErrTermNotFound signals a missing glossary term.
	ErrTermNotFound = errors.New("term not found")
)
