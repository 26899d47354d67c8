// Package suggest holds autocomplete value types.
package suggest

import "fmt"

// Kind selects which suggestion sources are queried.
type Kind string

const (
	KindAll        Kind = "all"
	KindComposers  Kind = "composers"
	KindWorks      Kind = "works"
	KindCategories Kind = "categories"
)

// ParseKind validates a raw kind string. Empty input means KindAll.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case "":
		return KindAll, nil
	case KindAll, KindComposers, KindWorks, KindCategories:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown suggestion type %q", s)
}

// Suggestion is one autocomplete entry: a distinct catalog value with its
// occurrence count.
type Suggestion struct {
	Value string
	Type  string
	Count int
}
