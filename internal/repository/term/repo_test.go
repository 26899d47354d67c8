package term

import (
	"context"
	"errors"
	"testing"

	"github.com/partitura-app/partitura/internal/domain"
)

func TestSearchCandidates_NameSubstring(t *testing.T) {
	repo := newTestRepo(t)

	terms, err := repo.SearchCandidates(context.Background(), []string{"концерт"}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(terms) != 1 || terms[0].Name != "Концерт" {
		t.Errorf("expected the Концерт entry, got %v", terms)
	}
}

func TestSearchCandidates_DefinitionSubstring(t *testing.T) {
	repo := newTestRepo(t)

	terms, err := repo.SearchCandidates(context.Background(), []string{"темп"}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(terms) != 1 || terms[0].Name != "Аллегро" {
		t.Errorf("expected Аллегро via definition substring, got %v", terms)
	}
}

func TestSearchCandidates_FullTextArm(t *testing.T) {
	repo := newTestRepo(t)

	terms, err := repo.SearchCandidates(context.Background(), []string{"zzz"}, `"оркестром"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(terms) != 1 || terms[0].Name != "Концерт" {
		t.Errorf("expected full-text hit on Концерт, got %v", terms)
	}
}

func TestList(t *testing.T) {
	repo := newTestRepo(t)

	terms, total, err := repo.List(context.Background(), "", 2, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if len(terms) != 2 {
		t.Errorf("page length = %d, want 2", len(terms))
	}
	// Alphabetical by term.
	if terms[0].Name != "Аллегро" {
		t.Errorf("expected Аллегро first, got %q", terms[0].Name)
	}
}

func TestList_Search(t *testing.T) {
	repo := newTestRepo(t)

	terms, total, err := repo.List(context.Background(), "фуга", 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(terms) != 1 || terms[0].Name != "Фуга" {
		t.Errorf("expected only Фуга, got total=%d %v", total, terms)
	}
}

func TestGet(t *testing.T) {
	repo := newTestRepo(t)

	tm, err := repo.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tm.Name != "Концерт" {
		t.Errorf("unexpected term: %+v", tm)
	}

	_, err = repo.Get(context.Background(), 404)
	if !errors.Is(err, domain.ErrTermNotFound) {
		t.Errorf("expected ErrTermNotFound, got %v", err)
	}
}
