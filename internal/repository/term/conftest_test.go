package term

import (
	"context"
	"testing"

	"github.com/partitura-app/partitura/internal/db"
	"github.com/partitura-app/partitura/internal/domain"
)

// newTestRepo opens an in-memory catalog seeded with glossary entries.
func newTestRepo(t *testing.T) *Repo {
	t.Helper()

	store, err := db.Open(db.Config{Path: ":memory:"})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(store.Close)

	repo := New(store)
	seed := []domain.Term{
		{Name: "Концерт", Definition: "Произведение для солирующего инструмента с оркестром"},
		{Name: "Фуга", Definition: "Полифоническая форма с имитационным проведением темы"},
		{Name: "Аллегро", Definition: "Быстрый темп исполнения"},
	}
	for _, tm := range seed {
		if err := repo.Insert(context.Background(), tm); err != nil {
			t.Fatalf("seed term: %v", err)
		}
	}
	return repo
}
