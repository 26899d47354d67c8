package work

import (
	"context"
	"testing"

	"github.com/partitura-app/partitura/internal/db"
	"github.com/partitura-app/partitura/internal/domain"
)

// newTestRepo opens an in-memory catalog seeded with a small works set.
func newTestRepo(t *testing.T) *Repo {
	t.Helper()

	store, err := db.Open(db.Config{Path: ":memory:"})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(store.Close)

	repo := New(store)
	seed := []domain.Work{
		{Composer: "Иоганн Себастьян Бах", Title: "Токката и фуга ре минор", Category: "Орган"},
		{Composer: "Иоганн Себастьян Бах", Title: "Месса си минор", Category: "Хор"},
		{Composer: "Bach", Title: "Invention No. 1", Category: "Фортепиано"},
		{Composer: "Пётр Ильич Чайковский", Title: "Концерт для скрипки", Category: "Оркестр", Subcategory: "Скрипка"},
		{Composer: "Моцарт", Title: "Реквием", Category: "Хор"},
	}
	for _, w := range seed {
		if err := repo.Insert(context.Background(), w); err != nil {
			t.Fatalf("seed work: %v", err)
		}
	}
	return repo
}
