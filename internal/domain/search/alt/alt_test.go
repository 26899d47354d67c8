package alt

import (
	"testing"

	"github.com/partitura-app/partitura/internal/domain/search/norm"
)

func TestGenerate_IncludesInputFirst(t *testing.T) {
	inputs := []string{"бах", "mozart", "концерт для скрипки", ""}

	for _, in := range inputs {
		alts := Generate(in)
		if len(alts) == 0 {
			t.Fatalf("Generate(%q) returned empty set", in)
		}
		if alts[0] != in {
			t.Errorf("Generate(%q)[0] = %q, want the input itself", in, alts[0])
		}
	}
}

func TestGenerate_Deduplicates(t *testing.T) {
	// Pure Latin input transliterates to itself; the set must not repeat it.
	alts := Generate("mozart")

	seen := make(map[string]int)
	for _, a := range alts {
		seen[a]++
	}
	for a, n := range seen {
		if n > 1 {
			t.Errorf("alternative %q appears %d times", a, n)
		}
	}
}

func TestGenerate_ComposerAliases(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"бах", []string{"bach"}},
		{"иоганн себастян бах", []string{"bach"}},
		{norm.Normalize("Чайковский"), []string{"tchaikovsky", "tschaikovsky", "chaikovsky"}},
		{norm.Normalize("Рахманинов"), []string{"rachmaninoff", "rachmaninov"}},
	}

	for _, tt := range tests {
		alts := Generate(tt.query)
		set := make(map[string]struct{}, len(alts))
		for _, a := range alts {
			set[a] = struct{}{}
		}
		for _, w := range tt.want {
			if _, ok := set[w]; !ok {
				t.Errorf("Generate(%q) = %v, missing alias %q", tt.query, alts, w)
			}
		}
	}
}

func TestGenerate_NoAliasForUnknownName(t *testing.T) {
	alts := Generate("сибелиус")
	// input + transliteration only
	if len(alts) != 2 {
		t.Errorf("Generate(%q) = %v, want exactly input and transliteration", "сибелиус", alts)
	}
}

func TestTransliterate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"бах", "bah"},
		{"шостакович", "shostakovich"},
		{"чаиковскии", "chaikovskii"},
		{"mozart", "mozart"},
		{"концерт 5", "kontsert 5"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Transliterate(tt.in); got != tt.want {
			t.Errorf("Transliterate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
