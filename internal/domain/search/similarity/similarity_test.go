package similarity

import (
	"math"
	"testing"
)

func TestScore_Identity(t *testing.T) {
	for _, s := range []string{"", "бах", "mozart", "концерт для скрипки с оркестром"} {
		if got := Score(s, s); got != 1.0 {
			t.Errorf("Score(%q, %q) = %v, want 1.0", s, s, got)
		}
	}
}

func TestScore_Symmetry(t *testing.T) {
	pairs := [][2]string{
		{"бах", "бетховен"},
		{"rachmaninoff", "rachmaninov"},
		{"концерт", "конверт"},
		{"", "шопен"},
		{"a", "чаиковскии"},
	}

	for _, p := range pairs {
		ab, ba := Score(p[0], p[1]), Score(p[1], p[0])
		if ab != ba {
			t.Errorf("Score(%q,%q)=%v != Score(%q,%q)=%v", p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}

func TestScore_Known(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"", "", 1.0},
		{"бах", "", 0.0},
		{"концерт", "конверт", 6.0 / 7.0},                  // one substitution over 7 runes
		{"rachmaninoff", "rachmaninov", 10.0 / 12.0},       // 1 sub + 1 del over 12
		{"abc", "xyz", 0.0},
	}

	for _, tt := range tests {
		if got := Score(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Score(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestScore_Range(t *testing.T) {
	pairs := [][2]string{
		{"бах", "bach"},
		{"цлф", "аааааааааааааааа"},
		{"x", "апрель"},
	}

	for _, p := range pairs {
		got := Score(p[0], p[1])
		if got < 0 || got > 1 {
			t.Errorf("Score(%q, %q) = %v, out of [0,1]", p[0], p[1], got)
		}
	}
}
