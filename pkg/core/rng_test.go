package core

import (
	"slices"
	"testing"
)

func TestRNGDeterministic(t *testing.T) {
	draw := func(seed int64) []int {
		r := NewRNG(seed)
		out := make([]int, 32)
		for i := range out {
			out[i] = r.IntN(1000)
		}
		return out
	}
	if !slices.Equal(draw(5), draw(5)) {
		t.Fatal("same seed produced different sequences")
	}
	if slices.Equal(draw(5), draw(6)) {
		t.Fatal("different seeds produced identical sequences")
	}
}

func TestRNGIntNNonPositive(t *testing.T) {
	r := NewRNG(1)
	if got := r.IntN(0); got != 0 {
		t.Fatalf("IntN(0) = %d, want 0", got)
	}
	if got := r.IntN(-3); got != 0 {
		t.Fatalf("IntN(-3) = %d, want 0", got)
	}
}

func TestRNGChanceExtremes(t *testing.T) {
	r := NewRNG(3)
	for i := 0; i < 100; i++ {
		if r.Chance(0) {
			t.Fatal("Chance(0) returned true")
		}
		if !r.Chance(1) {
			t.Fatal("Chance(1) returned false")
		}
	}
}
