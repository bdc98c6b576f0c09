package raycast

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func TestNewMapIndexing(t *testing.T) {
	// 2 columns, 3 rows: element n lands in (n/3, n%3).
	m, err := NewMap([]float64{0, 1, 0, 0, 0, 1}, 2, 3)
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}
	if m.Width() != 2 || m.Height() != 3 {
		t.Fatalf("size = %dx%d, want 2x3", m.Width(), m.Height())
	}
	walls := map[[2]int]bool{{0, 1}: true, {1, 2}: true}
	for x := 0; x < 2; x++ {
		for y := 0; y < 3; y++ {
			want := Empty
			if walls[[2]int{x, y}] {
				want = Wall
			}
			if got := m.At(x, y); got != want {
				t.Fatalf("At(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
	if got := m.At(-1, 0); got != Empty {
		t.Fatalf("At outside grid = %v, want empty", got)
	}
}

func TestNewMapRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name  string
		cells []float64
		w, h  int
	}{
		{"code two", []float64{0, 2, 0, 0}, 2, 2},
		{"fractional code", []float64{0, 0.5, 0, 0}, 2, 2},
		{"nan code", []float64{0, math.NaN(), 0, 0}, 2, 2},
		{"negative code", []float64{-1, 0, 0, 0}, 2, 2},
		{"too short", []float64{0, 0, 0}, 2, 2},
		{"too long", []float64{0, 0, 0, 0, 0}, 2, 2},
		{"negative width", nil, -1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := NewMap(tc.cells, tc.w, tc.h)
			if err == nil {
				t.Fatal("expected construction error")
			}
			if !errors.Is(err, ErrMalformedMap) {
				t.Fatalf("error %v does not wrap ErrMalformedMap", err)
			}
			if m != nil {
				t.Fatal("expected nil map on error")
			}
		})
	}
}

func TestCellsRoundTripLayout(t *testing.T) {
	in := []float64{1, 0, 0, 1, 1, 0}
	m, err := NewMap(in, 3, 2)
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}
	out := m.Cells()
	for i := range in {
		if in[i] != out[i] {
			t.Fatalf("Cells()[%d] = %v, want %v", i, out[i], in[i])
		}
	}
}

// The outer boundary is passable: row 0 and column 0 are never walls even
// when their cells are, and neither is anything on or past the far edges.
func TestIsWallBoundaryIsPassable(t *testing.T) {
	cells := make([]float64, 9)
	for i := range cells {
		cells[i] = 1
	}
	m, err := NewMap(cells, 3, 3)
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}
	outside := []Vec2{
		{0, 1.5}, {1.5, 0}, {0, 0}, {3, 1.5}, {1.5, 3}, {-0.5, 1.5}, {1.5, -2}, {4, 4},
	}
	for _, p := range outside {
		if m.IsWall(p) {
			t.Errorf("IsWall(%v) = true, want false", p)
		}
		if k := m.WallKind(p); k != Empty {
			t.Errorf("WallKind(%v) = %v, want empty", p, k)
		}
	}
	inside := []Vec2{{1, 1}, {0.5, 0.5}, {2.9, 2.9}, {1, 2}}
	for _, p := range inside {
		if !m.IsWall(p) {
			t.Errorf("IsWall(%v) = false, want true", p)
		}
		if k := m.WallKind(p); k != Wall {
			t.Errorf("WallKind(%v) = %v, want wall", p, k)
		}
	}
}

func TestIsWallNeverTrueOnOrOutsideBoundary(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 0))
	for iter := 0; iter < 50; iter++ {
		w := 1 + rng.IntN(8)
		h := 1 + rng.IntN(8)
		cells := make([]float64, w*h)
		for i := range cells {
			cells[i] = float64(rng.IntN(2))
		}
		m, err := NewMap(cells, w, h)
		if err != nil {
			t.Fatalf("NewMap(%dx%d): %v", w, h, err)
		}
		for i := 0; i < 100; i++ {
			p := Vec2{X: rng.Float64()*float64(w+4) - 2, Y: rng.Float64()*float64(h+4) - 2}
			switch i % 4 {
			case 0:
				p.X = 0
			case 1:
				p.Y = float64(h)
			}
			if p.X <= 0 || p.X >= float64(w) || p.Y <= 0 || p.Y >= float64(h) {
				if m.IsWall(p) {
					t.Fatalf("IsWall(%v) on %dx%d map = true, want false", p, w, h)
				}
			}
		}
	}
}

func TestEmptyMapHasNoWalls(t *testing.T) {
	m, err := NewMap(nil, 0, 0)
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}
	if m.IsWall(Vec2{0.5, 0.5}) {
		t.Fatal("zero-sized map reported a wall")
	}
}
