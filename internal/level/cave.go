package level

import (
	"raycaster/internal/core"
	pcore "raycaster/pkg/core"
	"raycaster/pkg/raycast"
)

// CaveConfig controls the cellular-automaton cave.
type CaveConfig struct {
	Width  int
	Height int
	Fill   float64
	Steps  int
	Seed   int64
}

// DefaultCaveConfig returns the standard cave.
func DefaultCaveConfig() CaveConfig {
	return CaveConfig{Width: 32, Height: 32, Fill: 0.45, Steps: 4, Seed: 7}
}

// Cave returns a level carved by smoothing random noise: a tile becomes rock
// when at least five of its neighbours are rock, and stays rock with four.
// The border is always rock and the spawn corner is always open.
func Cave(cfg CaveConfig) (core.Level, error) {
	if cfg.Width < 8 {
		cfg.Width = 8
	}
	if cfg.Height < 8 {
		cfg.Height = 8
	}
	rng := pcore.NewRNG(cfg.Seed)
	g := core.NewByteGrid(cfg.Width, cfg.Height)
	cells := g.Cells()
	for i := range cells {
		if rng.Chance(cfg.Fill) {
			cells[i] = 1
		}
	}
	for i := 0; i < cfg.Steps; i++ {
		g = smooth(g)
	}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			switch {
			case x == 0 || y == 0 || x == g.W-1 || y == g.H-1:
				g.Set(x, y, 1)
			case x <= 2 && y <= 2:
				g.Set(x, y, 0)
			}
		}
	}
	return FromRows("cave", withMargin(g.Rows('#', '.')), raycast.Vec2{X: 2.5, Y: 2.5}, 0)
}

// smooth applies one generation of the cave rule. Off-grid cells count as
// rock so caves close at the edges.
func smooth(g *core.ByteGrid) *core.ByteGrid {
	next := core.NewByteGrid(g.W, g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			n := g.CountNeighbors(x, y, 1)
			rock := g.Get(x, y, 1) != 0
			if n >= 5 || (rock && n == 4) {
				next.Set(x, y, 1)
			}
		}
	}
	return next
}
