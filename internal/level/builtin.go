package level

import (
	"strconv"

	"raycaster/internal/core"
	pcore "raycaster/pkg/core"
	"raycaster/pkg/raycast"
)

// boxRows is a 4x4 room with an open 2x2 interior.
var boxRows = []string{
	"####",
	"#..#",
	"#..#",
	"####",
}

// Box returns the 4x4 room with the viewer in the first open tile.
func Box() (core.Level, error) {
	return FromRows("box", boxRows, raycast.Vec2{X: 1.5, Y: 1.5}, 0)
}

// ArenaConfig controls the generated arena.
type ArenaConfig struct {
	Width   int
	Height  int
	Density float64
	Seed    int64
}

// DefaultArenaConfig returns the standard arena.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{Width: 16, Height: 16, Density: 0.08, Seed: 1}
}

// Arena returns a walled room scattered with single-tile pillars. The tiles
// around the spawn point are always clear.
func Arena(cfg ArenaConfig) (core.Level, error) {
	if cfg.Width < 4 {
		cfg.Width = 4
	}
	if cfg.Height < 4 {
		cfg.Height = 4
	}
	rng := pcore.NewRNG(cfg.Seed)
	rows := make([]string, cfg.Height)
	for y := range rows {
		row := make([]byte, cfg.Width)
		for x := range row {
			switch {
			case x == 0 || y == 0 || x == cfg.Width-1 || y == cfg.Height-1:
				row[x] = '#'
			case x <= 2 && y <= 2:
				row[x] = '.'
			case rng.Chance(cfg.Density):
				row[x] = '#'
			default:
				row[x] = '.'
			}
		}
		rows[y] = string(row)
	}
	return FromRows("arena", withMargin(rows), raycast.Vec2{X: 2.5, Y: 2.5}, 0)
}

// MazeConfig controls the generated maze.
type MazeConfig struct {
	Width  int
	Height int
	Seed   int64
}

// DefaultMazeConfig returns the standard maze.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{Width: 21, Height: 21, Seed: 42}
}

// MazeLevel returns a generated maze with the viewer in its first corridor.
func MazeLevel(cfg MazeConfig) (core.Level, error) {
	rows := withMargin(Maze(cfg.Width, cfg.Height, pcore.NewRNG(cfg.Seed)))
	return FromRows("maze", rows, raycast.Vec2{X: 2.5, Y: 2.5}, 0)
}

func intOption(cfg map[string]string, key string, v int) int {
	if s, ok := cfg[key]; ok {
		if parsed, err := strconv.Atoi(s); err == nil && parsed > 0 {
			return parsed
		}
	}
	return v
}

func seedOption(cfg map[string]string, v int64) int64 {
	if s, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(s, 10, 64); err == nil {
			return parsed
		}
	}
	return v
}

func init() {
	core.Register("box", func(map[string]string) (core.Level, error) {
		return Box()
	})
	core.Register("arena", func(cfg map[string]string) (core.Level, error) {
		c := DefaultArenaConfig()
		c.Width = intOption(cfg, "w", c.Width)
		c.Height = intOption(cfg, "h", c.Height)
		c.Seed = seedOption(cfg, c.Seed)
		if s, ok := cfg["density"]; ok {
			if parsed, err := strconv.ParseFloat(s, 64); err == nil && parsed >= 0 && parsed <= 1 {
				c.Density = parsed
			}
		}
		return Arena(c)
	})
	core.Register("maze", func(cfg map[string]string) (core.Level, error) {
		c := DefaultMazeConfig()
		c.Width = intOption(cfg, "w", c.Width)
		c.Height = intOption(cfg, "h", c.Height)
		c.Seed = seedOption(cfg, c.Seed)
		return MazeLevel(c)
	})
	core.Register("cave", func(cfg map[string]string) (core.Level, error) {
		c := DefaultCaveConfig()
		c.Width = intOption(cfg, "w", c.Width)
		c.Height = intOption(cfg, "h", c.Height)
		c.Steps = intOption(cfg, "steps", c.Steps)
		c.Seed = seedOption(cfg, c.Seed)
		if s, ok := cfg["fill"]; ok {
			if parsed, err := strconv.ParseFloat(s, 64); err == nil && parsed >= 0 && parsed <= 1 {
				c.Fill = parsed
			}
		}
		return Cave(c)
	})
}
