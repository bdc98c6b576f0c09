package level

import (
	"fmt"

	"raycaster/internal/core"
	"raycaster/pkg/raycast"
)

// ParseRows converts a picture of the map, one string per row, into the flat
// cell layout raycast.NewMap expects. '#' and '1' are walls, '.', ' ' and '0'
// are empty. All rows must have the same length.
func ParseRows(rows []string) (cells []float64, width, height int, err error) {
	height = len(rows)
	if height == 0 {
		return nil, 0, 0, nil
	}
	width = len(rows[0])
	cells = make([]float64, width*height)
	for y, row := range rows {
		if len(row) != width {
			return nil, 0, 0, fmt.Errorf("row %d has width %d, expected %d", y, len(row), width)
		}
		for x := 0; x < width; x++ {
			switch row[x] {
			case '#', '1':
				cells[x*height+y] = 1
			case '.', ' ', '0':
			default:
				return nil, 0, 0, fmt.Errorf("row %d column %d: unknown tile %q", y, x, row[x])
			}
		}
	}
	return cells, width, height, nil
}

// Rows renders a map back into rows using '#' for walls and '.' for empty tiles.
func Rows(m *raycast.Map) []string {
	rows := make([]string, m.Height())
	buf := make([]byte, m.Width())
	for y := range rows {
		for x := range buf {
			buf[x] = '.'
			if m.At(x, y) == raycast.Wall {
				buf[x] = '#'
			}
		}
		rows[y] = string(buf)
	}
	return rows
}

// FromRows builds a Level from a row picture.
func FromRows(name string, rows []string, spawn raycast.Vec2, angle float64) (core.Level, error) {
	cells, w, h, err := ParseRows(rows)
	if err != nil {
		return core.Level{}, fmt.Errorf("level %s: %w", name, err)
	}
	m, err := raycast.NewMap(cells, w, h)
	if err != nil {
		return core.Level{}, fmt.Errorf("level %s: %w", name, err)
	}
	return core.Level{Name: name, Map: m, Spawn: spawn, Angle: angle}, nil
}

// withMargin prepends an empty row and column. Row 0 and column 0 are
// passable to rays, so the outer wall has to start at index 1 to be seen.
func withMargin(rows []string) []string {
	if len(rows) == 0 {
		return rows
	}
	out := make([]string, 0, len(rows)+1)
	blank := make([]byte, len(rows[0])+1)
	for i := range blank {
		blank[i] = '.'
	}
	out = append(out, string(blank))
	for _, row := range rows {
		out = append(out, "."+row)
	}
	return out
}
