package level

import "raycaster/pkg/core"

// Maze carves a perfect maze with a randomized depth-first backtracker and
// returns it as rows. Both dimensions are forced odd and at least 5; passages
// sit on odd coordinates and (1, 1) is always open.
func Maze(w, h int, rng *core.RNG) []string {
	if w < 5 {
		w = 5
	}
	if h < 5 {
		h = 5
	}
	if w%2 == 0 {
		w++
	}
	if h%2 == 0 {
		h++
	}
	grid := make([][]byte, h)
	for y := range grid {
		grid[y] = make([]byte, w)
		for x := range grid[y] {
			grid[y][x] = '#'
		}
	}

	type cell struct{ x, y int }
	dirs := []cell{{2, 0}, {-2, 0}, {0, 2}, {0, -2}}
	stack := []cell{{1, 1}}
	grid[1][1] = '.'
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
		moved := false
		for _, d := range dirs {
			nx, ny := cur.x+d.x, cur.y+d.y
			if nx <= 0 || ny <= 0 || nx >= w-1 || ny >= h-1 || grid[ny][nx] == '.' {
				continue
			}
			grid[cur.y+d.y/2][cur.x+d.x/2] = '.'
			grid[ny][nx] = '.'
			stack = append(stack, cell{nx, ny})
			moved = true
			break
		}
		if !moved {
			stack = stack[:len(stack)-1]
		}
	}

	rows := make([]string, h)
	for y := range grid {
		rows[y] = string(grid[y])
	}
	return rows
}
