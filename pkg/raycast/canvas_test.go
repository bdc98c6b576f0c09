package raycast

import "testing"

func pixelAt(buf []byte, w, x, y int) Color {
	base := 4 * (x + y*w)
	return Color{R: buf[base], G: buf[base+1], B: buf[base+2], A: buf[base+3]}
}

func TestNewCanvasSize(t *testing.T) {
	c := NewCanvas(3, 2)
	if len(c.Pixels()) != 24 {
		t.Fatalf("len = %d, want 24", len(c.Pixels()))
	}
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-3, 4}, {4, -3}} {
		c := NewCanvas(dims[0], dims[1])
		if got := len(c.Pixels()); got != 4*c.Width()*c.Height() || got != 0 {
			t.Fatalf("NewCanvas(%d,%d) len = %d, want 0", dims[0], dims[1], got)
		}
	}
}

func TestClearFillsEveryPixel(t *testing.T) {
	c := NewCanvas(4, 3)
	col := Color{R: 1, G: 2, B: 3, A: 4}
	c.Clear(col)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got := pixelAt(c.Pixels(), 4, x, y); got != col {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, col)
			}
		}
	}
}

func TestDrawPixelClipsSilently(t *testing.T) {
	c := NewCanvas(3, 3)
	c.Clear(Black)
	white := Gray(255)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {3, 3}, {10, 10}} {
		c.DrawPixel(p[0], p[1], white)
	}
	for i := 0; i < 9; i++ {
		if got := pixelAt(c.Pixels(), 3, i%3, i/3); got != Black {
			t.Fatalf("pixel %d changed by out-of-range write: %v", i, got)
		}
	}
	c.DrawPixel(2, 1, white)
	if got := pixelAt(c.Pixels(), 3, 2, 1); got != white {
		t.Fatalf("pixel (2,1) = %v, want white", got)
	}
}

func TestDrawVerticalLineCentres(t *testing.T) {
	cases := []struct {
		name          string
		h, line       int
		first, beyond int
	}{
		{"even", 4, 2, 1, 3},
		{"odd rounds half away from zero", 4, 3, 1, 4},
		{"full height", 4, 4, 0, 4},
		{"taller than canvas", 4, 6, 0, 4},
		{"single row", 5, 1, 2, 3},
		{"zero", 4, 0, 0, 0},
	}
	col := Gray(200)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCanvas(3, tc.h)
			c.Clear(Black)
			c.DrawVerticalLine(1, tc.line, col)
			for y := 0; y < tc.h; y++ {
				want := Black
				if y >= tc.first && y < tc.beyond {
					want = col
				}
				if got := pixelAt(c.Pixels(), 3, 1, y); got != want {
					t.Fatalf("row %d = %v, want %v", y, got, want)
				}
				for _, x := range []int{0, 2} {
					if got := pixelAt(c.Pixels(), 3, x, y); got != Black {
						t.Fatalf("neighbour column %d row %d touched: %v", x, y, got)
					}
				}
			}
		})
	}
}

func TestDrawVerticalLineOutsideCanvasIsIgnored(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Clear(Black)
	c.DrawVerticalLine(-1, 2, Gray(9))
	c.DrawVerticalLine(2, 2, Gray(9))
	for i := 0; i < 4; i++ {
		if got := pixelAt(c.Pixels(), 2, i%2, i/2); got != Black {
			t.Fatalf("pixel %d = %v, want black", i, got)
		}
	}
}
