package raycast

import "math"

// Canvas is a width*height RGBA pixel buffer in row-major order.
type Canvas struct {
	w, h int
	buf  []byte
}

// NewCanvas allocates a transparent canvas. Negative sizes yield an empty canvas.
func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Canvas{w: w, h: h, buf: make([]byte, 4*w*h)}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.w }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.h }

// Pixels exposes the backing buffer.
func (c *Canvas) Pixels() []byte { return c.buf }

// Clear fills every pixel with col.
func (c *Canvas) Clear(col Color) {
	for base := 0; base < len(c.buf); base += 4 {
		c.put(base, col)
	}
}

// DrawPixel overwrites pixel (x, y). Coordinates outside [0, w] x [0, h] are
// ignored, and the column x == w and row y == h are accepted as no-ops.
func (c *Canvas) DrawPixel(x, y int, col Color) {
	if x < 0 || x > c.w || y < 0 || y > c.h {
		return
	}
	if x == c.w || y == c.h {
		return
	}
	c.put(4*(x+y*c.w), col)
}

// DrawVerticalLine draws a segment of the given height centred vertically in
// column x, clipped to the canvas.
func (c *Canvas) DrawVerticalLine(x, height int, col Color) {
	if x < 0 || x >= c.w || height <= 0 {
		return
	}
	top := int(math.Round(0.5 * float64(c.h-height)))
	bottom := int(math.Round(0.5 * float64(c.h+height)))
	if top < 0 {
		top = 0
	}
	if bottom > c.h {
		bottom = c.h
	}
	for y := top; y < bottom; y++ {
		c.put(4*(x+y*c.w), col)
	}
}

func (c *Canvas) put(base int, col Color) {
	c.buf[base+0] = col.R
	c.buf[base+1] = col.G
	c.buf[base+2] = col.B
	c.buf[base+3] = col.A
}
