package render

import (
	"image/color"

	"raycaster/pkg/raycast"
)

// MinimapRGBA rasterises m into a w*h RGBA buffer, one pixel per tile, with
// x running along columns and y along rows.
func MinimapRGBA(m *raycast.Map, wall, floor color.Color) []byte {
	w, h := m.Width(), m.Height()
	buf := make([]byte, 4*w*h)
	rW, gW, bW, aW := wall.RGBA()
	rF, gF, bF, aF := floor.RGBA()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			base := 4 * (y*w + x)
			if m.At(x, y) == raycast.Wall {
				buf[base+0] = uint8(rW >> 8)
				buf[base+1] = uint8(gW >> 8)
				buf[base+2] = uint8(bW >> 8)
				buf[base+3] = uint8(aW >> 8)
				continue
			}
			buf[base+0] = uint8(rF >> 8)
			buf[base+1] = uint8(gF >> 8)
			buf[base+2] = uint8(bF >> 8)
			buf[base+3] = uint8(aF >> 8)
		}
	}
	return buf
}

// MarkRGBA paints a single pixel of a w*h RGBA buffer, ignoring points outside it.
func MarkRGBA(buf []byte, w, h int, p raycast.Vec2, col color.RGBA) {
	if p.X < 0 || p.Y < 0 {
		return
	}
	x, y := int(p.X), int(p.Y)
	if x >= w || y >= h || len(buf) < 4*w*h {
		return
	}
	base := 4 * (y*w + x)
	buf[base+0] = col.R
	buf[base+1] = col.G
	buf[base+2] = col.B
	buf[base+3] = col.A
}
