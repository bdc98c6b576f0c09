package raycast

// Color is an 8-bit RGBA value.
type Color struct {
	R, G, B, A uint8
}

// Black is opaque black, the frame background.
var Black = Color{A: 255}

// Gray returns an opaque grey with all channels set to v.
func Gray(v uint8) Color { return Color{R: v, G: v, B: v, A: 255} }

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = uint32(c.A)
	a |= a << 8
	return
}
