package raycast

import "math"

// Vec2 is a 2D value used for positions, per-axis step deltas and direction signs.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Trunc drops the fractional part of both coordinates.
func (v Vec2) Trunc() Vec2 { return Vec2{X: math.Trunc(v.X), Y: math.Trunc(v.Y)} }
