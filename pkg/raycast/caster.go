package raycast

import "math"

const tau = 2 * math.Pi

// NormalizeAngle maps an angle in radians into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, tau)
	if a < 0 {
		a += tau
	}
	if a >= tau {
		a = 0
	}
	return a
}

// Caster marches a single ray from Origin at Angle through a Map.
type Caster struct {
	Origin Vec2
	Angle  float64
}

// Cast walks the grid boundaries crossed by the ray and returns the distance
// travelled to the first wall tile together with its kind. A ray that travels
// further than dof without hitting a wall reports (dof, Empty).
func (rc Caster) Cast(m *Map, dof float64) (float64, Cell) {
	if !(dof > 0) {
		return dof, Empty
	}
	angle := NormalizeAngle(rc.Angle)
	if math.IsNaN(angle) || !finite(rc.Origin.X) || !finite(rc.Origin.Y) {
		return dof, Empty
	}
	sin, cos := math.Sincos(angle)

	// Distance along the ray needed to cross one whole tile on each axis.
	stepDelta := Vec2{X: axisStep(cos), Y: axisStep(sin)}
	dir := Vec2{X: 1, Y: 1}
	if angle > math.Pi*0.5 && angle < math.Pi*1.5 {
		dir.X = -1
	}
	if angle > 0 && angle < math.Pi {
		dir.Y = -1
	}
	remaining := Vec2{
		X: firstCrossing(rc.Origin.X, dir.X, stepDelta.X),
		Y: firstCrossing(rc.Origin.Y, dir.Y, stepDelta.Y),
	}
	tile := rc.Origin.Trunc()
	travelled := 0.0

	for {
		if remaining.Y < remaining.X {
			remaining.X -= remaining.Y
			travelled += math.Abs(remaining.Y)
			remaining.Y = stepDelta.Y
			tile.Y += dir.Y
		} else {
			remaining.Y -= remaining.X
			travelled += math.Abs(remaining.X)
			remaining.X = stepDelta.X
			tile.X += dir.X
		}

		if travelled > dof || m.leaving(tile, dir) {
			return dof, Empty
		}
		if m.IsWall(tile) {
			return travelled, m.WallKind(tile)
		}
	}
}

// leaving reports whether a ray at tile heading along dir has left the grid
// on some axis and can never come back.
func (m *Map) leaving(tile, dir Vec2) bool {
	return (tile.X < 0 && dir.X < 0) || (tile.X >= float64(m.w) && dir.X > 0) ||
		(tile.Y < 0 && dir.Y < 0) || (tile.Y >= float64(m.h) && dir.Y > 0)
}

func axisStep(component float64) float64 {
	if component == 0 {
		return math.Inf(1)
	}
	return math.Abs(1 / component)
}

// firstCrossing returns the ray distance to the first tile boundary on one
// axis, given the origin coordinate, the direction sign and the full-tile step.
func firstCrossing(pos, dir, step float64) float64 {
	if math.IsInf(step, 1) {
		return step
	}
	frac := pos - math.Trunc(pos)
	return ((0.5 + 0.5*dir) - frac*dir) * step
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
