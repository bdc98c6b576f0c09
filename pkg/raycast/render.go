package raycast

import "math"

// DegreesToRadians converts field-of-view degrees into radians.
const DegreesToRadians = 0.0174533

// View describes the viewer and the screen a frame is rendered for. X, Y and
// Angle (radians) place the viewer, FOV is in degrees and DepthOfField is the
// maximum ray length in tiles.
type View struct {
	X, Y         float64
	Angle        float64
	ScreenWidth  int
	ScreenHeight int
	DepthOfField float64
	FOV          float64

	// CorrectFisheye projects each ray length onto the viewing direction.
	// Off by default; it changes every rendered column.
	CorrectFisheye bool
}

// Render is the flat-argument entry point: it builds the map from cell codes
// and renders a frame without fish-eye correction. The returned buffer holds
// 4*screenWidth*screenHeight RGBA bytes. Malformed map data fails the call.
func Render(x, y, angle float64, screenWidth, screenHeight int, mapCells []float64, mapWidth, mapHeight int, dof, fovDegrees float64) ([]byte, error) {
	return RenderView(mapCells, mapWidth, mapHeight, View{
		X:            x,
		Y:            y,
		Angle:        angle,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		DepthOfField: dof,
		FOV:          fovDegrees,
	})
}

// RenderView builds a Map from cell codes and renders v.
func RenderView(mapCells []float64, mapWidth, mapHeight int, v View) ([]byte, error) {
	m, err := NewMap(mapCells, mapWidth, mapHeight)
	if err != nil {
		return nil, err
	}
	return RenderMap(m, v), nil
}

// RenderMap renders one frame of m as seen from v. Columns are swept from the
// left edge of the field of view (Angle + FOV/2) towards the right.
func RenderMap(m *Map, v View) []byte {
	canvas := NewCanvas(v.ScreenWidth, v.ScreenHeight)
	canvas.Clear(Black)

	fov := v.FOV * DegreesToRadians
	ray := Caster{Origin: Vec2{X: v.X, Y: v.Y}, Angle: NormalizeAngle(v.Angle + fov*0.5)}
	step := fov / float64(canvas.Width())
	hits := 0
	for i := 0; i < canvas.Width(); i++ {
		distance, kind := ray.Cast(m, v.DepthOfField)
		if kind == Wall {
			hits++
		}
		if v.CorrectFisheye {
			distance *= math.Cos(ray.Angle - v.Angle)
		}
		height, brightness := Slice(distance, canvas.Height())
		canvas.DrawVerticalLine(i, height, Gray(brightness))
		ray.Angle = NormalizeAngle(ray.Angle - step)
	}
	Logger().Debug("frame rendered",
		"width", canvas.Width(),
		"height", canvas.Height(),
		"hits", hits)
	return canvas.Pixels()
}

// Slice converts a ray length into the wall slice height in pixels and its
// grey level. Distances below one tile are treated as one tile, and the
// brightness falls off with the inverse square of half the distance.
func Slice(distance float64, canvasHeight int) (int, uint8) {
	if !(distance >= 1) {
		distance = 1
	}
	height := int(math.Round(float64(canvasHeight) / distance))
	brightness := math.Round(255 / math.Pow(distance/2, 2))
	return height, clampByte(brightness)
}

func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
