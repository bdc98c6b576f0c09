// Package viewer holds the state of a first-person view into a level and
// renders frames for it.
package viewer

import (
	"math"
	"strconv"

	"raycaster/internal/core"
	"raycaster/pkg/raycast"
)

// Config holds the rendering settings of a Viewer.
type Config struct {
	Width        int
	Height       int
	FOV          float64
	DepthOfField float64
	Fisheye      bool
	MoveStep     float64
	TurnStep     float64
}

// DefaultConfig returns the standard view settings.
func DefaultConfig() Config {
	return Config{
		Width:        320,
		Height:       200,
		FOV:          60,
		DepthOfField: 16,
		MoveStep:     0.08,
		TurnStep:     math.Pi / 90,
	}
}

const (
	minFOV = 10
	maxFOV = 170
	minDOF = 1
	maxDOF = 128
)

// Viewer is a camera placed in a level. Movement is free: walls do not block it.
type Viewer struct {
	level core.Level
	cfg   Config
	pos   raycast.Vec2
	angle float64
}

// New places a viewer at the level's spawn point.
func New(level core.Level, cfg Config) *Viewer {
	v := &Viewer{level: level, cfg: cfg}
	v.Reset()
	return v
}

// Name returns the level name.
func (v *Viewer) Name() string { return v.level.Name }

// Size returns the frame size in pixels.
func (v *Viewer) Size() core.Size {
	return core.Size{W: max(v.cfg.Width, 0), H: max(v.cfg.Height, 0)}
}

// Level returns the level being viewed.
func (v *Viewer) Level() core.Level { return v.level }

// Position returns the current position in tiles.
func (v *Viewer) Position() raycast.Vec2 { return v.pos }

// Angle returns the current heading in radians, in [0, 2π).
func (v *Viewer) Angle() float64 { return v.angle }

// Config returns the current settings.
func (v *Viewer) Config() Config { return v.cfg }

// SetSize changes the frame size. Negative sizes are treated as zero.
func (v *Viewer) SetSize(w, h int) {
	v.cfg.Width = max(w, 0)
	v.cfg.Height = max(h, 0)
}

// Reset moves the viewer back to the spawn point.
func (v *Viewer) Reset() {
	v.pos = v.level.Spawn
	v.angle = raycast.NormalizeAngle(v.level.Angle)
}

// Turn rotates by steps turn increments; positive turns left.
func (v *Viewer) Turn(steps float64) {
	v.angle = raycast.NormalizeAngle(v.angle + steps*v.cfg.TurnStep)
}

// Move advances along the heading by forward move increments and sideways by
// strafe increments (positive is to the right). The y axis points down, so a
// heading of π/2 faces decreasing y.
func (v *Viewer) Move(forward, strafe float64) {
	sin, cos := math.Sincos(v.angle)
	step := v.cfg.MoveStep
	v.pos.X += (cos*forward + sin*strafe) * step
	v.pos.Y += (-sin*forward + cos*strafe) * step
}

// View returns the render parameters for the current pose.
func (v *Viewer) View() raycast.View {
	return raycast.View{
		X:              v.pos.X,
		Y:              v.pos.Y,
		Angle:          v.angle,
		ScreenWidth:    v.cfg.Width,
		ScreenHeight:   v.cfg.Height,
		DepthOfField:   v.cfg.DepthOfField,
		FOV:            v.cfg.FOV,
		CorrectFisheye: v.cfg.Fisheye,
	}
}

// Frame renders the current view into a new RGBA buffer.
func (v *Viewer) Frame() []byte {
	return raycast.RenderMap(v.level.Map, v.View())
}

// Parameters reports the tunable settings.
func (v *Viewer) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Camera",
			Params: []core.Parameter{
				{Key: "fov", Label: "FOV", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v.cfg.FOV, 'f', -1, 64), Description: "field of view in degrees"},
				{Key: "dof", Label: "Depth", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v.cfg.DepthOfField, 'f', -1, 64), Description: "maximum ray length in tiles"},
				{Key: "fisheye", Label: "Fisheye fix", Type: core.ParamTypeBool, Value: boolValue(v.cfg.Fisheye), Description: "project ray lengths onto the view direction"},
			},
		},
		{
			Name: "Pose",
			Params: []core.Parameter{
				{Key: "x", Label: "X", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v.pos.X, 'f', 2, 64)},
				{Key: "y", Label: "Y", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v.pos.Y, 'f', 2, 64)},
				{Key: "angle", Label: "Angle", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v.angle, 'f', 3, 64)},
			},
		},
	}}
}

// ParameterControls lists the settings adjustable from the HUD.
func (v *Viewer) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "fov", Label: "FOV", Type: core.ParamTypeFloat, Step: 5, Min: minFOV, Max: maxFOV, HasMin: true, HasMax: true},
		{Key: "dof", Label: "Depth", Type: core.ParamTypeFloat, Step: 1, Min: minDOF, Max: maxDOF, HasMin: true, HasMax: true},
		{Key: "fisheye", Label: "Fisheye fix", Type: core.ParamTypeBool, Step: 1, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a float setting, clamped to its bounds.
func (v *Viewer) SetFloatParameter(key string, value float64) bool {
	if math.IsNaN(value) {
		return false
	}
	switch key {
	case "fov":
		v.cfg.FOV = clamp(value, minFOV, maxFOV)
	case "dof":
		v.cfg.DepthOfField = clamp(value, minDOF, maxDOF)
	default:
		return false
	}
	return true
}

// SetIntParameter updates an int or bool setting.
func (v *Viewer) SetIntParameter(key string, value int) bool {
	switch key {
	case "fisheye":
		v.cfg.Fisheye = value != 0
	default:
		return false
	}
	return true
}

func boolValue(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
