//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"math"

	"raycaster/internal/render"
	"raycaster/internal/viewer"
	"raycaster/pkg/raycast"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	minimapWall  = color.RGBA{R: 200, G: 200, B: 210, A: 220}
	minimapFloor = color.RGBA{R: 20, G: 22, B: 28, A: 180}
	rayHit       = color.RGBA{R: 255, G: 200, B: 60, A: 220}
	rayMiss      = color.RGBA{R: 120, G: 120, B: 140, A: 160}
	playerColor  = color.RGBA{R: 240, G: 70, B: 70, A: 255}
)

// Overlay draws a top-down minimap of the level with the viewer's field of
// view. M toggles it.
type Overlay struct {
	viewer   *viewer.Viewer
	tileSize int
	visible  bool

	mapImg *ebiten.Image
	pixel  *ebiten.Image
}

// NewOverlay constructs an overlay drawing each map tile as tileSize pixels.
func NewOverlay(v *viewer.Viewer, tileSize int) *Overlay {
	if tileSize <= 0 {
		tileSize = 1
	}
	o := &Overlay{viewer: v, tileSize: tileSize, visible: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the visibility toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		o.visible = !o.visible
	}
}

// Draw renders the minimap onto the top-left corner of screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	m := o.viewer.Level().Map
	if m == nil || m.Width() == 0 || m.Height() == 0 {
		return
	}
	if o.mapImg == nil {
		o.mapImg = ebiten.NewImage(m.Width(), m.Height())
		o.mapImg.WritePixels(render.MinimapRGBA(m, minimapWall, minimapFloor))
	}
	ts := float64(o.tileSize)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(ts, ts)
	screen.DrawImage(o.mapImg, op)

	cfg := o.viewer.Config()
	pos := o.viewer.Position()
	angle := o.viewer.Angle()
	half := cfg.FOV * raycast.DegreesToRadians / 2
	px, py := pos.X*ts, pos.Y*ts
	for _, a := range []float64{angle + half, angle, angle - half} {
		a = raycast.NormalizeAngle(a)
		dist, cell := raycast.Caster{Origin: pos, Angle: a}.Cast(m, cfg.DepthOfField)
		col := rayMiss
		if cell == raycast.Wall {
			col = rayHit
		}
		ex := px + math.Cos(a)*dist*ts
		ey := py - math.Sin(a)*dist*ts
		o.drawLine(screen, px, py, ex, ey, 1, col)
	}
	o.drawPoint(screen, px, py, math.Max(3, ts*0.6), playerColor)

	status := fmt.Sprintf("x=%.2f y=%.2f a=%.0f", pos.X, pos.Y, angle/raycast.DegreesToRadians)
	text.Draw(screen, status, basicfont.Face7x13, 4, m.Height()*o.tileSize+14, color.White)
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 || thickness <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
