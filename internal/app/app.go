//go:build ebiten

package app

import (
	"raycaster/internal/render"
	"raycaster/internal/ui"
	"raycaster/internal/viewer"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	hudWidth        = 220
	minimapTileSize = 4
)

// Game adapts a viewer to the ebiten.Game interface.
type Game struct {
	viewer  *viewer.Viewer
	painter *render.FramePainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale int
}

// New constructs a Game drawing the viewer's frames at the given scale.
func New(v *viewer.Viewer, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := v.Size()
	return &Game{
		viewer:  v,
		painter: render.NewFramePainter(size.W, size.H),
		overlay: ui.NewOverlay(v, minimapTileSize),
		hud:     ui.NewHUD(v, hudWidth),
		scale:   scale,
	}
}

// Update handles keyboard input and moves the viewer.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.viewer.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.viewer.SetIntParameter("fisheye", boolInt(!g.viewer.Config().Fisheye))
	}

	var forward, strafe, turn float64
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		forward++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		forward--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		strafe++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		strafe--
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		turn++
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		turn--
	}
	if turn != 0 {
		g.viewer.Turn(turn)
	}
	if forward != 0 || strafe != 0 {
		g.viewer.Move(forward, strafe)
	}

	g.overlay.Update()
	g.hud.Update(g.viewWidth())
	return nil
}

// Draw renders the current frame, the minimap and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.viewer.Frame(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.viewWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewWidth() + g.hud.Width(), g.viewer.Size().H * g.scale
}

func (g *Game) viewWidth() int { return g.viewer.Size().W * g.scale }

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
