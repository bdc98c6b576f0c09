//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// FramePainter uploads RGBA frames into a single ebiten image.
type FramePainter struct {
	w, h int
	img  *ebiten.Image
}

// NewFramePainter allocates a painter for frames of size w*h.
func NewFramePainter(w, h int) *FramePainter {
	return &FramePainter{w: w, h: h, img: ebiten.NewImage(max(w, 1), max(h, 1))}
}

// Blit uploads frame and draws it scaled onto dst. Frames of the wrong size
// are skipped.
func (fp *FramePainter) Blit(dst *ebiten.Image, frame []byte, scale int) {
	if len(frame) != 4*fp.w*fp.h || len(frame) == 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	fp.img.WritePixels(frame)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(fp.img, op)
}
