package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"raycaster/internal/app"
	"raycaster/internal/render"
	"raycaster/pkg/raycast"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := app.NewConfig()
	cfg.Scale = 1
	cfg.Bind(flag.CommandLine)
	out := flag.String("out", "frame.png", "output PNG path; numbered when -frames > 1")
	frames := flag.Int("frames", 1, "number of frames in a full turn around the spawn point")
	workers := flag.Int("workers", runtime.NumCPU(), "number of frames rendered concurrently")
	minimap := flag.String("minimap", "", "optional PNG path for a top-down map with the viewer marked")
	flag.Parse()
	cfg.SetupLogging()

	v, err := cfg.NewViewer()
	if err != nil {
		log.Fatal(err)
	}
	lvl := v.Level()
	view := v.View()

	if *minimap != "" {
		buf := render.MinimapRGBA(lvl.Map, color.White, color.Black)
		render.MarkRGBA(buf, lvl.Map.Width(), lvl.Map.Height(), v.Position(), color.RGBA{R: 255, A: 255})
		img := rgbaImage(buf, lvl.Map.Width(), lvl.Map.Height())
		if err := writePNG(*minimap, upscale(img, max(cfg.Scale, 4))); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote minimap %s", *minimap)
	}

	start := time.Now()
	if err := renderTurn(context.Background(), lvl.Map, view, *frames, *workers, cfg.Scale, *out); err != nil {
		log.Fatal(err)
	}
	log.Printf("rendered %d frame(s) of %s (%dx%d) in %s", max(*frames, 1), v.Name(), view.ScreenWidth, view.ScreenHeight, time.Since(start).Round(time.Millisecond))
}

// renderTurn renders n views evenly spaced over a full turn starting at the
// base view's angle, at most workers at a time.
func renderTurn(ctx context.Context, m *raycast.Map, base raycast.View, n, workers, scale int, out string) error {
	if n < 1 {
		n = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			view := base
			view.Angle = raycast.NormalizeAngle(base.Angle + 2*math.Pi*float64(i)/float64(n))
			frame := raycast.RenderMap(m, view)
			img := upscale(rgbaImage(frame, view.ScreenWidth, view.ScreenHeight), scale)
			path := out
			if n > 1 {
				path = framePath(out, i)
			}
			return writePNG(path, img)
		})
	}
	return g.Wait()
}

// framePath inserts a zero-padded frame index before the extension.
func framePath(out string, i int) string {
	ext := filepath.Ext(out)
	return fmt.Sprintf("%s_%03d%s", strings.TrimSuffix(out, ext), i, ext)
}

func rgbaImage(buf []byte, w, h int) *image.RGBA {
	return &image.RGBA{Pix: buf, Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}
}

func upscale(src *image.RGBA, scale int) *image.RGBA {
	if scale <= 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
