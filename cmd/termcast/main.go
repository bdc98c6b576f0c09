package main

import (
	"flag"
	"log"
	"time"

	"raycaster/internal/app"
	"raycaster/internal/core"
	"raycaster/internal/viewer"

	"github.com/gdamore/tcell/v2"
)

// keyRepeat is how many move or turn increments a single key event applies.
const keyRepeat = 3

func main() {
	cfg := app.NewConfig()
	cfg.TPS = 30
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	cfg.SetupLogging()

	v, err := cfg.NewViewer()
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("failed to create terminal screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("failed to init terminal screen: %v", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	if err := run(screen, v, core.NewFixedStep(cfg.TPS)); err != nil {
		screen.Fini()
		log.Fatal(err)
	}
}

// run drives the viewer from terminal input until the user quits.
func run(screen tcell.Screen, v *viewer.Viewer, pace *core.FixedStep) error {
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(pace.Interval())
	defer ticker.Stop()

	fit(screen, v)
	dirty := true
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				fit(screen, v)
				dirty = true
			case *tcell.EventKey:
				if !handleKey(v, ev) {
					return nil
				}
				dirty = true
			}
		case <-ticker.C:
			if dirty && pace.ShouldStep() {
				size := v.Size()
				drawFrame(screen, v.Frame(), size.W, size.H)
				screen.Show()
				dirty = false
			}
		}
	}
}

// fit sizes the view to the terminal: one pixel column per cell and two
// pixel rows per cell.
func fit(screen tcell.Screen, v *viewer.Viewer) {
	w, h := screen.Size()
	v.SetSize(w, 2*h)
}

// handleKey applies a key event to v and reports whether to keep running.
func handleKey(v *viewer.Viewer, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		v.Turn(keyRepeat)
	case tcell.KeyRight:
		v.Turn(-keyRepeat)
	case tcell.KeyUp:
		v.Move(keyRepeat, 0)
	case tcell.KeyDown:
		v.Move(-keyRepeat, 0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case 'a', 'A':
			v.Turn(keyRepeat)
		case 'd', 'D':
			v.Turn(-keyRepeat)
		case 'w', 'W':
			v.Move(keyRepeat, 0)
		case 's', 'S':
			v.Move(-keyRepeat, 0)
		case 'f', 'F':
			v.SetIntParameter("fisheye", fisheyeToggle(v))
		case 'r', 'R':
			v.Reset()
		}
	}
	return true
}

func fisheyeToggle(v *viewer.Viewer) int {
	if v.Config().Fisheye {
		return 0
	}
	return 1
}

// drawFrame writes an RGBA frame of w*h pixels to the screen, packing each
// pair of pixel rows into one upper-half-block cell.
func drawFrame(screen tcell.Screen, frame []byte, w, h int) {
	if len(frame) < 4*w*h {
		return
	}
	for cy := 0; 2*cy < h; cy++ {
		for x := 0; x < w; x++ {
			top := pixel(frame, w, x, 2*cy)
			bottom := tcell.ColorBlack
			if 2*cy+1 < h {
				bottom = pixel(frame, w, x, 2*cy+1)
			}
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			screen.SetContent(x, cy, '▀', nil, style)
		}
	}
}

func pixel(frame []byte, w, x, y int) tcell.Color {
	base := 4 * (y*w + x)
	return tcell.NewRGBColor(int32(frame[base]), int32(frame[base+1]), int32(frame[base+2]))
}
