package main

import (
	"testing"

	"raycaster/internal/level"
	"raycaster/internal/viewer"

	"github.com/gdamore/tcell/v2"
)

func simScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(w, h)
	return s
}

func boxViewer(t *testing.T) *viewer.Viewer {
	t.Helper()
	lvl, err := level.Box()
	if err != nil {
		t.Fatalf("box: %v", err)
	}
	return viewer.New(lvl, viewer.DefaultConfig())
}

func TestDrawFramePacksRowPairs(t *testing.T) {
	s := simScreen(t, 2, 2)
	// 2x3 frame: rows red, green, blue.
	frame := []byte{
		255, 0, 0, 255, 255, 0, 0, 255,
		0, 255, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 0, 0, 255, 255,
	}
	drawFrame(s, frame, 2, 3)

	r, _, style, _ := s.GetContent(1, 0)
	fg, bg, _ := style.Decompose()
	if r != '▀' || fg != tcell.NewRGBColor(255, 0, 0) || bg != tcell.NewRGBColor(0, 255, 0) {
		t.Fatalf("cell (1,0) = %q fg=%v bg=%v", r, fg, bg)
	}
	_, _, style, _ = s.GetContent(0, 1)
	fg, bg, _ = style.Decompose()
	if fg != tcell.NewRGBColor(0, 0, 255) || bg != tcell.ColorBlack {
		t.Fatalf("cell (0,1) fg=%v bg=%v", fg, bg)
	}
}

func TestDrawFrameIgnoresShortBuffer(t *testing.T) {
	s := simScreen(t, 2, 1)
	drawFrame(s, make([]byte, 4), 2, 2)
	if r, _, _, _ := s.GetContent(0, 0); r == '▀' {
		t.Fatal("short frame should not be drawn")
	}
}

func TestFitUsesTwoRowsPerCell(t *testing.T) {
	s := simScreen(t, 40, 12)
	v := boxViewer(t)
	fit(s, v)
	if size := v.Size(); size.W != 40 || size.H != 24 {
		t.Fatalf("Size = %+v, want 40x24", size)
	}
}

func TestHandleKey(t *testing.T) {
	v := boxViewer(t)
	start := v.Angle()
	if !handleKey(v, tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)) {
		t.Fatal("turn key should keep running")
	}
	if v.Angle() == start {
		t.Fatal("expected 'a' to turn the viewer")
	}
	handleKey(v, tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if v.Position() == v.Level().Spawn {
		t.Fatal("expected up arrow to move the viewer")
	}
	handleKey(v, tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone))
	if !v.Config().Fisheye {
		t.Fatal("expected 'f' to enable fisheye correction")
	}
	handleKey(v, tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if v.Position() != v.Level().Spawn || v.Angle() != v.Level().Angle {
		t.Fatal("expected 'r' to reset the pose")
	}
	if handleKey(v, tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("'q' should quit")
	}
	if handleKey(v, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("Esc should quit")
	}
}
