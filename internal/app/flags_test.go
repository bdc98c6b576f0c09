package app

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"raycaster/pkg/raycast"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{"-level", "maze", "-opt", "w=11", "-opt", "h=9", "-w", "64", "-h", "48", "-fov", "90", "-dof", "8", "-fisheye"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Level != "maze" || cfg.Options["w"] != "11" || cfg.Options["h"] != "9" {
		t.Fatalf("unexpected level config %+v", cfg)
	}
	vc := cfg.ViewerConfig()
	if vc.Width != 64 || vc.Height != 48 || vc.FOV != 90 || vc.DepthOfField != 8 || !vc.Fisheye {
		t.Fatalf("unexpected viewer config %+v", vc)
	}
}

func TestBadOptionRejected(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-opt", "novalue"}); err == nil {
		t.Fatal("expected error for option without '='")
	}
}

func TestNewViewerFromRegistry(t *testing.T) {
	cfg := NewConfig()
	cfg.Level = "maze"
	cfg.Options["w"] = "11"
	cfg.Options["h"] = "11"
	cfg.Width, cfg.Height = 16, 12
	v, err := cfg.NewViewer()
	if err != nil {
		t.Fatalf("new viewer: %v", err)
	}
	if v.Name() != "maze" {
		t.Fatalf("expected maze level, got %q", v.Name())
	}
	if got := len(v.Frame()); got != 4*16*12 {
		t.Fatalf("frame length %d", got)
	}
}

func TestUnknownLevel(t *testing.T) {
	cfg := NewConfig()
	cfg.Level = "nope"
	if _, err := cfg.LoadLevel(); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestMapFileOverridesLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "room.json")
	data := `{"name":"room","rows":["####","#..#","#..#","####"],"spawn":{"x":2.5,"y":2.5},"angle":0}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg := NewConfig()
	cfg.Level = "nope"
	cfg.MapFile = path
	lvl, err := cfg.LoadLevel()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if lvl.Name != "room" {
		t.Fatalf("expected room, got %q", lvl.Name)
	}
}

func TestLoadLevelLeavesLoggingAlone(t *testing.T) {
	before := raycast.Logger()
	cfg := NewConfig()
	cfg.Verbose = true
	if _, err := cfg.LoadLevel(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if raycast.Logger() != before {
		t.Fatal("loading a level changed the renderer logger")
	}
}

func TestSetupLogging(t *testing.T) {
	t.Cleanup(func() {
		raycast.SetLogger(nil)
		slog.SetLogLoggerLevel(slog.LevelInfo)
	})
	before := raycast.Logger()

	cfg := NewConfig()
	cfg.SetupLogging()
	if raycast.Logger() != before {
		t.Fatal("logging changed without -v")
	}

	cfg.Verbose = true
	cfg.SetupLogging()
	if raycast.Logger() != slog.Default() {
		t.Fatal("-v should route renderer logging to slog.Default")
	}
}
