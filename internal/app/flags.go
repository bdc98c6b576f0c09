package app

import (
	"flag"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"raycaster/internal/core"
	"raycaster/internal/level"
	"raycaster/internal/viewer"
	"raycaster/pkg/raycast"
)

// Config represents the command-line parameters shared by the viewers.
type Config struct {
	Level   string
	MapFile string
	Options Options
	Seed    int64
	Width   int
	Height  int
	Scale   int
	TPS     int
	FOV     float64
	DOF     float64
	Fisheye bool
	Verbose bool
}

// Options collects repeated key=value level options.
type Options map[string]string

func (o Options) String() string {
	parts := make([]string, 0, len(o))
	for k, v := range o {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

// Set parses a single key=value pair.
func (o Options) Set(s string) error {
	k, v, ok := strings.Cut(s, "=")
	if !ok || k == "" {
		return fmt.Errorf("option %q is not key=value", s)
	}
	o[k] = v
	return nil
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	vc := viewer.DefaultConfig()
	return &Config{
		Level:   "arena",
		Options: Options{},
		Seed:    1,
		Width:   vc.Width,
		Height:  vc.Height,
		Scale:   3,
		TPS:     60,
		FOV:     vc.FOV,
		DOF:     vc.DepthOfField,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Level, "level", c.Level, "built-in level to load ("+strings.Join(core.LevelNames(), ", ")+")")
	fs.StringVar(&c.MapFile, "map", c.MapFile, "JSON level file; overrides -level")
	fs.Var(c.Options, "opt", "level option key=value (repeatable)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for generated levels")
	fs.IntVar(&c.Width, "w", c.Width, "frame width in pixels")
	fs.IntVar(&c.Height, "h", c.Height, "frame height in pixels")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Float64Var(&c.FOV, "fov", c.FOV, "field of view in degrees")
	fs.Float64Var(&c.DOF, "dof", c.DOF, "depth of field in tiles")
	fs.BoolVar(&c.Fisheye, "fisheye", c.Fisheye, "correct fish-eye distortion")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log renderer diagnostics")
}

// ViewerConfig converts the flags into viewer settings.
func (c *Config) ViewerConfig() viewer.Config {
	vc := viewer.DefaultConfig()
	vc.Width = c.Width
	vc.Height = c.Height
	vc.FOV = c.FOV
	vc.DepthOfField = c.DOF
	vc.Fisheye = c.Fisheye
	return vc
}

// SetupLogging routes renderer diagnostics to the default slog logger at
// debug level when -v is set. It is a no-op otherwise.
func (c *Config) SetupLogging() {
	if !c.Verbose {
		return
	}
	raycast.SetLogger(slog.Default())
	slog.SetLogLoggerLevel(slog.LevelDebug)
}

// LoadLevel resolves the configured level from a file or the registry.
func (c *Config) LoadLevel() (core.Level, error) {
	if c.MapFile != "" {
		return level.Load(c.MapFile)
	}
	factory, ok := core.Levels()[c.Level]
	if !ok {
		return core.Level{}, fmt.Errorf("unknown level %q (available: %s)", c.Level, strings.Join(core.LevelNames(), ", "))
	}
	opts := map[string]string{"seed": strconv.FormatInt(c.Seed, 10)}
	for k, v := range c.Options {
		opts[k] = v
	}
	return factory(opts)
}

// NewViewer loads the configured level and places a viewer in it.
func (c *Config) NewViewer() (*viewer.Viewer, error) {
	lvl, err := c.LoadLevel()
	if err != nil {
		return nil, err
	}
	return viewer.New(lvl, c.ViewerConfig()), nil
}
