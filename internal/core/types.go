package core

import (
	"sort"

	"raycaster/pkg/raycast"
)

// Size describes the dimensions of a frame in pixels.
type Size struct {
	W int
	H int
}

// Level is a map together with the viewer's starting pose.
type Level struct {
	Name  string
	Map   *raycast.Map
	Spawn raycast.Vec2
	Angle float64
}

// Factory constructs a Level using an optional configuration map.
type Factory func(cfg map[string]string) (Level, error)

var levels = map[string]Factory{}

// Register adds a level factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	levels[name] = f
}

// Levels exposes the registry of available level factories.
func Levels() map[string]Factory {
	return levels
}

// LevelNames returns the registered level names in sorted order.
func LevelNames() []string {
	names := make([]string, 0, len(levels))
	for name := range levels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
