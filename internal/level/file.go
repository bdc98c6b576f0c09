package level

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"raycaster/internal/core"
	"raycaster/pkg/raycast"
)

// File is the on-disk JSON form of a level.
type File struct {
	Name  string   `json:"name"`
	Rows  []string `json:"rows"`
	Spawn struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	} `json:"spawn"`
	Angle float64 `json:"angle"`
}

// Load reads a JSON level file.
func Load(path string) (core.Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return core.Level{}, fmt.Errorf("failed to read level file %s: %w", path, err)
	}
	defer f.Close()
	lvl, err := Decode(f)
	if err != nil {
		return core.Level{}, fmt.Errorf("invalid level file %s: %w", path, err)
	}
	return lvl, nil
}

// Decode parses a JSON level from r.
func Decode(r io.Reader) (core.Level, error) {
	var data File
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return core.Level{}, fmt.Errorf("failed to parse level: %w", err)
	}
	if len(data.Rows) == 0 {
		return core.Level{}, fmt.Errorf("level %q has no rows", data.Name)
	}
	name := data.Name
	if name == "" {
		name = "untitled"
	}
	return FromRows(name, data.Rows, raycast.Vec2{X: data.Spawn.X, Y: data.Spawn.Y}, data.Angle)
}
