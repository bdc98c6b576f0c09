//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"raycaster/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	cfg.SetupLogging()

	v, err := cfg.NewViewer()
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(v, cfg.Scale)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("raycast: " + v.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
