//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"ca3d/internal/app"
	"ca3d/internal/sim"
)

func main() {
	cfg := sim.NewConfig()
	if err := cfg.FromEnv(); err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	scale := flag.Int("scale", 8, "pixel scale multiplier for the slice view")
	flag.Parse()
	cfg.Normalize()

	game := app.New(cfg, *scale)
	dims := game.Dims()

	ebiten.SetWindowTitle("ca3d")
	ebiten.SetWindowSize(dims.X*(*scale), dims.Y*(*scale))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
