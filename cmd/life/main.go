//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"conway/internal/app"
	"conway/internal/config"
	"conway/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := config.NewConfig()
	path := flag.String("config", "", "optional JSON config file")
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if *path != "" {
		if err := cfg.Load(*path); err != nil {
			log.Fatal(err)
		}
	}

	grid, err := cfg.NewGrid()
	if err != nil {
		log.Fatalf("initial grid: %v", err)
	}
	ctrl := cfg.NewController(grid)
	session := app.NewSession(ctrl, func(seed int64) (core.Pattern, error) {
		return cfg.InitialPattern(seed)
	})

	game := app.New(session, cfg.Scale, cfg.HUDWidth)
	size := ctrl.Size()

	ebiten.SetWindowTitle("Conway's Game of Life — " + cfg.Pattern)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
