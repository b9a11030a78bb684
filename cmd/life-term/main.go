package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"conway/internal/app"
	"conway/internal/config"
	"conway/internal/render"
	"conway/pkg/pattern"
)

func main() {
	cfg := config.NewConfig()
	cfg.Width, cfg.Height = 60, 30
	path := flag.String("config", "", "optional JSON config file")
	limit := flag.Int("generations", 0, "stop after this many generations (0 runs until interrupted)")
	list := flag.Bool("list", false, "list available patterns and exit")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if *list {
		fmt.Println(strings.Join(pattern.Names(), "\n"))
		return
	}
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
	session := app.NewSession(ctrl, nil)
	renderer := render.NewTerminalRenderer(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tps := cfg.TPS
	if tps <= 0 {
		tps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	start := time.Now()
	session.Frame(start)
	draw := func() {
		if err := renderer.Clear(); err != nil {
			log.Fatal(err)
		}
		if err := renderer.Display(ctrl.Snapshot()); err != nil {
			log.Fatal(err)
		}
	}
	draw()

	for {
		select {
		case <-ctx.Done():
			fmt.Println("\nShutting down...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				ctrl.Generation(), time.Since(start).Seconds())
			return
		case now := <-ticker.C:
			if session.Frame(now) == 0 {
				continue
			}
			draw()
			if *limit > 0 && ctrl.Generation() >= *limit {
				fmt.Printf("\nReached generation limit (%d)\n", *limit)
				return
			}
		}
	}
}
