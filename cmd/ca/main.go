//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"sandpiles/internal/app"
	"sandpiles/internal/core"
	_ "sandpiles/internal/sims/flames"
	_ "sandpiles/internal/sims/hilbert"
	_ "sandpiles/internal/sims/sandpiles"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %s)", cfg.Sim, strings.Join(core.Names(), ", "))
	}
	if cfg.Scale <= 0 {
		log.Fatalf("scale must be positive, got %d", cfg.Scale)
	}

	sim := factory(cfg.Overrides.Map())
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)
	if cfg.Running {
		game.Runner().Scheduler().Start()
	}
	size := sim.Size()

	ebiten.SetWindowTitle("sandpiles - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+max(cfg.HUDWidth, 0), size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
