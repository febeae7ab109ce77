package main

import (
	"flag"
	"log"
	"strconv"
	"strings"
	"time"

	"sandpiles/internal/app"
	"sandpiles/internal/core"
	_ "sandpiles/internal/sims/flames"
	_ "sandpiles/internal/sims/hilbert"
	_ "sandpiles/internal/sims/sandpiles"

	"github.com/gdamore/tcell/v2"
)

// simConfig fills the viewport keys from the terminal size unless the user
// set them explicitly.
func simConfig(overrides map[string]string, cols, rows int) map[string]string {
	cfg := map[string]string{
		"w": strconv.Itoa(max(cols, 1)),
		"h": strconv.Itoa(max(2*(rows-1), 1)),
	}
	for k, v := range overrides {
		cfg[k] = v
	}
	return cfg
}

// pumpEvents forwards terminal events until the screen is finalized.
func pumpEvents(screen tcell.Screen, events chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		events <- ev
	}
}

func main() {
	cfg := app.NewConfig()
	cfg.TPS = 30
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %s)", cfg.Sim, strings.Join(core.Names(), ", "))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("terminal init: %v", err)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.Clear()

	cols, rows := screen.Size()
	sim := factory(simConfig(cfg.Overrides.Map(), cols, rows))
	sim.Reset(cfg.Seed)

	v := newViewer(screen, sim, cfg.TPS, cfg.Seed)
	if cfg.Running {
		v.runner.Scheduler().Start()
	}

	events := make(chan tcell.Event)
	go pumpEvents(screen, events)

	ticker := time.NewTicker(v.pacer.Interval())
	defer ticker.Stop()

	v.draw()
	for !v.quit {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				v.draw()
			case *tcell.EventKey:
				v.handleKey(ev)
				v.draw()
			}
		case <-ticker.C:
			if v.frame() {
				v.draw()
			}
		}
	}
}
