package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strconv"
	"strings"
	"time"

	"sandpiles/internal/app"
	"sandpiles/internal/sims/sandpiles"

	"github.com/guptarohit/asciigraph"
)

func parseInts(s string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", field, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func main() {
	ticks := flag.Int("ticks", 2000, "ticks to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	grainsFlag := flag.String("grains", "1,4,16,64", "comma-separated grains-per-tick options")
	opsFlag := flag.String("max-ops", "0,100,1000,20000", "comma-separated per-tick topple budgets, 0 for unbounded")
	top := flag.Int("top", 5, "number of results to print")
	var overrides app.Overrides
	flag.Var(&overrides, "set", "base sandpile parameter in key=value form (repeatable)")
	flag.Parse()

	grains, err := parseInts(*grainsFlag)
	if err != nil {
		log.Fatalf("grains: %v", err)
	}
	maxOps, err := parseInts(*opsFlag)
	if err != nil {
		log.Fatalf("max-ops: %v", err)
	}

	base := sandpiles.FromMap(overrides.Map())
	if _, err := sandpiles.NewWithConfig(base); err != nil {
		log.Fatalf("invalid base config: %v", err)
	}

	sets := buildSets(grains, maxOps)
	fmt.Printf("Sweeping %d parameter sets (%d workers, %d ticks, %s policy)\n", len(sets), *workers, *ticks, base.Policy)

	start := time.Now()
	all := sweep(base, sets, *ticks, *workers)
	elapsed := time.Since(start)

	fmt.Printf("\nTop %d results (elapsed %s):\n", min(*top, len(all)), elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		res := all[i]
		if res.err != nil {
			log.Printf("%s: %v", res.params, res.err)
			continue
		}
		fmt.Printf("%2d) landed=%d deferred=%d topples=%d peak=%d extent=[%d..%d]x[%d..%d] settled=%t %s\n",
			i+1, res.landed(), res.deferred, res.topples, res.peak,
			res.extent.MinX, res.extent.MaxX, res.extent.MinY, res.extent.MaxY, res.settled, res.params)
	}

	if len(all) == 0 || all[0].err != nil || len(all[0].history) == 0 {
		return
	}
	best := all[0]
	fmt.Println()
	fmt.Println(asciigraph.Plot(downsample(best.history, 72),
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption("topples per tick, "+best.params.String())))
}
