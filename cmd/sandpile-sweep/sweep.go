package main

import (
	"fmt"
	"sort"
	"sync"

	"sandpiles/internal/sandpile"
	"sandpiles/internal/sims/sandpiles"
)

type paramSet struct {
	grains int
	maxOps int
}

func (p paramSet) String() string {
	ops := "unbounded"
	if p.maxOps > 0 {
		ops = fmt.Sprint(p.maxOps)
	}
	return fmt.Sprintf("grains=%d max_ops=%s", p.grains, ops)
}

type scenarioResult struct {
	params   paramSet
	ticks    int
	deferred int
	added    int
	topples  int
	peak     int
	extent   sandpile.Dimensions
	settled  bool
	history  []float64
	err      error
}

// landed is the number of grains that made it onto the pile.
func (r scenarioResult) landed() int { return r.added }

func buildSets(grains, maxOps []int) []paramSet {
	sets := make([]paramSet, 0, len(grains)*len(maxOps))
	for _, g := range grains {
		for _, ops := range maxOps {
			sets = append(sets, paramSet{grains: g, maxOps: ops})
		}
	}
	return sets
}

func runScenario(base sandpiles.Config, params paramSet, ticks int) scenarioResult {
	cfg := base
	cfg.Grains = params.grains
	cfg.MaxOperations = params.maxOps
	// Only the grid matters here; keep the rendered viewport tiny.
	cfg.Width, cfg.Height = 1, 1

	res := scenarioResult{params: params, ticks: ticks}
	sim, err := sandpiles.NewWithConfig(cfg)
	if err != nil {
		res.err = err
		return res
	}

	res.history = make([]float64, 0, ticks)
	for i := 0; i < ticks; i++ {
		sim.Step()
		n := sim.LastTopples()
		res.history = append(res.history, float64(n))
		res.peak = max(res.peak, n)
	}

	stats := sim.Grid().Stats()
	res.deferred = sim.Deferred()
	res.added = stats.GrainsAdded
	res.topples = stats.Topples
	res.extent = sim.Grid().Bounds()
	res.settled = sim.Settled()
	return res
}

// sweep fans the parameter sets out to workers and returns the results
// ordered by grains landed, then by fewer deferred drops.
func sweep(base sandpiles.Config, sets []paramSet, ticks, workers int) []scenarioResult {
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(base, params, ticks)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].landed() != all[j].landed() {
			return all[i].landed() > all[j].landed()
		}
		if all[i].deferred != all[j].deferred {
			return all[i].deferred < all[j].deferred
		}
		return all[i].params.String() < all[j].params.String()
	})
	return all
}

// downsample reduces series to at most n points by taking bucket maxima, so
// avalanche spikes survive plotting.
func downsample(series []float64, n int) []float64 {
	if n <= 0 || len(series) <= n {
		return series
	}
	out := make([]float64, n)
	for i := range out {
		lo := i * len(series) / n
		hi := (i + 1) * len(series) / n
		m := series[lo]
		for _, v := range series[lo:hi] {
			m = max(m, v)
		}
		out[i] = m
	}
	return out
}
