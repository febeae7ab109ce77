package flames

import "strconv"

// Config controls the fire effect.
type Config struct {
	Width  int
	Height int
	Seed   int64

	// Increment is the noise-space distance between neighbouring pixels
	// of the cooling map, and how far the map scrolls per step.
	Increment float64
	// HotRows is how many rows at the bottom are reignited every step.
	HotRows int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 300, Height: 200, Seed: 1337, Increment: 0.02, HotRows: 2}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 2 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 2 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["increment"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Increment = parsed
		}
	}
	if v, ok := cfg["hot_rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.HotRows = parsed
		}
	}
	return c
}
