package sandpiles

import (
	"strconv"

	"sandpiles/internal/sandpile"
)

// Config controls the sandpile sim.
type Config struct {
	// Viewport dimensions; the origin is drawn at the centre.
	Width  int
	Height int

	// Radius is the initial symmetric extent of the grid around the origin.
	Radius int
	Policy sandpile.Policy

	// Grains dropped per tick, only once the previous cascade has settled.
	Grains int
	// MaxOperations bounds the piles processed per tick; zero or negative
	// means unbounded.
	MaxOperations int

	DropX int
	DropY int
}

// DefaultConfig is a single expanding pile fed one
// grain per frame.
func DefaultConfig() Config {
	return Config{
		Width:         600,
		Height:        600,
		Radius:        0,
		Policy:        sandpile.Expanding,
		Grains:        1,
		MaxOperations: 20000,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Invalid values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Radius = parsed
		}
	}
	if v, ok := cfg["policy"]; ok {
		if parsed, ok := sandpile.ParsePolicy(v); ok {
			c.Policy = parsed
		}
	}
	if v, ok := cfg["grains"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Grains = parsed
		}
	}
	if v, ok := cfg["max_ops"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.MaxOperations = parsed
		}
	}
	if v, ok := cfg["drop_x"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && abs(parsed) <= c.Radius {
			c.DropX = parsed
		}
	}
	if v, ok := cfg["drop_y"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && abs(parsed) <= c.Radius {
			c.DropY = parsed
		}
	}
	return c
}

func (c Config) budget() int {
	if c.MaxOperations <= 0 {
		return sandpile.Unbounded
	}
	return c.MaxOperations
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
