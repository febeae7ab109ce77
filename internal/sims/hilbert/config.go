package hilbert

import "strconv"

// Config holds parameters for the Hilbert curve reveal.
type Config struct {
	// Order of the curve; the canvas is 2^(Order+1) pixels square.
	Order int
	// Speed is the initial number of path points revealed per step.
	Speed float64
	// SpeedMultiplier is applied each time the revealed span outgrows the
	// next curve order.
	SpeedMultiplier float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Order: 8, Speed: 0.03, SpeedMultiplier: 3}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["order"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 && parsed <= 10 {
			c.Order = parsed
		}
	}
	if v, ok := cfg["speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Speed = parsed
		}
	}
	if v, ok := cfg["speed_multiplier"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 1 {
			c.SpeedMultiplier = parsed
		}
	}
	return c
}
