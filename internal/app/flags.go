package app

import (
	"flag"
	"fmt"
	"strings"
)

// Overrides collects repeatable key=value flags passed to sim factories.
type Overrides []string

func (o *Overrides) String() string {
	return strings.Join(*o, ",")
}

// Set implements flag.Value.
func (o *Overrides) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("override %q must be key=value", value)
	}
	*o = append(*o, value)
	return nil
}

// Map converts the overrides into a sim configuration map. Later keys win.
func (o Overrides) Map() map[string]string {
	if len(o) == 0 {
		return nil
	}
	m := make(map[string]string, len(o))
	for _, kv := range o {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		m[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return m
}

// Config represents the command-line parameters for the viewers.
type Config struct {
	Sim       string
	Scale     int
	TPS       int
	Seed      int64
	Running   bool
	HUDWidth  int
	Overrides Overrides
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "sandpiles", Scale: 1, TPS: 60, Seed: 42, Running: true, HUDWidth: 240}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.BoolVar(&c.Running, "running", c.Running, "start running instead of paused")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel, 0 to hide")
	fs.Var(&c.Overrides, "set", "sim parameter override in key=value form (repeatable)")
}
