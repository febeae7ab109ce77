package sandpiles

import (
	"fmt"

	"sandpiles/internal/core"
)

// Parameters implements core.ParameterProvider.
func (s *Sim) Parameters() core.ParameterSnapshot {
	b := s.grid.Bounds()
	stats := s.grid.Stats()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.StringParam("policy", "Policy", s.cfg.Policy.String()),
				core.StringParam("bounds", "Bounds", fmt.Sprintf("x[%d,%d] y[%d,%d]", b.MinX, b.MaxX, b.MinY, b.MaxY)),
				core.IntParam("total", "Grains on grid", s.grid.Total()),
			},
		},
		{
			Name: "Drops",
			Params: []core.Parameter{
				core.IntParam("grains", "Grains per tick", s.cfg.Grains),
				core.IntParam("max_ops", "Max topples per tick", s.cfg.MaxOperations),
				core.IntParam("drop_x", "Drop X", s.cfg.DropX),
				core.IntParam("drop_y", "Drop Y", s.cfg.DropY),
			},
		},
		{
			Name: "Cascade",
			Params: []core.Parameter{
				core.BoolParam("settled", "Settled", s.settled),
				core.IntParam("pending", "Pending piles", s.grid.PendingLen()),
				core.IntParam("last_topples", "Topples last tick", s.lastTopples),
				core.IntParam("topples", "Topples total", stats.Topples),
				core.IntParam("lost", "Grains lost", stats.GrainsLost),
				core.IntParam("deferred", "Deferred drops", s.deferred),
			},
		},
	}}
}

// ParameterControls implements core.ParameterControlsProvider.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "grains", Label: "Grains per tick", Step: 1, Min: 0, Max: 100},
		{Key: "max_ops", Label: "Max ops (0=inf)", Step: 1000, Min: 0, Max: 200000},
	}
}

// SetIntParameter implements core.IntParameterSetter. Drop coordinates are
// accepted only when they name an existing pile.
func (s *Sim) SetIntParameter(key string, value int) bool {
	switch key {
	case "grains":
		if value < 0 {
			return false
		}
		s.cfg.Grains = value
	case "max_ops":
		s.cfg.MaxOperations = value
	case "drop_x":
		if _, ok := s.grid.Pile(value, s.cfg.DropY); !ok || abs(value) > s.cfg.Radius {
			return false
		}
		s.cfg.DropX = value
	case "drop_y":
		if _, ok := s.grid.Pile(s.cfg.DropX, value); !ok || abs(value) > s.cfg.Radius {
			return false
		}
		s.cfg.DropY = value
	default:
		return false
	}
	return true
}
