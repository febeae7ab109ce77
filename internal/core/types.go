package core

import (
	"image"
	"image/color"
	"sort"
)

// Size describes the dimensions of a simulation viewport.
type Size struct {
	W int
	H int
}

// Sim defines the contract every registered simulation implements. Cells
// returns one byte per viewport pixel, row-major, interpreted through the
// sim's palette.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists the registered simulations in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PaletteProvider is implemented by sims whose cell values index a palette.
type PaletteProvider interface {
	Palette() []color.RGBA
}

// PendingProvider is implemented by sims that can report viewport cells with
// work still queued, for debugging overlays.
type PendingProvider interface {
	Pending() []image.Point
}
