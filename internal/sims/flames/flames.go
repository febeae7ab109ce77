// Package flames is the classic two-buffer fire effect: heat rises by
// averaging neighbours one row up, minus a scrolling Perlin cooling map.
package flames

import (
	"image/color"
	"math"

	perlin "github.com/aquilax/go-perlin"
	colorful "github.com/lucasb-eyer/go-colorful"

	"sandpiles/internal/core"
	"sandpiles/internal/render"
)

var palette = render.Gradient(256,
	colorful.Color{},
	colorful.Color{R: 0.8, G: 0.05, B: 0},
	colorful.Color{R: 1, G: 0.6, B: 0},
	colorful.Color{R: 1, G: 1, B: 0.4},
	colorful.Color{R: 1, G: 1, B: 1},
)

// Flames implements the fire effect.
type Flames struct {
	cfg  Config
	w, h int

	cur     []float64
	nxt     []float64
	cooling []float64
	display []uint8

	noise  *perlin.Perlin
	ystart float64
}

// New creates a fire effect with the provided dimensions.
func New(w, h int) *Flames {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig creates a fire effect from cfg and seeds it.
func NewWithConfig(cfg Config) *Flames {
	total := cfg.Width * cfg.Height
	f := &Flames{
		cfg:     cfg,
		w:       cfg.Width,
		h:       cfg.Height,
		cur:     make([]float64, total),
		nxt:     make([]float64, total),
		cooling: make([]float64, total),
		display: make([]uint8, total),
	}
	f.Reset(0)
	return f
}

// Name identifies the simulation.
func (f *Flames) Name() string { return "flames" }

// Size returns the grid dimensions.
func (f *Flames) Size() core.Size { return core.Size{W: f.w, H: f.h} }

// Cells exposes heat values scaled to 0..255.
func (f *Flames) Cells() []uint8 { return f.display }

// Palette implements core.PaletteProvider.
func (f *Flames) Palette() []color.RGBA { return palette }

// Cooling exposes the current cooling map (0..255 per pixel).
func (f *Flames) Cooling() []float64 { return f.cooling }

// Reset clears all heat and rebuilds the cooling map. A zero seed uses the
// configured one.
func (f *Flames) Reset(seed int64) {
	if seed == 0 {
		seed = f.cfg.Seed
	}
	f.noise = perlin.NewPerlin(2, 2, 3, seed)
	f.ystart = 0
	for i := range f.cur {
		f.cur[i] = 0
		f.nxt[i] = 0
		f.display[i] = 0
	}
	for y := 0; y < f.h; y++ {
		f.coolRow(y, f.ystart+float64(y+1)*f.cfg.Increment)
	}
}

// coolRow fills one row of the cooling map from noise at height yoff.
func (f *Flames) coolRow(y int, yoff float64) {
	xoff := 0.0
	row := f.cooling[y*f.w : (y+1)*f.w]
	for x := range row {
		xoff += f.cfg.Increment
		n := (f.noise.Noise2D(xoff, yoff) + 1) / 2
		n = math.Min(math.Max(n, 0), 1)
		row[x] = n * n * n * 255
	}
}

// scrollCooling moves the cooling map up one row and generates only the new
// bottom row, which is equivalent to regenerating the map one increment
// further along.
func (f *Flames) scrollCooling() {
	if f.h == 0 {
		return
	}
	f.ystart += f.cfg.Increment
	copy(f.cooling, f.cooling[f.w:])
	f.coolRow(f.h-1, f.ystart+float64(f.h)*f.cfg.Increment)
}

func (f *Flames) ignite() {
	rows := min(f.cfg.HotRows, f.h)
	for j := 0; j < rows; j++ {
		y := f.h - (j + 1)
		for x := 0; x < f.w; x++ {
			f.cur[y*f.w+x] = 255
		}
	}
}

// Step advances the fire by one frame.
func (f *Flames) Step() {
	if f.w < 3 || f.h < 3 {
		return
	}
	f.ignite()
	w := f.w
	for y := 1; y < f.h-1; y++ {
		for x := 1; x < w-1; x++ {
			i := y*w + x
			sum := f.cur[i+1] + f.cur[i-1] + f.cur[i+w] + f.cur[i-w]
			heat := sum*0.25 - f.cooling[i]
			f.nxt[i-w] = math.Min(math.Max(heat, 0), 255)
		}
	}
	f.scrollCooling()
	f.cur, f.nxt = f.nxt, f.cur
	for i, v := range f.cur {
		f.display[i] = uint8(v)
	}
}

func init() {
	core.Register("flames", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
