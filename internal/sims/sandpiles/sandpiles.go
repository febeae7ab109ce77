// Package sandpiles drives a sandpile.Grid as a registered sim: each tick
// drops grains once the previous cascade has settled and then topples within
// a per-tick budget, so large avalanches spread over several frames.
package sandpiles

import (
	"fmt"
	"image"
	"image/color"

	"sandpiles/internal/core"
	"sandpiles/internal/render"
	"sandpiles/internal/sandpile"
)

// maxShade is the display value for piles holding four or more grains.
const maxShade = sandpile.Threshold

var palette = render.HexPalette(
	"#ffff00", // 0 grains
	"#00b93f", // 1
	"#0068ff", // 2
	"#7a00e5", // 3
	"#ff0000", // 4 or more, only visible mid-cascade
)

// Sim is the sandpile simulation.
type Sim struct {
	cfg  Config
	grid *sandpile.Grid
	view *core.ByteGrid

	settled     bool
	deferred    int
	lastTopples int
	err         error
}

// New returns a sandpile sim using defaults and the given viewport.
func New(w, h int) *Sim {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	s, err := NewWithConfig(cfg)
	if err != nil {
		panic(err)
	}
	return s
}

// NewWithConfig validates cfg and builds the sim. It fails with
// sandpile.ErrInvalidDimensions for a negative radius and
// sandpile.ErrOutOfBounds when the drop point lies outside the initial grid.
func NewWithConfig(cfg Config) (*Sim, error) {
	s := &Sim{cfg: cfg, view: core.NewByteGrid(cfg.Width, cfg.Height)}
	if err := s.rebuild(); err != nil {
		return nil, err
	}
	if _, ok := s.grid.Pile(cfg.DropX, cfg.DropY); !ok {
		return nil, fmt.Errorf("%w: drop point (%d,%d)", sandpile.ErrOutOfBounds, cfg.DropX, cfg.DropY)
	}
	return s, nil
}

func (s *Sim) rebuild() error {
	grid, err := sandpile.New(sandpile.Square(s.cfg.Radius), s.cfg.Policy)
	if err != nil {
		return err
	}
	s.grid = grid
	s.settled = true
	s.deferred = 0
	s.lastTopples = 0
	s.err = nil
	s.render()
	return nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "sandpiles" }

// Size returns the viewport dimensions.
func (s *Sim) Size() core.Size { return s.view.Size() }

// Cells exposes the rendered viewport: grain counts clamped to 4.
func (s *Sim) Cells() []uint8 { return s.view.Cells() }

// Palette implements core.PaletteProvider.
func (s *Sim) Palette() []color.RGBA { return palette }

// Grid exposes the underlying grid.
func (s *Sim) Grid() *sandpile.Grid { return s.grid }

// Config returns the active configuration.
func (s *Sim) Config() Config { return s.cfg }

// Settled reports whether the last tick drained the cascade.
func (s *Sim) Settled() bool { return s.settled }

// Deferred counts ticks whose drop was skipped because a cascade was still
// running.
func (s *Sim) Deferred() int { return s.deferred }

// LastTopples returns the number of topples performed by the last tick.
func (s *Sim) LastTopples() int { return s.lastTopples }

// Err returns the error of the last failed drop, cleared by Reset.
func (s *Sim) Err() error { return s.err }

// Reset replaces the grid with a fresh one. The seed is unused; sandpiles
// are deterministic. It panics if the configuration no longer builds a grid.
func (s *Sim) Reset(int64) {
	if err := s.rebuild(); err != nil {
		panic(err)
	}
}

// Step runs one tick of the drop-and-topple loop.
func (s *Sim) Step() {
	if s.grid.Settled() {
		if err := s.grid.Drop(s.cfg.Grains, s.cfg.DropX, s.cfg.DropY); err != nil {
			s.err = err
		}
	} else {
		s.deferred++
	}
	before := s.grid.Stats().Topples
	s.settled = s.grid.Topple(s.cfg.budget())
	s.lastTopples = s.grid.Stats().Topples - before
	s.render()
}

func (s *Sim) origin() (int, int) { return s.view.W / 2, s.view.H / 2 }

func (s *Sim) render() {
	s.view.Clear()
	ox, oy := s.origin()
	b := s.grid.Bounds()
	minX, maxX := max(b.MinX, -ox), min(b.MaxX, s.view.W-1-ox)
	minY, maxY := max(b.MinY, -oy), min(b.MaxY, s.view.H-1-oy)
	cells := s.view.Cells()
	for y := minY; y <= maxY; y++ {
		row := (y + oy) * s.view.W
		for x := minX; x <= maxX; x++ {
			p, _ := s.grid.Pile(x, y)
			cells[row+x+ox] = uint8(min(p.Grains, maxShade))
		}
	}
}

// Pending implements core.PendingProvider, returning the queued piles that
// fall inside the viewport.
func (s *Sim) Pending() []image.Point {
	ox, oy := s.origin()
	var out []image.Point
	for _, p := range s.grid.Pending() {
		vx, vy := p.X+ox, p.Y+oy
		if s.view.InBounds(vx, vy) {
			out = append(out, image.Pt(vx, vy))
		}
	}
	return out
}

func init() {
	core.Register("sandpiles", func(cfg map[string]string) core.Sim {
		s, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return New(DefaultConfig().Width, DefaultConfig().Height)
		}
		return s
	})
}
