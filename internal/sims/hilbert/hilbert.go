// Package hilbert animates a Hilbert curve being drawn outward from a point
// one third of the way along it, speeding up as the drawn span grows.
package hilbert

import (
	"image"
	"image/color"

	"sandpiles/internal/core"
	"sandpiles/internal/render"
)

var palette = render.HueRamp(256, color.RGBA{A: 255})

var corners = [4]image.Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}}

// Point maps index i of an order-n Hilbert curve to its cell coordinates in
// a 2^n square.
func Point(i, order int) image.Point {
	v := corners[i&3]
	n := 1
	for j := 1; j < order; j++ {
		i >>= 2
		n *= 2
		switch i & 3 {
		case 0:
			v.X, v.Y = v.Y, v.X
		case 1:
			v.Y += n
		case 2:
			v.X += n
			v.Y += n
		case 3:
			v.X, v.Y = n-1-v.Y+n, n-1-v.X
		}
	}
	return v
}

// Curve reveals the path of one Hilbert curve.
type Curve struct {
	cfg   Config
	path  []image.Point
	start int
	view  *core.ByteGrid

	counter float64
	speed   float64
	level   int
	done    bool
}

// New creates a curve of the given order with default speeds.
func New(order int) *Curve {
	cfg := DefaultConfig()
	cfg.Order = order
	return NewWithConfig(cfg)
}

// NewWithConfig precomputes the path for cfg.Order.
func NewWithConfig(cfg Config) *Curve {
	if cfg.Order < 1 {
		cfg.Order = 1
	}
	side := 1 << cfg.Order
	total := side * side
	c := &Curve{
		cfg:   cfg,
		path:  make([]image.Point, total),
		start: total / 3,
		view:  core.NewByteGrid(2*side, 2*side),
	}
	for i := range c.path {
		c.path[i] = Point(i, cfg.Order)
	}
	c.Reset(0)
	return c
}

// Name returns the simulation identifier.
func (c *Curve) Name() string { return "hilbert" }

// Size returns the canvas dimensions.
func (c *Curve) Size() core.Size { return c.view.Size() }

// Cells exposes the canvas; drawn pixels hold a hue index 1..255.
func (c *Curve) Cells() []uint8 { return c.view.Cells() }

// Palette implements core.PaletteProvider.
func (c *Curve) Palette() []color.RGBA { return palette }

// Done reports whether the whole curve has been drawn.
func (c *Curve) Done() bool { return c.done }

// Reset clears the canvas and restarts the animation.
func (c *Curve) Reset(int64) {
	c.view.Clear()
	c.counter = 0
	c.speed = c.cfg.Speed
	c.level = 0
	c.done = false
}

// Step reveals the next stretch of the curve in both directions: forward
// at full speed, backward at half.
func (c *Curve) Step() {
	if c.done {
		return
	}
	total := len(c.path)
	next := c.counter + c.speed
	cur, nxt := int(c.counter), int(next)
	c.counter = next

	from := max(0, c.start-nxt/2)
	to := max(0, c.start-cur/2+1)
	c.drawSection(from, to)
	earliest := from

	from = min(total, c.start+cur)
	to = min(total, c.start+nxt+1)
	c.drawSection(from, to)

	if to-earliest > c.levelTotal() && c.level < c.cfg.Order-1 {
		c.level++
		c.speed *= c.cfg.SpeedMultiplier
	}
	if earliest == 0 && to == total {
		c.done = true
	}
}

// levelTotal is the number of points in the curve order currently framing
// the animation.
func (c *Curve) levelTotal() int {
	n := 2 << c.level
	return n * n
}

func (c *Curve) drawSection(from, to int) {
	if from >= to || from >= len(c.path) {
		return
	}
	c.plot(from)
	for i := from + 1; i < to; i++ {
		c.plot(i)
		a, b := c.path[i-1], c.path[i]
		c.view.Set(a.X+b.X, a.Y+b.Y, c.hue(i))
	}
}

func (c *Curve) plot(i int) {
	p := c.path[i]
	c.view.Set(2*p.X, 2*p.Y, c.hue(i))
}

func (c *Curve) hue(i int) uint8 {
	last := len(c.path) - 1
	if last <= 0 {
		return 1
	}
	return uint8(1 + i*254/last)
}

func init() {
	core.Register("hilbert", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
