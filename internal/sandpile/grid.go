// Package sandpile implements the abelian sandpile toppling engine: a
// rectangular grid of piles around an origin, grain drops, and a budgeted
// chip-firing cascade that can be resumed across calls.
//
// Piles are stored in a row-major arena indexed by coordinate arithmetic, so
// neighbour links never need maintaining; growing the grid re-lays the arena.
package sandpile

import (
	"fmt"
)

// Unbounded disables the operation budget of Topple.
const Unbounded = -1

// Threshold is the grain count at which a pile topples.
const Threshold = 4

// Grid owns every pile of a sandpile and the pending cascade.
type Grid struct {
	policy Policy
	dims   Dimensions
	w, h   int
	grains []int

	work  workSet
	stats Stats
}

// New builds a grid covering dims with all piles empty. It returns
// ErrInvalidDimensions when dims does not contain the origin.
func New(dims Dimensions, policy Policy) (*Grid, error) {
	if !dims.Valid() {
		return nil, fmt.Errorf("%w: x=[%d,%d] y=[%d,%d]", ErrInvalidDimensions, dims.MinX, dims.MaxX, dims.MinY, dims.MaxY)
	}
	w, h := dims.Width(), dims.Height()
	return &Grid{
		policy: policy,
		dims:   dims,
		w:      w,
		h:      h,
		grains: make([]int, w*h),
		work:   newWorkSet(),
	}, nil
}

// Policy returns the boundary policy chosen at construction.
func (g *Grid) Policy() Policy { return g.policy }

// Bounds returns the current extent of the grid.
func (g *Grid) Bounds() Dimensions { return g.dims }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Stats returns the counters accumulated since construction.
func (g *Grid) Stats() Stats { return g.stats }

func (g *Grid) index(x, y int) int {
	return (y-g.dims.MinY)*g.w + (x - g.dims.MinX)
}

// Pile returns the pile at (x,y), or false when the coordinate is outside
// the grid.
func (g *Grid) Pile(x, y int) (Pile, bool) {
	if !g.dims.Contains(x, y) {
		return Pile{}, false
	}
	return Pile{Point: Point{X: x, Y: y}, Grains: g.grains[g.index(x, y)]}, true
}

// Neighbor follows the link from (x,y) in direction d. It returns false at
// the edge of the grid or when (x,y) itself is outside it.
func (g *Grid) Neighbor(x, y int, d Direction) (Pile, bool) {
	if !g.dims.Contains(x, y) {
		return Pile{}, false
	}
	dx, dy := d.Offset()
	return g.Pile(x+dx, y+dy)
}

// Origin returns the pile at (0,0).
func (g *Grid) Origin() Pile {
	p, _ := g.Pile(0, 0)
	return p
}

// NorthWest returns the top-left corner pile.
func (g *Grid) NorthWest() Pile {
	p, _ := g.Pile(g.dims.MinX, g.dims.MinY)
	return p
}

// SouthEast returns the bottom-right corner pile.
func (g *Grid) SouthEast() Pile {
	p, _ := g.Pile(g.dims.MaxX, g.dims.MaxY)
	return p
}

// Walk visits every pile by following neighbour links: east along a row
// starting from the north-west corner, then south to the next row. It stops
// early when fn returns false.
func (g *Grid) Walk(fn func(Pile) bool) {
	row := g.NorthWest()
	for {
		p := row
		for {
			if !fn(p) {
				return
			}
			next, ok := g.Neighbor(p.X, p.Y, East)
			if !ok {
				break
			}
			p = next
		}
		below, ok := g.Neighbor(row.X, row.Y, South)
		if !ok {
			return
		}
		row = below
	}
}

// Total returns the number of grains currently on the grid.
func (g *Grid) Total() int {
	sum := 0
	for _, n := range g.grains {
		sum += n
	}
	return sum
}

// ToArray copies grain counts into rows ordered north to south, each row
// ordered west to east.
func (g *Grid) ToArray() [][]int {
	rows := make([][]int, g.h)
	for y := range rows {
		row := make([]int, g.w)
		copy(row, g.grains[y*g.w:(y+1)*g.w])
		rows[y] = row
	}
	return rows
}

// Drop adds grains to the pile at (x,y) and queues it for a toppling check
// without running the cascade. Negative counts are treated as zero.
func (g *Grid) Drop(grains, x, y int) error {
	if !g.dims.Contains(x, y) {
		return fmt.Errorf("%w: (%d,%d) outside x=[%d,%d] y=[%d,%d]", ErrOutOfBounds, x, y, g.dims.MinX, g.dims.MaxX, g.dims.MinY, g.dims.MaxY)
	}
	if grains < 0 {
		grains = 0
	}
	g.grains[g.index(x, y)] += grains
	g.stats.Drops++
	g.stats.GrainsAdded += grains
	g.work.push(Point{X: x, Y: y})
	return nil
}

// AddGrains drops grains at (x,y) and runs the cascade to completion.
func (g *Grid) AddGrains(grains, x, y int) error {
	if err := g.Drop(grains, x, y); err != nil {
		return err
	}
	g.Topple(Unbounded)
	return nil
}

// Topple processes pending piles until the work-set is empty or
// maxOperations piles have been processed. A negative budget means no limit.
// It reports whether the grid is settled. Piles left pending stay queued for
// the next call.
func (g *Grid) Topple(maxOperations int) bool {
	for ops := 0; maxOperations < 0 || ops < maxOperations; ops++ {
		p, ok := g.work.pop()
		if !ok {
			return true
		}
		g.stats.Processed++
		g.checkForTopple(p)
	}
	return g.work.len() == 0
}

// Settled reports whether no pile is waiting for a toppling check.
func (g *Grid) Settled() bool { return g.work.len() == 0 }

// Pending returns the piles queued for a toppling check, oldest first.
func (g *Grid) Pending() []Point { return g.work.snapshot() }

// PendingLen returns the number of queued piles without copying them.
func (g *Grid) PendingLen() int { return g.work.len() }

func (g *Grid) checkForTopple(p Point) {
	i := g.index(p.X, p.Y)
	n := g.grains[i]
	if n < Threshold {
		return
	}
	per := n / Threshold
	g.grains[i] -= per * Threshold
	g.stats.Topples++
	for _, d := range Directions {
		dx, dy := d.Offset()
		q := Point{X: p.X + dx, Y: p.Y + dy}
		if !g.dims.Contains(q.X, q.Y) {
			if g.policy != Expanding {
				g.stats.GrainsLost += per
				continue
			}
			g.expand(d)
		}
		j := g.index(q.X, q.Y)
		g.grains[j] += per
		if g.grains[j] >= Threshold {
			g.work.push(q)
		}
	}
}
