package sandpile

// expand grows the grid by one ring of empty piles in direction d and
// updates the matching bound.
func (g *Grid) expand(d Direction) {
	switch d {
	case North:
		g.growRows(true)
		g.dims.MinY--
	case South:
		g.growRows(false)
		g.dims.MaxY++
	case West:
		g.growColumns(true)
		g.dims.MinX--
	case East:
		g.growColumns(false)
		g.dims.MaxX++
	default:
		return
	}
	g.stats.Expansions++
}

// growRows adds an empty row above (before) or below the existing ones.
func (g *Grid) growRows(before bool) {
	if !before {
		g.grains = append(g.grains, make([]int, g.w)...)
		g.h++
		return
	}
	next := make([]int, g.w*(g.h+1))
	copy(next[g.w:], g.grains)
	g.grains = next
	g.h++
}

// growColumns adds an empty column west (before) or east of the existing ones.
func (g *Grid) growColumns(before bool) {
	w := g.w + 1
	next := make([]int, w*g.h)
	offset := 0
	if before {
		offset = 1
	}
	for y := 0; y < g.h; y++ {
		copy(next[y*w+offset:], g.grains[y*g.w:(y+1)*g.w])
	}
	g.grains = next
	g.w = w
}
