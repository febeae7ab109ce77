package main

import (
	"fmt"
	"image/color"
	"strconv"
	"time"

	"sandpiles/internal/app"
	"sandpiles/internal/core"
	"sandpiles/internal/sims/sandpiles"

	"github.com/gdamore/tcell/v2"
)

const halfBlock = '▀'

// viewer draws a sim two pixels per terminal cell, the upper pixel as
// foreground of a half block and the lower as background.
type viewer struct {
	screen  tcell.Screen
	runner  *core.Runner
	host    *app.LoopHost
	pacer   *core.FixedStep
	colors  []tcell.Color
	seed    int64
	quit    bool
	overlay bool
}

func newViewer(screen tcell.Screen, sim core.Sim, tps int, seed int64) *viewer {
	host := &app.LoopHost{}
	v := &viewer{
		screen: screen,
		runner: core.NewRunner(sim, host),
		host:   host,
		pacer:  core.NewFixedStep(tps),
		seed:   seed,
	}
	if p, ok := sim.(core.PaletteProvider); ok {
		v.colors = tcellPalette(p.Palette())
	} else {
		v.colors = []tcell.Color{tcell.ColorBlack, tcell.ColorWhite}
	}
	return v
}

func tcellPalette(p []color.RGBA) []tcell.Color {
	out := make([]tcell.Color, len(p))
	for i, c := range p {
		out[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return out
}

func (v *viewer) color(value uint8) tcell.Color {
	if len(v.colors) == 0 {
		return tcell.ColorBlack
	}
	return v.colors[min(int(value), len(v.colors)-1)]
}

func (v *viewer) handleKey(ev *tcell.EventKey) {
	sched := v.runner.Scheduler()
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.quit = true
		return
	case tcell.KeyEnter:
		sched.Start()
		return
	case tcell.KeyRune:
	default:
		return
	}
	switch ev.Rune() {
	case 'q', 'Q':
		v.quit = true
	case ' ':
		sched.Toggle()
	case 'n', 'N':
		sched.SingleStep()
	case 'r', 'R':
		v.runner.Reset(v.seed)
	case 's', 'S':
		v.seed = time.Now().UnixNano()
		v.runner.Reset(v.seed)
	case '1':
		v.overlay = !v.overlay
	}
}

// frame is called on every loop tick and reports whether the sim advanced.
func (v *viewer) frame() bool {
	if !v.pacer.ShouldStep() {
		return false
	}
	if !v.host.Take() {
		return false
	}
	return v.runner.Tick()
}

// crop returns the first sim pixel shown so that the visible window is
// centred on the sim viewport.
func crop(simW, simH, cols, rows int) (int, int) {
	return max((simW-cols)/2, 0), max((simH-2*rows)/2, 0)
}

func (v *viewer) draw() {
	v.screen.Clear()
	cols, rows := v.screen.Size()
	rows-- // status line
	if rows <= 0 || cols <= 0 {
		v.screen.Show()
		return
	}

	sim := v.runner.Sim()
	size := sim.Size()
	cells := sim.Cells()
	x0, y0 := crop(size.W, size.H, cols, rows)
	pending := v.pendingSet(size.W)

	for row := 0; row < rows; row++ {
		top := y0 + 2*row
		if top >= size.H {
			break
		}
		for col := 0; col < cols; col++ {
			x := x0 + col
			if x >= size.W {
				break
			}
			i := top*size.W + x
			fg := v.pixel(cells, pending, i)
			bg := tcell.ColorBlack
			if top+1 < size.H {
				bg = v.pixel(cells, pending, i+size.W)
			}
			v.screen.SetContent(col, row, halfBlock, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
	}
	v.drawStatus(rows, cols)
	v.screen.Show()
}

func (v *viewer) pixel(cells []uint8, pending map[int]struct{}, i int) tcell.Color {
	if _, ok := pending[i]; ok {
		return tcell.ColorWhite
	}
	return v.color(cells[i])
}

func (v *viewer) pendingSet(w int) map[int]struct{} {
	if !v.overlay {
		return nil
	}
	provider, ok := v.runner.Sim().(core.PendingProvider)
	if !ok {
		return nil
	}
	pts := provider.Pending()
	set := make(map[int]struct{}, len(pts))
	for _, p := range pts {
		set[p.Y*w+p.X] = struct{}{}
	}
	return set
}

func (v *viewer) status() string {
	fps := "--"
	if rate, ok := v.runner.FrameRate(); ok {
		fps = strconv.FormatFloat(rate, 'f', 1, 64)
	}
	line := fmt.Sprintf(" %s | %s | fps %s | step %d", v.runner.Sim().Name(), v.runner.Scheduler().State(), fps, v.runner.Steps())
	if s, ok := v.runner.Sim().(*sandpiles.Sim); ok {
		b := s.Grid().Bounds()
		line += fmt.Sprintf(" | bounds x[%d,%d] y[%d,%d] | grains %d | deferred %d", b.MinX, b.MaxX, b.MinY, b.MaxY, s.Grid().Total(), s.Deferred())
		if err := s.Err(); err != nil {
			line += " | " + err.Error()
		}
	}
	return line + " | space run/stop  n step  r reset  1 queue  q quit"
}

func (v *viewer) drawStatus(y, cols int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray)
	x := 0
	for _, r := range v.status() {
		if x >= cols {
			break
		}
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < cols; x++ {
		v.screen.SetContent(x, y, ' ', nil, style)
	}
}
