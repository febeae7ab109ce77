//go:build ebiten

package app

import (
	"image/color"
	"time"

	"sandpiles/internal/core"
	"sandpiles/internal/render"
	"sandpiles/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	runner  *core.Runner
	host    *LoopHost
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	palette []color.RGBA

	onColor  color.Color
	offColor color.Color

	scale    int
	hudWidth int
	seed     int64
}

// New constructs a Game for the provided simulation. The scheduler starts
// stopped; call Runner().Scheduler().Start() to run.
func New(sim core.Sim, cfg *Config) *Game {
	host := &LoopHost{}
	runner := core.NewRunner(sim, host)
	size := sim.Size()
	g := &Game{
		runner:   runner,
		host:     host,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim, cfg.Scale),
		hud:      ui.NewHUD(runner, cfg.HUDWidth),
		onColor:  color.White,
		offColor: color.Black,
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
		seed:     cfg.Seed,
	}
	if p, ok := sim.(core.PaletteProvider); ok {
		g.palette = p.Palette()
	}
	return g
}

// Runner exposes the tick-loop context.
func (g *Game) Runner() *core.Runner { return g.runner }

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.runner.Reset(seed)
}

// Update handles per-frame input and advances the simulation when the
// scheduler allows it.
func (g *Game) Update() error {
	sched := g.runner.Scheduler()
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		sched.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		sched.Start()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		sched.SingleStep()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()
	g.hud.Update(g.simWidth())

	if g.host.Take() {
		g.runner.Tick()
	}
	return nil
}

func (g *Game) simWidth() int { return g.runner.Sim().Size().W * g.scale }

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.runner.Sim().Cells(), g.palette, g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.simWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.runner.Sim().Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
