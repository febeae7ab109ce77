//go:build ebiten

package ui

import (
	"image/color"

	"sandpiles/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var pendingTint = color.RGBA{R: 255, G: 255, B: 255, A: 160}

// Overlay draws optional debugging visuals on top of the base simulation.
// Key 1 toggles the highlight of cells queued for toppling.
type Overlay struct {
	sim         core.Sim
	scale       int
	showPending bool
	pixel       *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update allows the overlay to update internal state.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showPending = !o.showPending
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showPending {
		return
	}
	provider, ok := o.sim.(core.PendingProvider)
	if !ok {
		return
	}
	s := float64(o.scale)
	for _, p := range provider.Pending() {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(s, s)
		op.GeoM.Translate(float64(p.X)*s, float64(p.Y)*s)
		op.ColorScale.ScaleWithColor(pendingTint)
		screen.DrawImage(o.pixel, op)
	}
}
