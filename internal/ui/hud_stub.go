//go:build !ebiten

package ui

import (
	"sandpiles/internal/core"
	"sandpiles/internal/runstate"
)

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(*core.Runner, int) *HUD { return nil }

// StateChanged is a no-op in the headless build.
func (h *HUD) StateChanged(runstate.State, runstate.State) {}

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
