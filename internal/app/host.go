package app

// LoopHost is the runstate.Host of a frame loop that calls Update on every
// frame regardless, such as ebiten or the terminal viewer. It records
// whether continuous ticking is on and whether a one-off tick was requested.
type LoopHost struct {
	looping bool
	redraw  bool
}

// Loop resumes continuous ticking.
func (h *LoopHost) Loop() { h.looping = true }

// NoLoop pauses continuous ticking.
func (h *LoopHost) NoLoop() { h.looping = false }

// Redraw requests a single tick.
func (h *LoopHost) Redraw() { h.redraw = true }

// Looping reports whether continuous ticking is on.
func (h *LoopHost) Looping() bool { return h.looping }

// Take reports whether this frame should tick, consuming a pending redraw.
func (h *LoopHost) Take() bool {
	if h.looping {
		h.redraw = false
		return true
	}
	if h.redraw {
		h.redraw = false
		return true
	}
	return false
}
