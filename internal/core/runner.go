package core

import "sandpiles/internal/runstate"

// Runner is the per-session context owned by whatever drives the tick loop:
// the sim, the scheduler deciding whether a tick does work, and the frame
// rate estimator watching it.
type Runner struct {
	sim    Sim
	sched  *runstate.Scheduler
	frames *runstate.Estimator
	ticks  int
	steps  int
}

// NewRunner wires sim to a new stopped scheduler driving host.
func NewRunner(sim Sim, host runstate.Host) *Runner {
	sched := runstate.New(host)
	return &Runner{
		sim:    sim,
		sched:  sched,
		frames: runstate.NewEstimator(sched),
	}
}

// Sim returns the simulation being driven.
func (r *Runner) Sim() Sim { return r.sim }

// Scheduler returns the run-state machine.
func (r *Runner) Scheduler() *runstate.Scheduler { return r.sched }

// FrameRate returns the measured frames per second while running.
func (r *Runner) FrameRate() (float64, bool) { return r.frames.Rate() }

// Steps returns how many ticks advanced the sim since the last reset.
func (r *Runner) Steps() int { return r.steps }

// Ticks returns how many host ticks were seen since the last reset.
func (r *Runner) Ticks() int { return r.ticks }

// Tick is called once per host frame. It reports whether the sim advanced.
func (r *Runner) Tick() bool {
	r.ticks++
	r.frames.Frame()
	if !r.sched.DoStep() {
		return false
	}
	r.sim.Step()
	r.steps++
	return true
}

// Reset rebuilds the sim state without touching the run mode.
func (r *Runner) Reset(seed int64) {
	r.sim.Reset(seed)
	r.ticks = 0
	r.steps = 0
}
