// Package runstate decides, once per host tick, whether simulation work
// should happen. A Scheduler is running, stopped or stepping a single tick,
// and tells its Host when continuous ticking should pause or resume.
package runstate

import "reflect"

// State is the run mode of a Scheduler.
type State string

const (
	Running    State = "running"
	Stopped    State = "stopped"
	SingleStep State = "single-step"
)

// Host exposes the animation-loop primitives a Scheduler drives.
type Host interface {
	// Loop resumes continuous ticking.
	Loop()
	// NoLoop pauses continuous ticking.
	NoLoop()
	// Redraw requests one tick out of band.
	Redraw()
}

// Listener observes state transitions.
type Listener interface {
	StateChanged(newState, oldState State)
}

// ListenerFunc adapts a plain function to Listener. Funcs cannot be
// compared, so registering the same ListenerFunc twice notifies it twice;
// register a *ListenerFunc to get deduplication.
type ListenerFunc func(newState, oldState State)

// StateChanged calls f.
func (f ListenerFunc) StateChanged(newState, oldState State) { f(newState, oldState) }

// Scheduler is the run/stop/single-step state machine. It is not safe for
// concurrent use; all calls are expected from the goroutine driving ticks.
type Scheduler struct {
	state     State
	host      Host
	listeners []Listener
}

// New returns a stopped Scheduler driving host. A nil host is allowed.
func New(host Host) *Scheduler {
	return &Scheduler{state: Stopped, host: host}
}

// State returns the current run mode.
func (s *Scheduler) State() State { return s.state }

// AddListener registers l for synchronous notification on every transition.
// Registering the same comparable listener twice is a no-op and returns
// false. Listeners whose values cannot be compared, such as function
// adapters, are always added.
func (s *Scheduler) AddListener(l Listener) bool {
	if l == nil {
		return false
	}
	if canCompare(l) {
		for _, existing := range s.listeners {
			if canCompare(existing) && existing == l {
				return false
			}
		}
	}
	s.listeners = append(s.listeners, l)
	return true
}

// canCompare reports whether == on l cannot panic. The dynamic value is
// checked, so a struct holding a func in an interface field is rejected.
func canCompare(l Listener) bool {
	return reflect.ValueOf(l).Comparable()
}

func (s *Scheduler) setState(next State) {
	prev := s.state
	s.state = next
	for _, l := range s.listeners {
		l.StateChanged(next, prev)
	}
}

// Start switches to continuous running. It does nothing when already running.
func (s *Scheduler) Start() {
	if s.state == Running {
		return
	}
	s.setState(Running)
	if s.host != nil {
		s.host.Loop()
	}
}

// Stop pauses the scheduler. Listeners are notified even when it was
// already stopped.
func (s *Scheduler) Stop() {
	s.setState(Stopped)
	if s.host != nil {
		s.host.NoLoop()
	}
}

// SingleStep pauses continuous ticking and asks the host for exactly one
// tick, which DoStep will allow.
func (s *Scheduler) SingleStep() {
	s.setState(SingleStep)
	if s.host != nil {
		s.host.NoLoop()
		s.host.Redraw()
	}
}

// Toggle starts a non-running scheduler and stops a running one.
func (s *Scheduler) Toggle() {
	if s.state == Running {
		s.Stop()
		return
	}
	s.Start()
}

// DoStep is called once per host tick and reports whether simulation work
// should happen. A pending single step is consumed and the scheduler falls
// back to Stopped.
func (s *Scheduler) DoStep() bool {
	switch s.state {
	case SingleStep:
		s.setState(Stopped)
		return true
	case Running:
		return true
	default:
		return false
	}
}
