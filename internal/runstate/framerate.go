package runstate

import "time"

// Estimator measures frames per second while a Scheduler is running. The
// measurement window restarts whenever the scheduler starts running again,
// so paused time never drags the rate down.
type Estimator struct {
	sched *Scheduler
	now   func() time.Time

	rate     float64
	known    bool
	prev     time.Time
	current  time.Time
	frames   int
	hasFrame bool
}

// NewEstimator attaches a new Estimator to s.
func NewEstimator(s *Scheduler) *Estimator {
	return NewEstimatorWithClock(s, time.Now)
}

// NewEstimatorWithClock is NewEstimator with an injectable clock.
func NewEstimatorWithClock(s *Scheduler, now func() time.Time) *Estimator {
	if now == nil {
		now = time.Now
	}
	e := &Estimator{sched: s, now: now}
	s.AddListener(e)
	return e
}

// StateChanged implements Listener.
func (e *Estimator) StateChanged(newState, oldState State) {
	if newState == Running && oldState != Running {
		e.hasFrame = false
		e.frames = 0
	}
}

// Frame records one rendered frame. Frames are ignored unless running.
func (e *Estimator) Frame() {
	if e.sched.State() != Running {
		return
	}
	e.current = e.now()
	e.frames++
	if !e.hasFrame {
		e.prev = e.current
		e.hasFrame = true
		e.frames = 0
	}
}

// Rate returns frames per second over the frames recorded since the last
// call. When no new frames have been recorded it repeats the last rate; the
// boolean is false until a rate has been measured at least once.
func (e *Estimator) Rate() (float64, bool) {
	if e.hasFrame && e.frames > 0 {
		elapsed := e.current.Sub(e.prev)
		if elapsed > 0 {
			e.rate = float64(e.frames) / elapsed.Seconds()
			e.known = true
		}
		e.prev = e.current
		e.frames = 0
	}
	return e.rate, e.known
}
