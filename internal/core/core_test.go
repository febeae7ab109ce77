package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sandpiles/internal/runstate"
)

type countingSim struct {
	steps  int
	resets []int64
}

func (s *countingSim) Name() string     { return "counting" }
func (s *countingSim) Size() Size       { return Size{W: 1, H: 1} }
func (s *countingSim) Reset(seed int64) { s.resets = append(s.resets, seed); s.steps = 0 }
func (s *countingSim) Step()            { s.steps++ }
func (s *countingSim) Cells() []uint8   { return []uint8{uint8(s.steps)} }

func TestRunnerHonoursScheduler(t *testing.T) {
	sim := &countingSim{}
	r := NewRunner(sim, nil)

	assert.False(t, r.Tick(), "new runner starts stopped")
	assert.Equal(t, 0, sim.steps)

	r.Scheduler().SingleStep()
	assert.True(t, r.Tick())
	assert.False(t, r.Tick())
	assert.Equal(t, 1, sim.steps)

	r.Scheduler().Start()
	for i := 0; i < 3; i++ {
		assert.True(t, r.Tick())
	}
	assert.Equal(t, 4, sim.steps)
	assert.Equal(t, 4, r.Steps())
	assert.Equal(t, 6, r.Ticks())

	r.Reset(9)
	assert.Equal(t, []int64{9}, sim.resets)
	assert.Zero(t, r.Steps())
	assert.Equal(t, runstate.Running, r.Scheduler().State(), "reset keeps the run mode")
}

func TestRegistryNamesSorted(t *testing.T) {
	Register("zz-test", func(map[string]string) Sim { return &countingSim{} })
	Register("aa-test", func(map[string]string) Sim { return &countingSim{} })
	Register("", func(map[string]string) Sim { return &countingSim{} })
	Register("nil-test", nil)
	defer delete(sims, "zz-test")
	defer delete(sims, "aa-test")

	names := Names()
	require.Contains(t, names, "aa-test")
	require.Contains(t, names, "zz-test")
	assert.NotContains(t, names, "")
	assert.NotContains(t, names, "nil-test")
	assert.IsNonDecreasing(t, names)
}

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(3, 2)
	g.Set(2, 1, 7)
	g.Set(3, 0, 9)
	g.Set(-1, 0, 9)

	assert.Equal(t, uint8(7), g.At(2, 1))
	assert.Equal(t, uint8(0), g.At(5, 5))
	assert.Equal(t, []uint8{0, 0, 0, 0, 0, 7}, g.Cells())
	assert.Equal(t, Size{W: 3, H: 2}, g.Size())

	g.Clear()
	assert.Equal(t, make([]uint8, 6), g.Cells())

	empty := NewByteGrid(0, -4)
	assert.Equal(t, Size{W: 1, H: 1}, empty.Size())
}

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	assert.True(t, fs.ShouldStep(), "first call fires immediately")
	assert.False(t, fs.ShouldStep())

	clock = clock.Add(50 * time.Millisecond)
	assert.False(t, fs.ShouldStep())
	clock = clock.Add(60 * time.Millisecond)
	assert.True(t, fs.ShouldStep())

	clock = clock.Add(10 * time.Second)
	assert.True(t, fs.ShouldStep())
	assert.False(t, fs.ShouldStep(), "backlog after a stall is dropped")

	fs.SetTPS(0)
	assert.Equal(t, time.Second/60, fs.Interval())
}

func TestParameterHelpers(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{{
		Name: "Grid",
		Params: []Parameter{
			IntParam("grains", "Grains per tick", 4),
			BoolParam("settled", "Settled", true),
			StringParam("policy", "Policy", "expanding"),
		},
	}}}

	p, ok := snap.Lookup("grains")
	require.True(t, ok)
	assert.Equal(t, "4", p.Value)
	assert.Equal(t, ParamTypeInt, p.Type)

	p, ok = snap.Lookup("settled")
	require.True(t, ok)
	assert.Equal(t, "true", p.Value)

	_, ok = snap.Lookup("missing")
	assert.False(t, ok)

	ctrl := ParameterControl{Key: "grains", Min: 0, Max: 100, Step: 1}
	assert.Equal(t, 0, ctrl.Clamp(-3))
	assert.Equal(t, 100, ctrl.Clamp(250))
	assert.Equal(t, 42, ctrl.Clamp(42))
}
