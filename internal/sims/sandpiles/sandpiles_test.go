package sandpiles

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sandpiles/internal/core"
	"sandpiles/internal/sandpile"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 9
	cfg.Height = 9
	return cfg
}

func TestStepDropsAndRenders(t *testing.T) {
	cfg := smallConfig()
	cfg.Grains = 4
	s, err := NewWithConfig(cfg)
	require.NoError(t, err)

	s.Step()

	assert.True(t, s.Settled())
	assert.Equal(t, 1, s.LastTopples())
	cells := s.Cells()
	at := func(x, y int) uint8 { return cells[(y+4)*9+x+4] }
	assert.Equal(t, uint8(0), at(0, 0))
	assert.Equal(t, uint8(1), at(0, -1))
	assert.Equal(t, uint8(1), at(-1, 0))
	assert.Equal(t, uint8(1), at(1, 0))
	assert.Equal(t, uint8(1), at(0, 1))
}

func TestBudgetDefersDrops(t *testing.T) {
	cfg := smallConfig()
	cfg.Grains = 64
	cfg.MaxOperations = 1
	s, err := NewWithConfig(cfg)
	require.NoError(t, err)

	s.Step()
	require.False(t, s.Settled())
	assert.Equal(t, 64, s.Grid().Stats().GrainsAdded)
	assert.NotEmpty(t, s.Pending())

	ticks := 0
	for !s.Settled() {
		s.Step()
		ticks++
		require.Less(t, ticks, 10000, "cascade never settled")
	}
	assert.Equal(t, ticks, s.Deferred())
	assert.Equal(t, 64, s.Grid().Stats().GrainsAdded, "no drops while unsettled")
	assert.Equal(t, 64, s.Grid().Total())
	assert.Empty(t, s.Pending())

	s.Step()
	assert.Equal(t, 128, s.Grid().Stats().GrainsAdded)
}

func TestRenderClampsAndCentres(t *testing.T) {
	cfg := smallConfig()
	cfg.Width = 3
	cfg.Height = 3
	cfg.Grains = 1000
	cfg.MaxOperations = 1
	s, err := NewWithConfig(cfg)
	require.NoError(t, err)

	s.Step()
	// Neighbours hold 250 grains each and draw with the overflow shade.
	assert.Equal(t, []uint8{0, 4, 0, 4, 0, 4, 0, 4, 0}, s.Cells())
	assert.Equal(t, core.Size{W: 3, H: 3}, s.Size())
}

func TestPendingInViewportCoordinates(t *testing.T) {
	cfg := smallConfig()
	cfg.Grains = 64
	cfg.MaxOperations = 1
	s, err := NewWithConfig(cfg)
	require.NoError(t, err)

	s.Step()
	assert.ElementsMatch(t, []image.Point{{4, 3}, {3, 4}, {5, 4}, {4, 5}}, s.Pending())
}

func TestResetRebuildsGrid(t *testing.T) {
	cfg := smallConfig()
	cfg.Grains = 40
	cfg.MaxOperations = 2
	s, err := NewWithConfig(cfg)
	require.NoError(t, err)
	s.Step()
	s.Step()

	s.Reset(123)
	assert.Equal(t, 0, s.Grid().Total())
	assert.True(t, s.Settled())
	assert.Zero(t, s.Deferred())
	assert.Equal(t, sandpile.Square(0), s.Grid().Bounds())
	assert.Equal(t, make([]uint8, 81), s.Cells())
}

func TestResetPanicsOnBrokenConfig(t *testing.T) {
	s, err := NewWithConfig(smallConfig())
	require.NoError(t, err)
	s.cfg.Radius = -1
	assert.Panics(t, func() { s.Reset(0) })
}

func TestStepRecordsDropError(t *testing.T) {
	s, err := NewWithConfig(smallConfig())
	require.NoError(t, err)
	s.cfg.DropX = 5

	s.Step()
	assert.ErrorIs(t, s.Err(), sandpile.ErrOutOfBounds)
	assert.True(t, s.Settled())
	assert.Zero(t, s.LastTopples())
	assert.Zero(t, s.Grid().Total())

	s.cfg.DropX = 0
	s.Reset(0)
	assert.NoError(t, s.Err())
	s.Step()
	assert.NoError(t, s.Err())
	assert.Equal(t, 1, s.Grid().Total())
}

func TestParametersCountPending(t *testing.T) {
	cfg := smallConfig()
	cfg.Grains = 16
	cfg.MaxOperations = 1
	s, err := NewWithConfig(cfg)
	require.NoError(t, err)
	s.Step()

	p, ok := s.Parameters().Lookup("pending")
	require.True(t, ok)
	assert.Equal(t, "4", p.Value)
}

func TestNewWithConfigErrors(t *testing.T) {
	cfg := smallConfig()
	cfg.Radius = -1
	_, err := NewWithConfig(cfg)
	assert.True(t, errors.Is(err, sandpile.ErrInvalidDimensions), "got %v", err)

	cfg = smallConfig()
	cfg.DropX = 3
	_, err = NewWithConfig(cfg)
	assert.True(t, errors.Is(err, sandpile.ErrOutOfBounds), "got %v", err)
}

func TestBoundedPolicyLosesGrains(t *testing.T) {
	cfg := smallConfig()
	cfg.Policy = sandpile.Bounded
	cfg.Radius = 1
	cfg.Grains = 100
	s, err := NewWithConfig(cfg)
	require.NoError(t, err)

	s.Step()
	stats := s.Grid().Stats()
	assert.Positive(t, stats.GrainsLost)
	assert.Equal(t, 100-stats.GrainsLost, s.Grid().Total())
	assert.Equal(t, sandpile.Square(1), s.Grid().Bounds())
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w":       "64",
		"h":       "-2",
		"radius":  "3",
		"policy":  "bounded",
		"grains":  "7",
		"max_ops": "0",
		"drop_x":  "-2",
		"drop_y":  "9",
	})
	assert.Equal(t, 64, c.Width)
	assert.Equal(t, DefaultConfig().Height, c.Height)
	assert.Equal(t, 3, c.Radius)
	assert.Equal(t, sandpile.Bounded, c.Policy)
	assert.Equal(t, 7, c.Grains)
	assert.Equal(t, sandpile.Unbounded, c.budget())
	assert.Equal(t, -2, c.DropX)
	assert.Equal(t, 0, c.DropY, "drop outside the initial grid is ignored")

	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestSetIntParameter(t *testing.T) {
	cfg := smallConfig()
	cfg.Radius = 2
	s, err := NewWithConfig(cfg)
	require.NoError(t, err)

	assert.True(t, s.SetIntParameter("grains", 12))
	assert.False(t, s.SetIntParameter("grains", -1))
	assert.True(t, s.SetIntParameter("max_ops", 0))
	assert.True(t, s.SetIntParameter("drop_x", -2))
	assert.False(t, s.SetIntParameter("drop_y", 3))
	assert.False(t, s.SetIntParameter("unknown", 1))

	snap := s.Parameters()
	p, ok := snap.Lookup("grains")
	require.True(t, ok)
	assert.Equal(t, "12", p.Value)
	p, ok = snap.Lookup("drop_x")
	require.True(t, ok)
	assert.Equal(t, "-2", p.Value)
	p, ok = snap.Lookup("policy")
	require.True(t, ok)
	assert.Equal(t, "expanding", p.Value)

	for _, ctrl := range s.ParameterControls() {
		_, ok := snap.Lookup(ctrl.Key)
		assert.True(t, ok, "control %q has no parameter", ctrl.Key)
	}
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Sims()["sandpiles"]
	require.True(t, ok)
	sim := factory(map[string]string{"w": "10", "h": "12"})
	assert.Equal(t, "sandpiles", sim.Name())
	assert.Equal(t, core.Size{W: 10, H: 12}, sim.Size())
	_, ok = sim.(core.PaletteProvider)
	assert.True(t, ok)
	_, ok = sim.(core.PendingProvider)
	assert.True(t, ok)
}
