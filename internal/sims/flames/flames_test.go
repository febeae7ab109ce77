package flames

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallFlames() *Flames {
	cfg := DefaultConfig()
	cfg.Width = 24
	cfg.Height = 16
	return NewWithConfig(cfg)
}

func TestHeatRises(t *testing.T) {
	f := smallFlames()
	f.cfg.Increment = 1e-6 // near-flat, very weak cooling

	for i := 0; i < 20; i++ {
		f.Step()
	}

	hot := 0
	for y := 0; y < f.h-f.cfg.HotRows-1; y++ {
		for x := 0; x < f.w; x++ {
			if f.Cells()[y*f.w+x] > 0 {
				hot++
			}
		}
	}
	assert.Positive(t, hot, "heat should spread above the burning rows")
}

func TestResetDeterministic(t *testing.T) {
	f := smallFlames()
	for i := 0; i < 5; i++ {
		f.Step()
	}
	first := slices.Clone(f.Cells())

	f.Reset(0)
	assert.Equal(t, make([]uint8, len(first)), f.Cells())
	for i := 0; i < 5; i++ {
		f.Step()
	}
	assert.Equal(t, first, f.Cells())

	f.Reset(99)
	cooling := slices.Clone(f.Cooling())
	f.Reset(0)
	assert.NotEqual(t, cooling, f.Cooling(), "different seeds give different cooling maps")
}

func TestScrollMatchesRegeneration(t *testing.T) {
	f := smallFlames()
	f.scrollCooling()
	f.scrollCooling()

	fresh := smallFlames()
	fresh.ystart = f.ystart
	for y := 0; y < fresh.h; y++ {
		fresh.coolRow(y, fresh.ystart+float64(y+1)*fresh.cfg.Increment)
	}
	require.Len(t, f.Cooling(), len(fresh.Cooling()))
	for i := range fresh.Cooling() {
		assert.InDelta(t, fresh.Cooling()[i], f.Cooling()[i], 1e-9, "index %d", i)
	}
}

func TestCoolingRange(t *testing.T) {
	f := smallFlames()
	for _, v := range f.Cooling() {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 255.0)
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "2", "h": "40", "increment": "-1", "hot_rows": "5", "seed": "8"})
	assert.Equal(t, DefaultConfig().Width, c.Width)
	assert.Equal(t, 40, c.Height)
	assert.Equal(t, DefaultConfig().Increment, c.Increment)
	assert.Equal(t, 5, c.HotRows)
	assert.Equal(t, int64(8), c.Seed)
}
