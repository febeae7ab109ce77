package hilbert

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointFirstOrder(t *testing.T) {
	var got []image.Point
	for i := 0; i < 4; i++ {
		got = append(got, Point(i, 1))
	}
	assert.Equal(t, []image.Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}}, got)
}

func TestPointWalkIsContinuous(t *testing.T) {
	for order := 1; order <= 6; order++ {
		side := 1 << order
		seen := make(map[image.Point]bool, side*side)
		prev := Point(0, order)
		seen[prev] = true
		for i := 1; i < side*side; i++ {
			p := Point(i, order)
			require.True(t, p.X >= 0 && p.X < side && p.Y >= 0 && p.Y < side, "order %d index %d out of range: %v", order, i, p)
			d := p.Sub(prev)
			require.Equal(t, 1, abs(d.X)+abs(d.Y), "order %d: %v -> %v not adjacent", order, prev, p)
			require.False(t, seen[p], "order %d revisits %v", order, p)
			seen[p] = true
			prev = p
		}
		assert.Len(t, seen, side*side)
	}
}

func TestCurveDrawsEverything(t *testing.T) {
	c := NewWithConfig(Config{Order: 3, Speed: 1, SpeedMultiplier: 2})
	steps := 0
	for !c.Done() {
		c.Step()
		steps++
		require.Less(t, steps, 1000)
	}

	drawn := 0
	for _, v := range c.Cells() {
		if v != 0 {
			drawn++
		}
	}
	assert.Equal(t, 2*64-1, drawn, "every point plus every joining segment")
	assert.Equal(t, 16*16, len(c.Cells()))

	before := append([]uint8(nil), c.Cells()...)
	c.Step()
	assert.Equal(t, before, c.Cells(), "steps after completion do nothing")
}

func TestCurveSpeedsUp(t *testing.T) {
	c := NewWithConfig(Config{Order: 5, Speed: 2, SpeedMultiplier: 3})
	for i := 0; i < 10; i++ {
		c.Step()
	}
	assert.Greater(t, c.speed, 2.0)
	assert.LessOrEqual(t, c.level, 4)
}

func TestReset(t *testing.T) {
	c := NewWithConfig(Config{Order: 2, Speed: 4, SpeedMultiplier: 1})
	for !c.Done() {
		c.Step()
	}
	c.Reset(0)
	assert.False(t, c.Done())
	assert.Equal(t, make([]uint8, 64), c.Cells())
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"order": "12", "speed": "0.5", "speed_multiplier": "0.5"})
	assert.Equal(t, DefaultConfig().Order, c.Order)
	assert.Equal(t, 0.5, c.Speed)
	assert.Equal(t, DefaultConfig().SpeedMultiplier, c.SpeedMultiplier)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
