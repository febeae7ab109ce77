package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sandpiles/internal/sandpile"
	"sandpiles/internal/sims/sandpiles"
)

func TestParseInts(t *testing.T) {
	got, err := parseInts("1, 4,,16")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 16}, got)

	_, err = parseInts("1,x")
	assert.Error(t, err)
}

func TestBuildSetsIsCartesian(t *testing.T) {
	sets := buildSets([]int{1, 2}, []int{0, 10, 100})
	require.Len(t, sets, 6)
	assert.Equal(t, paramSet{grains: 2, maxOps: 100}, sets[5])
	assert.Equal(t, "grains=1 max_ops=unbounded", sets[0].String())
}

func TestRunScenarioConservesGrains(t *testing.T) {
	res := runScenario(sandpiles.DefaultConfig(), paramSet{grains: 4, maxOps: 0}, 50)
	require.NoError(t, res.err)

	assert.Equal(t, 200, res.landed())
	assert.Zero(t, res.deferred, "unbounded budgets always settle within the tick")
	assert.True(t, res.settled)
	assert.Len(t, res.history, 50)
	assert.Positive(t, res.topples)
}

func TestRunScenarioDefersUnderTightBudget(t *testing.T) {
	res := runScenario(sandpiles.DefaultConfig(), paramSet{grains: 64, maxOps: 1}, 40)
	require.NoError(t, res.err)

	assert.Positive(t, res.deferred)
	assert.Equal(t, 64*(res.ticks-res.deferred), res.landed())
	assert.LessOrEqual(t, res.peak, 1)
}

func TestRunScenarioReportsBadConfig(t *testing.T) {
	base := sandpiles.DefaultConfig()
	base.Radius = -1
	res := runScenario(base, paramSet{grains: 1}, 10)
	assert.ErrorIs(t, res.err, sandpile.ErrInvalidDimensions)
}

func TestSweepOrdersByLanded(t *testing.T) {
	sets := buildSets([]int{1, 8}, []int{0, 2})
	all := sweep(sandpiles.DefaultConfig(), sets, 30, 3)
	require.Len(t, all, 4)
	for i := 1; i < len(all); i++ {
		assert.GreaterOrEqual(t, all[i-1].landed(), all[i].landed())
	}
	assert.Equal(t, 8, all[0].params.grains)
}

func TestDownsampleKeepsPeaks(t *testing.T) {
	series := []float64{0, 0, 9, 0, 0, 0, 1, 0}
	assert.Equal(t, []float64{9, 1}, downsample(series, 2))
	assert.Equal(t, series, downsample(series, 100))
}
