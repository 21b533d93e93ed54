package signal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/citygrid-sim/entity"
	"github.com/tsinghua-fib-lab/citygrid-sim/entity/signal"
)

func TestDefaultCycle(t *testing.T) {
	c, err := signal.New(signal.DefaultPhases)
	require.NoError(t, err)
	assert.Equal(t, entity.GREEN, c.LightAt(entity.LIGHT))
	assert.Equal(t, entity.RED, c.LightAt(entity.CROSSWALK))
	assert.Equal(t, entity.GREEN, c.LightAt(entity.STREET))

	c.Update(8)
	// Prepare之前仍为旧的snapshot
	assert.Equal(t, entity.GREEN, c.LightAt(entity.LIGHT))
	c.Prepare()
	assert.Equal(t, entity.YELLOW, c.LightAt(entity.LIGHT))
	step, remaining := c.Current()
	assert.Equal(t, 1, step)
	assert.InDelta(t, 2, remaining, 1e-9)

	c.Update(2)
	c.Prepare()
	assert.Equal(t, entity.RED, c.LightAt(entity.LIGHT))
	assert.Equal(t, entity.GREEN, c.LightAt(entity.CROSSWALK))

	c.Update(10)
	c.Prepare()
	assert.Equal(t, entity.GREEN, c.LightAt(entity.LIGHT))
	step, _ = c.Current()
	assert.Equal(t, 0, step)
}

func TestNoPhases(t *testing.T) {
	c, err := signal.New(nil)
	require.NoError(t, err)
	for _, terrain := range entity.AllTerrains {
		assert.Equal(t, entity.GREEN, c.LightAt(terrain))
	}
	step, _ := c.Current()
	assert.Equal(t, -1, step)
	c.Update(100)
	c.Prepare()
	assert.Equal(t, entity.GREEN, c.LightAt(entity.CROSSWALK))
}

func TestSkipZeroDuration(t *testing.T) {
	c, err := signal.New([]signal.Phase{
		{Street: entity.RED, Crosswalk: entity.RED, Duration: 0},
		{Street: entity.YELLOW, Crosswalk: entity.GREEN, Duration: 5},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.YELLOW, c.LightAt(entity.LIGHT))
}

func TestSetErrors(t *testing.T) {
	c, err := signal.New(nil)
	require.NoError(t, err)
	assert.Error(t, c.Set(nil))
	assert.Error(t, c.Set([]signal.Phase{{Street: entity.RED, Crosswalk: entity.RED, Duration: -1}}))
	assert.Error(t, c.Set([]signal.Phase{{Street: entity.RED, Duration: 1}}))
	assert.Error(t, c.Set([]signal.Phase{{Street: entity.RED, Crosswalk: entity.RED, Duration: 0}}))

	_, err = signal.New([]signal.Phase{{Street: entity.RED, Crosswalk: entity.RED, Duration: 0}})
	assert.Error(t, err)
}

func TestSetUnsetAndSwitch(t *testing.T) {
	c, err := signal.New(nil)
	require.NoError(t, err)
	require.NoError(t, c.Set([]signal.Phase{{Street: entity.RED, Crosswalk: entity.YELLOW, Duration: 3}}))
	// 下一次Update与Prepare后生效
	assert.Equal(t, entity.GREEN, c.LightAt(entity.LIGHT))
	c.Update(1)
	c.Prepare()
	assert.Equal(t, entity.RED, c.LightAt(entity.LIGHT))
	assert.Equal(t, entity.YELLOW, c.LightAt(entity.CROSSWALK))

	c.SetOK(false)
	c.Prepare()
	assert.Equal(t, entity.GREEN, c.LightAt(entity.LIGHT))
	c.SetOK(true)
	c.Prepare()
	assert.Equal(t, entity.RED, c.LightAt(entity.LIGHT))

	c.Unset()
	c.Update(1)
	c.Prepare()
	assert.Equal(t, entity.GREEN, c.LightAt(entity.LIGHT))
}
