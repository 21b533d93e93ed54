package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/citygrid-sim/entity"
	"github.com/tsinghua-fib-lab/citygrid-sim/entity/vehicle"
	"github.com/tsinghua-fib-lab/citygrid-sim/utils/config"
)

func testConfig() config.Config {
	return config.Config{
		Input: config.Input{Map: config.InputPath{Rows: []string{
			"WWWWWWW",
			"WSSLSSW",
			"WGCSCGW",
			"WTTSTTW",
			"WWWWWWW",
		}}},
		Vehicles: []config.Vehicle{
			{Kind: "car", X: 1, Y: 1, Direction: "EAST"},
			{Kind: "taxi", X: 5, Y: 1, Direction: "WEST"},
			{Kind: "truck", X: 3, Y: 3, Direction: "NORTH"},
			{Kind: "human", X: 1, Y: 2, Direction: "EAST"},
			{Kind: "bicycle", X: 1, Y: 3, Direction: "EAST"},
			{Kind: "atv", X: 5, Y: 3, Direction: "WEST"},
		},
		Control: config.Control{
			Step: config.ControlStep{Start: 0, Total: 50},
			Seed: 3,
		},
	}
}

func TestRun(t *testing.T) {
	ctx, err := NewContext("test", testConfig())
	require.NoError(t, err)
	assert.Len(t, ctx.Vehicles().Vehicles(), 6)
	assert.Equal(t, 1., ctx.Clock().DT)

	ctx.Run()
	assert.True(t, ctx.Clock().Done())
	assert.Equal(t, int32(50), ctx.Clock().InternalStep)

	stats := ctx.Vehicles().Stats()
	assert.Equal(t, 6, stats.Alive+stats.Dead)
	for _, r := range ctx.Vehicles().Snapshot() {
		terrain, ok := ctx.Grid().TerrainAt(r.X, r.Y)
		assert.True(t, ok, "vehicle %d left the map", r.ID)
		assert.NotEqual(t, entity.WALL, terrain, "vehicle %d inside a wall", r.ID)
	}

	ctx.Reset()
	assert.Equal(t, int32(0), ctx.Clock().InternalStep)
	assert.Equal(t, vehicle.Stats{Alive: 6}, ctx.Vehicles().Stats())
}

func TestRunDeterministic(t *testing.T) {
	run := func() []vehicle.Runtime {
		ctx, err := NewContext("test", testConfig())
		require.NoError(t, err)
		ctx.Run()
		return ctx.Vehicles().Snapshot()
	}
	assert.ElementsMatch(t, run(), run())
}

func TestClose(t *testing.T) {
	ctx, err := NewContext("test", testConfig())
	require.NoError(t, err)
	ctx.Close()
	ctx.Run()
	assert.Equal(t, int32(0), ctx.Clock().InternalStep)
}

func TestNewContextErrors(t *testing.T) {
	c := testConfig()
	c.Vehicles[0].Kind = "bus"
	_, err := NewContext("test", c)
	assert.Error(t, err)

	c = testConfig()
	c.Input.Map.Rows = []string{"SSX"}
	c.Vehicles = nil
	_, err = NewContext("test", c)
	assert.Error(t, err)

	c = testConfig()
	c.Vehicles[0].X = 0
	_, err = NewContext("test", c)
	assert.Error(t, err)
}
