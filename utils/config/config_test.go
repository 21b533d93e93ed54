package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/citygrid-sim/utils/config"
)

const sample = `
input:
  map:
    rows:
      - SSS
      - SCS
vehicles:
  - kind: car
    x: 0
    y: 0
    direction: EAST
  - id: 7
    kind: taxi
    x: 2
    y: 1
    direction: north
control:
  step:
    start: 0
    total: 100
  seed: 42
  signal:
    phases:
      - street: GREEN
        crosswalk: RED
        duration: 4
`

func TestParse(t *testing.T) {
	c, err := config.Parse([]byte(sample))
	require.NoError(t, err)
	assert.Equal(t, []string{"SSS", "SCS"}, c.Input.Map.Rows)
	require.Len(t, c.Vehicles, 2)
	assert.Equal(t, int32(0), c.Vehicles[0].ID)
	assert.Equal(t, int32(7), c.Vehicles[1].ID)
	assert.Equal(t, "north", c.Vehicles[1].Direction)
	assert.Equal(t, uint64(42), c.Control.Seed)
	require.Len(t, c.Control.Signal.Phases, 1)
	assert.Equal(t, 4., c.Control.Signal.Phases[0].Duration)

	rc := config.NewRuntimeConfig(c)
	assert.Equal(t, 1., rc.C.Step.Interval)
	assert.Equal(t, int32(100), rc.All.Control.Step.Total)
}

func TestParseUnknownField(t *testing.T) {
	_, err := config.Parse([]byte(sample + "unknown: 1\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() config.Config {
		return config.Config{
			Input:    config.Input{Map: config.InputPath{Rows: []string{"S"}}},
			Vehicles: []config.Vehicle{{ID: 1, Kind: "car", Direction: "NORTH"}},
			Control:  config.Control{Step: config.ControlStep{Total: 10}},
		}
	}
	require.NoError(t, valid().Validate())

	cases := map[string]func(c *config.Config){
		"no map":            func(c *config.Config) { c.Input.Map.Rows = nil },
		"mongo without col": func(c *config.Config) { c.Input.Map.Rows = nil; c.Input.URI = "mongodb://localhost"; c.Input.Map.DB = "db" },
		"zero total":        func(c *config.Config) { c.Control.Step.Total = 0 },
		"negative start":    func(c *config.Config) { c.Control.Step.Start = -1 },
		"negative interval": func(c *config.Config) { c.Control.Step.Interval = -1 },
		"no kind":           func(c *config.Config) { c.Vehicles[0].Kind = "" },
		"no direction":      func(c *config.Config) { c.Vehicles[0].Direction = "" },
		"duplicated id": func(c *config.Config) {
			c.Vehicles = append(c.Vehicles, config.Vehicle{ID: 1, Kind: "taxi", Direction: "EAST"})
		},
		"negative duration": func(c *config.Config) {
			c.Control.Signal.Phases = []config.Phase{{Street: "RED", Crosswalk: "GREEN", Duration: -1}}
		},
	}
	for name, modify := range cases {
		c := valid()
		modify(&c)
		assert.Error(t, c.Validate(), name)
	}

	// 自动分配的ID不参与重复检查
	c := valid()
	c.Vehicles = []config.Vehicle{{Kind: "car", Direction: "EAST"}, {Kind: "car", Direction: "WEST"}}
	assert.NoError(t, c.Validate())

	c = valid()
	c.Input.Map.Rows = nil
	c.Input.URI, c.Input.Map.DB, c.Input.Map.Col = "mongodb://localhost", "grid", "maps"
	assert.NoError(t, c.Validate())
}
