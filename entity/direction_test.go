package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/citygrid-sim/entity"
)

// sequenceRand Intn依次返回0,1,2,...
type sequenceRand struct {
	next int
}

func (r *sequenceRand) Intn(n int) int {
	v := r.next % n
	r.next++
	return v
}

func (r *sequenceRand) Shuffle(int, func(i, j int)) {}

func TestDirectionAlgebra(t *testing.T) {
	for _, d := range entity.AllDirections {
		assert.Equal(t, d, d.Reverse().Reverse(), d.String())
		assert.Equal(t, d, d.Left().Right(), d.String())
		assert.Equal(t, d, d.Right().Left(), d.String())
		assert.Equal(t, d.Reverse(), d.Left().Left(), d.String())
		assert.Equal(t, d.Reverse(), d.Right().Right(), d.String())
		assert.NotEqual(t, d, d.Reverse())
	}
}

func TestDirectionCompass(t *testing.T) {
	assert.Equal(t, entity.WEST, entity.NORTH.Left())
	assert.Equal(t, entity.EAST, entity.NORTH.Right())
	assert.Equal(t, entity.EAST, entity.SOUTH.Left())
	assert.Equal(t, entity.SOUTH, entity.NORTH.Reverse())

	// 四个方向的位移两两不同且互为相反数
	for _, d := range entity.AllDirections {
		assert.Equal(t, 1, abs(d.Dx())+abs(d.Dy()), d.String())
		assert.Equal(t, -d.Dx(), d.Reverse().Dx())
		assert.Equal(t, -d.Dy(), d.Reverse().Dy())
	}
	assert.Equal(t, -1, entity.NORTH.Dy())
	assert.Equal(t, 1, entity.EAST.Dx())
}

func TestDirectionUnspecified(t *testing.T) {
	d := entity.DIRECTION_UNSPECIFIED
	assert.False(t, d.Valid())
	assert.Equal(t, d, d.Reverse())
	assert.Equal(t, 0, d.Dx()+d.Dy())
	assert.Equal(t, "Direction(42)", entity.Direction(42).String())
}

func TestParseDirection(t *testing.T) {
	d, err := entity.ParseDirection("north")
	require.NoError(t, err)
	assert.Equal(t, entity.NORTH, d)

	d, err = entity.ParseDirection("WEST")
	require.NoError(t, err)
	assert.Equal(t, entity.WEST, d)

	_, err = entity.ParseDirection("UNSPECIFIED")
	assert.Error(t, err)
	_, err = entity.ParseDirection("up")
	assert.Error(t, err)
}

func TestRandomDirectionCoversAll(t *testing.T) {
	r := &sequenceRand{}
	seen := map[entity.Direction]int{}
	for i := 0; i < 8; i++ {
		seen[entity.RandomDirection(r)]++
	}
	assert.Len(t, seen, 4)
	for _, d := range entity.AllDirections {
		assert.Equal(t, 2, seen[d], d.String())
	}
}

func TestTerrain(t *testing.T) {
	for _, terrain := range entity.AllTerrains {
		got, ok := entity.TerrainFromChar(terrain.Char())
		require.True(t, ok, terrain.String())
		assert.Equal(t, terrain, got)
	}
	_, ok := entity.TerrainFromChar('x')
	assert.False(t, ok)
	assert.Equal(t, '?', entity.TERRAIN_UNSPECIFIED.Char())

	assert.True(t, entity.STREET.IsRoad())
	assert.True(t, entity.LIGHT.IsRoad())
	assert.True(t, entity.CROSSWALK.IsRoad())
	assert.False(t, entity.TRAIL.IsRoad())
	assert.False(t, entity.TERRAIN_UNSPECIFIED.IsRoad())

	assert.True(t, entity.CROSSWALK.HasSignal())
	assert.False(t, entity.STREET.HasSignal())
}

func TestParseLight(t *testing.T) {
	l, err := entity.ParseLight("YELLOW")
	require.NoError(t, err)
	assert.Equal(t, entity.YELLOW, l)
	_, err = entity.ParseLight("BLUE")
	assert.Error(t, err)
	_, err = entity.ParseLight("UNSPECIFIED")
	assert.Error(t, err)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
