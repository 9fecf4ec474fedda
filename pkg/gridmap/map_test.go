package gridmap

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource struct {
	values []float64
	i      int
}

func (f *fixedSource) Float64() float64 {
	v := f.values[f.i%len(f.values)]
	f.i++
	return v
}

func TestGenerateRejectsInvalidSize(t *testing.T) {
	for _, size := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		_, err := Generate(size[0], size[1], 32, rand.New(rand.NewSource(1)))
		assert.ErrorIs(t, err, ErrInvalidSize)
	}
}

func TestGenerateResourceFollowsTerrain(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g, err := Generate(20, 30, 32, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		require.Len(t, g.Cells, 600)

		for _, c := range g.Cells {
			if c.Resource == None {
				continue
			}
			assert.Equal(t, ResourceFor(c.Terrain), c.Resource, "cell %d,%d", c.X, c.Y)
			assert.NotEqual(t, Crater, c.Terrain)
			assert.Equal(t, NoBuilding, c.Building)
		}
	}
}

func TestGenerateIsReproducible(t *testing.T) {
	a, err := Generate(12, 9, 32, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := Generate(12, 9, 32, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestTerrainThresholds(t *testing.T) {
	tests := []struct {
		r    float64
		want Terrain
	}{
		{0.0, Crater},
		{0.199, Crater},
		{0.2, Hill},
		{0.399, Hill},
		{0.4, Mountain},
		{0.499, Mountain},
		{0.5, Plain},
		{0.99, Plain},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, rollTerrain(tt.r), "r=%v", tt.r)
	}
}

func TestResourceRolls(t *testing.T) {
	// plain + 0.05 → iron, hill + 0.14 → silicon, mountain + 0.06 → nothing
	src := &fixedSource{values: []float64{0.9, 0.05, 0.3, 0.14, 0.45, 0.06, 0.1, 0.0}}
	g, err := Generate(4, 1, 32, src)
	require.NoError(t, err)

	assert.Equal(t, Plain, g.At(0, 0).Terrain)
	assert.Equal(t, Iron, g.At(0, 0).Resource)
	assert.Equal(t, Hill, g.At(1, 0).Terrain)
	assert.Equal(t, Silicon, g.At(1, 0).Resource)
	assert.Equal(t, Mountain, g.At(2, 0).Terrain)
	assert.Equal(t, None, g.At(2, 0).Resource)
	assert.Equal(t, Crater, g.At(3, 0).Terrain)
	assert.Equal(t, None, g.At(3, 0).Resource)
}

func TestCellLookup(t *testing.T) {
	g, err := NewGrid(20, 30, 32)
	require.NoError(t, err)

	x, y := g.CellAt(320, 480)
	assert.Equal(t, 10, x)
	assert.Equal(t, 15, y)

	x, y = g.CellAt(-1, 5)
	assert.Equal(t, -1, x)
	assert.Equal(t, 0, y)
	assert.Nil(t, g.At(x, y))

	w, h := g.Bounds()
	assert.Equal(t, 640.0, w)
	assert.Equal(t, 960.0, h)
}

func TestCloneIsDeep(t *testing.T) {
	g, err := NewGrid(3, 3, 32)
	require.NoError(t, err)
	c := g.Clone()
	c.At(1, 1).Building = Base
	assert.Equal(t, NoBuilding, g.At(1, 1).Building)
	assert.Equal(t, 1, c.CountBuildings(Base))
}

func TestCellJSONUsesNames(t *testing.T) {
	data, err := json.Marshal(Cell{X: 1, Y: 2, Terrain: Hill, Resource: Silicon, Building: Miner})
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":1,"y":2,"type":"hill","resource":"silicon","building":"miner"}`, string(data))

	var back Cell
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, Miner, back.Building)

	assert.Error(t, json.Unmarshal([]byte(`{"type":"lava"}`), &back))
}
