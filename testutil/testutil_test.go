package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/simgraph/dataset"
	"github.com/hupe1980/simgraph/distance"
)

func TestRNGDeterminism(t *testing.T) {
	a := NewRNG(42).UniformDataset(10, 4)
	b := NewRNG(42).UniformDataset(10, 4)
	assert.Equal(t, a, b)

	rng := NewRNG(42)
	first := rng.UniformDataset(10, 4)
	rng.Reset()
	assert.Equal(t, first, rng.UniformDataset(10, 4))
}

func TestUniformDataset(t *testing.T) {
	ds := NewRNG(1).UniformDataset(100, 8)
	require.Equal(t, 100, ds.Len())

	for i := 0; i < ds.Len(); i++ {
		v := ds.At(i)
		require.Len(t, v, 8)
		for _, x := range v {
			assert.GreaterOrEqual(t, x, float32(0))
			assert.Less(t, x, float32(1))
		}
	}
}

func TestIntensityGrid(t *testing.T) {
	grid, err := NewRNG(1).IntensityGrid(4, 6)
	require.NoError(t, err)

	rows, cols := grid.Bounds()
	assert.Equal(t, 4, rows)
	assert.Equal(t, 6, cols)
	assert.Equal(t, 24, grid.Len())
}

func TestExactNeighbors(t *testing.T) {
	ds := dataset.Slice{{0}, {1}, {2}, {3}, {10}}

	assert.Equal(t, []int{3, 2}, ExactNeighbors(ds, 4, 2, distance.SquaredL2))
	assert.Equal(t, []int{0, 2}, ExactNeighbors(ds, 1, 2, distance.SquaredL2))

	// k larger than the candidate set returns everything.
	assert.Equal(t, []int{1, 2, 3, 4}, ExactNeighbors(ds, 0, 10, distance.SquaredL2))
}
