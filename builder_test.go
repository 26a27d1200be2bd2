package simgraph

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/simgraph/dataset"
	"github.com/hupe1980/simgraph/distance"
	"github.com/hupe1980/simgraph/graph"
	"github.com/hupe1980/simgraph/neighborhood"
	"github.com/hupe1980/simgraph/testutil"
)

// linePoints is the 1-D dataset 0,1,2,3,10: four clustered points and an
// outlier.
var linePoints = dataset.Slice{{0}, {1}, {2}, {3}, {10}}

func TestBuildKNN(t *testing.T) {
	knn, err := neighborhood.NewKNN(2, linePoints)
	require.NoError(t, err)

	g, err := BuildFloat64(context.Background(), knn, InverseDistance[float64](distance.Euclidean), linePoints)
	require.NoError(t, err)

	require.Equal(t, 5, g.Order())
	for j := 0; j < g.Order(); j++ {
		assert.Equal(t, 2, g.Degree(j), "vertex %d", j)
	}

	// The outlier at 10 connects to its two closest points, 3 and 2,
	// never to 0 or 1.
	targets := []int{}
	for _, e := range g.Edges(4) {
		targets = append(targets, e.To)
	}
	sort.Ints(targets)
	assert.Equal(t, []int{2, 3}, targets)

	// Weights are the inverse Euclidean distances.
	w, ok := g.WeightOf(4, 3)
	require.True(t, ok)
	assert.InDelta(t, 1.0/7.0, w, 1e-6)
	w, ok = g.WeightOf(0, 1)
	require.True(t, ok)
	assert.InDelta(t, 1.0, w, 1e-6)
}

func TestBuildClique(t *testing.T) {
	g, err := Build[float64](context.Background(), neighborhood.Clique{}, Ones[float64](), linePoints)
	require.NoError(t, err)

	for j := 0; j < g.Order(); j++ {
		require.Equal(t, 4, g.Degree(j))
		for _, e := range g.Edges(j) {
			assert.NotEqual(t, j, e.To)
			assert.Equal(t, 1.0, e.Weight)
		}
	}
}

func TestBuildPixelWindow(t *testing.T) {
	grid, err := dataset.NewIntensityGrid([][]float32{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
	})
	require.NoError(t, err)

	pixel, err := neighborhood.NewPixel(1)
	require.NoError(t, err)

	g, err := BuildFloat64(context.Background(), pixel, Constant[float64](0.5), grid)
	require.NoError(t, err)

	// The center pixel's window is the whole grid, itself included.
	require.Equal(t, 9, g.Degree(4))
	w, ok := g.WeightOf(4, 4)
	require.True(t, ok)
	assert.Equal(t, 0.5, w)

	// Corner windows clamp to 4 pixels.
	assert.Equal(t, 4, g.Degree(0))
}

func TestBuildRandomStrategy(t *testing.T) {
	random, err := neighborhood.NewRandom(3, neighborhood.WithSeed(11))
	require.NoError(t, err)

	ds := dataset.Slice(testutil.NewRNG(5).UniformVectors(20, 2))
	g, err := BuildFloat64(context.Background(), random, Ones[float64](), ds)
	require.NoError(t, err)

	for j := 0; j < g.Order(); j++ {
		require.Equal(t, 3, g.Degree(j))
		for _, e := range g.Edges(j) {
			assert.NotEqual(t, j, e.To)
		}
	}
}

// TestBuildOrderInvariance checks the key correctness property of the
// parallel variant: sequential and maximally concurrent execution produce
// the identical graph.
func TestBuildOrderInvariance(t *testing.T) {
	ds := dataset.Slice(testutil.NewRNG(17).UniformVectors(64, 3))

	knn, err := neighborhood.NewKNN(4, ds)
	require.NoError(t, err)
	oracle := InverseDistance[float64](distance.SquaredL2)

	sequential, err := BuildFloat64(context.Background(), knn, oracle, ds, WithParallelism(1))
	require.NoError(t, err)

	parallel, err := BuildFloat64(context.Background(), knn, oracle, ds, WithParallelism(16))
	require.NoError(t, err)

	require.Equal(t, sequential.Order(), parallel.Order())
	require.Equal(t, sequential.EdgeCount(), parallel.EdgeCount())
	for j := 0; j < sequential.Order(); j++ {
		assert.Equal(t, sequential.Edges(j), parallel.Edges(j), "vertex %d", j)
	}
}

func TestBuildFloat32Weights(t *testing.T) {
	knn, err := neighborhood.NewKNN(1, linePoints)
	require.NoError(t, err)

	g, err := Build[float32](context.Background(), knn, Ones[float32](), linePoints)
	require.NoError(t, err)

	w, ok := g.WeightOf(0, 1)
	require.True(t, ok)
	assert.Equal(t, float32(1), w)
}

func TestBuildInto(t *testing.T) {
	t.Run("GonumGraph", func(t *testing.T) {
		knn, err := neighborhood.NewKNN(2, linePoints)
		require.NoError(t, err)

		g, err := graph.NewSimpleDirected(5)
		require.NoError(t, err)

		require.NoError(t, BuildInto[float64](context.Background(), g, knn, Ones[float64](), linePoints))

		w, ok := g.Underlying().Weight(4, 3)
		require.True(t, ok)
		assert.Equal(t, 1.0, w)
	})

	t.Run("OrderMismatch", func(t *testing.T) {
		g, err := graph.NewAdjacency[float64](3)
		require.NoError(t, err)

		err = BuildInto[float64](context.Background(), g, neighborhood.Clique{}, Ones[float64](), linePoints)
		require.Error(t, err)
	})
}

func TestBuildFailFast(t *testing.T) {
	t.Run("OracleError", func(t *testing.T) {
		oracleErr := errors.New("bad similarity")
		oracle := func(j int, neighbors []int, x []float32, xs [][]float32) ([]float64, error) {
			return nil, oracleErr
		}

		_, err := BuildFloat64(context.Background(), neighborhood.Clique{}, oracle, linePoints)
		require.ErrorIs(t, err, oracleErr)
	})

	t.Run("WeightCountMismatch", func(t *testing.T) {
		oracle := func(j int, neighbors []int, x []float32, xs [][]float32) ([]float64, error) {
			return []float64{1}, nil // always one weight, whatever the neighbor count
		}

		_, err := BuildFloat64(context.Background(), neighborhood.Clique{}, oracle, linePoints)
		var wc *ErrWeightCount
		require.ErrorAs(t, err, &wc)
		assert.Equal(t, 4, wc.Neighbors)
		assert.Equal(t, 1, wc.Weights)
	})

	t.Run("StrategyError", func(t *testing.T) {
		pixel, err := neighborhood.NewPixel(1)
		require.NoError(t, err)

		// Not a grid dataset.
		_, err = BuildFloat64(context.Background(), pixel, Ones[float64](), linePoints)
		var ig *neighborhood.ErrInvalidGeometry
		require.ErrorAs(t, err, &ig)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := BuildFloat64(ctx, neighborhood.Clique{}, Ones[float64](), linePoints)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestBuildEmptyDataset(t *testing.T) {
	_, err := BuildFloat64(context.Background(), neighborhood.Clique{}, Ones[float64](), dataset.Slice{})
	require.ErrorIs(t, err, graph.ErrInvalidOrder)
}
