package neighborhood

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/simgraph/dataset"
	"github.com/hupe1980/simgraph/testutil"
)

func TestClique(t *testing.T) {
	ds := dataset.Slice{{0}, {1}, {2}, {3}}

	t.Run("AllButSelf", func(t *testing.T) {
		for j := 0; j < ds.Len(); j++ {
			neigh, err := Clique{}.Neighbors(j, ds)
			require.NoError(t, err)
			assert.Len(t, neigh, ds.Len()-1)
			assert.NotContains(t, neigh, j)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		a, err := Clique{}.Neighbors(1, ds)
		require.NoError(t, err)
		b, err := Clique{}.Neighbors(1, ds)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("VertexOutOfRange", func(t *testing.T) {
		_, err := Clique{}.Neighbors(4, ds)
		var oor *ErrVertexOutOfRange
		require.ErrorAs(t, err, &oor)

		_, err = Clique{}.Neighbors(-1, ds)
		require.ErrorAs(t, err, &oor)
	})
}

func TestPixel(t *testing.T) {
	grid3x3, err := dataset.NewIntensityGrid([][]float32{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
	})
	require.NoError(t, err)

	t.Run("CenterWindowIncludesSelf", func(t *testing.T) {
		p, err := NewPixel(1)
		require.NoError(t, err)

		// Center of the 3x3 grid is linear index 4; the radius-1 window is
		// the whole grid, the vertex itself included.
		neigh, err := p.Neighbors(4, grid3x3)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, neigh)
	})

	t.Run("CornerWindowClamped", func(t *testing.T) {
		p, err := NewPixel(1)
		require.NoError(t, err)

		neigh, err := p.Neighbors(0, grid3x3)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 3, 4}, neigh)

		neigh, err = p.Neighbors(8, grid3x3)
		require.NoError(t, err)
		assert.Equal(t, []int{4, 5, 7, 8}, neigh)
	})

	t.Run("RadiusZero", func(t *testing.T) {
		p, err := NewPixel(0)
		require.NoError(t, err)

		neigh, err := p.Neighbors(5, grid3x3)
		require.NoError(t, err)
		assert.Equal(t, []int{5}, neigh)
	})

	t.Run("LargeRadiusCoversGrid", func(t *testing.T) {
		p, err := NewPixel(10)
		require.NoError(t, err)

		neigh, err := p.Neighbors(0, grid3x3)
		require.NoError(t, err)
		assert.Len(t, neigh, 9)
	})

	t.Run("NonGridDataset", func(t *testing.T) {
		p, err := NewPixel(1)
		require.NoError(t, err)

		_, err = p.Neighbors(0, dataset.Slice{{1}, {2}})
		var ig *ErrInvalidGeometry
		require.ErrorAs(t, err, &ig)
	})

	t.Run("NegativeRadius", func(t *testing.T) {
		_, err := NewPixel(-1)
		require.ErrorIs(t, err, ErrInvalidRadius)
	})

	t.Run("Idempotent", func(t *testing.T) {
		p, err := NewPixel(1)
		require.NoError(t, err)

		a, err := p.Neighbors(2, grid3x3)
		require.NoError(t, err)
		b, err := p.Neighbors(2, grid3x3)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}

func TestKNN(t *testing.T) {
	// 1-D points 0..4 at positions 0,1,2,3,10.
	ds := dataset.Slice{{0}, {1}, {2}, {3}, {10}}

	t.Run("ExactNeighbors", func(t *testing.T) {
		s, err := NewKNN(2, ds)
		require.NoError(t, err)
		assert.Equal(t, 2, s.K())

		// The outlier at 10 is closest to 3 and 2, never to 0 or 1.
		neigh, err := s.Neighbors(4, ds)
		require.NoError(t, err)
		assert.Equal(t, []int{3, 2}, neigh)

		neigh, err = s.Neighbors(0, ds)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, neigh)
	})

	t.Run("ExcludesSelf", func(t *testing.T) {
		s, err := NewKNN(3, ds)
		require.NoError(t, err)

		for j := 0; j < ds.Len(); j++ {
			neigh, err := s.Neighbors(j, ds)
			require.NoError(t, err)
			assert.Len(t, neigh, 3)
			assert.NotContains(t, neigh, j)
		}
	})

	t.Run("DegradesWhenKTooLarge", func(t *testing.T) {
		s, err := NewKNN(10, ds)
		require.NoError(t, err)

		neigh, err := s.Neighbors(0, ds)
		require.NoError(t, err)
		assert.Len(t, neigh, ds.Len()-1)
		assert.NotContains(t, neigh, 0)
	})

	t.Run("Transform", func(t *testing.T) {
		// Project 2-D patterns onto their first coordinate; the second
		// coordinate must not influence the ranking.
		ds2 := dataset.Slice{{0, 100}, {1, -100}, {2, 0}, {10, 50}}
		s, err := NewKNN(1, ds2, WithTransform(func(x []float32) []float32 {
			return x[:1]
		}))
		require.NoError(t, err)

		neigh, err := s.Neighbors(0, ds2)
		require.NoError(t, err)
		assert.Equal(t, []int{1}, neigh)
	})

	t.Run("KDTreeIndex", func(t *testing.T) {
		s, err := NewKNN(2, ds, WithKDTree())
		require.NoError(t, err)

		neigh, err := s.Neighbors(4, ds)
		require.NoError(t, err)
		assert.Equal(t, []int{3, 2}, neigh)
	})

	t.Run("Idempotent", func(t *testing.T) {
		s, err := NewKNN(2, ds)
		require.NoError(t, err)

		a, err := s.Neighbors(2, ds)
		require.NoError(t, err)
		b, err := s.Neighbors(2, ds)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("InvalidK", func(t *testing.T) {
		_, err := NewKNN(0, ds)
		require.ErrorIs(t, err, ErrInvalidK)
	})
}

func TestKNNMatchesBruteForce(t *testing.T) {
	rng := testutil.NewRNG(3)
	ds := dataset.Slice(rng.UniformVectors(100, 4))

	s, err := NewKNN(5, ds)
	require.NoError(t, err)

	tree, err := NewKNN(5, ds, WithKDTree())
	require.NoError(t, err)

	for j := 0; j < ds.Len(); j += 7 {
		a, err := s.Neighbors(j, ds)
		require.NoError(t, err)
		b, err := tree.Neighbors(j, ds)
		require.NoError(t, err)

		sort.Ints(a)
		sort.Ints(b)
		assert.Equal(t, a, b, "vertex %d", j)
	}
}

func TestRandom(t *testing.T) {
	ds := dataset.Slice{{0}, {1}, {2}, {3}, {4}, {5}, {6}, {7}}

	t.Run("ExactCardinalityAndNoSelf", func(t *testing.T) {
		s, err := NewRandom(3, WithSeed(42))
		require.NoError(t, err)

		for j := 0; j < ds.Len(); j++ {
			for trial := 0; trial < 10; trial++ {
				neigh, err := s.Neighbors(j, ds)
				require.NoError(t, err)
				assert.Len(t, neigh, 3)
				assert.NotContains(t, neigh, j)

				seen := map[int]bool{}
				for _, v := range neigh {
					assert.GreaterOrEqual(t, v, 0)
					assert.Less(t, v, ds.Len())
					assert.False(t, seen[v], "duplicate neighbor %d", v)
					seen[v] = true
				}
			}
		}
	})

	t.Run("FullDraw", func(t *testing.T) {
		s, err := NewRandom(7, WithSeed(1))
		require.NoError(t, err)

		neigh, err := s.Neighbors(2, ds)
		require.NoError(t, err)

		sort.Ints(neigh)
		assert.Equal(t, []int{0, 1, 3, 4, 5, 6, 7}, neigh)
	})

	t.Run("InsufficientPatterns", func(t *testing.T) {
		s, err := NewRandom(8, WithSeed(1))
		require.NoError(t, err)

		_, err = s.Neighbors(0, ds)
		var ip *ErrInsufficientPatterns
		require.ErrorAs(t, err, &ip)
		assert.Equal(t, 8, ip.Requested)
		assert.Equal(t, 7, ip.Available)
	})

	t.Run("RoughlyUniform", func(t *testing.T) {
		s, err := NewRandom(1, WithSeed(99))
		require.NoError(t, err)

		counts := make([]int, ds.Len())
		const trials = 7000
		for i := 0; i < trials; i++ {
			neigh, err := s.Neighbors(0, ds)
			require.NoError(t, err)
			counts[neigh[0]]++
		}

		assert.Zero(t, counts[0])
		for v := 1; v < ds.Len(); v++ {
			// Expected trials/7 = 1000 draws per candidate.
			assert.InDelta(t, trials/7, counts[v], 150, "candidate %d", v)
		}
	})

	t.Run("ZeroSeedDeterministic", func(t *testing.T) {
		a, err := NewRandom(3, WithSeed(0))
		require.NoError(t, err)
		b, err := NewRandom(3, WithSeed(0))
		require.NoError(t, err)

		for trial := 0; trial < 20; trial++ {
			na, err := a.Neighbors(trial%ds.Len(), ds)
			require.NoError(t, err)
			nb, err := b.Neighbors(trial%ds.Len(), ds)
			require.NoError(t, err)
			assert.Equal(t, na, nb, "trial %d", trial)
		}
	})

	t.Run("InvalidK", func(t *testing.T) {
		_, err := NewRandom(0)
		require.ErrorIs(t, err, ErrInvalidK)
	})
}
