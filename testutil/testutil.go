package testutil

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/hupe1980/simgraph/dataset"
	"github.com/hupe1980/simgraph/distance"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// UniformVectors generates num random vectors of dim values uniform in
// [0, 1). Uses a single backing array for efficiency.
func (r *RNG) UniformVectors(num, dim int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dim)
	vectors := make([][]float32, num)

	for i := range num {
		vec := data[i*dim : (i+1)*dim]
		for j := range vec {
			vec[j] = r.rand.Float32()
		}
		vectors[i] = vec
	}

	return vectors
}

// UniformDataset is UniformVectors typed as a dataset.
func (r *RNG) UniformDataset(num, dim int) dataset.Slice {
	return dataset.Slice(r.UniformVectors(num, dim))
}

// GaussianDataset generates a dataset of num patterns with dim features each,
// values from a standard normal distribution.
func (r *RNG) GaussianDataset(num, dim int) dataset.Slice {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dim)
	patterns := make(dataset.Slice, num)

	for i := range num {
		vec := data[i*dim : (i+1)*dim]
		for j := range vec {
			vec[j] = float32(r.rand.NormFloat64())
		}
		patterns[i] = vec
	}

	return patterns
}

// IntensityGrid generates a rows x cols pixel grid with uniform random
// single-channel intensities in [0, 1).
func (r *RNG) IntensityGrid(rows, cols int) (*dataset.PixelGrid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pixels := make([][]float32, rows*cols)
	for i := range pixels {
		pixels[i] = []float32{r.rand.Float32()}
	}
	return dataset.NewPixelGrid(rows, cols, pixels)
}

// ExactNeighbors computes the ground-truth k nearest neighbors of pattern j
// by brute force, excluding j itself. Results are ordered by ascending
// distance, ties broken by ascending index.
func ExactNeighbors(ds dataset.Dataset, j, k int, fn distance.Func) []int {
	type cand struct {
		id   int
		dist float32
	}

	x := ds.At(j)
	cands := make([]cand, 0, ds.Len()-1)
	for i := 0; i < ds.Len(); i++ {
		if i == j {
			continue
		}
		cands = append(cands, cand{id: i, dist: fn(x, ds.At(i))})
	}

	sort.Slice(cands, func(a, b int) bool {
		if cands[a].dist != cands[b].dist {
			return cands[a].dist < cands[b].dist
		}
		return cands[a].id < cands[b].id
	})

	if k > len(cands) {
		k = len(cands)
	}
	ids := make([]int, k)
	for i := range ids {
		ids[i] = cands[i].id
	}
	return ids
}
