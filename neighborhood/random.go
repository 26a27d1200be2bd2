package neighborhood

import (
	"math/rand"
	"sync"
	"time"

	"github.com/hupe1980/simgraph/dataset"
)

// Compile-time check.
var _ Strategy = (*Random)(nil)

// RandomOptions contains configuration options for the Random strategy.
type RandomOptions struct {
	// Seed seeds the sampler when SeedSet is true; otherwise the sampler
	// seeds from the clock. Any seed value, including 0, is valid.
	Seed    int64
	SeedSet bool
}

// WithSeed makes the sampler deterministic.
func WithSeed(seed int64) func(o *RandomOptions) {
	return func(o *RandomOptions) {
		o.Seed = seed
		o.SeedSet = true
	}
}

// Random connects every vertex to k other vertices drawn uniformly without
// replacement. Repeated calls for the same vertex draw independently.
type Random struct {
	k    int
	mu   sync.Mutex
	rand *rand.Rand
}

// NewRandom creates a random-sampling strategy requesting k neighbors.
func NewRandom(k int, optFns ...func(o *RandomOptions)) (*Random, error) {
	if k < 1 {
		return nil, ErrInvalidK
	}

	var opts RandomOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	seed := opts.Seed
	if !opts.SeedSet {
		seed = time.Now().UnixNano()
	}

	return &Random{k: k, rand: rand.New(rand.NewSource(seed))}, nil
}

// K returns the requested neighbor count.
func (s *Random) K() int { return s.k }

// Neighbors implements Strategy. The draw is a partial Fisher-Yates shuffle
// over [0, n) with j removed, so it is uniform over all k-subsets excluding
// j and always terminates. Requesting more neighbors than exist is an error.
func (s *Random) Neighbors(j int, ds dataset.Dataset) ([]int, error) {
	if err := checkVertex(j, ds); err != nil {
		return nil, err
	}

	n := ds.Len()
	if s.k > n-1 {
		return nil, &ErrInsufficientPatterns{Requested: s.k, Available: n - 1}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Virtual array of the n-1 candidates; swaps records displaced values.
	m := n - 1
	swaps := make(map[int]int, s.k*2)
	out := make([]int, s.k)
	for i := 0; i < s.k; i++ {
		t := i + s.rand.Intn(m-i)
		vt, ok := swaps[t]
		if !ok {
			vt = t
		}
		vi, ok := swaps[i]
		if !ok {
			vi = i
		}
		swaps[t] = vi

		// Candidate positions skip over j.
		if vt >= j {
			vt++
		}
		out[i] = vt
	}

	return out, nil
}
