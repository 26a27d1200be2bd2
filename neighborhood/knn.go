package neighborhood

import (
	"github.com/hupe1980/simgraph/dataset"
	"github.com/hupe1980/simgraph/spatial"
)

// Compile-time check.
var _ Strategy = (*KNN)(nil)

// Transform is a pure projection applied to every pattern before indexing
// and to every query pattern before searching. It must not mutate its input.
type Transform func(x []float32) []float32

// KNNOptions contains configuration options for the KNN strategy.
type KNNOptions struct {
	// Transform projects patterns before indexing and querying.
	// nil means identity.
	Transform Transform

	// NewIndex builds the spatial index over the (transformed) patterns.
	// Defaults to an exact flat index with squared-L2 ranking.
	NewIndex func(points [][]float32) (spatial.Index, error)
}

// WithTransform sets the pattern projection.
func WithTransform(t Transform) func(o *KNNOptions) {
	return func(o *KNNOptions) { o.Transform = t }
}

// WithIndex sets the spatial index constructor.
func WithIndex(newIndex func(points [][]float32) (spatial.Index, error)) func(o *KNNOptions) {
	return func(o *KNNOptions) { o.NewIndex = newIndex }
}

// WithKDTree selects the gonum k-d tree index instead of the flat scan.
func WithKDTree() func(o *KNNOptions) {
	return WithIndex(func(points [][]float32) (spatial.Index, error) {
		return spatial.NewKDTree(points)
	})
}

// KNN connects every vertex to its k nearest patterns under the metric of a
// spatial index built once over the whole dataset. The index is immutable
// and shared, so queries from many goroutines are safe.
type KNN struct {
	k         int
	index     spatial.Index
	transform Transform
}

// NewKNN builds the strategy for ds, indexing transform(pattern) for every
// pattern. This is the one expensive construction step; queries afterwards
// are cheap. The strategy must be queried with the same dataset it was built
// from.
func NewKNN(k int, ds dataset.Dataset, optFns ...func(o *KNNOptions)) (*KNN, error) {
	if k < 1 {
		return nil, ErrInvalidK
	}

	opts := KNNOptions{
		NewIndex: func(points [][]float32) (spatial.Index, error) {
			return spatial.NewFlat(points)
		},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	points := make([][]float32, ds.Len())
	for i := range points {
		x := ds.At(i)
		if opts.Transform != nil {
			x = opts.Transform(x)
		}
		points[i] = x
	}

	index, err := opts.NewIndex(points)
	if err != nil {
		return nil, err
	}

	return &KNN{k: k, index: index, transform: opts.Transform}, nil
}

// K returns the requested neighbor count.
func (s *KNN) K() int { return s.k }

// Neighbors implements Strategy. The index contains the query point itself,
// so k+1 nearest are fetched and the self match dropped. When the dataset
// holds fewer than k+1 patterns the result degrades silently to what the
// index can produce.
func (s *KNN) Neighbors(j int, ds dataset.Dataset) ([]int, error) {
	if err := checkVertex(j, ds); err != nil {
		return nil, err
	}

	q := ds.At(j)
	if s.transform != nil {
		q = s.transform(q)
	}

	results, err := s.index.Nearest(q, s.k+1)
	if err != nil {
		return nil, err
	}

	out := make([]int, 0, s.k)
	for _, r := range results {
		if r.ID == j {
			continue
		}
		out = append(out, r.ID)
		if len(out) == s.k {
			break
		}
	}
	return out, nil
}
