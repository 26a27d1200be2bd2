package spatial

import (
	"github.com/hupe1980/simgraph/distance"
	"github.com/hupe1980/simgraph/internal/queue"
)

// Compile-time check to ensure Flat satisfies the Index interface.
var _ Index = (*Flat)(nil)

// FlatOptions contains configuration options for the flat index.
type FlatOptions struct {
	// Metric selects the distance function used for ranking.
	Metric distance.Metric
}

// DefaultFlatOptions contains the default configuration options for the flat
// index.
var DefaultFlatOptions = FlatOptions{
	Metric: distance.MetricSquaredL2,
}

// Flat is an exact nearest-neighbor index that scans every point per query,
// keeping the best k candidates in a bounded heap. Build cost is O(1); query
// cost is O(n·d). Immutable after construction.
type Flat struct {
	points [][]float32
	dim    int
	fn     distance.Func
	metric distance.Metric
}

// NewFlat builds a flat index over points. The slice is retained, not copied;
// callers must not mutate it afterwards.
func NewFlat(points [][]float32, optFns ...func(o *FlatOptions)) (*Flat, error) {
	opts := DefaultFlatOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if len(points) == 0 {
		return nil, ErrEmptyIndex
	}

	dim := len(points[0])
	for _, p := range points {
		if len(p) != dim {
			return nil, &ErrDimensionMismatch{Expected: dim, Actual: len(p)}
		}
	}

	fn, err := distance.Provider(opts.Metric)
	if err != nil {
		return nil, err
	}

	return &Flat{points: points, dim: dim, fn: fn, metric: opts.Metric}, nil
}

// Len returns the number of indexed points.
func (f *Flat) Len() int { return len(f.points) }

// Metric returns the distance metric the index ranks by.
func (f *Flat) Metric() distance.Metric { return f.metric }

// Nearest implements Index.
func (f *Flat) Nearest(q []float32, k int) ([]Result, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}
	if len(q) != f.dim {
		return nil, &ErrDimensionMismatch{Expected: f.dim, Actual: len(q)}
	}

	if k > len(f.points) {
		k = len(f.points)
	}

	top := queue.NewTopK(k)
	for id, p := range f.points {
		top.Offer(queue.Item{ID: id, Distance: f.fn(q, p)})
	}

	items := top.Items()
	results := make([]Result, len(items))
	for i, item := range items {
		results[i] = Result{ID: item.ID, Distance: item.Distance}
	}
	return results, nil
}
