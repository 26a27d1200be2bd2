package simgraph

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/simgraph/dataset"
	"github.com/hupe1980/simgraph/distance"
	"github.com/hupe1980/simgraph/neighborhood"
)

// DefaultScaleK is the default neighbor order for LocalScale: each pattern's
// scale is its distance to the 7th nearest neighbor, the self-tuning
// spectral clustering heuristic.
const DefaultScaleK = 7

// Distancer computes pairwise distances between a pattern and its neighbors,
// one output row per distance dimension and one column per neighbor. The two
// calling conventions an estimator distance function may honor are declared
// explicitly by constructing either a PairwiseDistance or a FullDistance;
// there is no runtime signature probing.
type Distancer interface {
	Distances(j int, neighbors []int, x []float32, xs [][]float32) (*mat.Dense, error)
}

// PairwiseDistance adapts a plain feature-to-feature distance function: it
// is invoked with the two feature payloads only and produces a single row.
func PairwiseDistance(fn distance.Func) Distancer {
	return pairwiseDistancer{fn: fn}
}

type pairwiseDistancer struct {
	fn distance.Func
}

func (p pairwiseDistancer) Distances(j int, neighbors []int, x []float32, xs [][]float32) (*mat.Dense, error) {
	row := make([]float64, len(xs))
	for i, xn := range xs {
		row[i] = float64(p.fn(x, xn))
	}
	return mat.NewDense(1, len(xs), row), nil
}

// FullDistance adapts a distance function that wants the complete calling
// convention: vertex id, neighbor ids and both feature payloads. It may emit
// several rows, one per output dimension.
func FullDistance(fn func(j int, neighbors []int, x []float32, xs [][]float32) (*mat.Dense, error)) Distancer {
	return fullDistancer(fn)
}

type fullDistancer func(j int, neighbors []int, x []float32, xs [][]float32) (*mat.Dense, error)

func (f fullDistancer) Distances(j int, neighbors []int, x []float32, xs [][]float32) (*mat.Dense, error) {
	return f(j, neighbors, x, xs)
}

// LocalScale estimates a per-pattern distance scale: for every pattern, the
// distance to its k-th nearest neighbor (k via WithK, default DefaultScaleK)
// among the neighbors chosen by the strategy. The result has one column per
// pattern and one row per output dimension of the distance function. Each
// output dimension is sorted independently, so row r of column j holds the
// k-th smallest value of dimension r over j's neighbors.
//
// A vertex whose neighbor set is smaller than k is a fatal
// ErrInsufficientNeighbors; there is no silent degradation here, because a
// missing k-th distance would corrupt the downstream affinity normalization.
func LocalScale(ctx context.Context, strategy neighborhood.Strategy, d Distancer, ds dataset.Dataset, opts ...Option) (*mat.Dense, error) {
	o := applyOptions(opts)

	n := ds.Len()
	if n == 0 {
		return nil, dataset.ErrEmpty
	}

	start := time.Now()
	scale, err := localScale(ctx, strategy, d, ds, o)
	o.metrics.RecordLocalScale(o.k, time.Since(start), err)
	o.logger.LogLocalScale(ctx, o.k, n, time.Since(start), err)

	return scale, err
}

func localScale(ctx context.Context, strategy neighborhood.Strategy, d Distancer, ds dataset.Dataset, o *options) (*mat.Dense, error) {
	n := ds.Len()

	// The first vertex fixes the number of output dimensions.
	first, err := scaleColumn(strategy, d, ds, 0, o.k)
	if err != nil {
		return nil, fmt.Errorf("simgraph: vertex 0: %w", err)
	}
	rows := len(first)

	scale := mat.NewDense(rows, n, nil)
	scale.SetCol(0, first)

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(o.parallelism)

	// Columns are vertex-partitioned, so the parallel writes are disjoint.
	for j := 1; j < n; j++ {
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			col, err := scaleColumn(strategy, d, ds, j, o.k)
			if err != nil {
				return fmt.Errorf("simgraph: vertex %d: %w", j, err)
			}
			if len(col) != rows {
				return &ErrScaleShape{Vertex: j, Expected: rows, Actual: len(col)}
			}

			scale.SetCol(j, col)
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return scale, nil
}

func scaleColumn(strategy neighborhood.Strategy, d Distancer, ds dataset.Dataset, j, k int) ([]float64, error) {
	neighbors, err := strategy.Neighbors(j, ds)
	if err != nil {
		return nil, err
	}
	if k > len(neighbors) {
		return nil, &ErrInsufficientNeighbors{Vertex: j, K: k, Neighbors: len(neighbors)}
	}

	x := ds.At(j)
	xs := dataset.Gather(ds, neighbors)

	dm, err := d.Distances(j, neighbors, x, xs)
	if err != nil {
		return nil, err
	}

	rows, cols := dm.Dims()
	if cols != len(neighbors) {
		return nil, fmt.Errorf("simgraph: distance output has %d columns for %d neighbors", cols, len(neighbors))
	}

	col := make([]float64, rows)
	buf := make([]float64, cols)
	for r := 0; r < rows; r++ {
		mat.Row(buf, r, dm)
		sort.Float64s(buf)
		col[r] = buf[k-1]
	}
	return col, nil
}
