package simgraph

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/simgraph/dataset"
	"github.com/hupe1980/simgraph/graph"
	"github.com/hupe1980/simgraph/neighborhood"
)

// Build constructs a similarity graph over ds: for every pattern, the
// strategy decides its neighbors and the oracle the edge weights. Vertices
// are processed in parallel (capped by WithParallelism); the result does not
// depend on scheduling order. The first failing vertex cancels the rest and
// the whole construction fails — there is no partial-graph recovery.
//
// The returned adjacency graph belongs to the caller. To target a different
// graph implementation, use BuildInto.
func Build[W graph.Weight](ctx context.Context, strategy neighborhood.Strategy, oracle Oracle[W], ds dataset.Dataset, opts ...Option) (*graph.Adjacency[W], error) {
	g, err := graph.NewAdjacency[W](ds.Len())
	if err != nil {
		return nil, err
	}
	if err := BuildInto[W](ctx, g, strategy, oracle, ds, opts...); err != nil {
		return nil, err
	}
	return g, nil
}

// BuildFloat64 is Build with the default double-precision edge weights.
func BuildFloat64(ctx context.Context, strategy neighborhood.Strategy, oracle Oracle[float64], ds dataset.Dataset, opts ...Option) (*graph.Adjacency[float64], error) {
	return Build[float64](ctx, strategy, oracle, ds, opts...)
}

// BuildInto runs the construction into a caller-supplied graph, which must
// have one vertex per pattern and a Connect implementation that is safe for
// concurrent calls with distinct source vertices (see graph.Graph).
func BuildInto[W graph.Weight](ctx context.Context, g graph.Graph[W], strategy neighborhood.Strategy, oracle Oracle[W], ds dataset.Dataset, opts ...Option) error {
	o := applyOptions(opts)

	n := ds.Len()
	if g.Order() != n {
		return fmt.Errorf("simgraph: graph order %d does not match pattern count %d", g.Order(), n)
	}

	start := time.Now()
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(o.parallelism)

	for j := 0; j < n; j++ {
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			vertexStart := time.Now()
			err := buildVertex(g, strategy, oracle, ds, j)
			o.metrics.RecordVertex(time.Since(vertexStart), err)
			if err != nil {
				return fmt.Errorf("simgraph: vertex %d: %w", j, err)
			}
			return nil
		})
	}

	err := grp.Wait()
	o.metrics.RecordBuild(n, time.Since(start), err)
	o.logger.LogBuild(ctx, n, time.Since(start), err)

	return err
}

// buildVertex is one unit of work: neighbor lookup, feature fetch, oracle
// evaluation and a single batched edge insertion. It only reads shared
// immutable state and writes the edge set of its own vertex, so units need
// no synchronization between each other.
func buildVertex[W graph.Weight](g graph.Graph[W], strategy neighborhood.Strategy, oracle Oracle[W], ds dataset.Dataset, j int) error {
	neighbors, err := strategy.Neighbors(j, ds)
	if err != nil {
		return err
	}

	x := ds.At(j)
	xs := dataset.Gather(ds, neighbors)

	weights, err := oracle(j, neighbors, x, xs)
	if err != nil {
		return err
	}
	if len(weights) != len(neighbors) {
		return &ErrWeightCount{Vertex: j, Neighbors: len(neighbors), Weights: len(weights)}
	}

	return g.Connect(j, neighbors, weights)
}
