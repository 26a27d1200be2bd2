package simgraph

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/hupe1980/simgraph/graph"
)

// RandomKGraphConfig configures RandomKGraph.
type RandomKGraphConfig struct {
	// NumVertices is the number of vertices, >= 2.
	NumVertices int
	// K is the number of connection attempts per vertex, >= 1.
	K int
}

// RandomKGraph generates a graph with NumVertices vertices where every
// vertex makes exactly K connection attempts: each attempt picks a partner
// uniformly at random (never the vertex itself) and a weight uniformly in
// [0, 1). Attempts are not deduplicated, so a vertex may gain parallel edges
// to the same partner. The generator does not depend on any dataset.
//
// Use WithRandSource for deterministic output.
func RandomKGraph(ctx context.Context, cfg RandomKGraphConfig, opts ...Option) (*graph.Adjacency[float64], error) {
	o := applyOptions(opts)

	if cfg.NumVertices < 2 {
		return nil, fmt.Errorf("%w: need at least 2 vertices, got %d", ErrInvalidConfig, cfg.NumVertices)
	}
	if cfg.K < 1 {
		return nil, fmt.Errorf("%w: k must be positive, got %d", ErrInvalidConfig, cfg.K)
	}

	src := o.randSource
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	rng := rand.New(src)

	g, err := graph.NewAdjacency[float64](cfg.NumVertices)
	if err != nil {
		return nil, err
	}

	for i := 0; i < cfg.NumVertices; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		targets := make([]int, cfg.K)
		weights := make([]float64, cfg.K)
		for a := range targets {
			t := rng.Intn(cfg.NumVertices)
			for t == i {
				t = rng.Intn(cfg.NumVertices)
			}
			targets[a] = t
			weights[a] = rng.Float64()
		}
		if err := g.Connect(i, targets, weights); err != nil {
			return nil, err
		}
	}

	o.logger.LogRandomKGraph(ctx, cfg.NumVertices, cfg.K, nil)
	return g, nil
}
