package simgraph

import (
	"github.com/hupe1980/simgraph/dataset"
	"github.com/hupe1980/simgraph/distance"
	"github.com/hupe1980/simgraph/graph"
)

// Oracle is the caller-supplied similarity function: given a vertex, its
// neighbor set and both feature payloads, it returns one edge weight per
// neighbor, in neighbor order. The weights are never inferred by the
// library; whatever the oracle returns is written to the graph verbatim.
//
// Oracles are invoked concurrently from the parallel builder and must be
// safe for concurrent calls.
type Oracle[W graph.Weight] func(j int, neighbors []int, x []float32, xs [][]float32) ([]W, error)

// Constant returns an oracle assigning the fixed weight w to every edge.
// Intended as a default or for testing, not as a production similarity.
func Constant[W graph.Weight](w W) Oracle[W] {
	return func(j int, neighbors []int, x []float32, xs [][]float32) ([]W, error) {
		weights := make([]W, len(neighbors))
		for i := range weights {
			weights[i] = w
		}
		return weights, nil
	}
}

// Ones returns an oracle assigning weight 1 to every edge.
func Ones[W graph.Weight]() Oracle[W] {
	return Constant[W](1)
}

// InverseDistance returns an oracle whose weight is the reciprocal of the
// given distance. A zero distance (identical patterns, or a pixel window's
// self edge) yields +Inf; callers whose strategies can produce self edges
// should handle that in their own oracle.
func InverseDistance[W graph.Weight](fn distance.Func) Oracle[W] {
	return func(j int, neighbors []int, x []float32, xs [][]float32) ([]W, error) {
		weights := make([]W, len(neighbors))
		for i, xn := range xs {
			weights[i] = W(1 / float64(fn(x, xn)))
		}
		return weights, nil
	}
}

// Weight is a single-pair convenience wrapper around the batch oracle
// contract: it fetches the patterns of i and j and returns the weight the
// oracle assigns to the edge (i, j).
func Weight[W graph.Weight](o Oracle[W], i, j int, ds dataset.Dataset) (W, error) {
	weights, err := o(i, []int{j}, ds.At(i), [][]float32{ds.At(j)})
	if err != nil {
		var zero W
		return zero, err
	}
	if len(weights) != 1 {
		var zero W
		return zero, &ErrWeightCount{Vertex: i, Neighbors: 1, Weights: len(weights)}
	}
	return weights[0], nil
}
