// Package graph defines the weighted-graph contract consumed by the
// similarity-graph builders, plus two implementations: Adjacency, a
// vertex-partitioned edge store designed for the builders' parallel writes,
// and a gonum adapter for callers that want gonum's graph algorithms
// downstream.
//
// The only structural operations the builders perform are creating a graph
// with a fixed vertex count and batch-connecting one source vertex to a set
// of targets. Implementations must make Connect safe for concurrent calls
// with distinct source vertices; no guarantee is required for concurrent
// calls sharing a source.
package graph

import (
	"errors"
	"fmt"
)

// Weight constrains the edge-weight numeric type.
type Weight interface {
	~float32 | ~float64
}

// Sentinel errors.
var (
	// ErrInvalidOrder indicates a non-positive vertex count.
	ErrInvalidOrder = errors.New("graph: vertex count must be positive")
	// ErrLengthMismatch indicates targets and weights of different lengths.
	ErrLengthMismatch = errors.New("graph: targets and weights must have the same length")
	// ErrSelfLoop indicates a self edge on an implementation that rejects them.
	ErrSelfLoop = errors.New("graph: self loops are not supported")
)

// ErrVertexOutOfRange indicates a vertex index outside [0, Order).
type ErrVertexOutOfRange struct {
	Vertex int
	Order  int
}

func (e *ErrVertexOutOfRange) Error() string {
	return fmt.Sprintf("graph: vertex %d out of range [0, %d)", e.Vertex, e.Order)
}

// Graph is the weighted-graph capability required by the builders.
type Graph[W Weight] interface {
	// Order returns the number of vertices.
	Order() int
	// Connect adds an edge from src to every vertex in targets with the
	// corresponding weight. targets and weights must have the same length.
	// Must be safe for concurrent calls with distinct src.
	Connect(src int, targets []int, weights []W) error
}

func checkVertex[W Weight](g Graph[W], v int) error {
	if v < 0 || v >= g.Order() {
		return &ErrVertexOutOfRange{Vertex: v, Order: g.Order()}
	}
	return nil
}
