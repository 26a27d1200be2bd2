package graph

import (
	"sync"

	"gonum.org/v1/gonum/graph/simple"
)

// Compile-time check.
var _ Graph[float64] = (*SimpleDirected)(nil)

// SimpleDirected adapts a gonum simple.WeightedDirectedGraph to the Graph
// contract, so a finished similarity graph can feed gonum's algorithm
// packages directly. A mutex serializes Connect because gonum graphs are not
// safe for concurrent mutation.
//
// gonum simple graphs reject self loops, so Connect returns ErrSelfLoop when
// a target equals the source (relevant for pixel neighborhoods, which include
// the vertex itself — use Adjacency for those). Repeated targets overwrite
// the existing edge rather than accumulating parallel edges.
type SimpleDirected struct {
	mu sync.Mutex
	g  *simple.WeightedDirectedGraph
	n  int
}

// NewSimpleDirected creates a gonum-backed graph with vertices 0..n-1.
func NewSimpleDirected(n int) (*SimpleDirected, error) {
	if n <= 0 {
		return nil, ErrInvalidOrder
	}

	g := simple.NewWeightedDirectedGraph(0, 0)
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}

	return &SimpleDirected{g: g, n: n}, nil
}

// Order returns the number of vertices.
func (s *SimpleDirected) Order() int { return s.n }

// Connect implements Graph.
func (s *SimpleDirected) Connect(src int, targets []int, weights []float64) error {
	if err := checkVertex[float64](s, src); err != nil {
		return err
	}
	if len(targets) != len(weights) {
		return ErrLengthMismatch
	}
	for _, t := range targets {
		if err := checkVertex[float64](s, t); err != nil {
			return err
		}
		if t == src {
			return ErrSelfLoop
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range targets {
		s.g.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(src),
			T: simple.Node(t),
			W: weights[i],
		})
	}

	return nil
}

// Underlying exposes the wrapped gonum graph for downstream algorithms. Do
// not mutate it while builders are running.
func (s *SimpleDirected) Underlying() *simple.WeightedDirectedGraph { return s.g }
