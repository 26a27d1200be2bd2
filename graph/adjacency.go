package graph

import "slices"

// Compile-time check.
var _ Graph[float64] = (*Adjacency[float64])(nil)

// Edge is one outgoing half-edge of an Adjacency graph.
type Edge[W Weight] struct {
	To     int
	Weight W
}

// Adjacency stores directed weighted edges in per-source rows. Because
// Connect only ever touches the row of its source vertex, concurrent calls
// with distinct sources are race-free without locking — exactly the write
// pattern of the parallel builders.
//
// Read accessors must not run concurrently with Connect.
type Adjacency[W Weight] struct {
	rows [][]Edge[W]
}

// NewAdjacency creates an adjacency graph with n vertices and no edges.
func NewAdjacency[W Weight](n int) (*Adjacency[W], error) {
	if n <= 0 {
		return nil, ErrInvalidOrder
	}
	return &Adjacency[W]{rows: make([][]Edge[W], n)}, nil
}

// Order returns the number of vertices.
func (g *Adjacency[W]) Order() int { return len(g.rows) }

// Connect implements Graph. Repeated targets are kept as parallel edges.
func (g *Adjacency[W]) Connect(src int, targets []int, weights []W) error {
	if err := checkVertex[W](g, src); err != nil {
		return err
	}
	if len(targets) != len(weights) {
		return ErrLengthMismatch
	}
	for _, t := range targets {
		if err := checkVertex[W](g, t); err != nil {
			return err
		}
	}

	row := g.rows[src]
	if row == nil {
		row = make([]Edge[W], 0, len(targets))
	}
	for i, t := range targets {
		row = append(row, Edge[W]{To: t, Weight: weights[i]})
	}
	g.rows[src] = row

	return nil
}

// Degree returns the number of outgoing edges of src.
func (g *Adjacency[W]) Degree(src int) int { return len(g.rows[src]) }

// Edges returns a copy of the outgoing edges of src, in insertion order.
func (g *Adjacency[W]) Edges(src int) []Edge[W] { return slices.Clone(g.rows[src]) }

// EdgeCount returns the total number of edges.
func (g *Adjacency[W]) EdgeCount() int {
	var n int
	for _, row := range g.rows {
		n += len(row)
	}
	return n
}

// WeightOf returns the weight of the first edge from u to v, if any.
func (g *Adjacency[W]) WeightOf(u, v int) (W, bool) {
	for _, e := range g.rows[u] {
		if e.To == v {
			return e.Weight, true
		}
	}
	var zero W
	return zero, false
}
