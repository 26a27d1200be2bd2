package simgraph

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned for an unusable random k-graph configuration.
var ErrInvalidConfig = errors.New("simgraph: invalid config")

// ErrWeightCount indicates an oracle returned a weight vector whose length
// does not match the neighbor set it was given.
type ErrWeightCount struct {
	Vertex    int
	Neighbors int
	Weights   int
}

func (e *ErrWeightCount) Error() string {
	return fmt.Sprintf("simgraph: oracle returned %d weights for %d neighbors of vertex %d", e.Weights, e.Neighbors, e.Vertex)
}

// ErrInsufficientNeighbors indicates the local-scale k exceeds a vertex's
// neighbor count, so the k-th nearest distance does not exist.
type ErrInsufficientNeighbors struct {
	Vertex    int
	K         int
	Neighbors int
}

func (e *ErrInsufficientNeighbors) Error() string {
	return fmt.Sprintf("simgraph: scale index %d out of range for vertex %d with %d neighbors", e.K, e.Vertex, e.Neighbors)
}

// ErrScaleShape indicates a distance function emitted a different number of
// output dimensions for different vertices.
type ErrScaleShape struct {
	Vertex   int
	Expected int
	Actual   int
}

func (e *ErrScaleShape) Error() string {
	return fmt.Sprintf("simgraph: distance output for vertex %d has %d rows, expected %d", e.Vertex, e.Actual, e.Expected)
}
