// Package neighborhood provides the pluggable policies that decide which
// patterns count as neighbors of a vertex: a clamped pixel window over grid
// datasets, the full clique, k-nearest neighbors via a spatial index, and
// uniform random sampling.
//
// Strategies are constructed once (building the KNN index is the only
// expensive step), are read-only afterwards and are safe for concurrent use
// by many vertices, which is what the parallel graph builder relies on.
package neighborhood

import (
	"errors"
	"fmt"

	"github.com/hupe1980/simgraph/dataset"
)

// Sentinel errors.
var (
	// ErrInvalidK is returned when a non-positive neighbor count is requested.
	ErrInvalidK = errors.New("neighborhood: k must be positive")
	// ErrInvalidRadius is returned when a negative pixel radius is requested.
	ErrInvalidRadius = errors.New("neighborhood: radius must be non-negative")
)

// ErrInvalidGeometry indicates a strategy that requires a 2-D grid received a
// dataset without grid structure.
type ErrInvalidGeometry struct {
	Dataset string // concrete dataset type
}

func (e *ErrInvalidGeometry) Error() string {
	return fmt.Sprintf("neighborhood: dataset %s is not a 2-D grid", e.Dataset)
}

// ErrInsufficientPatterns indicates the dataset is too small to satisfy the
// requested neighbor count.
type ErrInsufficientPatterns struct {
	Requested int
	Available int
}

func (e *ErrInsufficientPatterns) Error() string {
	return fmt.Sprintf("neighborhood: %d neighbors requested but only %d patterns available", e.Requested, e.Available)
}

// ErrVertexOutOfRange indicates a vertex index outside [0, Len).
type ErrVertexOutOfRange struct {
	Vertex int
	Count  int
}

func (e *ErrVertexOutOfRange) Error() string {
	return fmt.Sprintf("neighborhood: vertex %d out of range [0, %d)", e.Vertex, e.Count)
}

// Strategy answers, for any vertex, which other vertices count as its
// neighbors. Implementations must be safe for concurrent calls.
//
// Neighbors returns indices in [0, ds.Len()) excluding j itself, except for
// Pixel, which includes j in its own window (see Pixel).
type Strategy interface {
	Neighbors(j int, ds dataset.Dataset) ([]int, error)
}

func checkVertex(j int, ds dataset.Dataset) error {
	if n := ds.Len(); j < 0 || j >= n {
		return &ErrVertexOutOfRange{Vertex: j, Count: n}
	}
	return nil
}
