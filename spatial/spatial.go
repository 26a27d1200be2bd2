// Package spatial provides nearest-neighbor indexes over a fixed point set.
//
// An Index is built once over every pattern of a dataset and is immutable
// afterwards, so it supports concurrent queries without synchronization. Two
// implementations are provided: Flat, an exact brute-force scan, and KDTree,
// an exact space-partitioning tree backed by gonum.
package spatial

import (
	"errors"
	"fmt"
)

// ErrEmptyIndex is returned when an index is built over zero points.
var ErrEmptyIndex = errors.New("spatial: index must contain at least one point")

// ErrDimensionMismatch indicates a query/point dimensionality mismatch.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("spatial: dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidK is returned when a non-positive neighbor count is requested.
var ErrInvalidK = errors.New("spatial: k must be positive")

// Result is one nearest-neighbor match.
type Result struct {
	ID       int     // index of the point in build order
	Distance float32 // distance to the query under the index metric
}

// Index is the nearest-neighbor search capability. Implementations must be
// safe for concurrent queries after construction.
//
// Nearest returns up to k points closest to q, ordered by ascending distance
// with ties broken by ascending ID. Fewer than k results are returned when
// the index holds fewer than k points.
type Index interface {
	Nearest(q []float32, k int) ([]Result, error)
}
