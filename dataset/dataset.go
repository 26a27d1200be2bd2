// Package dataset defines the accessor contract that abstracts over the
// concrete representation of a pattern collection, together with ready-made
// implementations for feature slices, gonum matrices and pixel grids.
//
// A pattern is one data item: a point, a pixel or a feature vector. Datasets
// are read-only; none of the implementations in this package are mutated
// after construction, which makes them safe for concurrent access.
package dataset

import "errors"

// Sentinel errors for dataset construction.
var (
	// ErrEmpty indicates a dataset with no patterns.
	ErrEmpty = errors.New("dataset: must contain at least one pattern")
	// ErrShapeMismatch indicates pattern data inconsistent with the declared shape.
	ErrShapeMismatch = errors.New("dataset: pattern data does not match declared shape")
)

// Dataset is the capability required of any pattern collection: report how
// many patterns it holds and fetch one by 0-based index.
//
// At may return a slice aliasing internal storage; callers must not modify it.
type Dataset interface {
	// Len returns the number of patterns.
	Len() int
	// At returns the feature vector of pattern i. It panics if i is out of
	// range, mirroring slice indexing.
	At(i int) []float32
}

// Grid is a Dataset whose patterns are laid out on a rectangular 2-D grid
// with row-major linear indexing: pattern (r, c) has index r*cols + c.
type Grid interface {
	Dataset
	// Bounds returns the grid dimensions.
	Bounds() (rows, cols int)
}

// Gather fetches the feature vectors for every index in idx, in order.
func Gather(ds Dataset, idx []int) [][]float32 {
	out := make([][]float32, len(idx))
	for i, j := range idx {
		out[i] = ds.At(j)
	}
	return out
}

// Slice adapts a [][]float32 to the Dataset interface, one pattern per entry.
type Slice [][]float32

// Compile-time check.
var _ Dataset = Slice(nil)

// Len returns the number of patterns.
func (s Slice) Len() int { return len(s) }

// At returns the feature vector of pattern i.
func (s Slice) At(i int) []float32 { return s[i] }
