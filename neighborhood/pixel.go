package neighborhood

import (
	"fmt"

	"github.com/hupe1980/simgraph/dataset"
)

// Compile-time check.
var _ Strategy = (*Pixel)(nil)

// Pixel returns the square window of half-width radius around a pixel,
// clamped to the grid bounds. The dataset must implement dataset.Grid.
//
// Unlike every other strategy, the window includes the vertex itself; the
// oracle must tolerate self-similarity (or the downstream weight function
// must handle it).
type Pixel struct {
	radius int
}

// NewPixel creates a pixel-window strategy with the given half-width.
// radius must be >= 0; radius 0 yields only the vertex itself.
func NewPixel(radius int) (*Pixel, error) {
	if radius < 0 {
		return nil, ErrInvalidRadius
	}
	return &Pixel{radius: radius}, nil
}

// Radius returns the window half-width.
func (p *Pixel) Radius() int { return p.radius }

// Neighbors implements Strategy.
func (p *Pixel) Neighbors(j int, ds dataset.Dataset) ([]int, error) {
	grid, ok := ds.(dataset.Grid)
	if !ok {
		return nil, &ErrInvalidGeometry{Dataset: fmt.Sprintf("%T", ds)}
	}
	if err := checkVertex(j, ds); err != nil {
		return nil, err
	}

	rows, cols := grid.Bounds()
	row, col := j/cols, j%cols

	rLo, rHi := max(row-p.radius, 0), min(row+p.radius, rows-1)
	cLo, cHi := max(col-p.radius, 0), min(col+p.radius, cols-1)

	out := make([]int, 0, (rHi-rLo+1)*(cHi-cLo+1))
	for r := rLo; r <= rHi; r++ {
		for c := cLo; c <= cHi; c++ {
			out = append(out, r*cols+c)
		}
	}
	return out, nil
}
