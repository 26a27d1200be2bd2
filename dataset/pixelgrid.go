package dataset

// PixelGrid is a rectangular grid of pixels, each carrying a feature vector
// (for example RGB channels or a single intensity). Linear indexing is
// row-major: pixel (r, c) has index r*cols + c.
type PixelGrid struct {
	rows, cols int
	pixels     [][]float32
}

var _ Grid = (*PixelGrid)(nil)

// NewPixelGrid builds a grid from row-major pixel data. len(pixels) must
// equal rows*cols.
func NewPixelGrid(rows, cols int, pixels [][]float32) (*PixelGrid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmpty
	}
	if len(pixels) != rows*cols {
		return nil, ErrShapeMismatch
	}
	return &PixelGrid{rows: rows, cols: cols, pixels: pixels}, nil
}

// NewIntensityGrid builds a grid from a rectangular 2-D slice of scalar
// intensities. All rows must have the same length.
func NewIntensityGrid(values [][]float32) (*PixelGrid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmpty
	}

	rows, cols := len(values), len(values[0])
	pixels := make([][]float32, 0, rows*cols)
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrShapeMismatch
		}
		for _, v := range row {
			pixels = append(pixels, []float32{v})
		}
	}

	return &PixelGrid{rows: rows, cols: cols, pixels: pixels}, nil
}

// Len returns the number of pixels.
func (g *PixelGrid) Len() int { return len(g.pixels) }

// At returns the feature vector of pixel i.
func (g *PixelGrid) At(i int) []float32 { return g.pixels[i] }

// Bounds returns the grid dimensions.
func (g *PixelGrid) Bounds() (rows, cols int) { return g.rows, g.cols }
