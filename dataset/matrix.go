package dataset

import "gonum.org/v1/gonum/mat"

// Matrix adapts a gonum dense matrix to the Dataset interface. Each column is
// one pattern; the row count is the feature dimension. Values are converted
// to float32 once at construction, so At is allocation-free.
type Matrix struct {
	dim     int
	columns [][]float32
}

var _ Dataset = (*Matrix)(nil)

// NewMatrix wraps m, treating columns as patterns. The matrix is copied and
// later mutation of m does not affect the dataset.
func NewMatrix(m mat.Matrix) (*Matrix, error) {
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return nil, ErrEmpty
	}

	columns := make([][]float32, cols)
	for j := 0; j < cols; j++ {
		col := make([]float32, rows)
		for i := 0; i < rows; i++ {
			col[i] = float32(m.At(i, j))
		}
		columns[j] = col
	}

	return &Matrix{dim: rows, columns: columns}, nil
}

// Len returns the number of patterns (matrix columns).
func (m *Matrix) Len() int { return len(m.columns) }

// At returns the feature vector of pattern i.
func (m *Matrix) At(i int) []float32 { return m.columns[i] }

// Dim returns the feature dimension (matrix rows).
func (m *Matrix) Dim() int { return m.dim }
