// File: dense.go
// Role: Dense is a row-major matrix of float64 values, storing elements in a
// flat slice for cache-friendly access. Adapted from the teacher's
// matrix.Dense (same flat-buffer layout, same bounds-checked At/Set/Clone
// contract, same NaN-rejection policy on Set).

package matrix

import (
	"fmt"
	"math"
)

// denseErrorf wraps an underlying error with Dense method context, e.g.
// "Dense.At(3,7): matrix: index out of range" (indexOf labels every
// out-of-range error "At", also when Set is the caller).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major float64 matrix: r rows, c cols, data holds r*c
// elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros. A 0x0 matrix is
// permitted, representing the state before any node has been admitted;
// Grow extends it one row/column at a time from there.
// Complexity: O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col). Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col). Rejects NaN to keep ratio/weight
// tensors free of propagating corruption (§4.10 "non-finite regression
// output" is caught earlier, at the Line level, but this is cheap insurance
// at the storage boundary too). Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	if math.IsNaN(v) {
		return denseErrorf("Set", row, col, ErrNaN)
	}
	m.data[idx] = v

	return nil
}

// MustSet is Set but panics on error; used internally where indices are
// already known valid (e.g. Grow copying old cells into the new buffer).
func (m *Dense) MustSet(row, col int, v float64) {
	if err := m.Set(row, col, v); err != nil {
		panic(err)
	}
}

// Clone returns a deep copy of the matrix. Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Fill overwrites the entire backing buffer in row-major order. len(data)
// must equal Rows()*Cols().
func (m *Dense) Fill(data []float64) error {
	if len(data) != len(m.data) {
		return fmt.Errorf("Dense.Fill: got %d values, want %d: %w", len(data), len(m.data), ErrDimensionMismatch)
	}
	copy(m.data, data)

	return nil
}

// String implements fmt.Stringer for debugging. Complexity: O(r*c).
func (m *Dense) String() string {
	s := ""
	for i := 0; i < m.r; i++ {
		s += "["
		for j := 0; j < m.c; j++ {
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
