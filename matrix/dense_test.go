package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/noderank/matrix"
)

// TestNewDense_RejectsBadDimensions ASSERTS rows/cols must be non-negative,
// while a 0x0 matrix (the pre-first-node state) is allowed.
func TestNewDense_RejectsBadDimensions(t *testing.T) {
	_, err := matrix.NewDense(-1, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(3, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
}

// TestDense_AtSet ASSERTS Set/At round-trip within bounds and reject
// out-of-range indices and NaN values.
func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, 0, nanValue())
	require.ErrorIs(t, err, matrix.ErrNaN)
}

// TestDense_Clone ASSERTS Clone is a deep copy independent of the source.
func TestDense_Clone(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))

	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, 99))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, orig)
}

// TestDense_Fill ASSERTS Fill rejects mismatched lengths and otherwise
// overwrites the buffer in row-major order.
func TestDense_Fill(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	err = m.Fill([]float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	require.NoError(t, m.Fill([]float64{1, 2, 3, 4}))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
}

// TestGrow ASSERTS growing a square matrix by one row/column preserves every
// prior entry at its original (i, j) and zero-fills the new border — the
// monotone-append property required when a new node is admitted (§4.4).
func TestGrow(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Fill([]float64{1, 2, 3, 4}))

	grown, err := matrix.Grow(m)
	require.NoError(t, err)
	require.Equal(t, 3, grown.Rows())
	require.Equal(t, 3, grown.Cols())

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want, err := m.At(i, j)
			require.NoError(t, err)
			got, err := grown.At(i, j)
			require.NoError(t, err)
			require.Equal(t, want, got)
		}
	}

	for i := 0; i < 3; i++ {
		v, err := grown.At(i, 2)
		require.NoError(t, err)
		require.Zero(t, v)
	}
	for j := 0; j < 3; j++ {
		v, err := grown.At(2, j)
		require.NoError(t, err)
		require.Zero(t, v)
	}
}

// TestGrow_RejectsNonSquare ASSERTS Grow refuses a non-square input.
func TestGrow_RejectsNonSquare(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	_, err = matrix.Grow(m)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func nanValue() float64 {
	var zero float64
	return zero / zero
}
