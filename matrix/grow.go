// File: grow.go
// Role: Grow extends a square Dense by one zeroed row and column, preserving
// every prior entry at its original (i, j) — the matrix-growth rule required
// when a new node is admitted (§4.4). The teacher's Dense has no resize
// operation (its NewDense is the only allocator); this is new code, written
// in the teacher's allocate-and-copy style (see Dense.Clone).

package matrix

// Grow returns a new (n+1)x(n+1) Dense built from the square n x n matrix m,
// with every m[i][j] copied to the same (i, j) in the result and the new
// final row/column left zeroed. m must be square; Grow does not mutate m.
//
// Complexity: O(n^2).
func Grow(m *Dense) (*Dense, error) {
	if m.r != m.c {
		return nil, ErrDimensionMismatch
	}
	n := m.r
	out, err := NewDense(n+1, n+1)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		base := i * n
		dstBase := i * (n + 1)
		copy(out.data[dstBase:dstBase+n], m.data[base:base+n])
	}

	return out, nil
}
