// File: errors.go
// Role: sentinel errors for the matrix package, in the style of the
// teacher's matrix/errors.go — one var block, "matrix: ..." message prefix.
// Dense methods wrap them with %w to add method context, Grow returns them
// bare; callers match via errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates two matrices have incompatible dimensions for an operation.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaN indicates a NaN value was written where a real number is required.
	ErrNaN = errors.New("matrix: NaN encountered")
)
