// Package matrix provides Dense, a row-major float64 matrix used to store
// the per-task ratio and weight tensors (§3 "Per-task matrices").
//
// Adapted from the teacher's matrix package: same flat-slice storage layout
// and bounds-checked At/Set/Clone contract. This module adds Grow, a
// capability the teacher's fixed-size Dense does not have, because the spec
// requires matrices to extend by a one-row/one-column border as new nodes
// are admitted (§4.4) while preserving every previously written entry at its
// original (i, j). Grow returns a new matrix and leaves its input unchanged.
package matrix
