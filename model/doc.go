// Package model defines the core value types shared across the estimator:
// Sample, Line, Range and Cell.
//
// These are plain data holders with small, deterministic methods (Evaluate,
// AverageOn, Intersection, Width). They carry no locking and no I/O; the
// owning Engine (package rank) is responsible for concurrency and for
// deciding when a Cell's Line/Range are re-fit.
package model
