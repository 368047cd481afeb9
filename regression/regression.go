// File: regression.go
// Role: the univariate linear regression primitive, specified only by its
// interface — the spec treats it as an external collaborator and requires
// only that it produce a deterministic (coef, intercept) given the current
// sample set (Open Question #1 in SPEC_FULL.md).
//
// Determinism & Policy:
//   - Fitter.Fit must be a pure function of (x, y): same inputs, same output.
//   - Numerical stability is the Fitter's concern, not the caller's; callers
//     only check IsFinite before trusting a fit (package rank, §4.10).

package regression

import (
	"errors"
	"math"
)

// ErrInsufficientData is returned when fewer than two samples are given or
// x and y differ in length; x-values are not checked for distinctness.
// Callers (package rank) are expected to never
// reach this, since the bootstrap buffer (§4.1) guarantees at least two
// samples before a cell is admitted — it exists so a Fitter implementation
// never has to panic on malformed input.
var ErrInsufficientData = errors.New("regression: at least two samples required")

// Fitter produces a univariate linear model y ≈ coef*x + intercept from a
// set of (x, y) observation pairs. x and y must have equal, non-zero length.
type Fitter interface {
	Fit(x, y []float64) (coef, intercept float64, err error)
}

// Seeder is an optional interface a Fitter may implement to accept the CLI's
// seed argument (§6). The default OLSFitter has no randomness and does not
// implement it; a future sampling-based primitive (e.g. a Bayesian fit) has
// a defined place to receive a seed without changing the Fitter interface.
type Seeder interface {
	Seed(seed int64)
}

// IsFinite reports whether both model parameters are finite real numbers,
// matching the spec's "non-finite regression output" degeneracy (§4.10).
func IsFinite(coef, intercept float64) bool {
	return !math.IsNaN(coef) && !math.IsInf(coef, 0) &&
		!math.IsNaN(intercept) && !math.IsInf(intercept, 0)
}
