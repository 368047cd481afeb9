// File: gonum.go
// Role: default Fitter implementation, backed by gonum's ordinary
// least-squares line fit. Re-fits from the full sample set on every call
// (Open Question #1): simplest deterministic choice, and cheap at the
// node/task cardinalities the spec expects ("dozens at most").

package regression

import "gonum.org/v1/gonum/stat"

// OLSFitter fits y = coef*x + intercept by ordinary least squares.
//
// The spec's Non-goals explicitly exempt the regression from global
// optimality ("a linear fit suffices"); OLSFitter is the plain, deterministic
// choice that satisfies that bar without modeling the Bayesian-ridge prior
// of the original reference implementation.
type OLSFitter struct{}

// NewOLSFitter constructs the default Fitter.
func NewOLSFitter() *OLSFitter {
	return &OLSFitter{}
}

// Fit computes (coef, intercept) via stat.LinearRegression with unweighted,
// non-origin-constrained observations.
func (f *OLSFitter) Fit(x, y []float64) (coef, intercept float64, err error) {
	if len(x) < 2 || len(x) != len(y) {
		return 0, 0, ErrInsufficientData
	}

	intercept, coef = stat.LinearRegression(x, y, nil, false)

	return coef, intercept, nil
}

var _ Fitter = (*OLSFitter)(nil)
