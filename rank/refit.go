// File: refit.go
// Role: refitCell re-fits a single (task, node) cell from all its stored
// samples (§4.2), resolving the open question of incremental vs. from-scratch
// fitting in favour of from-scratch, since it is trivially deterministic
// given the current sample set.

package rank

import (
	"github.com/katalvlaran/noderank/model"
	"github.com/katalvlaran/noderank/regression"
)

// refitCell re-fits key from its full stored sample set and reports whether
// the cell's Line, Range, or sample count changed. A non-finite regression
// result (§4.10) is treated as no valid line, not as an error.
func (e *Engine) refitCell(key cellKey) bool {
	sams := e.samples[key]
	if len(sams) < 2 {
		return false
	}

	xs := make([]float64, len(sams))
	ys := make([]float64, len(sams))
	minX, maxX := sams[0].Rchar, sams[0].Rchar
	for i, s := range sams {
		xs[i] = s.Rchar
		ys[i] = s.Target
		if s.Rchar < minX {
			minX = s.Rchar
		}
		if s.Rchar > maxX {
			maxX = s.Rchar
		}
	}

	coef, intercept, err := e.fitter.Fit(xs, ys)

	prev := e.cells[key]
	var next model.Cell
	next.SampleCount = len(sams)

	if err == nil && regression.IsFinite(coef, intercept) {
		next.HasFit = true
		next.Line = model.Line{Coef: coef, Intercept: intercept}
		next.Range = model.Range{Start: minX, End: maxX}
	}

	e.cells[key] = next

	return next != prev
}
