// File: types.go
// Role: Sample, Line, Range and Cell — the estimator's core value types.
//
// Sample is the raw learn record (§3 of the design). Line and Range are the
// fitted per-(task,node) state. Cell bundles them with the observation count
// so that validity (§"Valid-data predicate") can be checked in one place.

package model

import "math"

// Sample is one observed task execution: the node that ran it, the task
// kind, the regression feature (rchar) and the observed cost (target).
// The driver decodes a Sample only from a record whose key set is exactly
// {node, task, rchar, target}; a record with additional fields is not a
// learn record and never reaches this type.
type Sample struct {
	Node   string  `json:"node"`
	Task   string  `json:"task"`
	Rchar  float64 `json:"rchar"`
	Target float64 `json:"target"`
}

// Range is a closed interval [Start, End] on the feature axis.
type Range struct {
	Start float64
	End   float64
}

// Width returns End - Start. A non-positive width means the interval is
// empty or a single point; callers treat Width <= 0 as "no usable overlap".
func (r Range) Width() float64 {
	return r.End - r.Start
}

// Intersection returns the elementwise max/min overlap of r and other. The
// result may have a non-positive Width if the two ranges do not overlap.
func (r Range) Intersection(other Range) Range {
	return Range{
		Start: math.Max(r.Start, other.Start),
		End:   math.Min(r.End, other.End),
	}
}

// Line is a fitted univariate linear model y = Coef*x + Intercept.
type Line struct {
	Coef      float64
	Intercept float64
}

// Evaluate returns the line's value at x.
func (l Line) Evaluate(x float64) float64 {
	return l.Coef*x + l.Intercept
}

// AverageOn returns the line's average value over r, equal to
// (Evaluate(r.Start) + Evaluate(r.End)) / 2. Callers must ensure r.Width() > 0
// before trusting the result as a meaningful average cost.
func (l Line) AverageOn(r Range) float64 {
	return (l.Evaluate(r.Start) + l.Evaluate(r.End)) / 2
}

// Cell is the per-(task,node) state held by the estimator: the number of
// admitted samples plus, once fittable, a Line and its observation Range.
//
// Invariant (enforced by package rank, not by Cell itself): Line and Range
// are either both present or both absent; present implies SampleCount >= 2
// and Range.Width() >= 0.
type Cell struct {
	SampleCount int
	Line        Line
	Range       Range
	HasFit      bool
}

// Valid reports whether the cell satisfies the valid-data predicate: at
// least two samples, a fitted line, and a strictly positive-width range.
func (c Cell) Valid() bool {
	return c.SampleCount >= 2 && c.HasFit && c.Range.Width() > 0
}
