// File: ratio.go
// Role: updateRatios recomputes one cell's row/column of its task's ratio
// and weight matrices against every other node with valid data for the same
// task (§4.3), and keeps the global comparability matrix consistent.

package rank

import "math"

// updateRatios recomputes key's row/column of ratio_T and weight_T, and the
// corresponding entries of the global comparability matrix.
func (e *Engine) updateRatios(key cellKey) {
	i, ok := e.nodes.indexOf(key.Node)
	if !ok {
		return // unreachable: admit only dirties cells of admitted nodes
	}

	cellN := e.cells[key]
	ratioM := e.ratio[key.Task]
	weightM := e.weight[key.Task]

	n := e.nodes.len()
	for j := 0; j < n; j++ {
		if j == i {
			continue
		}
		other := e.nodes.names()[j]
		otherCell, ok := e.cells[cellKey{Task: key.Task, Node: other}]
		if !ok || !cellN.Valid() || !otherCell.Valid() {
			e.clearPair(key.Task, i, j)

			continue
		}

		r := cellN.Range.Intersection(otherCell.Range)
		if r.Width() <= 0 {
			e.clearPair(key.Task, i, j)

			continue
		}

		muN := cellN.Line.AverageOn(r)
		muM := otherCell.Line.AverageOn(r)
		if !usableAverages(muN, muM) {
			e.clearPair(key.Task, i, j)

			continue
		}

		lnRatio := math.Log(muN / muM)
		w := float64((cellN.SampleCount - 1) * (otherCell.SampleCount - 1))

		ratioM.MustSet(i, j, lnRatio)
		ratioM.MustSet(j, i, -lnRatio)
		weightM.MustSet(i, j, w)
		weightM.MustSet(j, i, w)

		e.recomputeComparable(i, j)
	}
}

// usableAverages reports whether a and b are both finite, non-zero, and of
// the same sign (§4.3 step 3); otherwise the pair carries no usable ratio.
func usableAverages(a, b float64) bool {
	if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) {
		return false
	}
	if a == 0 || b == 0 {
		return false
	}

	return (a > 0) == (b > 0)
}

// clearPair zeroes task's ratio/weight entries for (i, j) — the pair no
// longer carries a usable comparison for this task, per the open-question
// decision to clear rather than retain a stale ratio — then recomputes
// whether the pair is still comparable via any other task.
func (e *Engine) clearPair(task string, i, j int) {
	e.ratio[task].MustSet(i, j, 0)
	e.ratio[task].MustSet(j, i, 0)
	e.weight[task].MustSet(i, j, 0)
	e.weight[task].MustSet(j, i, 0)

	e.recomputeComparable(i, j)
}

// recomputeComparable sets C[i][j] = C[j][i] = true iff some task's weight
// matrix has a positive entry at (i, j) — the comparability-consistency
// invariant (§3, testable property 4).
func (e *Engine) recomputeComparable(i, j int) {
	comparable := false
	for _, w := range e.weight {
		v, _ := w.At(i, j)
		if v > 0 {
			comparable = true

			break
		}
	}

	v := 0.0
	if comparable {
		v = 1
	}
	e.comparable.MustSet(i, j, v)
	e.comparable.MustSet(j, i, v)
}
