// File: aggregate.go
// Role: accumulatedRatios computes the weighted average log-ratio matrix A
// across all tasks (§4.5).

package rank

import "github.com/katalvlaran/noderank/matrix"

// accumulatedRatios returns A, where A[i][j] is the weighted average of
// every task's ratio_T[i][j], weighted by that task's weight_T[i][j]. When
// the total weight for a pair is zero, A[i][j] is left at zero — the
// "unknown" state, consistent with C[i][j] being false for that pair.
func (e *Engine) accumulatedRatios() *matrix.Dense {
	n := e.nodes.len()
	a, err := matrix.NewDense(n, n)
	if err != nil {
		panic(err) // unreachable: n is always >= 0
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}

			var num, sumW float64
			for task, ratioM := range e.ratio {
				w, _ := e.weight[task].At(i, j)
				r, _ := ratioM.At(i, j)
				num += r * w
				sumW += w
			}

			denom := sumW
			if denom < 1 {
				denom = 1
			}
			a.MustSet(i, j, num/denom)
		}
	}

	return a
}
