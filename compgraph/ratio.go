// File: ratio.go
// Role: CompleteRatios fills in previously-unknown accumulated log-ratio
// entries by path-summing along the shortest paths found by Closure (§4.7).

package compgraph

// RatioMatrix is the minimal read/write surface CompleteRatios needs from
// the accumulated log-ratio matrix A (§4.5). rank.Engine's matrix.Dense
// satisfies it directly.
type RatioMatrix interface {
	At(i, j int) (float64, error)
	Set(i, j int, v float64) error
}

// CompleteRatios fills a copy of known into every (i, j) with comparable[i][j]
// false, i != j and j reachable from i, using cl's shortest paths, per §4.7
// (unreachable pairs are left as they are in completed):
//
//  1. Walk predecessors from j back towards i, collecting intermediates,
//     until reaching a direct neighbour of i (or i itself); the first known
//     log-ratio is known[i][current].
//  2. Walk the collected intermediates from i's side outward, accumulating
//     ln_ratio += known[prev][popped], writing completed[i][popped] =
//     ln_ratio and completed[popped][i] = -ln_ratio.
//
// known and comparable are not mutated; the result is written into
// completed, which callers typically initialise as a clone of known.
// Returns an error only if a read from known fails or completed rejects a
// write (e.g. NaN).
func CompleteRatios(cl *Closure, comparable func(i, j int) bool, known, completed RatioMatrix) error {
	n := cl.n

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || comparable(i, j) {
				continue
			}
			if cl.Distance(i, j) == unreachable(n) {
				continue // still not comparable even transitively; leave as unknown
			}

			// path holds the intermediates strictly between i and j, in
			// i->j order. Every consecutive pair on a shortest path is a
			// direct (distance-1) edge of the comparability graph, so each
			// hop's log-ratio is already known in the original matrix.
			path := cl.PathFromTo(i, j)
			hops := append(append([]int{i}, path...), j)

			prev := i
			lnRatio := 0.0
			for _, node := range hops[1:] {
				step, err := known.At(prev, node)
				if err != nil {
					return err
				}
				lnRatio += step
				if node != j {
					// Intermediate stop: record the accumulated ratio so
					// far between i and this intermediate node too.
					if err := completed.Set(i, node, lnRatio); err != nil {
						return err
					}
					if err := completed.Set(node, i, -lnRatio); err != nil {
						return err
					}
				}
				prev = node
			}

			if err := completed.Set(i, j, lnRatio); err != nil {
				return err
			}
			if err := completed.Set(j, i, -lnRatio); err != nil {
				return err
			}
		}
	}

	return nil
}
