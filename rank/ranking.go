// File: ranking.go
// Role: Ranking runs the transitive closure over the comparability graph
// (§4.6), completes the accumulated ratio matrix along shortest paths
// (§4.7), and scores every node (§4.8). It reports not-ready rather than an
// error when the graph is disconnected (§4.10, §7).

package rank

import (
	"math"

	"github.com/katalvlaran/noderank/compgraph"
)

// Ranking returns a mapping from node name to score, and true, when the
// comparability graph is connected. It returns (nil, false) — never an
// error — when not ready, per §4.8/§7.
func (e *Engine) Ranking() (map[string]float64, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	n := e.nodes.len()
	if n == 0 {
		return nil, false
	}

	if connected, err := e.cheapConnectivityCheck(); err == nil && !connected {
		return nil, false
	}

	isComparable := func(i, j int) bool {
		v, _ := e.comparable.At(i, j)

		return v != 0
	}
	closure := compgraph.NewClosure(n, isComparable)
	if !closure.Connected() {
		return nil, false
	}

	known := e.accumulatedRatios()
	completed := known.Clone()
	if err := compgraph.CompleteRatios(closure, isComparable, known, completed); err != nil {
		return nil, false // degenerate write (e.g. NaN); surface as not-ready, not a crash
	}

	scores := make(map[string]float64, n)
	for i, name := range e.nodes.names() {
		sum := 0.0
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v, _ := completed.At(i, j)
			sum += v
		}
		scores[name] = math.Exp(sum / float64(n))
	}

	return scores, true
}

// cheapConnectivityCheck runs a single BFS over a fresh mirror of the
// comparability matrix, to short-circuit the O(n^3) Floyd-Warshall closure
// when the graph is obviously disconnected.
func (e *Engine) cheapConnectivityCheck() (bool, error) {
	names := e.nodes.names()
	g := compgraph.NewGraph()
	for _, name := range names {
		if err := g.AddNode(name); err != nil {
			return false, err
		}
	}

	n := len(names)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v, _ := e.comparable.At(i, j)
			if v == 0 {
				continue
			}
			if err := g.SetComparable(names[i], names[j]); err != nil {
				return false, err
			}
		}
	}

	return g.Connected(names)
}
