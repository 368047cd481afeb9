// File: engine.go
// Role: Engine is the single long-lived estimator value (§2): it owns the
// node/task indices, per-cell regression cache, per-task ratio/weight
// matrices, the global comparability matrix, and the bootstrap buffers, and
// exposes Learn, NodeCount, and Ranking.

package rank

import (
	"sync"

	"github.com/katalvlaran/noderank/matrix"
	"github.com/katalvlaran/noderank/model"
	"github.com/katalvlaran/noderank/regression"
)

// cellKey identifies a single (task, node) regression cell.
type cellKey struct {
	Task string
	Node string
}

// Engine is the incremental node-ranking estimator. The zero value is not
// usable; construct with New.
type Engine struct {
	mu sync.RWMutex // coarse reader-writer lock: Learn excludes, Ranking/NodeCount share

	fitter regression.Fitter

	nodes *index
	tasks *index

	samples map[cellKey][]model.Sample // every admitted sample, by cell
	cells   map[cellKey]model.Cell     // fitted Line/Range/count, by cell

	ratio      map[string]*matrix.Dense // per-task NxN log-ratio matrix
	weight     map[string]*matrix.Dense // per-task NxN weight matrix
	comparable *matrix.Dense            // global NxN comparability matrix C (1.0/0.0)

	pendingSingle map[cellKey]model.Sample       // at most one sample awaiting a partner
	pendingPairs  map[string]map[string][]model.Sample // task -> node -> buffered samples
}

// New constructs an empty Engine that fits lines with fitter.
func New(fitter regression.Fitter) *Engine {
	comparable, err := matrix.NewDense(0, 0)
	if err != nil {
		panic(err) // unreachable: 0x0 is always valid
	}

	return &Engine{
		fitter:        fitter,
		nodes:         newIndex(),
		tasks:         newIndex(),
		samples:       make(map[cellKey][]model.Sample),
		cells:         make(map[cellKey]model.Cell),
		ratio:         make(map[string]*matrix.Dense),
		weight:        make(map[string]*matrix.Dense),
		comparable:    comparable,
		pendingSingle: make(map[cellKey]model.Sample),
		pendingPairs:  make(map[string]map[string][]model.Sample),
	}
}

// NodeCount returns the number of nodes admitted so far.
func (e *Engine) NodeCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.nodes.len()
}

// Learn ingests one sample per the bootstrap admission rules (§4.1), re-fits
// every cell the admission touched (§4.2), and recomputes the affected rows
// and columns of the per-task ratio/weight matrices and the global
// comparability matrix (§4.3).
func (e *Engine) Learn(s model.Sample) error {
	if s.Node == "" {
		return ErrEmptyNode
	}
	if s.Task == "" {
		return ErrEmptyTask
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	dirty := make(map[cellKey]struct{})
	e.admit(s, dirty)

	for key := range dirty {
		if e.refitCell(key) {
			e.updateRatios(key)
		}
	}

	return nil
}

// ensureNode assigns name a stable index if it doesn't have one yet, and
// extends every per-task matrix and the global comparability matrix by one
// zeroed row/column (§4.4).
func (e *Engine) ensureNode(name string) {
	if e.nodes.has(name) {
		return
	}
	e.nodes.add(name)

	for task, m := range e.ratio {
		grown, err := matrix.Grow(m)
		if err != nil {
			panic(err) // invariant: per-task matrices are always square
		}
		e.ratio[task] = grown
	}
	for task, m := range e.weight {
		grown, err := matrix.Grow(m)
		if err != nil {
			panic(err)
		}
		e.weight[task] = grown
	}
	grownC, err := matrix.Grow(e.comparable)
	if err != nil {
		panic(err)
	}
	e.comparable = grownC
}

// ensureTask assigns name a stable index if it doesn't have one yet, and
// allocates a fresh zeroed ratio/weight matrix pair sized to the current
// node count (§4.4).
func (e *Engine) ensureTask(name string) {
	if e.tasks.has(name) {
		return
	}
	e.tasks.add(name)

	n := e.nodes.len()
	rm, err := matrix.NewDense(n, n)
	if err != nil {
		panic(err)
	}
	wm, err := matrix.NewDense(n, n)
	if err != nil {
		panic(err)
	}
	e.ratio[name] = rm
	e.weight[name] = wm
}
