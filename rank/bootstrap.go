// File: bootstrap.go
// Role: admit implements the §4.1 bootstrap admission rules: a sample is
// stored directly once its cell already has data; otherwise it is buffered
// in pendingSingle or pendingPairs until a fittable configuration exists.

package rank

import "github.com/katalvlaran/noderank/model"

// admit applies one sample to the store or a bootstrap buffer, recording in
// dirty every cell that now has new data and must be re-fit.
func (e *Engine) admit(s model.Sample, dirty map[cellKey]struct{}) {
	key := cellKey{Task: s.Task, Node: s.Node}

	if existing, ok := e.samples[key]; ok && len(existing) >= 1 {
		e.samples[key] = append(existing, s)
		dirty[key] = struct{}{}

		return
	}

	// A pair for this (task, node) is already buffered awaiting task
	// promotion: extra samples join it without re-evaluating promotion,
	// which bufferPair only checks when a node's first pair is buffered.
	if pp, ok := e.pendingPairs[key.Task]; ok {
		if buffered, ok := pp[key.Node]; ok {
			pp[key.Node] = append(buffered, s)

			return
		}
	}

	if buffered, ok := e.pendingSingle[key]; ok {
		delete(e.pendingSingle, key)

		if e.tasks.has(s.Task) {
			e.admitCell(key, []model.Sample{buffered, s}, dirty)

			return
		}

		e.bufferPair(key, buffered, s, dirty)

		return
	}

	e.pendingSingle[key] = s
}

// admitCell moves a cell's buffered samples into the permanent store,
// growing the task/node indices and every matrix as needed (§4.4).
func (e *Engine) admitCell(key cellKey, sams []model.Sample, dirty map[cellKey]struct{}) {
	e.ensureTask(key.Task)
	e.ensureNode(key.Node)

	e.samples[key] = append(e.samples[key], sams...)
	dirty[key] = struct{}{}
}

// bufferPair records a not-yet-admitted (task, node) pair and, once the
// task's pending pairs span more than one distinct node and at least one of
// those nodes is already known (or no node has ever been admitted at all),
// promotes the task and admits every buffered pair for it in one step.
func (e *Engine) bufferPair(key cellKey, a, b model.Sample, dirty map[cellKey]struct{}) {
	pp, ok := e.pendingPairs[key.Task]
	if !ok {
		pp = make(map[string][]model.Sample)
		e.pendingPairs[key.Task] = pp
	}
	pp[key.Node] = []model.Sample{a, b}

	if len(pp) <= 1 {
		return
	}

	knownNodePresent := false
	for node := range pp {
		if e.nodes.has(node) {
			knownNodePresent = true

			break
		}
	}

	if !knownNodePresent && e.nodes.len() != 0 {
		return
	}

	for node, buffered := range pp {
		e.admitCell(cellKey{Task: key.Task, Node: node}, buffered, dirty)
	}
	delete(e.pendingPairs, key.Task)
}
