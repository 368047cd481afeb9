package rank_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/noderank/model"
	"github.com/katalvlaran/noderank/rank"
	"github.com/katalvlaran/noderank/regression"
)

func learnLine(t *testing.T, e *rank.Engine, task, node string, xs []float64, slope, intercept float64) {
	t.Helper()
	for _, x := range xs {
		require.NoError(t, e.Learn(model.Sample{Task: task, Node: node, Rchar: x, Target: slope*x + intercept}))
	}
}

// TestEngine_TwoNodesOneTask is scenario S1: a cheaper node (B costs exactly
// twice what A costs) ranks with a score ratio of ~0.5.
func TestEngine_TwoNodesOneTask(t *testing.T) {
	e := rank.New(regression.NewOLSFitter())

	learnLine(t, e, "T", "A", []float64{1, 2, 3, 4}, 1, 0)
	learnLine(t, e, "T", "B", []float64{1, 2, 3, 4}, 2, 0)

	require.Equal(t, 2, e.NodeCount())
	require.Equal(t, rank.StateReady, e.State())

	scores, ready := e.Ranking()
	require.True(t, ready)
	require.InDelta(t, 0.5, scores["A"]/scores["B"], 1e-6)
}

// TestEngine_Bootstrap is scenario S3: a single sample never admits a cell
// and the engine reports not ready; a second sample for the same cell is
// still only buffered, since the task has no second node to compare with.
func TestEngine_Bootstrap(t *testing.T) {
	e := rank.New(regression.NewOLSFitter())

	require.NoError(t, e.Learn(model.Sample{Task: "T", Node: "A", Rchar: 1, Target: 1}))
	require.Equal(t, 0, e.NodeCount())
	require.Equal(t, rank.StateBuffering, e.State())

	_, ready := e.Ranking()
	require.False(t, ready)

	require.NoError(t, e.Learn(model.Sample{Task: "T", Node: "A", Rchar: 2, Target: 2}))
	require.Equal(t, 0, e.NodeCount()) // still just one node: no comparison possible yet
}

// TestEngine_TransitiveCompletion is scenario S4: two disjoint tasks sharing
// node B connect A and C transitively, and the unseen A-C ratio equals the
// sum of the A-B and B-C ratios.
func TestEngine_TransitiveCompletion(t *testing.T) {
	e := rank.New(regression.NewOLSFitter())

	learnLine(t, e, "T1", "A", []float64{1, 2, 3, 4}, 1, 0)
	learnLine(t, e, "T1", "B", []float64{1, 2, 3, 4}, 2, 0)
	learnLine(t, e, "T2", "B", []float64{1, 2, 3, 4}, 2, 0)
	learnLine(t, e, "T2", "C", []float64{1, 2, 3, 4}, 4, 0)

	require.Equal(t, 3, e.NodeCount())
	scores, ready := e.Ranking()
	require.True(t, ready)
	require.Contains(t, scores, "A")
	require.Contains(t, scores, "B")
	require.Contains(t, scores, "C")

	// A costs half of B, B costs half of C => A costs a quarter of C.
	require.InDelta(t, 0.25, scores["A"]/scores["C"], 1e-6)
}

// TestEngine_DisconnectedIsNotReady is scenario S5: two nodes observed on
// disjoint rchar ranges for the same task never become comparable and, with
// no other path, ranking reports not ready.
func TestEngine_DisconnectedIsNotReady(t *testing.T) {
	e := rank.New(regression.NewOLSFitter())

	learnLine(t, e, "T", "A", []float64{1, 2}, 1, 0)
	learnLine(t, e, "T", "B", []float64{10, 20}, 1, 0)

	require.Equal(t, 2, e.NodeCount())
	_, ready := e.Ranking()
	require.False(t, ready)
	require.Equal(t, rank.StateLearning, e.State())
}

// TestEngine_ReadinessResetsOnNewNode is testable property: ready -> not
// monotone under new-node admission (§4.9). Admitting a third node that has
// no comparison to the existing pair drops readiness until it connects.
func TestEngine_ReadinessResetsOnNewNode(t *testing.T) {
	e := rank.New(regression.NewOLSFitter())

	learnLine(t, e, "T", "A", []float64{1, 2, 3, 4}, 1, 0)
	learnLine(t, e, "T", "B", []float64{1, 2, 3, 4}, 2, 0)
	require.Equal(t, rank.StateReady, e.State())

	learnLine(t, e, "T2", "C", []float64{100, 200, 300, 400}, 1, 0)
	require.Equal(t, rank.StateReady, e.State()) // C still buffered, not yet a node

	// A's T2 range is disjoint from C's, so admitting C still leaves it
	// isolated: no task gives A and C an overlapping range.
	learnLine(t, e, "T2", "A", []float64{1, 2, 3, 4}, 1, 0)
	require.Equal(t, 3, e.NodeCount())
	require.Equal(t, rank.StateLearning, e.State())
	_, ready := e.Ranking()
	require.False(t, ready)
}

// TestEngine_NoAdmissionWithoutSecondNode ASSERTS a task with samples from a
// single node never admits a cell (no comparison is possible), per the
// rationale in §4.1.
func TestEngine_NoAdmissionWithoutSecondNode(t *testing.T) {
	e := rank.New(regression.NewOLSFitter())

	for _, x := range []float64{1, 2, 3, 4, 5} {
		require.NoError(t, e.Learn(model.Sample{Task: "T", Node: "Solo", Rchar: x, Target: x}))
	}

	require.Equal(t, 0, e.NodeCount())
	require.Equal(t, rank.StateBuffering, e.State())
}

// TestEngine_RejectsEmptyIdentifiers ASSERTS malformed samples are rejected
// rather than silently admitted.
func TestEngine_RejectsEmptyIdentifiers(t *testing.T) {
	e := rank.New(regression.NewOLSFitter())

	require.ErrorIs(t, e.Learn(model.Sample{Task: "", Node: "A", Rchar: 1, Target: 1}), rank.ErrEmptyTask)
	require.ErrorIs(t, e.Learn(model.Sample{Task: "T", Node: "", Rchar: 1, Target: 1}), rank.ErrEmptyNode)
}
