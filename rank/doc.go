// Package rank implements the incremental node-ranking estimator: the
// bootstrap buffer, per-cell regression cache, pairwise ratio engine,
// comparability graph and transitive closure, and scoring aggregator
// described by the design this module is built against.
//
// Engine is the single long-lived value the driver owns. It is safe for
// concurrent use under the coarse reader-writer discipline the teacher's
// core.Graph also follows: Learn excludes all other callers, Ranking and
// NodeCount share a read lock.
package rank
