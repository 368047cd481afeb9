// Package noderank (module github.com/katalvlaran/noderank) is an online
// node-ranking estimator for a workflow scheduler.
//
// 🚀 What is noderank?
//
//	A small, single-threaded estimator that watches a stream of completed
//	task executions — (node, task, input-size, observed cost) samples — and
//	continuously maintains a relative cost ranking of compute nodes, so a
//	scheduler can place tasks even while the set of nodes, tasks and
//	measurements is still growing.
//
// Under the hood, everything is organized into focused subpackages:
//
//	model/      — Sample, Line, Range, Cell value types
//	regression/ — the univariate linear-fit primitive (black box)
//	matrix/     — growable dense float64 matrices (ratio/weight tensors)
//	compgraph/  — comparability graph + transitive (Floyd-Warshall) closure
//	rank/       — the Engine: bootstrap buffering, ratio engine, aggregation
//	driver/     — line-delimited JSON driver loop
//	cmd/noderank — CLI entrypoint
//
// Quick mental model:
//
//	samples  →  per-(task,node) lines  →  pairwise log-ratios  →
//	comparability graph  →  transitive closure  →  per-node score
//
// The estimator never forgets a sample and never removes a node or task: both
// lists grow monotonically, and matrix indices assigned to them never change.
//
//	go get github.com/katalvlaran/noderank
package noderank
