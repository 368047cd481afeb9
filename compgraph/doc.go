// Package compgraph computes the transitive closure of the comparability
// graph C (§4.6) and uses the resulting shortest-path predecessors to fill
// in previously-unknown accumulated log-ratio entries (§4.7).
//
// Grounded on the teacher's matrix.FloydWarshall (impl_floydwarshall.go): the
// same fixed k -> i -> j loop order and in-place relaxation discipline, but
// with different semantics the teacher's routine does not provide:
//
//   - an integer sentinel distance equal to the node count (not +Inf), since
//     "unreachable" here means "not yet comparable", a transient state, not a
//     structural absence of an edge;
//   - predecessor tracking, so that once two nodes become reachable the
//     shortest connecting path can be walked to accumulate a log-ratio,
//     rather than just a path length.
//
// This is new code in the teacher's style, not a reuse of FloydWarshall.
//
// Graph (adjacency.go) is a small undirected-unweighted adjacency set used
// as a cheap BFS connectivity pre-check ahead of the closure computation.
// It is trimmed from the teacher's core.Graph/bfs.BFS pair to the handful
// of operations the comparability graph actually needs: the teacher's
// generic directed/weighted/multigraph vertex-edge model and its separate
// BFS package, both built for a much wider traversal surface, would leave
// nearly all of their own API and most of their tests unreachable from any
// code path in this repository.
package compgraph
