// Package dijkstra implements single-source shortest paths over a core.Graph
// and records how the distance map evolves while the algorithm runs.
//
// Overview:
//
//   - Dijkstra expands vertices in order of (distance, name) from a binary
//     min-heap, relaxing every outgoing edge of each finalized vertex.
//   - The heap uses lazy decrease-key: improved distances are pushed as new
//     entries and superseded ones are discarded when popped.
//   - Every non-stale pop appends a deep copy of the distance map to the
//     History, and one more copy is appended when the heap runs dry. The
//     last snapshot therefore always equals the returned distances.
//
// Distances are tagged values: a Distance is either Finite(v) or Inf().
// The zero Distance is Inf(), so unreached vertices need no sentinel float.
// Predecessors map each vertex to the vertex it was reached from; "" means
// none (the source itself, or unreachable).
//
// Tie-breaks:
//
//   - Equal heap distances pop in lexicographic name order.
//   - A relaxation only happens when the candidate is strictly smaller.
//   - Neighbors are visited in edge-insertion order, and each uses the weight
//     of the first edge u→v (core.Graph.WeightBetween), so a later, lighter
//     parallel edge is never taken.
//
// Complexity:
//
//   - Time:  O((V + E) log V) heap work plus O(deg(u)) per weight lookup.
//   - Space: O(V·S) for the history, where S is the number of snapshots (≤ V+1
//     for non-negative weights).
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:    Source("") or no Source option.
//   - ErrNilGraph:       nil *core.Graph.
//   - ErrVertexNotFound: the source was never added to the graph.
//   - ErrNegativeWeight: some edge has a negative weight (O(E) pre-scan).
//   - ErrNoPath, ErrBrokenChain: returned by PathTo.
//
// Option constructors panic on meaningless arguments (negative MaxDistance,
// non-positive InfEdgeThreshold, nil hooks). The algorithm itself never panics.
//
// Example:
//
//	dist, prev, history, err := dijkstra.Dijkstra(g, dijkstra.Source("s"))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(dist["x"], prev["x"], len(history))
package dijkstra
