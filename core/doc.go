// Package core defines the Graph store consumed by the shortest-path engine:
// named vertices with a 2D position, directed weighted edges, and the lookup
// primitives (adjacency, first-match edge weight) the engine relaxes over.
//
// Vertices are indexed by insertion order. That index is stable for the
// lifetime of the Graph and is what edges reference internally; callers only
// ever deal in vertex names.
//
// Edges are directed. Parallel edges between the same ordered pair are kept
// as independent entries, and WeightBetween returns the weight of the first
// one added:
//
//	g := core.NewGraph()
//	_ = g.AddVertex("a", 0, 0)
//	_ = g.AddVertex("b", 1, 0)
//	_ = g.AddEdge("a", "b", 7)
//	_ = g.AddEdge("a", "b", 2)
//	w, _ := g.WeightBetween("a", "b") // 7
//
// Positions are carried as orb.Point values. They are never consulted by the
// algorithms; they exist for renderers and spatial lookups.
//
// Concurrency: a Graph is owned by a single goroutine. None of the methods
// lock; share a Graph across goroutines only after construction is complete
// and only for reads.
//
// Errors:
//
//	ErrEmptyVertexName  - vertex name is the empty string.
//	ErrDuplicateVertex  - vertex name already registered.
//	ErrVertexNotFound   - an edge endpoint was never registered.
//	ErrBadWeight        - edge weight is NaN.
package core
