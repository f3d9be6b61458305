// File: methods_edges.go
// Role: Edge registration & enumeration.
//
// Determinism:
//   - Edges() follows insertion order.
package core

import (
	"fmt"
	"math"
)

// AddEdge appends a directed edge from→to with the given weight.
//
// Steps:
//  1. Resolve both names through the name map (ErrVertexNotFound, naming the missing key).
//  2. Reject NaN weights (ErrBadWeight). Negative and infinite weights are stored as given.
//  3. Append to the edge list and to the source's adjacency bucket.
//
// Parallel edges and self-loops are accepted.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	fi, ok := g.index[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	ti, ok := g.index[to]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}
	if math.IsNaN(weight) {
		return fmt.Errorf("%w: %s→%s weight=NaN", ErrBadWeight, from, to)
	}

	g.out[fi] = append(g.out[fi], len(g.edges))
	g.edges = append(g.edges, edge{from: fi, to: ti, weight: weight})

	return nil
}

// EdgeCount returns the number of stored edges, parallel edges included.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns a copy of all edges with endpoints resolved to names,
// in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	for i, e := range g.edges {
		out[i] = g.resolve(e)
	}

	return out
}

func (g *Graph) resolve(e edge) Edge {
	return Edge{
		From:   g.vertices[e.from].Name,
		To:     g.vertices[e.to].Name,
		Weight: e.weight,
	}
}
