// File: adjacency_list.go
// Role: Neighborhood queries over the per-vertex outgoing edge buckets.
//
// Both queries walk out[index(u)], which holds edge positions in insertion
// order, so results match a linear scan of the whole edge list while
// costing O(deg(u)) instead of O(E).
package core

// AdjacentVertices returns the target names of every edge leaving u,
// in edge-insertion order. Parallel edges yield repeated names.
// An unknown u has no neighbors.
// Complexity: O(deg(u)).
func (g *Graph) AdjacentVertices(u string) []string {
	ui, ok := g.index[u]
	if !ok {
		return nil
	}

	bucket := g.out[ui]
	result := make([]string, 0, len(bucket))
	for _, ei := range bucket {
		result = append(result, g.vertices[g.edges[ei].to].Name)
	}

	return result
}

// WeightBetween returns the weight of the first edge x→y in insertion
// order, or false when there is none.
//
// With duplicates allowed, endpoints are compared by name across the whole
// edge list, so edges attached to a superseded registration of x or y
// still match.
// Complexity: O(deg(x)), or O(E) with duplicates allowed.
func (g *Graph) WeightBetween(x, y string) (float64, bool) {
	if g.allowDuplicates {
		for _, e := range g.edges {
			if g.vertices[e.from].Name == x && g.vertices[e.to].Name == y {
				return e.weight, true
			}
		}

		return 0, false
	}

	xi, ok := g.index[x]
	if !ok {
		return 0, false
	}
	for _, ei := range g.out[xi] {
		e := g.edges[ei]
		if g.vertices[e.to].Name == y {
			return e.weight, true
		}
	}

	return 0, false
}

// OutEdges returns the edges leaving u in insertion order.
// Complexity: O(deg(u)).
func (g *Graph) OutEdges(u string) []Edge {
	ui, ok := g.index[u]
	if !ok {
		return nil
	}

	out := make([]Edge, 0, len(g.out[ui]))
	for _, ei := range g.out[ui] {
		out = append(out, g.resolve(g.edges[ei]))
	}

	return out
}
