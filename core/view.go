// File: view.go
// Role: Geometric views over vertex positions.
package core

import "github.com/paulmach/orb"

// Bound returns the axis-aligned bounding box of every vertex position.
// An empty graph yields the zero Bound.
// Complexity: O(V).
func (g *Graph) Bound() orb.Bound {
	if len(g.vertices) == 0 {
		return orb.Bound{}
	}

	b := g.vertices[0].Pos.Bound()
	for _, v := range g.vertices[1:] {
		b = b.Extend(v.Pos)
	}

	return b
}
