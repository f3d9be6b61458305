// File: methods_vertices.go
// Role: Vertex registration & queries.
//
// Determinism:
//   - Vertices() and Positions() follow insertion order.
//
// Complexity:
//   - Registration and name lookups are O(1) amortized.
package core

import (
	"fmt"

	"github.com/paulmach/orb"
)

// AddVertex registers a vertex with the next sequential index.
//
// Implementation:
//   - Stage 1: Reject the empty name (ErrEmptyVertexName).
//   - Stage 2: Reject an already registered name (ErrDuplicateVertex) unless
//     the Graph allows duplicates, in which case the name is remapped.
//   - Stage 3: Append to the backing list and allocate an adjacency bucket.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(name string, x, y float64) error {
	if name == "" {
		return ErrEmptyVertexName
	}
	if _, exists := g.index[name]; exists && !g.allowDuplicates {
		return fmt.Errorf("%w: %q", ErrDuplicateVertex, name)
	}

	g.index[name] = len(g.vertices)
	g.vertices = append(g.vertices, Vertex{Name: name, Pos: orb.Point{x, y}})
	g.out = append(g.out, nil)

	return nil
}

// HasVertex reports whether name has been registered.
func (g *Graph) HasVertex(name string) bool {
	_, ok := g.index[name]

	return ok
}

// Index returns the insertion index name currently maps to.
func (g *Graph) Index(name string) (int, bool) {
	i, ok := g.index[name]

	return i, ok
}

// Vertex returns the vertex stored at insertion index i.
// It panics if i is out of range, like a slice access.
func (g *Graph) Vertex(i int) Vertex { return g.vertices[i] }

// Position returns the layout position of name.
func (g *Graph) Position(name string) (orb.Point, bool) {
	i, ok := g.index[name]
	if !ok {
		return orb.Point{}, false
	}

	return g.vertices[i].Pos, true
}

// VertexCount returns the number of registered vertex entries.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.vertices) }

// Vertices returns a copy of the vertex names in insertion order.
// With duplicates allowed, a re-added name appears once per registration.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	names := make([]string, len(g.vertices))
	for i, v := range g.vertices {
		names[i] = v.Name
	}

	return names
}

// Positions returns a copy of the vertex positions, aligned with Vertices().
// Complexity: O(V).
func (g *Graph) Positions() []orb.Point {
	pts := make([]orb.Point, len(g.vertices))
	for i, v := range g.vertices {
		pts[i] = v.Pos
	}

	return pts
}

// Names returns the distinct registered names in the order their current
// index was assigned. It is the key set for per-vertex result maps.
// Complexity: O(V).
func (g *Graph) Names() []string {
	names := make([]string, 0, len(g.index))
	for i, v := range g.vertices {
		if g.index[v.Name] == i {
			names = append(names, v.Name)
		}
	}

	return names
}
