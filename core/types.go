package core

import (
	"errors"

	"github.com/paulmach/orb"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexName indicates that AddVertex was called with "".
	ErrEmptyVertexName = errors.New("core: vertex name is empty")

	// ErrDuplicateVertex indicates that a vertex with the same name is already registered.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrVertexNotFound indicates an operation referenced a vertex that was never added.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates an edge weight that cannot be ordered (NaN).
	ErrBadWeight = errors.New("core: bad edge weight")
)

// Vertex is a named point of the graph.
//
// Name is unique within its Graph unless the Graph was built with
// WithAllowDuplicateVertices. Pos is used for rendering only.
type Vertex struct {
	// Name identifies the vertex.
	Name string

	// Pos is the 2D layout position (x, y).
	Pos orb.Point
}

// Edge is a directed, weighted connection as exposed to callers.
type Edge struct {
	// From is the source vertex name.
	From string

	// To is the target vertex name.
	To string

	// Weight is the traversal cost. Any real value is stored; algorithms
	// decide what they accept.
	Weight float64
}

// edge is the internal record: endpoints by insertion index.
type edge struct {
	from, to int
	weight   float64
}

// GraphOption configures a Graph before use.
type GraphOption func(g *Graph)

// WithAllowDuplicateVertices disables the uniqueness check in AddVertex.
// Re-adding a name then remaps it to the newest index while the previous
// entry stays in the backing lists, where Vertices and Positions still
// report it. Edges added afterwards resolve the name to the new index.
func WithAllowDuplicateVertices() GraphOption {
	return func(g *Graph) { g.allowDuplicates = true }
}

// Graph is the in-memory vertex and edge store.
//
// vertices and edges are append-only; index maps a name to its position
// in vertices. out[i] lists the positions in edges whose source is i, in
// insertion order, so adjacency scans preserve the edge order exactly.
type Graph struct {
	allowDuplicates bool

	vertices []Vertex
	index    map[string]int
	edges    []edge
	out      [][]int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index: make(map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AllowsDuplicateVertices reports whether the Graph was built with
// WithAllowDuplicateVertices.
func (g *Graph) AllowsDuplicateVertices() bool { return g.allowDuplicates }
