// File: methods_clone.go
// Role: Deep copy of a Graph.
package core

// Clone returns an independent deep copy of g: vertices, name map, edges
// and adjacency buckets are all duplicated, and options are carried over.
// Mutating the clone never affects g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		allowDuplicates: g.allowDuplicates,
		vertices:        make([]Vertex, len(g.vertices)),
		index:           make(map[string]int, len(g.index)),
		edges:           make([]edge, len(g.edges)),
		out:             make([][]int, len(g.out)),
	}
	copy(c.vertices, g.vertices)
	copy(c.edges, g.edges)
	for name, i := range g.index {
		c.index[name] = i
	}
	for i, bucket := range g.out {
		if bucket != nil {
			c.out[i] = append([]int(nil), bucket...)
		}
	}

	return c
}
