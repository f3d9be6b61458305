// Package render draws a core.Graph for visual inspection.
//
// Three outputs are provided:
//
//   - DOT writes a Graphviz digraph with pinned positions and weight labels.
//   - PNG rasterizes the graph: light-blue vertex discs, directed edges with
//     arrowheads, edge-weight labels and, with WithDistances, the distance of
//     every vertex from one snapshot.
//   - GIF animates a dijkstra.History, one frame per snapshot.
//
// Vertex positions are fitted into the image with a uniform scale and the
// y axis pointing up. Only the graph's read-only lists (Vertices, Positions,
// Edges) are consulted.
package render
