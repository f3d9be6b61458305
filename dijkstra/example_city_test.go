package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/dijkstraviz/core"
	"github.com/katalvlaran/dijkstraviz/dijkstra"
)

// ExampleRun_cityRoute finds the fastest drive between two intersections.
// Roads are two-way; the closed C-D segment carries a huge travel time and
// WithInfEdgeThreshold keeps it out of the search altogether.
func ExampleRun_cityRoute() {
	g := core.NewGraph()
	for _, v := range []struct {
		name string
		x, y float64
	}{
		{"A", 1, 3}, {"B", 0, 2}, {"C", 2, 2},
		{"D", 0, 0}, {"E", 3, 1}, {"F", 2, 0},
	} {
		_ = g.AddVertex(v.name, v.x, v.y)
	}

	const closed = 1e9
	roads := []struct {
		u, v    string
		minutes float64
	}{
		{"A", "B", 4},
		{"A", "C", 2},
		{"B", "C", 1},
		{"B", "D", 5},
		{"C", "D", closed},
		{"C", "E", 10},
		{"D", "F", 6},
		{"E", "F", 3},
	}
	for _, r := range roads {
		_ = g.AddEdge(r.u, r.v, r.minutes)
		_ = g.AddEdge(r.v, r.u, r.minutes)
	}

	res, err := dijkstra.Run(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(closed))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, err := res.PathTo("F")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("Fastest route from A to F:")
	for i := 0; i < len(path)-1; i++ {
		u, v := path[i], path[i+1]
		w, _ := g.WeightBetween(u, v)
		fmt.Printf("  %s -> %s : %g min\n", u, v, w)
	}
	fmt.Printf("Total travel time: %v minutes\n", res.Distances["F"])
	// Output:
	// Fastest route from A to F:
	//   A -> C : 2 min
	//   C -> B : 1 min
	//   B -> D : 5 min
	//   D -> F : 6 min
	// Total travel time: 14 minutes
}
