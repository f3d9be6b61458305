// Package dijkstra_test provides runnable examples for the dijkstra package.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/dijkstraviz/builder"
	"github.com/katalvlaran/dijkstraviz/core"
	"github.com/katalvlaran/dijkstraviz/dijkstra"
)

// ExampleDijkstra runs the reference network from s.
func ExampleDijkstra() {
	g := builder.NewReference()

	dist, prev, history, err := dijkstra.Dijkstra(g, dijkstra.Source("s"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, v := range g.Vertices() {
		fmt.Printf("%s: dist=%v prev=%q\n", v, dist[v], prev[v])
	}
	fmt.Println("snapshots:", len(history))
	// Output:
	// s: dist=0 prev=""
	// t: dist=8 prev="y"
	// x: dist=9 prev="t"
	// y: dist=5 prev="s"
	// z: dist=7 prev="y"
	// snapshots: 6
}

// ExampleDijkstra_unreachable shows how unreached vertices are reported.
func ExampleDijkstra_unreachable() {
	g := core.NewGraph()
	_ = g.AddVertex("a", 0, 0)
	_ = g.AddVertex("b", 1, 0)
	_ = g.AddVertex("island", 5, 5)
	_ = g.AddEdge("a", "b", 2.5)

	dist, prev, _, _ := dijkstra.Dijkstra(g, dijkstra.Source("a"))
	fmt.Println(dist["b"], dist["island"], dist["island"].IsInf())
	_, ok := prev.Of("island")
	fmt.Println(ok)
	// Output:
	// 2.5 inf true
	// false
}

// ExampleResult_PathTo rebuilds a path from the predecessor map.
func ExampleResult_PathTo() {
	res, err := dijkstra.Run(builder.NewReference(), dijkstra.Source("s"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo("x")
	fmt.Println(path, res.Distances["x"])
	// Output: [s y t x] 9
}
