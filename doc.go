// Package dijkstraviz computes single-source shortest paths with Dijkstra's
// algorithm and records how the tentative distances evolve, so the run can
// be inspected or animated step by step.
//
// Everything is organized under subpackages:
//
//	core/     — directed weighted Graph with positioned vertices
//	dijkstra/ — the shortest-path engine, its Distance type and snapshot History
//	builder/  — reference network, random and grid graph constructors
//	spatial/  — R-tree index for locating vertices by position
//	render/   — DOT, PNG and animated GIF output
//
// The cmd/dijkstra-demo command ties them together:
//
//	go run ./cmd/dijkstra-demo -v -gif steps.gif
//
// Quick example:
//
//	g := builder.NewReference()
//	res, err := dijkstra.Run(g, dijkstra.Source("s"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	path, _ := res.PathTo("x") // [s y t x]
//	fmt.Println(path, res.Distances["x"])
package dijkstraviz
