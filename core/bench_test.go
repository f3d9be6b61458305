package core_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/dijkstraviz/core"
)

func benchGraph(b *testing.B, n int) *core.Graph {
	b.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		if err := g.AddVertex(strconv.Itoa(i), float64(i), 0); err != nil {
			b.Fatal(err)
		}
	}
	for i := 0; i < n; i++ {
		for _, d := range []int{1, 7, 31} {
			if err := g.AddEdge(strconv.Itoa(i), strconv.Itoa((i+d)%n), float64(d)); err != nil {
				b.Fatal(err)
			}
		}
	}

	return g
}

func BenchmarkAdjacentVertices(b *testing.B) {
	g := benchGraph(b, 1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AdjacentVertices(strconv.Itoa(i % 1000))
	}
}

func BenchmarkWeightBetween(b *testing.B) {
	g := benchGraph(b, 1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := i % 1000
		_, _ = g.WeightBetween(strconv.Itoa(k), strconv.Itoa((k+31)%1000))
	}
}
