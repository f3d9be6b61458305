// SPDX-License-Identifier: MIT
// Package: dijkstraviz/builder
//
// impl_reference.go — the five-vertex reference network.
//
// Layout: s(0,0) t(1,0) x(2,0) y(1,1) z(2,1). Edges in insertion order:
// s→t 10, s→y 5, t→x 1, t→y 2, y→t 3, y→x 9, y→z 2, z→x 4, x→z 6.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dijkstraviz/core"
)

const methodReference = "Reference"

// ReferenceVertex is a vertex of the reference network.
type ReferenceVertex struct {
	Name string
	X, Y float64
}

// ReferenceVertices lists the reference network's vertices in insertion order.
var ReferenceVertices = []ReferenceVertex{
	{"s", 0, 0},
	{"t", 1, 0},
	{"x", 2, 0},
	{"y", 1, 1},
	{"z", 2, 1},
}

// ReferenceEdges lists the reference network's edges in insertion order.
var ReferenceEdges = []core.Edge{
	{From: "s", To: "t", Weight: 10},
	{From: "s", To: "y", Weight: 5},
	{From: "t", To: "x", Weight: 1},
	{From: "t", To: "y", Weight: 2},
	{From: "y", To: "t", Weight: 3},
	{From: "y", To: "x", Weight: 9},
	{From: "y", To: "z", Weight: 2},
	{From: "z", To: "x", Weight: 4},
	{From: "x", To: "z", Weight: 6},
}

// Reference returns a Constructor that adds the reference network.
// It ignores cfg: names, positions and weights are fixed.
func Reference() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, v := range ReferenceVertices {
			if err := g.AddVertex(v.Name, v.X, v.Y); err != nil {
				return wrapCore(methodReference, fmt.Sprintf("AddVertex(%s)", v.Name), err)
			}
		}
		for _, e := range ReferenceEdges {
			if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
				return wrapCore(methodReference, fmt.Sprintf("AddEdge(%s→%s)", e.From, e.To), err)
			}
		}

		return nil
	}
}

// NewReference is shorthand for BuildGraph(nil, nil, Reference()).
func NewReference() *core.Graph {
	g, err := BuildGraph(nil, nil, Reference())
	if err != nil {
		// Fixed data; unreachable unless the tables above are edited badly.
		panic(err)
	}

	return g
}
