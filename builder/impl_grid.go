// SPDX-License-Identifier: MIT
// Package: dijkstraviz/builder
//
// impl_grid.go — Grid(rows, cols) constructor.
//
// Model:
//   • rows×cols lattice, vertex "r,c" at position (c, r).
//   • 4-neighbourhood with arcs in both directions: for each cell, Right
//     then Bottom neighbour, forward arc then reverse arc.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Weight per arc: cfg.weightFn(cfg.rng).

package builder

import (
	"fmt"

	"github.com/katalvlaran/dijkstraviz/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridID returns the vertex name Grid uses for cell (r, c).
func GridID(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

// Grid returns a Constructor that builds a rows×cols bidirectional grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := GridID(r, c)
				if err := g.AddVertex(id, float64(c), float64(r)); err != nil {
					return wrapCore(methodGrid, fmt.Sprintf("AddVertex(%s)", id), err)
				}
			}
		}

		link := func(u, v string) error {
			w := cfg.weightFn(cfg.rng)
			if err := g.AddEdge(u, v, w); err != nil {
				return wrapCore(methodGrid, fmt.Sprintf("AddEdge(%s→%s, w=%g)", u, v, w), err)
			}

			return nil
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					v := GridID(r, c+1)
					if err := link(u, v); err != nil {
						return err
					}
					if err := link(v, u); err != nil {
						return err
					}
				}
				if r+1 < rows {
					v := GridID(r+1, c)
					if err := link(u, v); err != nil {
						return err
					}
					if err := link(v, u); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
