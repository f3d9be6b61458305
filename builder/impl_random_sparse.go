// SPDX-License-Identifier: MIT
// Package: dijkstraviz/builder
//
// impl_random_sparse.go — RandomSparse(n, p) constructor.
//
// Model:
//   • Erdős–Rényi-like digraph: each ordered pair (i,j), i≠j, becomes an
//     edge independently with probability p.
//   • Vertices named by cfg.idFn(i) and laid out evenly on a circle of
//     radius n/(2π), so neighbouring indices sit one unit apart.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng required when 0 < p < 1 (else ErrNeedRandSource).
//   • Weight per edge: cfg.weightFn(cfg.rng).
//
// Determinism:
//   • Trials run i asc, then j asc; fixed seed ⇒ identical graph.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dijkstraviz/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor sampling a random directed graph over
// n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters.
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax || math.IsNaN(p) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Vertices on a circle, index order.
		radius := float64(n) / (2 * math.Pi)
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			theta := 2 * math.Pi * float64(i) / float64(n)
			if err := g.AddVertex(id, radius*math.Cos(theta), radius*math.Sin(theta)); err != nil {
				return wrapCore(methodRandomSparse, fmt.Sprintf("AddVertex(%s)", id), err)
			}
		}

		// 3) Bernoulli trial per ordered pair.
		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if !trial(cfg, p) {
					continue
				}
				v := cfg.idFn(j)
				w := cfg.weightFn(cfg.rng)
				if err := g.AddEdge(u, v, w); err != nil {
					return wrapCore(methodRandomSparse, fmt.Sprintf("AddEdge(%s→%s, w=%g)", u, v, w), err)
				}
			}
		}

		return nil
	}
}

// trial reports whether a Bernoulli(p) draw succeeds. Without an RNG only
// the degenerate p ∈ {0,1} reach here.
func trial(cfg builderConfig, p float64) bool {
	if cfg.rng == nil {
		return p == probMax
	}

	return cfg.rng.Float64() < p
}
