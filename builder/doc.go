// SPDX-License-Identifier: MIT
// Package builder assembles deterministic core.Graph fixtures: the
// five-vertex reference network, seeded random sparse digraphs, and
// bidirectional grids. Every constructor places vertices at meaningful
// positions so the result renders without a separate layout step.
//
// Usage:
//
//	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)},
//	    builder.RandomSparse(12, 0.25))
//
// Determinism: same options, seed and constructor order ⇒ identical graphs.
// Constructors return sentinel errors (ErrTooFewVertices, ...) wrapped with
// method context; option constructors panic on nil arguments.
package builder
