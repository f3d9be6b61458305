// SPDX-License-Identifier: MIT
// Package: dijkstraviz/builder
//
// api.go — the BuildGraph orchestrator and the Constructor contract.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dijkstraviz/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters first and return
// sentinel errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with gopts, resolves bopts, and applies
// all constructors in order. Constructor errors are wrapped with
// "BuildGraph: %w"; no partial cleanup is attempted.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// wrapCore attaches method context to a core error and marks it as a
// construction failure while keeping the core sentinel reachable.
func wrapCore(method, op string, err error) error {
	return fmt.Errorf("%s: %s: %w: %w", method, op, ErrConstructFailed, err)
}
