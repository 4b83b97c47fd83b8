// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, bopts, cons...). Creates the vertex set,
//     resolves cfg, runs cons in order.
//   - Constructors only add edges; the label set is fixed by the ID scheme.
//   - Determinism: same n/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// Constructor adds a topology's edges to g using the resolved builderConfig.
// Constructors validate early, return sentinel errors and never panic.
// Applying several constructors to the same graph overwrites the weight of
// pairs they share (the store keeps at most one edge per pair).
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph with n vertices labeled by the configured ID
// scheme, then applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partial graph is discarded.
//
// Errors:
//   - ErrTooFewVertices if n < 0.
//   - ErrOptionViolation (joined with the core error) if the ID scheme yields
//     an empty or duplicate label.
//   - ErrNilConstructor for a nil entry in cons.
//   - constructor errors, wrapped.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("BuildGraph: n=%d: %w", n, ErrTooFewVertices)
	}

	// Resolve configuration once (O(len(bopts))).
	cfg := newBuilderConfig(bopts...)

	labels := make([]string, n)
	for i := range labels {
		labels[i] = cfg.idFn(i)
	}
	g, err := core.NewGraph(labels)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrOptionViolation, err)
	}

	// Apply each constructor sequentially to preserve deterministic order.
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: constructor #%d: %w", i, ErrNilConstructor)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// connect adds the edge (i, j) with the next configured weight.
func connect(method string, g *core.Graph, cfg builderConfig, labels []string, i, j int) error {
	w := cfg.weight()
	if err := g.AddEdge(labels[i], labels[j], w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s, %s, w=%d): %w", method, labels[i], labels[j], w, err)
	}

	return nil
}

// requireVertices checks the graph has at least min vertices.
func requireVertices(method string, g *core.Graph, min int) error {
	if n := g.VertexCount(); n < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}

	return nil
}
