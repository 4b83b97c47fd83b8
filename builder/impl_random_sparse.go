// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_random_sparse.go - implementation of the RandomSparse(p) constructor.
//
// Model: Erdős–Rényi G(n,p). Each unordered pair {i,j}, i<j, is included
// independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Trial order is i asc, j asc. For each included pair the weight is drawn
//     right after the Bernoulli trial, so a fixed seed fixes the whole graph.
//
// Complexity: O(n²) trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n,p) over the graph's vertices.
func RandomSparse(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireVertices(methodRandomSparse, g, minRandomSparseVertices); err != nil {
			return err
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		// RNG is only required for true sampling.
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		labels := g.Labels()
		for i := 0; i < len(labels); i++ {
			for j := i + 1; j < len(labels); j++ {
				if !bernoulli(cfg, p) {
					continue
				}
				if err := connect(methodRandomSparse, g, cfg, labels, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// bernoulli reports a success with probability p. The extremes never touch the RNG.
func bernoulli(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
