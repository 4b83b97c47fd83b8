// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_cycle.go - implementation of the Cycle() constructor.
//
// Edges: (0,1), …, (n-2,n-1), then (n-1,0) closes the ring.
// Complexity: O(n) edges.

package builder

import "github.com/katalvlaran/lvroute/core"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor producing the simple cycle C_n (n ≥ 3).
func Cycle() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireVertices(methodCycle, g, minCycleNodes); err != nil {
			return err
		}

		labels := g.Labels()
		n := len(labels)
		for i := 0; i < n; i++ {
			if err := connect(methodCycle, g, cfg, labels, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
