// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_path.go - implementation of the Path() constructor.
//
// Edges: (0,1), (1,2), …, (n-2,n-1) in ascending order.
// Complexity: O(n) edges.

package builder

import "github.com/katalvlaran/lvroute/core"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor chaining every vertex to the next one in label
// order, producing the simple path P_n (n ≥ 2).
func Path() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireVertices(methodPath, g, minPathNodes); err != nil {
			return err
		}

		labels := g.Labels()
		for i := 0; i+1 < len(labels); i++ {
			if err := connect(methodPath, g, cfg, labels, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
