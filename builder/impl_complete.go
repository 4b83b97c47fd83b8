// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_complete.go - implementation of the Complete() constructor.
//
// Edges: every unordered pair (i,j), i<j, for i asc then j asc.
// Complexity: O(n²) edges.

package builder

import "github.com/katalvlaran/lvroute/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor producing the complete graph K_n (n ≥ 1).
func Complete() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireVertices(methodComplete, g, minCompleteNodes); err != nil {
			return err
		}

		labels := g.Labels()
		for i := 0; i < len(labels); i++ {
			for j := i + 1; j < len(labels); j++ {
				if err := connect(methodComplete, g, cfg, labels, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
