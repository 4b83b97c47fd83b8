// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_star.go - implementation of the Star() constructor.
//
// The first vertex (index 0) is the center; edges (0,1), (0,2), …, (0,n-1).
// Complexity: O(n) edges.

package builder

import "github.com/katalvlaran/lvroute/core"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor connecting the first vertex to every other one.
func Star() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireVertices(methodStar, g, minStarNodes); err != nil {
			return err
		}

		labels := g.Labels()
		for leaf := 1; leaf < len(labels); leaf++ {
			if err := connect(methodStar, g, cfg, labels, 0, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
