// File: methods_edges.go
// Role: edge lifecycle and catalog: AddEdge/RemoveEdge/Edges/EdgeCount.
// Invariants:
//   - Both cells of a pair are written together; the matrix stays symmetric.
//   - Diagonal cells are never written.
//   - No vertex is ever created here.

package core

import (
	"fmt"
	"math"
)

// AddEdge sets the weight of the undirected edge a-b to w.
// An existing edge between a and b is overwritten.
//
// Steps:
//  1. Reject self-loops and non-positive weights (ErrInvalidEdge).
//  2. Reject weights above MaxWeight (ErrWeightOverflow).
//  3. Resolve both labels (ErrUnknownLabel).
//  4. Write m[i][j] and m[j][i].
//
// Complexity: O(V) for label resolution.
func (g *Graph) AddEdge(a, b string, w int64) error {
	if a == b {
		return fmt.Errorf("AddEdge(%q,%q): self-loop: %w", a, b, ErrInvalidEdge)
	}
	if w <= 0 {
		return fmt.Errorf("AddEdge(%q,%q): weight %d must be positive: %w", a, b, w, ErrInvalidEdge)
	}
	if limit := g.MaxWeight(); w > limit {
		return fmt.Errorf("AddEdge(%q,%q): weight %d above %d: %w", a, b, w, limit, ErrWeightOverflow)
	}

	i, j, err := g.resolve(a, b)
	if err != nil {
		return fmt.Errorf("AddEdge: %w", err)
	}

	g.weights[i][j] = w
	g.weights[j][i] = w

	return nil
}

// RemoveEdge deletes the edge a-b. Removing an absent edge is a no-op.
//
// Errors: ErrInvalidEdge for a == b, ErrUnknownLabel.
func (g *Graph) RemoveEdge(a, b string) error {
	if a == b {
		return fmt.Errorf("RemoveEdge(%q,%q): self-loop: %w", a, b, ErrInvalidEdge)
	}

	i, j, err := g.resolve(a, b)
	if err != nil {
		return fmt.Errorf("RemoveEdge: %w", err)
	}

	g.weights[i][j] = 0
	g.weights[j][i] = 0

	return nil
}

// Edges returns every edge once, walking the upper triangle row by row.
// Complexity: O(V²).
func (g *Graph) Edges() []Edge {
	var out []Edge
	for i := range g.weights {
		for j := i + 1; j < len(g.weights); j++ {
			if w := g.weights[i][j]; w != 0 {
				out = append(out, Edge{From: g.labels[i], To: g.labels[j], Weight: w})
			}
		}
	}

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	n := 0
	for i := range g.weights {
		for j := i + 1; j < len(g.weights); j++ {
			if g.weights[i][j] != 0 {
				n++
			}
		}
	}

	return n
}

// Clone returns a deep copy of g. Mutating the clone never affects g.
func (g *Graph) Clone() *Graph {
	n := len(g.labels)
	c := &Graph{
		labels:  append([]string(nil), g.labels...),
		weights: make([][]int64, n),
	}
	cells := make([]int64, n*n)
	for i := 0; i < n; i++ {
		c.weights[i] = cells[i*n : (i+1)*n : (i+1)*n]
		copy(c.weights[i], g.weights[i])
	}

	return c
}

// PathWeight sums the edge weights along labels.
// A single-label path weighs 0; an empty path is rejected with ErrUnknownLabel.
//
// Errors: ErrUnknownLabel, ErrNoEdge (wrapped with the offending pair).
func (g *Graph) PathWeight(labels []string) (int64, error) {
	if len(labels) == 0 {
		return 0, fmt.Errorf("PathWeight: empty path: %w", ErrUnknownLabel)
	}

	prev, err := g.IndexOf(labels[0])
	if err != nil {
		return 0, fmt.Errorf("PathWeight: %w", err)
	}

	var total int64
	for _, l := range labels[1:] {
		cur, err := g.IndexOf(l)
		if err != nil {
			return 0, fmt.Errorf("PathWeight: %w", err)
		}
		w := g.weights[prev][cur]
		if w == 0 {
			return 0, fmt.Errorf("PathWeight: %q-%q: %w", g.labels[prev], l, ErrNoEdge)
		}
		if w > math.MaxInt64-total {
			return 0, fmt.Errorf("PathWeight: at %q: %w", l, ErrWeightOverflow)
		}
		total += w
		prev = cur
	}

	return total, nil
}

// MaxWeight returns the largest weight AddEdge accepts: MaxInt64 / (V-1), so
// that no simple path of this graph can overflow an int64.
func (g *Graph) MaxWeight() int64 {
	edges := int64(len(g.labels) - 1)
	if edges < 1 {
		return math.MaxInt64
	}

	return math.MaxInt64 / edges
}
