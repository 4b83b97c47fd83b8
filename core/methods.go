// File: methods.go
// Role: label resolution and read-only queries over the weight matrix.
// Determinism:
//   - Labels(), Neighbors(), NeighborIndices() and Edges() follow construction order.
// AI-HINT (file):
//   - IndexOf is a linear scan by contract; algorithms resolve once, then use indices.
//   - WeightAt/NeighborIndices do not bounds-check; callers pass resolved indices.

package core

import "fmt"

// IndexOf returns the matrix position of label.
// The lookup is a linear scan over the label sequence.
//
// Errors: ErrUnknownLabel (wrapped with the label).
// Complexity: O(V).
func (g *Graph) IndexOf(label string) (int, error) {
	for i, l := range g.labels {
		if l == label {
			return i, nil
		}
	}

	return -1, fmt.Errorf("IndexOf(%q): %w", label, ErrUnknownLabel)
}

// HasVertex reports whether label is part of the vertex set.
func (g *Graph) HasVertex(label string) bool {
	_, err := g.IndexOf(label)

	return err == nil
}

// Label returns the label stored at index i.
//
// Errors: ErrIndexOutOfRange.
func (g *Graph) Label(i int) (string, error) {
	if i < 0 || i >= len(g.labels) {
		return "", fmt.Errorf("Label(%d): %w", i, ErrIndexOutOfRange)
	}

	return g.labels[i], nil
}

// Labels returns a copy of the vertex labels in construction order.
func (g *Graph) Labels() []string {
	return append([]string(nil), g.labels...)
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.labels) }

// resolve maps a pair of labels to indices, failing on the first unknown one.
func (g *Graph) resolve(a, b string) (int, int, error) {
	i, err := g.IndexOf(a)
	if err != nil {
		return 0, 0, err
	}
	j, err := g.IndexOf(b)
	if err != nil {
		return 0, 0, err
	}

	return i, j, nil
}

// Weight returns the weight of edge a-b, or 0 when the vertices are not adjacent.
//
// Errors: ErrUnknownLabel.
func (g *Graph) Weight(a, b string) (int64, error) {
	i, j, err := g.resolve(a, b)
	if err != nil {
		return 0, err
	}

	return g.weights[i][j], nil
}

// WeightAt returns the raw matrix cell (i, j). Indices are not validated.
func (g *Graph) WeightAt(i, j int) int64 { return g.weights[i][j] }

// HasEdge reports whether a and b are adjacent.
//
// Errors: ErrUnknownLabel.
func (g *Graph) HasEdge(a, b string) (bool, error) {
	w, err := g.Weight(a, b)
	if err != nil {
		return false, err
	}

	return w != 0, nil
}

// NeighborIndices returns the indices adjacent to i (non-zero cells of row i),
// ascending. The index is not validated.
// Complexity: O(V).
func (g *Graph) NeighborIndices(i int) []int {
	row := g.weights[i]
	out := make([]int, 0, len(row))
	for j, w := range row {
		if w != 0 {
			out = append(out, j)
		}
	}

	return out
}

// Neighbors returns the labels adjacent to label in construction order.
//
// Errors: ErrUnknownLabel.
// Complexity: O(V).
func (g *Graph) Neighbors(label string) ([]string, error) {
	i, err := g.IndexOf(label)
	if err != nil {
		return nil, fmt.Errorf("Neighbors: %w", err)
	}

	idx := g.NeighborIndices(i)
	out := make([]string, len(idx))
	for k, j := range idx {
		out[k] = g.labels[j]
	}

	return out, nil
}
