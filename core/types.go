// Package core defines the Graph Store: a fixed label set plus a symmetric
// weight matrix, the Edge and Path value types, and the sentinel errors shared
// by the search packages.
package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for core graph operations.
var (
	// ErrUnknownLabel indicates that a label is not part of the vertex set.
	ErrUnknownLabel = errors.New("core: unknown vertex label")

	// ErrInvalidEdge indicates a self-loop or a non-positive edge weight.
	ErrInvalidEdge = errors.New("core: invalid edge")

	// ErrUnreachable indicates that no path connects the requested vertices.
	ErrUnreachable = errors.New("core: target unreachable")

	// ErrEmptyLabel indicates that NewGraph received an empty label.
	ErrEmptyLabel = errors.New("core: vertex label is empty")

	// ErrDuplicateLabel indicates that NewGraph received the same label twice.
	ErrDuplicateLabel = errors.New("core: duplicate vertex label")

	// ErrIndexOutOfRange indicates a vertex index outside [0, VertexCount()).
	ErrIndexOutOfRange = errors.New("core: vertex index out of range")

	// ErrNoEdge indicates that two consecutive path labels are not adjacent.
	ErrNoEdge = errors.New("core: no edge between vertices")

	// ErrNilGraph indicates that a nil *Graph was supplied.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrWeightOverflow indicates an edge weight above MaxWeight, or a path
	// whose total weight does not fit in an int64.
	ErrWeightOverflow = errors.New("core: weight overflows int64 path sums")
)

// Edge is a read-only view of one undirected edge.
// From precedes To in the graph's label order.
type Edge struct {
	From   string
	To     string
	Weight int64
}

// Graph is an undirected, weighted graph over a fixed label set.
//
// labels[i] is the label of row/column i of weights. weights is always square,
// symmetric and zero on the diagonal; a zero cell means "no edge".
type Graph struct {
	labels  []string  // vertex labels in construction order
	weights [][]int64 // adjacency weights, 0 = no edge
}

// NewGraph creates a Graph over labels with no edges.
// The label order is preserved and defines vertex indices.
//
// Errors: ErrEmptyLabel, ErrDuplicateLabel (both wrapped with the offending label).
// Complexity: O(V²) time and space for the zeroed matrix.
func NewGraph(labels []string) (*Graph, error) {
	seen := make(map[string]struct{}, len(labels))
	for i, l := range labels {
		if l == "" {
			return nil, fmt.Errorf("NewGraph: label #%d: %w", i, ErrEmptyLabel)
		}
		if _, dup := seen[l]; dup {
			return nil, fmt.Errorf("NewGraph: %q: %w", l, ErrDuplicateLabel)
		}
		seen[l] = struct{}{}
	}

	n := len(labels)
	g := &Graph{
		labels:  append([]string(nil), labels...),
		weights: make([][]int64, n),
	}
	// one backing array keeps rows contiguous
	cells := make([]int64, n*n)
	for i := 0; i < n; i++ {
		g.weights[i] = cells[i*n : (i+1)*n : (i+1)*n]
	}

	return g, nil
}

// Path is a weighted route through the graph.
// Labels runs from source to target; Distance is the sum of edge weights along it.
type Path struct {
	Distance int64
	Labels   []string
}

// Len returns the number of edges on the path.
func (p Path) Len() int {
	if len(p.Labels) == 0 {
		return 0
	}

	return len(p.Labels) - 1
}

// String renders the path as "A B C D (4)".
func (p Path) String() string {
	return fmt.Sprintf("%s (%d)", strings.Join(p.Labels, " "), p.Distance)
}
