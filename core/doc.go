// Package core provides the Graph Store used by every lvroute algorithm:
// a fixed set of vertex labels and a symmetric integer weight matrix.
//
// The Graph G = (V,E) is deliberately small and strict:
//
//   - The vertex set is fixed at construction (NewGraph). Vertices are never
//     added or removed afterwards, and no operation creates one implicitly.
//   - Edges are undirected: AddEdge(a, b, w) writes both m[a][b] and m[b][a].
//   - At most one edge per vertex pair; a second AddEdge overwrites the weight.
//   - Weights are positive integers. A zero cell means "no edge", so zero-weight
//     edges cannot be represented. Self-loops are rejected and the diagonal
//     stays zero.
//
// Label resolution:
//
//	IndexOf(label) scans the label sequence linearly and returns ErrUnknownLabel
//	for labels outside the vertex set. The algorithms resolve labels once per
//	call and then work on indices (WeightAt, NeighborIndices).
//
// Errors:
//
//	ErrUnknownLabel    - a label is not part of the vertex set.
//	ErrInvalidEdge     - self-loop, zero or negative weight.
//	ErrUnreachable     - no path exists between two vertices (used by searches).
//	ErrEmptyLabel      - NewGraph received an empty label.
//	ErrDuplicateLabel  - NewGraph received the same label twice.
//	ErrIndexOutOfRange - Label(i) with i outside [0, VertexCount()).
//	ErrNoEdge          - PathWeight found two consecutive labels without an edge.
//	ErrNilGraph        - a nil *Graph was passed to an algorithm.
//	ErrWeightOverflow  - AddEdge weight above MaxWeight, or a PathWeight sum
//	                     that does not fit in an int64.
//
// Weight bound:
//
//	A simple path has at most V-1 edges, so AddEdge caps each weight at
//	MaxWeight() = MaxInt64 / (V-1). Every simple-path total, and therefore every
//	distance either search can produce, fits in an int64.
//
// Concurrency:
//
//	Graph carries no locks. It is safe to run any number of searches against the
//	same Graph at once as long as nobody mutates it; mutating edges while a
//	search is in flight is unsupported. Use Clone to hand a stable snapshot to a
//	long-running search.
//
// Example:
//
//	g, _ := core.NewGraph([]string{"A", "B", "C", "D"})
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("B", "C", 2)
//	_ = g.AddEdge("A", "C", 4)
//	_ = g.AddEdge("C", "D", 1)
//	nbs, _ := g.Neighbors("C") // [A B D]
package core
