// Package dijkstra provides the single-source shortest-path search on a
// core.Graph with strictly positive edge weights.
//
// Overview:
//
//   - Dijkstra settles vertices in order of increasing distance from the
//     source and records, for each settled vertex, its distance and the
//     predecessor on one shortest path (the Finalized Set).
//   - The frontier holds discovered but unsettled vertices, at most one entry
//     per label. A strictly shorter route to a queued vertex replaces its
//     entry (decrease-key); an equal-length route leaves it untouched, so the
//     first recorded predecessor wins ties.
//   - Paths are reconstructed by walking predecessor links from the target
//     back to the source, then reversing.
//
// When to use:
//
//   - Route queries on a static weighted graph: ShortestPath for one pair,
//     ShortestDistances for every vertex reachable from one source.
//   - For very small graphs the dfs package offers an exhaustive oracle with
//     the same distance semantics; the two are cross-checked in tests.
//
// Key features:
//
//   - WithFrontier picks the frontier implementation: FrontierHeap (indexed
//     binary heap, default) or FrontierList (linear scan baseline).
//   - WithMaxDistance stops relaxation past a distance cap; vertices beyond it
//     are reported as unreachable.
//   - WithOnFinalize installs a hook observing each vertex as it is settled;
//     a hook error aborts the run.
//
// Performance and complexity:
//
//   - Time:  O(V²) with the dense matrix store (each settled vertex scans one
//     row); the heap adds O(log V) per push, pop and decrease-key.
//   - Space: O(V) for the frontier, the finalized set and predecessor links.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:        the Source option was not provided.
//   - ErrBadMaxDistance:     raised via panic by WithMaxDistance for a negative cap.
//   - core.ErrNilGraph:      the graph pointer is nil.
//   - core.ErrUnknownLabel:  source or target is not part of the graph.
//   - core.ErrUnreachable:   the target is not in the Finalized Set.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (*Result, error)
//	func ShortestDistances(g *core.Graph, source string, opts ...Option) (*Result, error)
//	func ShortestPath(g *core.Graph, source, target string, opts ...Option) (core.Path, error)
//
// Example:
//
//	g, _ := core.NewGraph([]string{"A", "B", "C", "D"})
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("B", "C", 2)
//	_ = g.AddEdge("A", "C", 4)
//	_ = g.AddEdge("C", "D", 1)
//
//	p, _ := dijkstra.ShortestPath(g, "A", "D")
//	fmt.Println(p) // A B C D (4)
package dijkstra
