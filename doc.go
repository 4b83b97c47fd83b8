// Package lvroute computes shortest paths on small, weighted, undirected
// graphs identified by symbolic vertex labels.
//
// What is inside?
//
//	core/         the Graph Store: fixed labels, symmetric weight matrix, Path
//	pqueue/       keyed min-priority queues with decrease-key (frontier)
//	dijkstra/     single-source shortest distances and path reconstruction
//	dfs/          exhaustive minimum-weight simple-path search (cross-check oracle)
//	builder/      deterministic fixtures: Path, Cycle, Star, Complete, RandomSparse
//	cmd/lvroute/  command-line front end (distances, path, verify)
//
// Quick start:
//
//	g, _ := core.NewGraph([]string{"A", "B", "C", "D"})
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("B", "C", 2)
//	_ = g.AddEdge("A", "C", 4)
//	_ = g.AddEdge("C", "D", 1)
//
//	p, _ := dijkstra.ShortestPath(g, "A", "D")       // A B C D (4)
//	q, _ := dfs.MinimumWeightSimplePath(g, "A", "D") // same distance
//
// Conventions:
//
//   - A weight of 0 means "no edge"; edges carry strictly positive weights.
//   - Errors are package sentinels wrapped with context; match them with errors.Is.
//   - Search state lives in the call, never on the Graph. A Graph may be searched
//     concurrently as long as nobody mutates it meanwhile.
package lvroute
