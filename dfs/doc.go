// Package dfs implements exhaustive depth‑first enumeration of simple paths on
// a core.Graph and the minimum-weight simple-path search built on it.
//
// What:
//
//   - MinimumWeightSimplePath: enumerates every simple path between two
//     vertices and returns the lightest one. The best-known length starts at
//     +∞ (math.MaxInt64) and is replaced only by a strictly lighter path, so
//     the first optimum discovered wins.
//   - SimplePaths: returns every simple path with its weight, in discovery order.
//   - Backtracking over an explicit path stack: a vertex is pushed before the
//     recursive call and popped after it, so the stack is exactly restored
//     after each branch. Vertices already on the stack are never revisited.
//
// Why:
//
//   - Independent oracle for the dijkstra package on small graphs: both must
//     agree on the distance (paths may differ when several optima exist).
//   - Enumerating alternatives (SimplePaths) for route comparison.
//
// Self path:
//
//	start == end yields the zero-length path {Distance: 0, Labels: [start]}.
//
// Limits:
//
//	There is no pruning besides "never revisit a vertex on the current path":
//	the work grows factorially with dense graphs. WithContext allows callers
//	to bound the wall-clock time; WithMaxDepth bounds path length.
//
// Options:
//
//   - WithContext(ctx)   cancellation, checked at every recursion step.
//   - WithOnPath(fn)     hook on each complete path; error aborts.
//   - WithMaxDepth(n)    limit paths to n edges (default -1, unlimited).
//
// Errors:
//
//   - core.ErrNilGraph       graph pointer is nil
//   - core.ErrUnknownLabel   start or end is not in the graph
//   - core.ErrUnreachable    no simple path (MinimumWeightSimplePath only)
//   - context.Canceled       search canceled via context
//   - hook errors            propagated from OnPath
package dfs
