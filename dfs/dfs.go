// Package dfs implements the exhaustive minimum-weight simple-path search.
//
// The search enumerates every simple path (no repeated vertex) between two
// vertices by depth-first backtracking over an explicit path stack, and keeps
// the lightest one found. It is exponential in the worst case (up to (V-1)!
// paths on a complete graph) and is meant for small graphs and for
// cross-checking the dijkstra package.
//
// Complexity:
//
//   - Time:   O(P · V) where P is the number of simple paths explored.
//   - Memory: O(V) for the recursion, the path stack and the on-stack flags.
//
// Errors:
//
//   - core.ErrNilGraph        if g is nil.
//   - core.ErrUnknownLabel    if start or end is missing.
//   - core.ErrUnreachable     if no simple path connects start and end.
//   - context.Canceled        if ctx is done.
//   - any error returned by OnPath.
package dfs

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/core"
)

// unbounded is the initial best-known length; every real path is shorter.
const unbounded = int64(math.MaxInt64)

// pathWalker encapsulates state during one enumeration.
type pathWalker struct {
	graph   *core.Graph
	labels  []string
	opts    Options
	end     int
	stack   []int  // current path, start first
	onStack []bool // membership of stack by vertex index

	// visit receives each complete path with its total weight.
	visit func(stack []int, dist int64) error
}

// MinimumWeightSimplePath returns the lightest simple path from start to end,
// found by full enumeration. Among equally light paths the first one discovered
// wins; neighbors are explored in the graph's label order.
//
// When start == end the result is the zero-length path {0, [start]}.
func MinimumWeightSimplePath(g *core.Graph, start, end string, opts ...Option) (core.Path, error) {
	var (
		bestLen = unbounded
		best    []int
	)
	visit := func(stack []int, dist int64) error {
		if dist < bestLen {
			bestLen = dist
			best = append(best[:0], stack...)
		}

		return nil
	}

	w, err := newWalker(g, start, end, visit, opts)
	if err != nil {
		return core.Path{}, err
	}
	if err = w.run(); err != nil {
		return core.Path{}, err
	}

	if best == nil {
		return core.Path{}, fmt.Errorf("dfs: %q from %q: %w", end, start, core.ErrUnreachable)
	}

	return core.Path{Distance: bestLen, Labels: w.toLabels(best)}, nil
}

// SimplePaths returns every simple path from start to end in discovery order.
// No path yields an empty slice and a nil error.
func SimplePaths(g *core.Graph, start, end string, opts ...Option) ([]core.Path, error) {
	var paths []core.Path
	var w *pathWalker
	visit := func(stack []int, dist int64) error {
		paths = append(paths, core.Path{Distance: dist, Labels: w.toLabels(stack)})

		return nil
	}

	w, err := newWalker(g, start, end, visit, opts)
	if err != nil {
		return nil, err
	}
	if err = w.run(); err != nil {
		return nil, err
	}

	return paths, nil
}

// newWalker validates inputs, resolves labels and applies options.
func newWalker(g *core.Graph, start, end string, visit func([]int, int64) error, opts []Option) (*pathWalker, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, core.ErrNilGraph
	}

	// 2. Resolve endpoints
	s, err := g.IndexOf(start)
	if err != nil {
		return nil, fmt.Errorf("dfs: start: %w", err)
	}
	e, err := g.IndexOf(end)
	if err != nil {
		return nil, fmt.Errorf("dfs: end: %w", err)
	}

	// 3. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	n := g.VertexCount()
	w := &pathWalker{
		graph:   g,
		labels:  g.Labels(),
		opts:    o,
		end:     e,
		stack:   make([]int, 0, n),
		onStack: make([]bool, n),
		visit:   visit,
	}
	w.push(s)

	return w, nil
}

// run explores from the start vertex already on the stack.
func (w *pathWalker) run() error {
	return w.traverse(w.stack[0])
}

func (w *pathWalker) push(i int) {
	w.stack = append(w.stack, i)
	w.onStack[i] = true
}

func (w *pathWalker) pop() {
	last := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	w.onStack[last] = false
}

// traverse extends the current path from cur. The stack holds the path ending
// at cur on entry and is restored exactly on return.
func (w *pathWalker) traverse(cur int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Reached the end: report the path
	if cur == w.end {
		return w.report()
	}

	// 3. Depth limit on edges
	if w.opts.MaxDepth >= 0 && len(w.stack)-1 >= w.opts.MaxDepth {
		return nil
	}

	// 4. Branch into every neighbor not already on the path
	for _, next := range w.graph.NeighborIndices(cur) {
		if w.onStack[next] {
			continue
		}
		w.push(next)
		err := w.traverse(next)
		w.pop()
		if err != nil {
			return err
		}
	}

	return nil
}

// report evaluates the current stack and hands it to the hook and visitor.
func (w *pathWalker) report() error {
	dist := w.evaluate()

	if w.opts.OnPath != nil {
		p := core.Path{Distance: dist, Labels: w.toLabels(w.stack)}
		if err := w.opts.OnPath(p); err != nil {
			return fmt.Errorf("dfs: OnPath hook for %v: %w", p.Labels, err)
		}
	}

	return w.visit(w.stack, dist)
}

// evaluate sums the edge weights between consecutive stack entries.
// The stack is a simple path and core.Graph caps weights at MaxWeight, so the
// sum fits in an int64.
func (w *pathWalker) evaluate() int64 {
	var total int64
	for i := 1; i < len(w.stack); i++ {
		total += w.graph.WeightAt(w.stack[i-1], w.stack[i])
	}

	return total
}

// toLabels converts an index path into a fresh label slice.
func (w *pathWalker) toLabels(idx []int) []string {
	out := make([]string, len(idx))
	for i, v := range idx {
		out[i] = w.labels[v]
	}

	return out
}
