// Package dijkstra implements the label-correcting shortest-path search on a core.Graph.
//
// Dijkstra settles vertices in order of increasing distance from the source.
// Every queued vertex lives in the frontier at most once; when a strictly shorter
// route to a queued vertex is found the entry is replaced (decrease-key), and
// equal-distance routes leave the existing entry untouched.
//
// Complexity:
//
//   - FrontierHeap: O((V + E) log V) pops and relaxations, plus O(V) per vertex
//     for the matrix row scan, so O(V²) on the dense store overall.
//   - FrontierList: O(V) per pop and per relaxation, O(V·E) worst case.
//   - Space: O(V) for the frontier, the finalized set and the predecessor tree.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/pqueue"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// reachable from it. Unreachable vertices are absent from the Result.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (core.ErrNilGraph).
//  3. g must contain Source (core.ErrUnknownLabel).
//
// The graph must not be mutated while the search runs. All search state is
// owned by this call; repeated calls on an unchanged graph return equal results.
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, core.ErrNilGraph
	}
	src, err := g.IndexOf(cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: source: %w", err)
	}

	// 3) Run
	r := newRunner(g, cfg)
	if err = r.run(src); err != nil {
		return nil, err
	}

	return &Result{source: cfg.Source, order: r.order, nodes: r.final, labels: r.labels}, nil
}

// ShortestDistances runs Dijkstra from source with the given options.
func ShortestDistances(g *core.Graph, source string, opts ...Option) (*Result, error) {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, Source(source))

	return Dijkstra(g, all...)
}

// ShortestPath returns the minimum-cost path from source to target.
//
// Errors:
//   - core.ErrUnknownLabel if either label is not in the graph.
//   - core.ErrUnreachable if target cannot be reached from source.
//   - any error from Dijkstra.
func ShortestPath(g *core.Graph, source, target string, opts ...Option) (core.Path, error) {
	if g == nil {
		return core.Path{}, core.ErrNilGraph
	}
	if _, err := g.IndexOf(target); err != nil {
		return core.Path{}, fmt.Errorf("dijkstra: target: %w", err)
	}

	res, err := ShortestDistances(g, source, opts...)
	if err != nil {
		return core.Path{}, err
	}

	return res.PathTo(target)
}

// searchNode is one vertex record: tentative distance plus the predecessor link
// that forms the shortest-path tree rooted at the source.
type searchNode struct {
	label string
	index int
	dist  int64
	pred  *searchNode // nil for the source
}

// nodeLabel is the frontier key: two records with the same label are the same vertex.
func nodeLabel(n *searchNode) string { return n.label }

// nodeCloser orders the frontier by ascending tentative distance.
func nodeCloser(a, b *searchNode) bool { return a.dist < b.dist }

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g        *core.Graph                       // read-only during the run
	labels   []string                          // index → label, resolved once
	options  Options                           // resolved configuration
	frontier pqueue.Queue[string, *searchNode] // discovered, not yet final
	final    map[string]*searchNode            // finalized set, keyed by label
	order    []string                          // finalization order
}

// newRunner allocates per-call state and the configured frontier.
func newRunner(g *core.Graph, cfg Options) *runner {
	var frontier pqueue.Queue[string, *searchNode]
	switch cfg.Frontier {
	case FrontierList:
		frontier = pqueue.NewList(nodeLabel, nodeCloser)
	default:
		frontier = pqueue.NewHeap(nodeLabel, nodeCloser)
	}

	n := g.VertexCount()

	return &runner{
		g:        g,
		labels:   g.Labels(),
		options:  cfg,
		frontier: frontier,
		final:    make(map[string]*searchNode, n),
		order:    make([]string, 0, n),
	}
}

// run seeds the frontier with the source and drains it.
//
// Loop:
//  1. Pop the closest frontier entry.
//  2. Finalize it (exactly once).
//  3. Relax every neighbor that is not final yet.
func (r *runner) run(src int) error {
	if err := r.frontier.Push(&searchNode{label: r.labels[src], index: src}); err != nil {
		return fmt.Errorf("dijkstra: seed frontier: %w", err)
	}

	for r.frontier.Len() > 0 {
		cur, _ := r.frontier.Pop()

		// A label is finalized at most once.
		if _, done := r.final[cur.label]; done {
			continue
		}
		r.final[cur.label] = cur
		r.order = append(r.order, cur.label)

		if r.options.OnFinalize != nil {
			if err := r.options.OnFinalize(cur.label, cur.dist); err != nil {
				return fmt.Errorf("dijkstra: OnFinalize hook for %q: %w", cur.label, err)
			}
		}

		if err := r.relax(cur); err != nil {
			return err
		}
	}

	return nil
}

// relax offers cur.dist + w(cur, j) to every non-final neighbor j.
// New vertices are pushed; queued vertices are replaced only by a strictly
// shorter candidate.
func (r *runner) relax(cur *searchNode) error {
	for _, j := range r.g.NeighborIndices(cur.index) {
		label := r.labels[j]
		if _, done := r.final[label]; done {
			continue
		}

		// cur.dist <= MaxDistance, so the subtraction cannot overflow. The
		// candidate is a simple-path total, bounded by core.Graph.MaxWeight.
		w := r.g.WeightAt(cur.index, j)
		if w > r.options.MaxDistance-cur.dist {
			continue
		}
		cand := cur.dist + w
		next := &searchNode{label: label, index: j, dist: cand, pred: cur}

		queued, ok := r.frontier.Get(label)
		if !ok {
			if err := r.frontier.Push(next); err != nil {
				return fmt.Errorf("dijkstra: relax %q→%q: %w", cur.label, label, err)
			}
			continue
		}
		// ties keep the existing entry
		if queued.dist > cand {
			r.frontier.Update(next)
		}
	}

	return nil
}
