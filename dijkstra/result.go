package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// Result is the finalized set of one Dijkstra run: for every vertex reachable
// from the source, its shortest distance and its predecessor on one shortest path.
// Unreachable vertices are absent. A Result is immutable.
type Result struct {
	source string
	order  []string               // finalization order, source first
	nodes  map[string]*searchNode // finalized records by label
	labels []string               // every vertex of the searched graph
}

// Source returns the label the search started from.
func (r *Result) Source() string { return r.source }

// Order returns the reachable labels in the order they were finalized,
// i.e. by non-decreasing distance. Ties follow the frontier's tie order.
func (r *Result) Order() []string {
	return append([]string(nil), r.order...)
}

// Len returns the number of reachable vertices, source included.
func (r *Result) Len() int { return len(r.order) }

// Reachable reports whether label was finalized.
func (r *Result) Reachable(label string) bool {
	_, ok := r.nodes[label]

	return ok
}

// Distance returns the shortest distance to label; ok is false when label is unreachable.
func (r *Result) Distance(label string) (dist int64, ok bool) {
	n, ok := r.nodes[label]
	if !ok {
		return 0, false
	}

	return n.dist, true
}

// Predecessor returns the vertex preceding label on its shortest path.
// ok is false for the source and for unreachable vertices.
func (r *Result) Predecessor(label string) (string, bool) {
	n, ok := r.nodes[label]
	if !ok || n.pred == nil {
		return "", false
	}

	return n.pred.label, true
}

// Distances returns a fresh label → distance map of all reachable vertices.
func (r *Result) Distances() map[string]int64 {
	out := make(map[string]int64, len(r.nodes))
	for l, n := range r.nodes {
		out[l] = n.dist
	}

	return out
}

// Predecessors returns a fresh label → predecessor map. The source has no entry.
func (r *Result) Predecessors() map[string]string {
	out := make(map[string]string, len(r.nodes))
	for l, n := range r.nodes {
		if n.pred != nil {
			out[l] = n.pred.label
		}
	}

	return out
}

// PathTo walks the predecessor links from target back to the source and
// returns the path in source → target order.
//
// Errors: core.ErrUnknownLabel when target was not a vertex of the searched
// graph; core.ErrUnreachable when it was but never got finalized.
func (r *Result) PathTo(target string) (core.Path, error) {
	n, ok := r.nodes[target]
	if !ok {
		if !r.known(target) {
			return core.Path{}, fmt.Errorf("dijkstra: target %q: %w", target, core.ErrUnknownLabel)
		}
		return core.Path{}, fmt.Errorf("dijkstra: %q from %q: %w", target, r.source, core.ErrUnreachable)
	}

	var labels []string
	for cur := n; cur != nil; cur = cur.pred {
		labels = append(labels, cur.label)
	}
	for i, j := 0, len(labels)-1; i < j; i, j = i+1, j-1 {
		labels[i], labels[j] = labels[j], labels[i]
	}

	return core.Path{Distance: n.dist, Labels: labels}, nil
}

// known reports whether label was a vertex when the search ran.
func (r *Result) known(label string) bool {
	for _, l := range r.labels {
		if l == label {
			return true
		}
	}

	return false
}
