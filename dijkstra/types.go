// Package dijkstra defines configuration options and sentinel errors for the
// label-correcting (Dijkstra) search over a core.Graph.
//
// Options:
//
//	– Source:       label of the starting vertex (required, must be in the graph).
//	– Frontier:     FrontierHeap (default, indexed heap) or FrontierList (linear scan).
//	– MaxDistance:  optional cap; vertices farther than this are never finalized.
//	– OnFinalize:   hook called once per vertex, in finalization order.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if no source label was provided.
//	– ErrBadMaxDistance  if MaxDistance < 0 (raised via panic by WithMaxDistance).
//	– core.ErrNilGraph, core.ErrUnknownLabel, core.ErrUnreachable from the store.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the source label was not provided.
	ErrEmptySource = errors.New("dijkstra: source label is empty")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// FrontierKind selects the priority structure backing the frontier.
type FrontierKind int

const (
	// FrontierHeap is an indexed binary heap with true decrease-key:
	// O(log F) per pop and per relaxation, O((V+E) log V) overall.
	FrontierHeap FrontierKind = iota

	// FrontierList is an insertion-ordered list scanned linearly:
	// O(F) per pop and per relaxation. Equal distances pop in insertion order.
	FrontierList
)

// String returns "heap" or "list".
func (k FrontierKind) String() string {
	switch k {
	case FrontierHeap:
		return "heap"
	case FrontierList:
		return "list"
	default:
		return "unknown"
	}
}

// Options configures a single Dijkstra run.
type Options struct {
	Source      string                               // label of the source vertex
	Frontier    FrontierKind                         // frontier implementation
	MaxDistance int64                                // distance cap, math.MaxInt64 = none
	OnFinalize  func(label string, dist int64) error // per-vertex hook, nil = none
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the label of the starting vertex.
func Source(label string) Option {
	return func(o *Options) {
		o.Source = label
	}
}

// WithFrontier selects the frontier implementation.
func WithFrontier(kind FrontierKind) Option {
	return func(o *Options) {
		o.Frontier = kind
	}
}

// WithMaxDistance stops the search from finalizing vertices farther than max.
// Such vertices are reported as unreachable. Panics if max < 0.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithOnFinalize installs fn as a hook invoked when a vertex's distance is settled.
// Returning an error aborts the search; the error is wrapped and returned.
func WithOnFinalize(fn func(label string, dist int64) error) Option {
	return func(o *Options) {
		o.OnFinalize = fn
	}
}

// DefaultOptions returns an Options struct for source with:
//   - Frontier:    FrontierHeap
//   - MaxDistance: math.MaxInt64 (no cap)
//   - OnFinalize:  nil
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		Frontier:    FrontierHeap,
		MaxDistance: math.MaxInt64,
	}
}
