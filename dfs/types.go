// Package dfs defines options for the exhaustive simple-path search:
// cancellation, a per-path hook and a depth limit.
package dfs

import (
	"context"

	"github.com/katalvlaran/lvroute/core"
)

// Option configures optional behavior of the simple-path search.
type Option func(*Options)

// Options holds configurable parameters for the exhaustive search.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	// It is checked once per recursion step.
	Ctx context.Context

	// OnPath, if non-nil, is invoked for every complete start→end simple path in
	// discovery order, before it is compared with the best one.
	// Returning an error aborts the search with that error.
	OnPath func(p core.Path) error

	// MaxDepth, if non-negative, limits paths to at most MaxDepth edges.
	// Default is -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns Options with:
//   - Background context
//   - No OnPath hook
//   - No depth limit (MaxDepth = -1)
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnPath:   nil,
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnPath returns an Option that installs fn as the per-path hook.
func WithOnPath(fn func(p core.Path) error) Option {
	return func(o *Options) {
		o.OnPath = fn
	}
}

// WithMaxDepth returns an Option that limits paths to limit edges.
// A limit of 0 only admits the self path (start == end).
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}
