// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the failing call site.

package builder

import "errors"

// ErrTooFewVertices indicates that the graph has fewer vertices than the
// requested topology requires (e.g. Cycle on two vertices).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability lies outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor was run without an
// RNG in the resolved builderConfig (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrOptionViolation indicates that a resolved option produced an unusable
// value at build time, such as an ID scheme emitting duplicate labels.
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrNilConstructor indicates a nil Constructor passed to BuildGraph.
var ErrNilConstructor = errors.New("builder: nil constructor")
