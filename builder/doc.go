// SPDX-License-Identifier: MIT

// Package builder produces deterministic core.Graph fixtures for tests,
// examples and the verify command.
//
// A fixture is assembled by BuildGraph from a vertex count, builder options
// and an ordered list of Constructors:
//
//	g, err := builder.BuildGraph(6,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithSymbolIDs()},
//	    builder.Cycle(), builder.RandomSparse(0.3))
//
// Components:
//
//   - Topologies (Constructor): Path, Cycle, Star, Complete, RandomSparse.
//     Each adds edges over the full, fixed vertex set of the graph.
//   - Vertex labels (IDFn): DefaultIDFn ("0","1",…), SymbolIDFn ("A"…"Z"),
//     ExcelColumnIDFn ("A","Z","AA",…).
//   - Edge weights (WeightFn): DefaultWeightFn, ConstantWeightFn, UniformWeightFn.
//     Weights must be strictly positive; the graph store rejects anything else.
//
// Determinism:
//
//	Equal n, options, seed and constructor order yield identical graphs.
//	Constructors emit edges in ascending index order and draw from the RNG in
//	that same order.
//
// Errors:
//
//   - ErrTooFewVertices      the topology needs more vertices than n.
//   - ErrInvalidProbability  RandomSparse p outside [0,1].
//   - ErrNeedRandSource      RandomSparse sampling without WithSeed/WithRand.
//   - ErrOptionViolation     the ID scheme produced an empty or duplicate label.
//
// Option constructors panic on meaningless input (nil functions, non-positive
// weights); constructors themselves never panic.
package builder
