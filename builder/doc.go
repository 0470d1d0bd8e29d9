// SPDX-License-Identifier: MIT

// Package builder assembles deterministic fixture graphs for credrank tests,
// examples and benchmarks.
//
// Constructors (Path, Cycle, Star, Complete, RandomSparse, Dangling) add
// nodes addressed nodePrefix + [id] and edges addressed
// edgePrefix + [kind, id(src), id(dst)], so composing constructors over the
// same ID range shares nodes and never collides on edges. Re-running a
// constructor is a no-op.
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithTimestamps(t0, week)},
//		builder.Cycle(5),
//		builder.RandomSparse(5, 0.3),
//	)
//
// BuildWeightedGraph adds one exact-address EdgeWeight per edge drawn from
// WithEdgeWeightFns (constant 1 by default) and wraps the result in a
// weights.WeightedGraph.
//
// Options:
//
//	WithIDScheme, With*IDs        node ID scheme (decimal by default)
//	WithSeed, WithRand            RNG for RandomSparse and weight draws
//	WithNodePrefix, WithEdgePrefix address prefixes ("node", "edge" by default)
//	WithTimestamps(start, step)   node i at start+i*step; edges at the later endpoint
//	WithEdgeWeightFns             forwards/backwards weight generators
//
// Option constructors panic on meaningless values. Constructors never panic;
// they return ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource or
// ErrConstructFailed wrapped with the constructor name.
package builder
