// SPDX-License-Identifier: MIT
// File: options.go
// Role: functional options for the builder package.
//
// Contract:
//   - Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   - Seeding is explicit: WithSeed or WithRand.

package builder

import (
	"math/rand"
	"strings"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the node ID generator: index -> address part.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors and weights.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithNodePrefix sets the address parts every node address starts with.
// An empty prefix is allowed. Panics if any part contains a NUL byte.
func WithNodePrefix(parts ...string) BuilderOption {
	mustParts("WithNodePrefix", parts)

	return func(c *builderConfig) {
		c.nodePrefix = parts
	}
}

// WithEdgePrefix sets the address parts every edge address starts with.
// Panics if any part contains a NUL byte.
func WithEdgePrefix(parts ...string) BuilderOption {
	mustParts("WithEdgePrefix", parts)

	return func(c *builderConfig) {
		c.edgePrefix = parts
	}
}

// WithTimestamps times node i at startMs + i*stepMs and every edge at the
// later of its endpoints' times. Panics if stepMs < 0.
func WithTimestamps(startMs, stepMs int64) BuilderOption {
	if stepMs < 0 {
		panic("builder: WithTimestamps(stepMs<0)")
	}

	return func(c *builderConfig) {
		c.timed, c.startMs, c.stepMs = true, startMs, stepMs
	}
}

// WithEdgeWeightFns sets the generators BuildWeightedGraph draws forwards
// and backwards weights from. Panics on nil.
func WithEdgeWeightFns(forwards, backwards WeightFn) BuilderOption {
	if forwards == nil || backwards == nil {
		panic("builder: WithEdgeWeightFns(nil)")
	}

	return func(c *builderConfig) {
		c.forwardsFn, c.backwardsFn = forwards, backwards
	}
}

func mustParts(method string, parts []string) {
	for _, p := range parts {
		if strings.ContainsRune(p, 0) {
			panic("builder: " + method + ": part contains NUL")
		}
	}
}
