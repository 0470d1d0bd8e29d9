// SPDX-License-Identifier: MIT
// File: config.go
// Role: builderConfig and its deterministic defaults.
//
// Defaults:
//   - idFn        = DefaultIDFn        ("0","1","2",...)
//   - rng         = nil                (no randomness unless seeded)
//   - nodePrefix  = ["node"]
//   - edgePrefix  = ["edge"]
//   - timestamps  = off                (nodes untimed, edges at 0)
//   - forwardsFn  = DefaultWeightFn
//   - backwardsFn = DefaultWeightFn

package builder

import (
	"math/rand"
	"slices"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn IDFn
	rng  *rand.Rand

	nodePrefix []string
	edgePrefix []string

	// Node i is created at startMs + i*stepMs when timed is set.
	timed   bool
	startMs int64
	stepMs  int64

	forwardsFn  WeightFn
	backwardsFn WeightFn
}

const (
	defaultNodePrefix = "node"
	defaultEdgePrefix = "edge"
)

// newBuilderConfig applies opts over the defaults, last one wins.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		nodePrefix:  []string{defaultNodePrefix},
		edgePrefix:  []string{defaultEdgePrefix},
		forwardsFn:  DefaultWeightFn,
		backwardsFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	// Owned copies with len == cap: per-node appends always allocate.
	cfg.nodePrefix = slices.Clip(slices.Clone(cfg.nodePrefix))
	cfg.edgePrefix = slices.Clip(slices.Clone(cfg.edgePrefix))

	return cfg
}
