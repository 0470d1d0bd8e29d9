// SPDX-License-Identifier: MIT
// File: api.go
// Role: BuildGraph and BuildWeightedGraph entry points.
//
// Contract:
//   - One orchestrator per output: BuildGraph for *core.Graph, BuildWeightedGraph
//     for *weights.WeightedGraph. Both resolve options once and run constructors in order.
//   - Determinism: same options, seed and constructor order ⇒ equal graphs and weights.
//   - Never panic at runtime; option constructors panic on programmer error.

package builder

import (
	"fmt"

	"github.com/katalvlaran/credrank/core"
	"github.com/katalvlaran/credrank/weights"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate their parameters first and return
// sentinel errors wrapped with the constructor name.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty core.Graph, resolves bopts and applies cons in
// order. The first constructor error is returned wrapped as "BuildGraph: %w".
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	g, err := build(cfg, cons)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// BuildWeightedGraph is BuildGraph followed by one exact-address edge weight
// per non-dangling edge, drawn in edge address order from the configured
// forwards and backwards WeightFns. loop is the synthetic loop weight.
// Complexity: O(E log E) on top of BuildGraph.
func BuildWeightedGraph(bopts []BuilderOption, loop float64, cons ...Constructor) (*weights.WeightedGraph, error) {
	cfg := newBuilderConfig(bopts...)
	g, err := build(cfg, cons)
	if err != nil {
		return nil, fmt.Errorf("BuildWeightedGraph: %w", err)
	}

	w := weights.Empty()
	for e, err := range g.Edges(core.EdgesOptions{}) {
		if err != nil {
			return nil, fmt.Errorf("BuildWeightedGraph: %w", err)
		}
		w.EdgeWeights[e.Address] = weights.EdgeWeight{
			Forwards:  cfg.forwardsFn(cfg.rng),
			Backwards: cfg.backwardsFn(cfg.rng),
		}
	}

	wg, err := weights.NewWeightedGraph(g, w, loop)
	if err != nil {
		return nil, fmt.Errorf("BuildWeightedGraph: %w", err)
	}

	return wg, nil
}

func build(cfg builderConfig, cons []Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, err
		}
	}

	return g, nil
}
