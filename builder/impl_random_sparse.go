// SPDX-License-Identifier: MIT
// File: impl_random_sparse.go
// Role: RandomSparse(n, p) and Dangling(n) constructors.
//
// Contract (RandomSparse):
//   - n ≥ 1, 0 ≤ p ≤ 1, and an RNG when 0 < p < 1.
//   - One Bernoulli trial per ordered pair (i,j), i ≠ j, in (i asc, j asc) order.
//   - p = 0 and p = 1 are deterministic and need no RNG.
//
// Contract (Dangling):
//   - n ≥ 1. Adds nodes 0..n-1 and, for each, an edge to the absent node
//     nodePrefix + ["ghost-" + id(i)] under kind "dangling".
//
// Complexity: O(n²) trials for RandomSparse, O(n) for Dangling.

package builder

import (
	"fmt"

	"github.com/katalvlaran/credrank/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	kindRandom              = "random"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0

	methodDangling   = "Dangling"
	kindDangling     = "dangling"
	ghostPart        = "ghost"
	minDanglingNodes = 1
)

// RandomSparse returns a Constructor that samples a directed Erdős–Rényi
// graph over n nodes with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate sizes, then probability, then RNG presence
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Nodes in index order
		nodes, err := addNodes(g, cfg, methodRandomSparse, n)
		if err != nil {
			return err
		}

		// 3) Trials in fixed order so a seed pins the outcome
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				keep := p == probMax
				if !keep && p > probMin {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err = addEdge(g, cfg, methodRandomSparse, kindRandom, nodes[i], nodes[j], i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Dangling returns a Constructor that gives each of n nodes an outgoing
// edge to a node that is never added.
func Dangling(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minDanglingNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodDangling, n, minDanglingNodes, ErrTooFewVertices)
		}
		nodes, err := addNodes(g, cfg, methodDangling, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			ghost, err := cfg.nodeAddress(ghostPart + "-" + cfg.idFn(i))
			if err != nil {
				return fmt.Errorf("%s: ghost %d: %w", methodDangling, i, err)
			}
			if err = addEdge(g, cfg, methodDangling, kindDangling, nodes[i], ghost, i, i); err != nil {
				return err
			}
		}

		return nil
	}
}
