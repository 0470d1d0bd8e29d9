// SPDX-License-Identifier: MIT
// File: impl_star.go
// Role: Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub is nodePrefix + ["Center"], timed like node 0. Leaves are nodes 1..n-1.
//   - Edges run leaf → hub under kind "star", in increasing leaf index.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/credrank/core"
)

const (
	methodStar   = "Star"
	kindStar     = "star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star of n-1 leaves pointing at one hub.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		hubAddr, err := cfg.nodeAddress(centerID)
		if err != nil {
			return fmt.Errorf("%s: hub: %w", methodStar, err)
		}
		hub := core.Node{Address: hubAddr, Description: centerID}
		if cfg.timed {
			ts := cfg.timeOf(0)
			hub.TimestampMs = &ts
		}
		if err = g.AddNode(hub); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w: %w", methodStar, hubAddr, ErrConstructFailed, err)
		}

		for i := 1; i < n; i++ {
			leaf, err := cfg.nodeAt(i)
			if err != nil {
				return fmt.Errorf("%s: node %d: %w", methodStar, i, err)
			}
			if err = g.AddNode(leaf); err != nil {
				return fmt.Errorf("%s: AddNode(%s): %w: %w", methodStar, leaf.Address, ErrConstructFailed, err)
			}
			// Index 0 stands in for the hub in the edge address and timestamp.
			if err = addEdge(g, cfg, methodStar, kindStar, leaf.Address, hubAddr, i, 0); err != nil {
				return err
			}
		}

		return nil
	}
}
