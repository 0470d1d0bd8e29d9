// SPDX-License-Identifier: MIT
// File: impl_cycle.go
// Role: Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Adds nodes 0..n-1, then edges i → (i+1)%n in increasing i under kind "cycle".
//
// Complexity: O(n) time, O(n) space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/credrank/core"
)

const (
	methodCycle   = "Cycle"
	kindCycle     = "cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a directed cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		nodes, err := addNodes(g, cfg, methodCycle, n)
		if err != nil {
			return err
		}
		// Emit in ascending i; the last step closes the ring back to 0.
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			if err = addEdge(g, cfg, methodCycle, kindCycle, nodes[i], nodes[j], i, j); err != nil {
				return err
			}
		}

		return nil
	}
}
