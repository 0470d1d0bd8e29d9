// SPDX-License-Identifier: MIT
// File: impl_complete.go
// Role: Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Adds nodes 0..n-1, then both i → j and j → i for every i<j, in
//     lexicographic (i,j) order, under kind "complete".
//
// Complexity: O(n²) time, O(n) space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/credrank/core"
)

const (
	methodComplete   = "Complete"
	kindComplete     = "complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete directed graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		nodes, err := addNodes(g, cfg, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(g, cfg, methodComplete, kindComplete, nodes[i], nodes[j], i, j); err != nil {
					return err
				}
				if err = addEdge(g, cfg, methodComplete, kindComplete, nodes[j], nodes[i], j, i); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
