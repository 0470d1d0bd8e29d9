// SPDX-License-Identifier: MIT
// File: impl_path.go
// Role: Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds nodes 0..n-1, then edges (i-1) → i for i=1..n-1 under kind "path".
//
// Complexity: O(n) time, O(n) space for the address slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/credrank/core"
)

const (
	methodPath   = "Path"
	kindPath     = "path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a directed path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		nodes, err := addNodes(g, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(g, cfg, methodPath, kindPath, nodes[i-1], nodes[i], i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}
