// SPDX-License-Identifier: MIT
// File: invariants.go
// Role: Consistency checks over the internal indices.

package core

import (
	"fmt"

	"github.com/katalvlaran/credrank/address"
)

// CheckInvariants verifies the internal indices against each other and
// returns an ErrInvariantViolation describing the first problem found.
// Intended for tests; a Graph only mutated through its methods always passes.
// Complexity: O(V + E).
func (g *Graph) CheckInvariants() error {
	// 1) Nodes and edges are keyed by their own, well-formed address
	for a, n := range g.nodes {
		if n.Address != a {
			return fmt.Errorf("%w: node key %s holds %s", ErrInvariantViolation, a, n.Address)
		}
		if err := address.Node.Validate(a); err != nil {
			return fmt.Errorf("%w: %w", ErrInvariantViolation, err)
		}
	}
	expected := make(map[address.NodeAddress]struct{}, len(g.nodes))
	for a := range g.nodes {
		expected[a] = struct{}{}
	}
	for a, e := range g.edges {
		if e.Address != a {
			return fmt.Errorf("%w: edge key %s holds %s", ErrInvariantViolation, a, e.Address)
		}
		if err := address.Edge.Validate(a); err != nil {
			return fmt.Errorf("%w: %w", ErrInvariantViolation, err)
		}
		expected[e.Src] = struct{}{}
		expected[e.Dst] = struct{}{}

		// 2) Each edge appears in the in-bucket of Dst and the out-bucket of Src
		if src, ok := g.incidence[e.Src]; !ok || !hasEdge(src.out, a) {
			return fmt.Errorf("%w: %s missing from out-edges of %s", ErrInvariantViolation, a, e.Src)
		}
		if dst, ok := g.incidence[e.Dst]; !ok || !hasEdge(dst.in, a) {
			return fmt.Errorf("%w: %s missing from in-edges of %s", ErrInvariantViolation, a, e.Dst)
		}
	}

	// 3) Incidence keys are exactly node addresses and edge endpoints
	if len(expected) != len(g.incidence) {
		return fmt.Errorf("%w: incidence index has %d keys, want %d", ErrInvariantViolation, len(g.incidence), len(expected))
	}
	for a, inc := range g.incidence {
		if _, ok := expected[a]; !ok {
			return fmt.Errorf("%w: stray incidence key %s", ErrInvariantViolation, a)
		}
		// 4) Buckets hold only edges that actually point at a
		for ea := range inc.in {
			if e, ok := g.edges[ea]; !ok || e.Dst != a {
				return fmt.Errorf("%w: %s wrongly listed as in-edge of %s", ErrInvariantViolation, ea, a)
			}
		}
		for ea := range inc.out {
			if e, ok := g.edges[ea]; !ok || e.Src != a {
				return fmt.Errorf("%w: %s wrongly listed as out-edge of %s", ErrInvariantViolation, ea, a)
			}
		}
	}

	return nil
}

func hasEdge(bucket map[address.EdgeAddress]struct{}, a address.EdgeAddress) bool {
	_, ok := bucket[a]

	return ok
}
