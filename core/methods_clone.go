// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Copying, comparing, merging and contracting graphs.
// Determinism:
//   - Derived graphs are built by inserting nodes, then edges, in address order.

package core

import (
	"fmt"

	"github.com/katalvlaran/credrank/address"
)

// Copy returns an independent deep copy of g with a fresh modification counter.
// Complexity: O(V + E).
func (g *Graph) Copy() *Graph {
	c := NewGraph()
	for a, n := range g.nodes {
		c.nodes[a] = n.clone()
	}
	for a, e := range g.edges {
		c.edges[a] = e
	}
	for a, inc := range g.incidence {
		ci := &incidence{
			in:  make(map[address.EdgeAddress]struct{}, len(inc.in)),
			out: make(map[address.EdgeAddress]struct{}, len(inc.out)),
		}
		for ea := range inc.in {
			ci.in[ea] = struct{}{}
		}
		for ea := range inc.out {
			ci.out[ea] = struct{}{}
		}
		c.incidence[a] = ci
	}

	return c
}

// Equal reports whether g and o hold the same nodes and edges, dangling
// edges included. Modification counters are ignored.
// Complexity: O(V + E).
func (g *Graph) Equal(o *Graph) bool {
	if len(g.nodes) != len(o.nodes) || len(g.edges) != len(o.edges) {
		return false
	}
	for a, n := range g.nodes {
		on, ok := o.nodes[a]
		if !ok || !n.Equal(on) {
			return false
		}
	}
	for a, e := range g.edges {
		oe, ok := o.edges[a]
		if !ok || e != oe {
			return false
		}
	}

	return true
}

// Merge returns the union of graphs. All nodes are added before any edge,
// so an edge dangling in its own graph may be resolved by another.
// Conflicting nodes or edges fail with ErrNodeConflict / ErrEdgeConflict.
// Complexity: O(Σ(V + E) log).
func Merge(graphs ...*Graph) (*Graph, error) {
	out := NewGraph()
	for _, g := range graphs {
		for _, a := range sortedKeys(g.nodes) {
			if err := out.AddNode(g.nodes[a]); err != nil {
				return nil, fmt.Errorf("core: Merge: %w", err)
			}
		}
	}
	for _, g := range graphs {
		for _, a := range sortedKeys(g.edges) {
			if err := out.AddEdge(g.edges[a]); err != nil {
				return nil, fmt.Errorf("core: Merge: %w", err)
			}
		}
	}

	return out, nil
}

// ContractNodes returns a new graph in which every Old address of each
// contraction is replaced by its Replacement node. Edges, dangling ones
// included, are re-pointed; an edge between two contracted nodes becomes a
// loop. When several contractions name the same old address, the last one
// wins. A replacement that is itself the old address of a different
// contraction fails with ErrChainedContraction. g is not modified.
// Complexity: O((V + E) log(V + E)).
func (g *Graph) ContractNodes(contractions []NodeContraction) (*Graph, error) {
	// 1) Resolve old -> replacement and reject chains
	replace := make(map[address.NodeAddress]address.NodeAddress)
	owners := make(map[address.NodeAddress][]int)
	for i, c := range contractions {
		if err := address.Node.Validate(c.Replacement.Address); err != nil {
			return nil, fmt.Errorf("core: ContractNodes: replacement %d: %w", i, err)
		}
		for _, old := range c.Old {
			if err := address.Node.Validate(old); err != nil {
				return nil, fmt.Errorf("core: ContractNodes: contraction %d: %w", i, err)
			}
			replace[old] = c.Replacement.Address
			owners[old] = append(owners[old], i)
		}
	}
	for i, c := range contractions {
		for _, j := range owners[c.Replacement.Address] {
			if j != i {
				return nil, fmt.Errorf("%w: replacement %s of contraction %d is contracted by contraction %d",
					ErrChainedContraction, c.Replacement.Address, i, j)
			}
		}
	}

	// 2) Surviving nodes, then replacements in contraction order
	out := NewGraph()
	for _, a := range sortedKeys(g.nodes) {
		if _, gone := replace[a]; gone {
			continue
		}
		if err := out.AddNode(g.nodes[a]); err != nil {
			return nil, fmt.Errorf("core: ContractNodes: %w", err)
		}
	}
	for _, c := range contractions {
		if err := out.AddNode(c.Replacement); err != nil {
			return nil, fmt.Errorf("core: ContractNodes: %w", err)
		}
	}

	// 3) Re-point every edge
	resolve := func(a address.NodeAddress) address.NodeAddress {
		if r, ok := replace[a]; ok {
			return r
		}
		return a
	}
	for _, a := range sortedKeys(g.edges) {
		e := g.edges[a]
		e.Src = resolve(e.Src)
		e.Dst = resolve(e.Dst)
		if err := out.AddEdge(e); err != nil {
			return nil, fmt.Errorf("core: ContractNodes: %w", err)
		}
	}

	return out, nil
}
