// SPDX-License-Identifier: MIT
// File: methods.go
// Role: Node and edge lifecycle, point lookups.
// Determinism:
//   - Every mutation attempt, failed or no-op, bumps the modification counter.
//   - Error messages enumerate offending edges in address order.

package core

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/credrank/address"
)

// AddNode inserts n. Re-adding an identical node is a no-op; adding a
// different node under an existing address fails with ErrNodeConflict.
// Complexity: O(1).
func (g *Graph) AddNode(n Node) error {
	if err := g.markModification(); err != nil {
		return err
	}
	// 1) Validate address kind and shape
	if err := address.Node.Validate(n.Address); err != nil {
		return fmt.Errorf("core: AddNode: %w", err)
	}
	// 2) Identical re-add is fine, anything else conflicts
	if existing, ok := g.nodes[n.Address]; ok {
		if existing.Equal(n) {
			return nil
		}

		return fmt.Errorf("%w: adding %s, existing %s", ErrNodeConflict, NodeToString(n), NodeToString(existing))
	}
	// 3) Store a detached copy and make sure the address is indexed
	g.nodes[n.Address] = n.clone()
	g.ensureIncidence(n.Address)

	return nil
}

// RemoveNode deletes the node at a. Removing an absent node is a no-op.
// Fails with ErrNodeReferenced while any non-dangling edge touches a;
// remove those edges first. Dangling edges at a stay in the graph.
// Complexity: O(deg(a) log deg(a)).
func (g *Graph) RemoveNode(a address.NodeAddress) error {
	if err := g.markModification(); err != nil {
		return err
	}
	if err := address.Node.Validate(a); err != nil {
		return fmt.Errorf("core: RemoveNode: %w", err)
	}
	if _, ok := g.nodes[a]; !ok {
		return nil
	}
	// Every edge incident to a is non-dangling unless its other endpoint is missing.
	for _, ea := range g.incidentEdges(a) {
		e := g.edges[ea]
		if !g.isDangling(e) {
			return fmt.Errorf("%w: removing %s, referenced by %s", ErrNodeReferenced, a, EdgeToString(e))
		}
	}
	delete(g.nodes, a)
	g.pruneIncidence(a)

	return nil
}

// AddEdge inserts e. Endpoints need not exist. Re-adding an identical edge
// is a no-op; a different edge under an existing address fails with
// ErrEdgeConflict.
// Complexity: O(1).
func (g *Graph) AddEdge(e Edge) error {
	if err := g.markModification(); err != nil {
		return err
	}
	// 1) Validate all three addresses
	if err := address.Edge.Validate(e.Address); err != nil {
		return fmt.Errorf("core: AddEdge: %w", err)
	}
	if err := address.Node.Validate(e.Src); err != nil {
		return fmt.Errorf("core: AddEdge: src: %w", err)
	}
	if err := address.Node.Validate(e.Dst); err != nil {
		return fmt.Errorf("core: AddEdge: dst: %w", err)
	}
	// 2) Identical re-add is fine, anything else conflicts
	if existing, ok := g.edges[e.Address]; ok {
		if existing == e {
			return nil
		}

		return fmt.Errorf("%w: adding %s, existing %s", ErrEdgeConflict, EdgeToString(e), EdgeToString(existing))
	}
	// 3) Store and index both endpoints
	g.edges[e.Address] = e
	g.ensureIncidence(e.Src).out[e.Address] = struct{}{}
	g.ensureIncidence(e.Dst).in[e.Address] = struct{}{}

	return nil
}

// RemoveEdge deletes the edge at a. Removing an absent edge is a no-op.
// Complexity: O(1).
func (g *Graph) RemoveEdge(a address.EdgeAddress) error {
	if err := g.markModification(); err != nil {
		return err
	}
	if err := address.Edge.Validate(a); err != nil {
		return fmt.Errorf("core: RemoveEdge: %w", err)
	}
	e, ok := g.edges[a]
	if !ok {
		return nil
	}
	delete(g.edges, a)
	delete(g.incidence[e.Src].out, a)
	delete(g.incidence[e.Dst].in, a)
	g.pruneIncidence(e.Src)
	g.pruneIncidence(e.Dst)

	return nil
}

// HasNode reports whether a node is stored at a.
// Panics if a is not a valid node address.
func (g *Graph) HasNode(a address.NodeAddress) bool {
	mustValid(address.Node, a)
	_, ok := g.nodes[a]

	return ok
}

// Node returns the node stored at a.
// Panics if a is not a valid node address.
func (g *Graph) Node(a address.NodeAddress) (Node, bool) {
	mustValid(address.Node, a)
	n, ok := g.nodes[a]

	return n.clone(), ok
}

// HasEdge reports whether an edge is stored at a, dangling or not.
// Panics if a is not a valid edge address.
func (g *Graph) HasEdge(a address.EdgeAddress) bool {
	mustValid(address.Edge, a)
	_, ok := g.edges[a]

	return ok
}

// Edge returns the edge stored at a, dangling or not.
// Panics if a is not a valid edge address.
func (g *Graph) Edge(a address.EdgeAddress) (Edge, bool) {
	mustValid(address.Edge, a)
	e, ok := g.edges[a]

	return e, ok
}

// IsDanglingEdge reports whether the edge at a is missing an endpoint.
// ok is false when no edge is stored at a.
// Panics if a is not a valid edge address.
func (g *Graph) IsDanglingEdge(a address.EdgeAddress) (dangling, ok bool) {
	mustValid(address.Edge, a)
	e, ok := g.edges[a]
	if !ok {
		return false, false
	}

	return g.isDangling(e), true
}

func mustValid[A ~string](m address.Module[A], a A) {
	if err := m.Validate(a); err != nil {
		panic(fmt.Sprintf("core: %v", err))
	}
}

func (g *Graph) isDangling(e Edge) bool {
	_, src := g.nodes[e.Src]
	_, dst := g.nodes[e.Dst]

	return !src || !dst
}

func (g *Graph) ensureIncidence(a address.NodeAddress) *incidence {
	inc, ok := g.incidence[a]
	if !ok {
		inc = &incidence{
			in:  make(map[address.EdgeAddress]struct{}),
			out: make(map[address.EdgeAddress]struct{}),
		}
		g.incidence[a] = inc
	}

	return inc
}

// pruneIncidence drops the index entry of a once nothing refers to a.
func (g *Graph) pruneIncidence(a address.NodeAddress) {
	inc, ok := g.incidence[a]
	if !ok {
		return
	}
	if _, isNode := g.nodes[a]; isNode {
		return
	}
	if len(inc.in) == 0 && len(inc.out) == 0 {
		delete(g.incidence, a)
	}
}

// incidentEdges returns the sorted union of edges entering and leaving a.
func (g *Graph) incidentEdges(a address.NodeAddress) []address.EdgeAddress {
	inc, ok := g.incidence[a]
	if !ok {
		return nil
	}
	out := make([]address.EdgeAddress, 0, len(inc.in)+len(inc.out))
	for ea := range inc.in {
		out = append(out, ea)
	}
	for ea := range inc.out {
		if _, loop := inc.in[ea]; !loop {
			out = append(out, ea)
		}
	}
	slices.Sort(out)

	return out
}

func sortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
