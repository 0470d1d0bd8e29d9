// SPDX-License-Identifier: MIT
// File: methods_iter.go
// Role: Lazy, filtered iteration over nodes, edges and neighborhoods.
// Determinism:
//   - Results are yielded in ascending address order.
// Fail-fast:
//   - The modification counter is captured when the iterator is created.
//     Every pull (and the final one) compares it with the live counter and
//     yields ErrConcurrentModification on mismatch, then stops.

package core

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/credrank/address"
)

// Nodes yields the nodes whose address has opts.Prefix, in address order.
// Complexity: O(V log V) on first pull, O(1) per element.
func (g *Graph) Nodes(opts NodesOptions) iter.Seq2[Node, error] {
	stamp := g.modCount

	return func(yield func(Node, error) bool) {
		prefix, err := prefixOrEmpty(address.Node, opts.Prefix)
		if err != nil {
			yield(Node{}, fmt.Errorf("core: Nodes: prefix: %w", err))
			return
		}
		for _, a := range sortedKeys(g.nodes) {
			if g.modCount != stamp {
				yield(Node{}, ErrConcurrentModification)
				return
			}
			if !a.HasPrefix(prefix) {
				continue
			}
			if !yield(g.nodes[a].clone(), nil) {
				return
			}
		}
		if g.modCount != stamp {
			yield(Node{}, ErrConcurrentModification)
		}
	}
}

// Edges yields the edges matching opts, in address order. Dangling edges are
// skipped unless opts.ShowDangling is set.
// Complexity: O(E log E) on first pull, O(1) per element.
func (g *Graph) Edges(opts EdgesOptions) iter.Seq2[Edge, error] {
	stamp := g.modCount

	return func(yield func(Edge, error) bool) {
		addrPrefix, err := prefixOrEmpty(address.Edge, opts.AddressPrefix)
		if err != nil {
			yield(Edge{}, fmt.Errorf("core: Edges: address prefix: %w", err))
			return
		}
		srcPrefix, err := prefixOrEmpty(address.Node, opts.SrcPrefix)
		if err != nil {
			yield(Edge{}, fmt.Errorf("core: Edges: src prefix: %w", err))
			return
		}
		dstPrefix, err := prefixOrEmpty(address.Node, opts.DstPrefix)
		if err != nil {
			yield(Edge{}, fmt.Errorf("core: Edges: dst prefix: %w", err))
			return
		}
		for _, a := range sortedKeys(g.edges) {
			if g.modCount != stamp {
				yield(Edge{}, ErrConcurrentModification)
				return
			}
			e := g.edges[a]
			if !e.Address.HasPrefix(addrPrefix) || !e.Src.HasPrefix(srcPrefix) || !e.Dst.HasPrefix(dstPrefix) {
				continue
			}
			if !opts.ShowDangling && g.isDangling(e) {
				continue
			}
			if !yield(e, nil) {
				return
			}
		}
		if g.modCount != stamp {
			yield(Edge{}, ErrConcurrentModification)
		}
	}
}

// Neighbors yields the non-dangling edges incident to a in the requested
// direction, each paired with the node at the other end. Under Any a loop
// is yielded once. Yields ErrNodeNotFound if a is not a node of the graph.
// Complexity: O(deg(a) log deg(a)) on first pull.
func (g *Graph) Neighbors(a address.NodeAddress, opts NeighborsOptions) iter.Seq2[Neighbor, error] {
	stamp := g.modCount

	return func(yield func(Neighbor, error) bool) {
		// 1) Validate inputs
		if err := address.Node.Validate(a); err != nil {
			yield(Neighbor{}, fmt.Errorf("core: Neighbors: %w", err))
			return
		}
		nodePrefix, err := prefixOrEmpty(address.Node, opts.NodePrefix)
		if err != nil {
			yield(Neighbor{}, fmt.Errorf("core: Neighbors: node prefix: %w", err))
			return
		}
		edgePrefix, err := prefixOrEmpty(address.Edge, opts.EdgePrefix)
		if err != nil {
			yield(Neighbor{}, fmt.Errorf("core: Neighbors: edge prefix: %w", err))
			return
		}
		if opts.Direction > Out {
			yield(Neighbor{}, fmt.Errorf("core: Neighbors: unknown direction %v", opts.Direction))
			return
		}
		if _, ok := g.nodes[a]; !ok {
			yield(Neighbor{}, fmt.Errorf("%w: %s", ErrNodeNotFound, a))
			return
		}
		// 2) Walk incident edges in address order
		inc := g.incidence[a]
		for _, ea := range g.incidentEdges(a) {
			if g.modCount != stamp {
				yield(Neighbor{}, ErrConcurrentModification)
				return
			}
			e := g.edges[ea]
			if !e.Address.HasPrefix(edgePrefix) || g.isDangling(e) {
				continue
			}
			_, isIn := inc.in[ea]
			_, isOut := inc.out[ea]
			var other address.NodeAddress
			switch {
			case isIn && opts.Direction != Out:
				other = e.Src
			case isOut && opts.Direction != In:
				other = e.Dst
			default:
				continue
			}
			if !other.HasPrefix(nodePrefix) {
				continue
			}
			if !yield(Neighbor{Node: g.nodes[other].clone(), Edge: e}, nil) {
				return
			}
		}
		if g.modCount != stamp {
			yield(Neighbor{}, ErrConcurrentModification)
		}
	}
}

// Collect drains seq into a slice, stopping at the first error.
func Collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	var out []T
	for v, err := range seq {
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}

	return out, nil
}

// prefixOrEmpty maps the unset prefix "" to the empty address and
// validates anything else.
func prefixOrEmpty[A ~string](m address.Module[A], p A) (A, error) {
	if p == "" {
		return m.Empty(), nil
	}
	if err := m.Validate(p); err != nil {
		return p, err
	}

	return p, nil
}
