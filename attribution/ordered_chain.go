// SPDX-License-Identifier: MIT

package attribution

import (
	"fmt"
	"math"

	"github.com/katalvlaran/credrank/address"
	"github.com/katalvlaran/credrank/markov"
)

// OrderedSparseMarkovChain is a markov.Chain whose state i is NodeOrder[i].
// Treat it as immutable; the transforms return new chains.
type OrderedSparseMarkovChain struct {
	NodeOrder []address.NodeAddress
	Chain     markov.Chain
}

// CreateOrderedSparseMarkovChain linearizes ntc using its node order. Row i
// lists the connections of ntc.Nodes[i] as (source index, weight), in
// connection order.
// Complexity: O(V + C) for C connections.
func CreateOrderedSparseMarkovChain(ntc NodeToConnections) (OrderedSparseMarkovChain, error) {
	n := len(ntc.Nodes)
	if uint64(n) > math.MaxUint32 {
		return OrderedSparseMarkovChain{}, fmt.Errorf("%w: %d", ErrTooManyNodes, n)
	}
	if len(ntc.Connections) != n {
		return OrderedSparseMarkovChain{}, fmt.Errorf("%w: %d connection lists for %d nodes", ErrDimensionMismatch, len(ntc.Connections), n)
	}
	idx := ntc.index()
	chain := make(markov.Chain, n)
	for i, target := range ntc.Nodes {
		conns := ntc.Connections[i]
		row := markov.Row{Neighbor: make([]uint32, len(conns)), Weight: make([]float64, len(conns))}
		for j, wc := range conns {
			src := AdjacencySource(target, wc.Connection)
			k, ok := idx[src]
			if !ok {
				return OrderedSparseMarkovChain{}, fmt.Errorf("%w: %s (source of a connection into %s)", ErrUnknownNode, src, target)
			}
			row.Neighbor[j] = uint32(k)
			row.Weight[j] = wc.Weight
		}
		chain[i] = row
	}

	return OrderedSparseMarkovChain{
		NodeOrder: append([]address.NodeAddress(nil), ntc.Nodes...),
		Chain:     chain,
	}, nil
}

// NormalizeNeighbors returns a copy whose rows are sorted by neighbor with
// duplicates combined.
func (c OrderedSparseMarkovChain) NormalizeNeighbors() OrderedSparseMarkovChain {
	return OrderedSparseMarkovChain{
		NodeOrder: append([]address.NodeAddress(nil), c.NodeOrder...),
		Chain:     markov.NormalizeNeighbors(c.Chain),
	}
}

// Permute returns the chain re-indexed so that its states follow order,
// which must be a permutation of c.NodeOrder.
// Complexity: O(V + nnz).
func (c OrderedSparseMarkovChain) Permute(order []address.NodeAddress) (OrderedSparseMarkovChain, error) {
	if len(order) != len(c.NodeOrder) {
		return OrderedSparseMarkovChain{}, fmt.Errorf("%w: %d nodes for a chain of %d", ErrInvalidOrder, len(order), len(c.NodeOrder))
	}
	newIdx := make(map[address.NodeAddress]int, len(order))
	for i, a := range order {
		if _, dup := newIdx[a]; dup {
			return OrderedSparseMarkovChain{}, fmt.Errorf("%w: %s listed twice", ErrInvalidOrder, a)
		}
		newIdx[a] = i
	}
	newIndexOf := make([]int, len(c.NodeOrder))
	for i, a := range c.NodeOrder {
		j, ok := newIdx[a]
		if !ok {
			return OrderedSparseMarkovChain{}, fmt.Errorf("%w: %s missing", ErrInvalidOrder, a)
		}
		newIndexOf[i] = j
	}
	chain, err := markov.Permute(c.Chain, newIndexOf)
	if err != nil {
		return OrderedSparseMarkovChain{}, err
	}

	return OrderedSparseMarkovChain{
		NodeOrder: append([]address.NodeAddress(nil), order...),
		Chain:     chain,
	}, nil
}
