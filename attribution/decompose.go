// SPDX-License-Identifier: MIT

package attribution

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/credrank/address"
)

// ScoredConnection is one connection into a node together with the share of
// the node's score it carries.
type ScoredConnection struct {
	Connection Connection
	Source     address.NodeAddress
	// SourceScore is the score of Source.
	SourceScore float64
	// ConnectionScore is transition weight × SourceScore.
	ConnectionScore float64
}

// NodeDecomposition explains the score of one node.
type NodeDecomposition struct {
	Node              address.NodeAddress
	Score             float64
	ScoredConnections []ScoredConnection
}

// Decomposition lists node decompositions in the node order of the
// connections it was built from.
type Decomposition []NodeDecomposition

// Decompose attributes every node's score to the connections into it.
// Connections are sorted by descending ConnectionScore; ties keep connection
// order and zero-score connections are omitted. Every node of ntc must be
// scored by pr.
// Complexity: O(C log d) for C connections and maximum in-degree d.
func Decompose(pr NodeDistribution, ntc NodeToConnections) (Decomposition, error) {
	out := make(Decomposition, len(ntc.Nodes))
	for i, target := range ntc.Nodes {
		score, ok := pr[target]
		if !ok {
			return nil, fmt.Errorf("%w: %s has no score", ErrUnknownNode, target)
		}
		scored := make([]ScoredConnection, 0, len(ntc.Connections[i]))
		for _, wc := range ntc.Connections[i] {
			src := AdjacencySource(target, wc.Connection)
			srcScore, ok := pr[src]
			if !ok {
				return nil, fmt.Errorf("%w: %s has no score", ErrUnknownNode, src)
			}
			cs := wc.Weight * srcScore
			if cs == 0 {
				continue
			}
			scored = append(scored, ScoredConnection{
				Connection:      wc.Connection,
				Source:          src,
				SourceScore:     srcScore,
				ConnectionScore: cs,
			})
		}
		sort.SliceStable(scored, func(a, b int) bool { return scored[a].ConnectionScore > scored[b].ConnectionScore })
		out[i] = NodeDecomposition{Node: target, Score: score, ScoredConnections: scored}
	}

	return out, nil
}

// Find returns the decomposition of a, if present. d must be in ascending
// node order, as built from CreateConnections.
// Complexity: O(log V).
func (d Decomposition) Find(a address.NodeAddress) (NodeDecomposition, bool) {
	i := sort.Search(len(d), func(i int) bool { return d[i].Node >= a })
	if i < len(d) && d[i].Node == a {
		return d[i], true
	}

	return NodeDecomposition{}, false
}
