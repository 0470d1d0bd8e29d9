// SPDX-License-Identifier: MIT
// File: evaluators.go
// Role: Resolve per-node and per-edge weights from prefix weights.

package weights

import (
	"fmt"

	"github.com/katalvlaran/credrank/address"
	"github.com/katalvlaran/credrank/core"
	"github.com/katalvlaran/credrank/trie"
)

// NodeEvaluator returns the weight of a node address.
type NodeEvaluator func(address.NodeAddress) float64

// EdgeEvaluator returns the weight pair of an edge.
type EdgeEvaluator func(core.Edge) EdgeWeight

// NodeWeightEvaluator returns an evaluator computing typeWeight(a) × manual(a):
//
//	typeWeight(a) = weight at the longest strict prefix of a, or 1
//	manual(a)     = weight stored at exactly a, or 1
//
// The most specific type wins, so an override of ["x"] does not reach a node
// under ["x","a"] when ["x","a"] has its own weight.
// Complexity: O(depth) per call.
func NodeWeightEvaluator(w Weights) (NodeEvaluator, error) {
	t := trie.NewNodeTrie[float64]()
	for a, v := range w.NodeWeights {
		if err := t.Add(a, v); err != nil {
			return nil, fmt.Errorf("weights: NodeWeightEvaluator: %w", err)
		}
	}

	return func(a address.NodeAddress) float64 {
		along := t.Get(a)
		manual := 1.0
		if v, ok := w.NodeWeights[a]; ok {
			manual = v
			// The exact match is always the deepest value on the path.
			along = along[:len(along)-1]
		}
		typeWeight := 1.0
		if len(along) > 0 {
			typeWeight = along[len(along)-1]
		}

		return typeWeight * manual
	}, nil
}

// EdgeWeightEvaluator returns an evaluator yielding the weight at the
// longest prefix of the edge address, or DefaultEdgeWeight.
// Complexity: O(depth) per call.
func EdgeWeightEvaluator(w Weights) (EdgeEvaluator, error) {
	t := trie.NewEdgeTrie[EdgeWeight]()
	for a, v := range w.EdgeWeights {
		if err := t.Add(a, v); err != nil {
			return nil, fmt.Errorf("weights: EdgeWeightEvaluator: %w", err)
		}
	}

	return func(e core.Edge) EdgeWeight {
		if v, ok := t.GetLast(e.Address); ok {
			return v
		}

		return DefaultEdgeWeight
	}, nil
}

// TotalOutWeight returns the out-budget of node a: loop plus the forward
// weight of every non-dangling edge leaving a and the backward weight of
// every non-dangling edge entering a. A loop edge contributes both.
// Complexity: O(deg(a) log deg(a)).
func TotalOutWeight(g *core.Graph, eval EdgeEvaluator, loop float64, a address.NodeAddress) (float64, error) {
	total := loop
	for n, err := range g.Neighbors(a, core.NeighborsOptions{Direction: core.Out}) {
		if err != nil {
			return 0, err
		}
		total += eval(n.Edge).Forwards
	}
	for n, err := range g.Neighbors(a, core.NeighborsOptions{Direction: core.In}) {
		if err != nil {
			return 0, err
		}
		total += eval(n.Edge).Backwards
	}

	return total, nil
}
