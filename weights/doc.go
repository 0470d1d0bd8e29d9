// SPDX-License-Identifier: MIT

// Package weights assigns weights to the nodes and edges of a core.Graph.
//
// Weights are keyed by address prefix. Plugins declare node and edge types
// with default weights (NodeType, EdgeType); users override them per prefix
// or per exact address; FromTypesAndOverrides resolves the two into one
// Weights value.
//
// Resolution rules:
//
//	node(a) = (weight at the longest strict prefix of a, or 1) × (weight at exactly a, or 1)
//	edge(e) = weight at the longest prefix of e.Address, or {1, 1}
//
// A WeightedGraph bundles a graph with its weights and the synthetic loop
// weight that the attribution kernel attaches to every node.
//
// Errors:
//
//	ErrInvalidWeight              - negative, NaN or infinite weight.
//	ErrInvalidSyntheticLoopWeight - loop weight not finite and positive.
//	ErrWeightConflict             - Merge without a resolver hit a disagreement.
//	ErrUnmatchedEdgeWeight        - strict mode: an edge prefix matches no edge.
//	ErrSyntheticLoopMismatch      - merged weighted graphs disagree on the loop weight.
//	ErrNilGraph                   - weighted graph built without a graph.
package weights
