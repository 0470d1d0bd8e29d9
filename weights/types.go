// SPDX-License-Identifier: MIT

package weights

import (
	"fmt"

	"github.com/katalvlaran/credrank/address"
)

// NodeType declares a family of nodes sharing an address prefix.
type NodeType struct {
	Name          string
	Prefix        address.NodeAddress
	DefaultWeight float64
	Description   string
}

// EdgeType declares a family of edges sharing an address prefix.
type EdgeType struct {
	ForwardName   string
	BackwardName  string
	Prefix        address.EdgeAddress
	DefaultWeight EdgeWeight
	Description   string
}

// FromTypesAndOverrides resolves declared types against user overrides.
// Each type prefix gets the override if one exists, else the type's default.
// The empty prefixes get 1 and DefaultEdgeWeight unless defined. Every other
// override entry is carried over unchanged.
func FromTypesAndOverrides(nodeTypes []NodeType, edgeTypes []EdgeType, overrides Weights) (Weights, error) {
	w := overrides.Copy()
	for _, nt := range nodeTypes {
		if err := address.Node.Validate(nt.Prefix); err != nil {
			return Weights{}, fmt.Errorf("weights: node type %q: %w", nt.Name, err)
		}
		if _, ok := w.NodeWeights[nt.Prefix]; !ok {
			w.NodeWeights[nt.Prefix] = nt.DefaultWeight
		}
	}
	for _, et := range edgeTypes {
		if err := address.Edge.Validate(et.Prefix); err != nil {
			return Weights{}, fmt.Errorf("weights: edge type %q: %w", et.ForwardName, err)
		}
		if _, ok := w.EdgeWeights[et.Prefix]; !ok {
			w.EdgeWeights[et.Prefix] = et.DefaultWeight
		}
	}
	w.withDefaults()
	if err := w.Validate(); err != nil {
		return Weights{}, err
	}

	return w, nil
}

// withDefaults installs the empty-prefix weights when absent.
func (w Weights) withDefaults() {
	if _, ok := w.NodeWeights[address.Node.Empty()]; !ok {
		w.NodeWeights[address.Node.Empty()] = 1
	}
	if _, ok := w.EdgeWeights[address.Edge.Empty()]; !ok {
		w.EdgeWeights[address.Edge.Empty()] = DefaultEdgeWeight
	}
}
