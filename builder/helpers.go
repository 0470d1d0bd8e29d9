// SPDX-License-Identifier: MIT
// File: helpers.go
// Role: address, timestamp and insertion helpers shared by constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/credrank/address"
	"github.com/katalvlaran/credrank/core"
)

// centerID is the fixed ID part of the Star hub.
const centerID = "Center"

// nodeAddress returns nodePrefix + [id].
func (cfg builderConfig) nodeAddress(id string) (address.NodeAddress, error) {
	return address.Node.FromParts(append(cfg.nodePrefix, id)...)
}

// nodeAt returns node i with its address and, when timed, its timestamp.
func (cfg builderConfig) nodeAt(i int) (core.Node, error) {
	a, err := cfg.nodeAddress(cfg.idFn(i))
	if err != nil {
		return core.Node{}, err
	}
	n := core.Node{Address: a, Description: cfg.idFn(i)}
	if cfg.timed {
		ts := cfg.timeOf(i)
		n.TimestampMs = &ts
	}

	return n, nil
}

func (cfg builderConfig) timeOf(i int) int64 {
	return cfg.startMs + int64(i)*cfg.stepMs
}

// addNodes inserts nodes 0..n-1 and returns their addresses in index order.
// Complexity: O(n).
func addNodes(g *core.Graph, cfg builderConfig, method string, n int) ([]address.NodeAddress, error) {
	out := make([]address.NodeAddress, n)
	for i := 0; i < n; i++ {
		node, err := cfg.nodeAt(i)
		if err != nil {
			return nil, fmt.Errorf("%s: node %d: %w", method, i, err)
		}
		if err = g.AddNode(node); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%s): %w: %w", method, node.Address, ErrConstructFailed, err)
		}
		out[i] = node.Address
	}

	return out, nil
}

// addEdge inserts the edge edgePrefix + [kind, id(i), id(j)] from src to dst.
// i and j are the endpoint indices used for the edge timestamp.
func addEdge(g *core.Graph, cfg builderConfig, method, kind string, src, dst address.NodeAddress, i, j int) error {
	ea, err := address.Edge.FromParts(append(cfg.edgePrefix, kind, cfg.idFn(i), cfg.idFn(j))...)
	if err != nil {
		return fmt.Errorf("%s: edge %d→%d: %w", method, i, j, err)
	}
	e := core.Edge{Address: ea, Src: src, Dst: dst}
	if cfg.timed {
		e.TimestampMs = cfg.timeOf(max(i, j))
	}
	if err = g.AddEdge(e); err != nil {
		return fmt.Errorf("%s: AddEdge(%s): %w: %w", method, ea, ErrConstructFailed, err)
	}

	return nil
}
