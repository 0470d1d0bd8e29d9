// SPDX-License-Identifier: MIT
// File: connections.go
// Role: Turn a weighted graph into per-node incoming transition lists.
//
// For every node v with total out-weight
//
//	Z(v) = ε + Σ forwards(e) over edges leaving v + Σ backwards(e) over edges entering v
//
// an edge e: u → v contributes forwards(e)/Z(u) to the row of v (InEdge) and
// backwards(e)/Z(v) to the row of u (OutEdge); every node also receives
// ε/Z(v) from itself (SyntheticLoop). A loop edge contributes both ways.
// Determinism:
//   - Nodes in ascending address order; within a row, the synthetic loop
//     first, then edges in ascending address order.

package attribution

import (
	"fmt"
	"math"

	"github.com/katalvlaran/credrank/address"
	"github.com/katalvlaran/credrank/core"
	"github.com/katalvlaran/credrank/weights"
)

// AdjacencyType says how a connection reaches its target.
type AdjacencyType uint8

const (
	// SyntheticLoop is the ε self-transition.
	SyntheticLoop AdjacencyType = iota
	// InEdge is an edge whose Dst is the target; the walk moved forwards.
	InEdge
	// OutEdge is an edge whose Src is the target; the walk moved backwards.
	OutEdge
)

// String returns a readable name.
func (t AdjacencyType) String() string {
	switch t {
	case SyntheticLoop:
		return "SYNTHETIC_LOOP"
	case InEdge:
		return "IN_EDGE"
	case OutEdge:
		return "OUT_EDGE"
	default:
		return fmt.Sprintf("AdjacencyType(%d)", uint8(t))
	}
}

// Connection is the provenance of one transition into a node. Edge is the
// zero value for SyntheticLoop.
type Connection struct {
	Type AdjacencyType
	Edge core.Edge
}

// WeightedConnection is a connection and its transition probability.
type WeightedConnection struct {
	Connection Connection
	Weight     float64
}

// NodeToConnections lists, for each node in ascending address order, the
// connections into it. Connections[i] belongs to Nodes[i].
type NodeToConnections struct {
	Nodes       []address.NodeAddress
	Connections [][]WeightedConnection
}

// index maps every node to its position.
func (ntc NodeToConnections) index() map[address.NodeAddress]int {
	idx := make(map[address.NodeAddress]int, len(ntc.Nodes))
	for i, a := range ntc.Nodes {
		idx[a] = i
	}

	return idx
}

// AdjacencySource returns the node the walk comes from when it reaches
// target through c.
func AdjacencySource(target address.NodeAddress, c Connection) address.NodeAddress {
	switch c.Type {
	case InEdge:
		return c.Edge.Src
	case OutEdge:
		return c.Edge.Dst
	default:
		return target
	}
}

// CreateConnections builds the connections of every node of g. Dangling
// edges are ignored. A loop weight of 0 is accepted, but then every node
// must have some outgoing weight (ErrZeroOutWeight).
// Complexity: O(V log V + E log E).
func CreateConnections(g *core.Graph, edgeWeight weights.EdgeEvaluator, loop float64) (NodeToConnections, error) {
	if loop < 0 || math.IsNaN(loop) || math.IsInf(loop, 0) {
		return NodeToConnections{}, fmt.Errorf("%w: %v", ErrInvalidLoopWeight, loop)
	}
	nodes, err := core.Collect(g.Nodes(core.NodesOptions{}))
	if err != nil {
		return NodeToConnections{}, err
	}
	edges, err := core.Collect(g.Edges(core.EdgesOptions{}))
	if err != nil {
		return NodeToConnections{}, err
	}

	// 1) Seed every row with the synthetic loop
	ntc := NodeToConnections{
		Nodes:       make([]address.NodeAddress, len(nodes)),
		Connections: make([][]WeightedConnection, len(nodes)),
	}
	totalOut := make([]float64, len(nodes))
	for i, n := range nodes {
		ntc.Nodes[i] = n.Address
		ntc.Connections[i] = []WeightedConnection{{Connection: Connection{Type: SyntheticLoop}, Weight: loop}}
		totalOut[i] = loop
	}
	idx := ntc.index()

	// 2) Raw edge weights, accumulating each source's budget
	for _, e := range edges {
		w := edgeWeight(e)
		src, dst := idx[e.Src], idx[e.Dst]
		ntc.Connections[dst] = append(ntc.Connections[dst], WeightedConnection{Connection: Connection{Type: InEdge, Edge: e}, Weight: w.Forwards})
		totalOut[src] += w.Forwards
		ntc.Connections[src] = append(ntc.Connections[src], WeightedConnection{Connection: Connection{Type: OutEdge, Edge: e}, Weight: w.Backwards})
		totalOut[dst] += w.Backwards
	}

	// 3) Divide by the source's budget
	for i, z := range totalOut {
		if !(z > 0) {
			return NodeToConnections{}, fmt.Errorf("%w: %s", ErrZeroOutWeight, ntc.Nodes[i])
		}
	}
	for i, target := range ntc.Nodes {
		for j := range ntc.Connections[i] {
			wc := &ntc.Connections[i][j]
			wc.Weight /= totalOut[idx[AdjacencySource(target, wc.Connection)]]
		}
	}

	return ntc, nil
}
