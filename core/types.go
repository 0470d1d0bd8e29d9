// SPDX-License-Identifier: MIT
// File: types.go
// Role: Node, Edge, Graph, query option structs, sentinel errors and NewGraph.

package core

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/credrank/address"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeConflict indicates AddNode with an address already bound to a different node.
	ErrNodeConflict = errors.New("core: conflict between new node and existing node")

	// ErrEdgeConflict indicates AddEdge with an address already bound to a different edge.
	ErrEdgeConflict = errors.New("core: conflict between new edge and existing edge")

	// ErrNodeReferenced indicates RemoveNode of a node still referenced by a non-dangling edge.
	ErrNodeReferenced = errors.New("core: node is referenced by a non-dangling edge")

	// ErrNodeNotFound indicates a neighborhood query for a node not in the graph.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrChainedContraction indicates a contraction whose replacement is the old node of another contraction.
	ErrChainedContraction = errors.New("core: chained node contraction")

	// ErrNonCanonicalJSON indicates a serialized graph that is not in canonical form.
	ErrNonCanonicalJSON = errors.New("core: non-canonical graph JSON")

	// ErrInvariantViolation indicates corrupted internal indices.
	ErrInvariantViolation = errors.New("core: invariant violation")

	// ErrConcurrentModification indicates the graph was mutated while an iterator was live.
	ErrConcurrentModification = errors.New("core: concurrent modification")

	// ErrModificationOverflow indicates the modification counter cannot be incremented further.
	ErrModificationOverflow = errors.New("core: modification count overflow")
)

// maxModificationCount bounds the modification counter. It is a variable so
// internal tests can exercise the overflow path.
var maxModificationCount int64 = math.MaxInt64

// Node is an entity of the graph.
//
// TimestampMs is the creation time in epoch milliseconds, or nil for
// timeless nodes (users, repositories, ...), which never appear in an
// interval partition.
type Node struct {
	Address     address.NodeAddress
	TimestampMs *int64
	Description string
}

// Edge is a directed relationship between two node addresses. The endpoints
// need not be present in the graph; such an edge is dangling.
type Edge struct {
	Address     address.EdgeAddress
	Src         address.NodeAddress
	Dst         address.NodeAddress
	TimestampMs int64
}

// Equal reports whether n and o carry the same address, description and timestamp.
func (n Node) Equal(o Node) bool {
	if n.Address != o.Address || n.Description != o.Description {
		return false
	}
	if n.TimestampMs == nil || o.TimestampMs == nil {
		return n.TimestampMs == nil && o.TimestampMs == nil
	}

	return *n.TimestampMs == *o.TimestampMs
}

// clone detaches the timestamp pointer so callers cannot mutate stored nodes.
func (n Node) clone() Node {
	if n.TimestampMs != nil {
		ts := *n.TimestampMs
		n.TimestampMs = &ts
	}

	return n
}

// NodeToString renders n for diagnostics.
func NodeToString(n Node) string {
	ts := "null"
	if n.TimestampMs != nil {
		ts = strconv.FormatInt(*n.TimestampMs, 10)
	}

	return fmt.Sprintf("{address: %s, timestampMs: %s, description: %q}", n.Address, ts, n.Description)
}

// EdgeToString renders e for diagnostics.
func EdgeToString(e Edge) string {
	return fmt.Sprintf("{address: %s, src: %s, dst: %s, timestampMs: %d}", e.Address, e.Src, e.Dst, e.TimestampMs)
}

// Direction selects which incident edges a neighborhood query follows.
type Direction uint8

const (
	// Any follows edges in both directions; a loop is reported once.
	Any Direction = iota
	// In follows edges whose Dst is the queried node.
	In
	// Out follows edges whose Src is the queried node.
	Out
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Any:
		return "Any"
	case In:
		return "In"
	case Out:
		return "Out"
	default:
		return "Direction(" + strconv.Itoa(int(d)) + ")"
	}
}

// Neighbor is a node adjacent to the queried node together with the edge
// connecting them.
type Neighbor struct {
	Node Node
	Edge Edge
}

// NodesOptions filters Nodes. The zero value matches every node.
type NodesOptions struct {
	// Prefix restricts results to addresses with this prefix. "" means no filter.
	Prefix address.NodeAddress
}

// EdgesOptions filters Edges. The zero value matches every non-dangling edge.
type EdgesOptions struct {
	// ShowDangling includes edges with a missing endpoint.
	ShowDangling bool
	// AddressPrefix, SrcPrefix and DstPrefix restrict results; "" means no filter.
	AddressPrefix address.EdgeAddress
	SrcPrefix     address.NodeAddress
	DstPrefix     address.NodeAddress
}

// NeighborsOptions filters Neighbors. The zero value follows every
// non-dangling incident edge in both directions.
type NeighborsOptions struct {
	Direction  Direction
	NodePrefix address.NodeAddress
	EdgePrefix address.EdgeAddress
}

// NodeContraction merges the Old nodes into Replacement.
type NodeContraction struct {
	Old         []address.NodeAddress
	Replacement Node
}

// incidence holds the edges entering and leaving one address.
type incidence struct {
	in  map[address.EdgeAddress]struct{}
	out map[address.EdgeAddress]struct{}
}

// Graph is a directed multigraph with typed, hierarchical addresses and
// dangling-edge support.
//
// Indices:
//
//	nodes[a]         node stored at a
//	edges[a]         edge stored at a
//	incidence[a].in  edges with Dst == a
//	incidence[a].out edges with Src == a
//
// The incidence map has exactly one key per node address and per edge
// endpoint, present or not.
//
// A Graph is not safe for concurrent mutation. Read-only use from several
// goroutines is fine once construction is complete.
type Graph struct {
	nodes     map[address.NodeAddress]Node
	edges     map[address.EdgeAddress]Edge
	incidence map[address.NodeAddress]*incidence

	modCount int64
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[address.NodeAddress]Node),
		edges:     make(map[address.EdgeAddress]Edge),
		incidence: make(map[address.NodeAddress]*incidence),
	}
}

// ModificationCount returns the number of attempted mutations so far.
func (g *Graph) ModificationCount() int64 { return g.modCount }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges, dangling ones included.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// markModification bumps the counter ahead of any mutation attempt.
func (g *Graph) markModification() error {
	if g.modCount >= maxModificationCount {
		return ErrModificationOverflow
	}
	g.modCount++

	return nil
}
