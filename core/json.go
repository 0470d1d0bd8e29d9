// SPDX-License-Identifier: MIT
// File: json.go
// Role: Canonical JSON form of a Graph.
// Determinism:
//   - ToJSON output is a pure function of the graph's nodes and edges;
//     equal graphs serialize to identical bytes.
// AI-HINT (file):
//   - Addresses are stored once, as part arrays, in sorted tables; nodes and
//     edges refer to them by index.
//   - FromJSON accepts only canonical input, so FromJSON(ToJSON(g)) == g and
//     re-serialization is byte-identical.

package core

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/credrank/address"
)

// JSON is the serialized form of a Graph.
type JSON struct {
	SortedNodeAddresses [][]string `json:"sortedNodeAddresses"`
	SortedEdgeAddresses [][]string `json:"sortedEdgeAddresses"`
	Nodes               []NodeJSON `json:"nodes"`
	Edges               []EdgeJSON `json:"edges"`
}

// NodeJSON is a node whose address is an index into SortedNodeAddresses.
type NodeJSON struct {
	AddressIndex int    `json:"address_index"`
	TimestampMs  *int64 `json:"timestamp_ms"`
	Description  string `json:"description,omitempty"`
}

// EdgeJSON is an edge whose addresses are indices into the address tables.
type EdgeJSON struct {
	AddressIndex int   `json:"address_index"`
	SrcIndex     int   `json:"src_index"`
	DstIndex     int   `json:"dst_index"`
	TimestampMs  int64 `json:"timestamp_ms"`
}

// ToJSON returns the canonical serialized form of g. The node address table
// holds every node address and every edge endpoint, so dangling edges
// survive the round trip.
// Complexity: O((V + E) log(V + E)).
func (g *Graph) ToJSON() JSON {
	// The incidence index is keyed by exactly that set of addresses.
	nodeAddrs := sortedKeys(g.incidence)
	edgeAddrs := sortedKeys(g.edges)

	out := JSON{
		SortedNodeAddresses: make([][]string, len(nodeAddrs)),
		SortedEdgeAddresses: make([][]string, len(edgeAddrs)),
		Nodes:               make([]NodeJSON, 0, len(g.nodes)),
		Edges:               make([]EdgeJSON, len(edgeAddrs)),
	}
	index := make(map[address.NodeAddress]int, len(nodeAddrs))
	for i, a := range nodeAddrs {
		index[a] = i
		out.SortedNodeAddresses[i] = a.Parts()
		if n, ok := g.nodes[a]; ok {
			n = n.clone()
			out.Nodes = append(out.Nodes, NodeJSON{AddressIndex: i, TimestampMs: n.TimestampMs, Description: n.Description})
		}
	}
	for i, a := range edgeAddrs {
		e := g.edges[a]
		out.SortedEdgeAddresses[i] = a.Parts()
		out.Edges[i] = EdgeJSON{
			AddressIndex: i,
			SrcIndex:     index[e.Src],
			DstIndex:     index[e.Dst],
			TimestampMs:  e.TimestampMs,
		}
	}

	return out
}

// FromJSON rebuilds a graph from its canonical form. Input that ToJSON
// could not have produced fails with ErrNonCanonicalJSON.
// Complexity: O(V + E).
func FromJSON(j JSON) (*Graph, error) {
	// 1) Address tables: well-formed and strictly ascending
	nodeAddrs := make([]address.NodeAddress, len(j.SortedNodeAddresses))
	for i, parts := range j.SortedNodeAddresses {
		a, err := address.Node.FromParts(parts...)
		if err != nil {
			return nil, fmt.Errorf("%w: node address %d: %w", ErrNonCanonicalJSON, i, err)
		}
		if i > 0 && nodeAddrs[i-1] >= a {
			return nil, fmt.Errorf("%w: node addresses not strictly ascending at %d", ErrNonCanonicalJSON, i)
		}
		nodeAddrs[i] = a
	}
	edgeAddrs := make([]address.EdgeAddress, len(j.SortedEdgeAddresses))
	for i, parts := range j.SortedEdgeAddresses {
		a, err := address.Edge.FromParts(parts...)
		if err != nil {
			return nil, fmt.Errorf("%w: edge address %d: %w", ErrNonCanonicalJSON, i, err)
		}
		if i > 0 && edgeAddrs[i-1] >= a {
			return nil, fmt.Errorf("%w: edge addresses not strictly ascending at %d", ErrNonCanonicalJSON, i)
		}
		edgeAddrs[i] = a
	}

	// 2) Nodes: strictly increasing in-range indices
	g := NewGraph()
	prev := -1
	for i, nj := range j.Nodes {
		if nj.AddressIndex <= prev || nj.AddressIndex >= len(nodeAddrs) {
			return nil, fmt.Errorf("%w: node %d has address index %d", ErrNonCanonicalJSON, i, nj.AddressIndex)
		}
		prev = nj.AddressIndex
		n := Node{Address: nodeAddrs[nj.AddressIndex], TimestampMs: nj.TimestampMs, Description: nj.Description}
		if err := g.AddNode(n); err != nil {
			return nil, fmt.Errorf("core: FromJSON: %w", err)
		}
	}

	// 3) Edges: exactly one per address table entry, in order
	if len(j.Edges) != len(edgeAddrs) {
		return nil, fmt.Errorf("%w: %d edges for %d edge addresses", ErrNonCanonicalJSON, len(j.Edges), len(edgeAddrs))
	}
	for i, ej := range j.Edges {
		if ej.AddressIndex != i {
			return nil, fmt.Errorf("%w: edge %d has address index %d", ErrNonCanonicalJSON, i, ej.AddressIndex)
		}
		if ej.SrcIndex < 0 || ej.SrcIndex >= len(nodeAddrs) || ej.DstIndex < 0 || ej.DstIndex >= len(nodeAddrs) {
			return nil, fmt.Errorf("%w: edge %d endpoint index out of range", ErrNonCanonicalJSON, i)
		}
		e := Edge{
			Address:     edgeAddrs[i],
			Src:         nodeAddrs[ej.SrcIndex],
			Dst:         nodeAddrs[ej.DstIndex],
			TimestampMs: ej.TimestampMs,
		}
		if err := g.AddEdge(e); err != nil {
			return nil, fmt.Errorf("core: FromJSON: %w", err)
		}
	}

	// 4) No unused node address entries
	if len(g.incidence) != len(nodeAddrs) {
		return nil, fmt.Errorf("%w: %d node addresses listed, %d referenced",
			ErrNonCanonicalJSON, len(nodeAddrs), len(g.incidence))
	}

	return g, nil
}

// MarshalJSON implements json.Marshaler.
func (g *Graph) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.ToJSON())
}

// UnmarshalJSON implements json.Unmarshaler. g is replaced only on success.
func (g *Graph) UnmarshalJSON(data []byte) error {
	var j JSON
	if err := json.Unmarshal(data, &j); err != nil {
		return fmt.Errorf("core: UnmarshalJSON: %w", err)
	}
	parsed, err := FromJSON(j)
	if err != nil {
		return err
	}
	*g = *parsed

	return nil
}
