// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for credrank/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep node/edge literals out of test bodies.

package core_test

import (
	"testing"

	"github.com/katalvlaran/credrank/address"
	"github.com/katalvlaran/credrank/core"
	"github.com/stretchr/testify/require"
)

// Common node names used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
)

func nodeAddr(parts ...string) address.NodeAddress { return address.Node.MustFromParts(parts...) }

func edgeAddr(parts ...string) address.EdgeAddress { return address.Edge.MustFromParts(parts...) }

func ts(v int64) *int64 { return &v }

// node returns a node addressed ["name"] with a matching description.
func node(name string) core.Node {
	return core.Node{Address: nodeAddr(name), Description: name}
}

// edge returns an edge addressed ["name"] from ["src"] to ["dst"].
func edge(name, src, dst string) core.Edge {
	return core.Edge{Address: edgeAddr(name), Src: nodeAddr(src), Dst: nodeAddr(dst)}
}

// mustGraph builds a graph from nodes and edges, failing the test on error.
func mustGraph(t *testing.T, nodes []core.Node, edges []core.Edge) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, n := range nodes {
		require.NoError(t, g.AddNode(n))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e))
	}
	require.NoError(t, g.CheckInvariants())

	return g
}

func collectNodes(t *testing.T, g *core.Graph, opts core.NodesOptions) []core.Node {
	t.Helper()
	out, err := core.Collect(g.Nodes(opts))
	require.NoError(t, err)

	return out
}

func collectEdges(t *testing.T, g *core.Graph, opts core.EdgesOptions) []core.Edge {
	t.Helper()
	out, err := core.Collect(g.Edges(opts))
	require.NoError(t, err)

	return out
}

func neighborEdges(t *testing.T, g *core.Graph, a address.NodeAddress, opts core.NeighborsOptions) []address.EdgeAddress {
	t.Helper()
	ns, err := core.Collect(g.Neighbors(a, opts))
	require.NoError(t, err)
	out := make([]address.EdgeAddress, len(ns))
	for i, n := range ns {
		out[i] = n.Edge.Address
	}

	return out
}

func nodeAddresses(nodes []core.Node) []address.NodeAddress {
	out := make([]address.NodeAddress, len(nodes))
	for i, n := range nodes {
		out[i] = n.Address
	}

	return out
}

func edgeAddresses(edges []core.Edge) []address.EdgeAddress {
	out := make([]address.EdgeAddress, len(edges))
	for i, e := range edges {
		out[i] = e.Address
	}

	return out
}
