// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/katalvlaran/credrank/address"
	"github.com/katalvlaran/credrank/core"
	"github.com/stretchr/testify/require"
)

func TestAddNodeIdempotentAndConflict(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(node(NodeA)))
	require.NoError(t, g.AddNode(node(NodeA)), "identical re-add is a no-op")

	changed := node(NodeA)
	changed.Description = "other"
	require.ErrorIs(t, g.AddNode(changed), core.ErrNodeConflict)

	timed := node(NodeA)
	timed.TimestampMs = ts(1)
	require.ErrorIs(t, g.AddNode(timed), core.ErrNodeConflict)

	require.Equal(t, 1, g.NodeCount())
	require.EqualValues(t, 4, g.ModificationCount(), "every attempt counts")
	require.NoError(t, g.CheckInvariants())
}

func TestMutatorsRejectWrongAddressKind(t *testing.T) {
	g := core.NewGraph()
	err := g.AddNode(core.Node{Address: address.NodeAddress(edgeAddr("x"))})
	require.ErrorIs(t, err, address.ErrWrongKind)
	require.Contains(t, err.Error(), "expected NodeAddress, got EdgeAddress")

	err = g.AddEdge(core.Edge{Address: address.EdgeAddress(nodeAddr("e")), Src: nodeAddr(NodeA), Dst: nodeAddr(NodeB)})
	require.ErrorIs(t, err, address.ErrWrongKind)

	err = g.AddEdge(core.Edge{Address: edgeAddr("e"), Src: address.NodeAddress(edgeAddr(NodeA)), Dst: nodeAddr(NodeB)})
	require.ErrorIs(t, err, address.ErrWrongKind)

	require.ErrorIs(t, g.RemoveNode("garbage"), address.ErrInvalidAddress)
	require.ErrorIs(t, g.RemoveEdge(address.EdgeAddress(nodeAddr("e"))), address.ErrWrongKind)
	require.Zero(t, g.NodeCount())
	require.Zero(t, g.EdgeCount())
	require.EqualValues(t, 5, g.ModificationCount())
}

func TestPointLookupsPanicOnWrongKind(t *testing.T) {
	g := core.NewGraph()
	require.Panics(t, func() { g.HasNode(address.NodeAddress(edgeAddr(NodeA))) })
	require.Panics(t, func() { g.Node("") })
	require.Panics(t, func() { g.HasEdge(address.EdgeAddress(nodeAddr("e"))) })
	require.Panics(t, func() { g.Edge("") })
	require.Panics(t, func() { g.IsDanglingEdge(address.EdgeAddress(nodeAddr("e"))) })
}

func TestNodeReturnsDetachedCopy(t *testing.T) {
	g := core.NewGraph()
	n := node(NodeA)
	n.TimestampMs = ts(5)
	require.NoError(t, g.AddNode(n))
	*n.TimestampMs = 6

	got, ok := g.Node(nodeAddr(NodeA))
	require.True(t, ok)
	require.EqualValues(t, 5, *got.TimestampMs)
	*got.TimestampMs = 7

	again, _ := g.Node(nodeAddr(NodeA))
	require.EqualValues(t, 5, *again.TimestampMs)
}

func TestAddEdgeIdempotentAndConflict(t *testing.T) {
	g := core.NewGraph()
	e := edge("e", NodeA, NodeB)
	require.NoError(t, g.AddEdge(e))
	require.NoError(t, g.AddEdge(e))

	moved := e
	moved.Dst = nodeAddr(NodeC)
	require.ErrorIs(t, g.AddEdge(moved), core.ErrEdgeConflict)

	stamped := e
	stamped.TimestampMs = 1
	require.ErrorIs(t, g.AddEdge(stamped), core.ErrEdgeConflict)

	got, ok := g.Edge(e.Address)
	require.True(t, ok)
	require.Equal(t, e, got)
	require.NoError(t, g.CheckInvariants())
}

func TestRemoveNodeReferencedByLiveEdge(t *testing.T) {
	g := mustGraph(t,
		[]core.Node{node(NodeA), node(NodeB)},
		[]core.Edge{edge("e", NodeA, NodeB)},
	)
	require.ErrorIs(t, g.RemoveNode(nodeAddr(NodeA)), core.ErrNodeReferenced)
	require.True(t, g.HasNode(nodeAddr(NodeA)))

	require.NoError(t, g.RemoveEdge(edgeAddr("e")))
	require.NoError(t, g.RemoveNode(nodeAddr(NodeA)))
	require.False(t, g.HasNode(nodeAddr(NodeA)))
	require.NoError(t, g.RemoveNode(nodeAddr(NodeA)), "absent node is a no-op")
	require.NoError(t, g.RemoveEdge(edgeAddr("e")), "absent edge is a no-op")
	require.NoError(t, g.CheckInvariants())
}

func TestRemoveNodeKeepsDanglingEdges(t *testing.T) {
	g := mustGraph(t,
		[]core.Node{node(NodeA)},
		[]core.Edge{edge("e", NodeA, NodeC)},
	)
	dangling, ok := g.IsDanglingEdge(edgeAddr("e"))
	require.True(t, ok)
	require.True(t, dangling)

	require.NoError(t, g.RemoveNode(nodeAddr(NodeA)))
	require.True(t, g.HasEdge(edgeAddr("e")))
	require.NoError(t, g.CheckInvariants())

	// Both endpoints still appear in the address table.
	j := g.ToJSON()
	require.Equal(t, [][]string{{NodeA}, {NodeC}}, j.SortedNodeAddresses)
	require.Empty(t, j.Nodes)

	// Dropping the edge prunes the unreferenced addresses.
	require.NoError(t, g.RemoveEdge(edgeAddr("e")))
	require.Empty(t, g.ToJSON().SortedNodeAddresses)
	require.NoError(t, g.CheckInvariants())
}

func TestIsDanglingEdgeUnknown(t *testing.T) {
	g := core.NewGraph()
	dangling, ok := g.IsDanglingEdge(edgeAddr("nope"))
	require.False(t, ok)
	require.False(t, dangling)
}

func TestNodesOrderAndPrefix(t *testing.T) {
	g := core.NewGraph()
	for _, parts := range [][]string{{"b"}, {"a", "x"}, {"a"}, {"c"}, {}} {
		require.NoError(t, g.AddNode(core.Node{Address: nodeAddr(parts...)}))
	}

	all := collectNodes(t, g, core.NodesOptions{})
	require.Equal(t, []address.NodeAddress{
		nodeAddr(), nodeAddr("a"), nodeAddr("a", "x"), nodeAddr("b"), nodeAddr("c"),
	}, nodeAddresses(all))

	sub := collectNodes(t, g, core.NodesOptions{Prefix: nodeAddr("a")})
	require.Equal(t, []address.NodeAddress{nodeAddr("a"), nodeAddr("a", "x")}, nodeAddresses(sub))

	_, err := core.Collect(g.Nodes(core.NodesOptions{Prefix: address.NodeAddress(edgeAddr())}))
	require.ErrorIs(t, err, address.ErrWrongKind)
}

func TestEdgesFiltering(t *testing.T) {
	g := mustGraph(t,
		[]core.Node{node(NodeA), node(NodeB), node(NodeC)},
		[]core.Edge{
			edge("y", NodeB, NodeC),
			edge("x", NodeA, NodeB),
			edge("z", NodeA, NodeD), // dangling
			{Address: edgeAddr("x", "1"), Src: nodeAddr(NodeC), Dst: nodeAddr(NodeA)},
		},
	)

	live := collectEdges(t, g, core.EdgesOptions{})
	require.Equal(t, []address.EdgeAddress{edgeAddr("x"), edgeAddr("x", "1"), edgeAddr("y")}, edgeAddresses(live))

	all := collectEdges(t, g, core.EdgesOptions{ShowDangling: true})
	require.Equal(t, []address.EdgeAddress{edgeAddr("x"), edgeAddr("x", "1"), edgeAddr("y"), edgeAddr("z")}, edgeAddresses(all))

	byAddr := collectEdges(t, g, core.EdgesOptions{AddressPrefix: edgeAddr("x")})
	require.Equal(t, []address.EdgeAddress{edgeAddr("x"), edgeAddr("x", "1")}, edgeAddresses(byAddr))

	bySrc := collectEdges(t, g, core.EdgesOptions{ShowDangling: true, SrcPrefix: nodeAddr(NodeA)})
	require.Equal(t, []address.EdgeAddress{edgeAddr("x"), edgeAddr("z")}, edgeAddresses(bySrc))

	byDst := collectEdges(t, g, core.EdgesOptions{DstPrefix: nodeAddr(NodeB)})
	require.Equal(t, []address.EdgeAddress{edgeAddr("x")}, edgeAddresses(byDst))

	_, err := core.Collect(g.Edges(core.EdgesOptions{SrcPrefix: address.NodeAddress(edgeAddr())}))
	require.ErrorIs(t, err, address.ErrWrongKind)
}

func TestIteratorFailsOnConcurrentModification(t *testing.T) {
	g := mustGraph(t, []core.Node{node(NodeA), node(NodeB)}, nil)

	// Mutation between creation and the first pull.
	seq := g.Nodes(core.NodesOptions{})
	require.NoError(t, g.AddNode(node(NodeC)))
	_, err := core.Collect(seq)
	require.ErrorIs(t, err, core.ErrConcurrentModification)

	// Mutation mid-iteration, including an identical (no-op) re-add.
	var (
		seen int
		errs []error
	)
	for _, err := range g.Nodes(core.NodesOptions{}) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		seen++
		require.NoError(t, g.AddNode(node(NodeA)))
	}
	require.Equal(t, 1, seen)
	require.Len(t, errs, 1)
	require.ErrorIs(t, errs[0], core.ErrConcurrentModification)
}

func TestIteratorDetectsMutationAfterLastElement(t *testing.T) {
	g := mustGraph(t, nil, []core.Edge{edge("e", NodeA, NodeB)})
	var errs []error
	for _, err := range g.Edges(core.EdgesOptions{ShowDangling: true}) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		require.NoError(t, g.RemoveEdge(edgeAddr("nope")))
	}
	require.Len(t, errs, 1)
	require.ErrorIs(t, errs[0], core.ErrConcurrentModification)
}

func TestNeighbors(t *testing.T) {
	g := mustGraph(t,
		[]core.Node{node(NodeA), node(NodeB), node(NodeC)},
		[]core.Edge{
			edge("e1", NodeA, NodeB),
			edge("e2", NodeC, NodeA),
			edge("l", NodeA, NodeA),
			edge("d", NodeA, NodeD), // dangling
		},
	)
	a := nodeAddr(NodeA)

	require.Equal(t, []address.EdgeAddress{edgeAddr("e1"), edgeAddr("e2"), edgeAddr("l")},
		neighborEdges(t, g, a, core.NeighborsOptions{}))
	require.Equal(t, []address.EdgeAddress{edgeAddr("e2"), edgeAddr("l")},
		neighborEdges(t, g, a, core.NeighborsOptions{Direction: core.In}))
	require.Equal(t, []address.EdgeAddress{edgeAddr("e1"), edgeAddr("l")},
		neighborEdges(t, g, a, core.NeighborsOptions{Direction: core.Out}))
	require.Equal(t, []address.EdgeAddress{edgeAddr("e1")},
		neighborEdges(t, g, a, core.NeighborsOptions{NodePrefix: nodeAddr(NodeB)}))
	require.Equal(t, []address.EdgeAddress{edgeAddr("e2")},
		neighborEdges(t, g, a, core.NeighborsOptions{EdgePrefix: edgeAddr("e2")}))

	ns, err := core.Collect(g.Neighbors(a, core.NeighborsOptions{Direction: core.In}))
	require.NoError(t, err)
	require.Equal(t, nodeAddr(NodeC), ns[0].Node.Address)
	require.Equal(t, a, ns[1].Node.Address, "loop neighbor is the node itself")

	_, err = core.Collect(g.Neighbors(nodeAddr(NodeD), core.NeighborsOptions{}))
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestEveryEdgeIsOneOutAndOneInNeighbor(t *testing.T) {
	g := mustGraph(t,
		[]core.Node{node(NodeA), node(NodeB), node(NodeC)},
		[]core.Edge{
			edge("1", NodeA, NodeB),
			edge("2", NodeA, NodeB),
			edge("3", NodeB, NodeC),
			edge("4", NodeC, NodeC),
			edge("5", NodeC, NodeD),
		},
	)
	count := func(list []address.EdgeAddress, ea address.EdgeAddress) int {
		n := 0
		for _, x := range list {
			if x == ea {
				n++
			}
		}
		return n
	}
	for _, e := range collectEdges(t, g, core.EdgesOptions{ShowDangling: true}) {
		dangling, _ := g.IsDanglingEdge(e.Address)
		want := 1
		if dangling {
			want = 0
		}
		if g.HasNode(e.Src) {
			require.Equal(t, want, count(neighborEdges(t, g, e.Src, core.NeighborsOptions{Direction: core.Out}), e.Address))
		}
		if g.HasNode(e.Dst) {
			require.Equal(t, want, count(neighborEdges(t, g, e.Dst, core.NeighborsOptions{Direction: core.In}), e.Address))
		}
	}
}

func TestMutationHistoryDoesNotAffectEquality(t *testing.T) {
	g1 := core.NewGraph()
	require.NoError(t, g1.AddNode(node(NodeA)))
	require.NoError(t, g1.AddNode(node(NodeB)))
	require.NoError(t, g1.AddEdge(edge("e", NodeA, NodeB)))
	require.NoError(t, g1.AddNode(node(NodeC)))
	require.NoError(t, g1.RemoveNode(nodeAddr(NodeC)))

	g2 := core.NewGraph()
	require.NoError(t, g2.AddNode(node(NodeB)))
	require.NoError(t, g2.AddNode(node(NodeA)))
	require.NoError(t, g2.AddEdge(edge("e", NodeA, NodeB)))

	require.True(t, g1.Equal(g2))
	require.Equal(t, g1.ToJSON(), g2.ToJSON())
	require.NotEqual(t, g1.ModificationCount(), g2.ModificationCount())
}

func TestDirectionString(t *testing.T) {
	require.Equal(t, "Any", core.Any.String())
	require.Equal(t, "In", core.In.String())
	require.Equal(t, "Out", core.Out.String())
	require.Equal(t, "Direction(9)", core.Direction(9).String())
}
