// SPDX-License-Identifier: MIT
package attribution_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/credrank/address"
	"github.com/katalvlaran/credrank/core"
	"github.com/katalvlaran/credrank/weights"
)

func nodeAddr(parts ...string) address.NodeAddress { return address.Node.MustFromParts(parts...) }
func edgeAddr(parts ...string) address.EdgeAddress { return address.Edge.MustFromParts(parts...) }

// sunday is the first week boundary used by timed fixtures.
var sunday = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC).UnixMilli()

// week returns a timestamp inside week k after sunday.
func week(k int) int64 { return sunday + int64(k)*7*24*3600*1000 + 3*24*3600*1000 }

func edgeFn(w weights.EdgeWeight) weights.EdgeEvaluator {
	return func(core.Edge) weights.EdgeWeight { return w }
}

// scenarioA is nodes a, b and one edge a → b.
func scenarioA(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddNode(core.Node{Address: nodeAddr("a")}))
	require.NoError(t, g.AddNode(core.Node{Address: nodeAddr("b")}))
	require.NoError(t, g.AddEdge(core.Edge{Address: edgeAddr("e"), Src: nodeAddr("a"), Dst: nodeAddr("b")}))

	return g
}

// triangle is n1 → n2 → n3 → n1.
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, n := range []string{"n1", "n2", "n3"} {
		require.NoError(t, g.AddNode(core.Node{Address: nodeAddr(n)}))
	}
	for i, pair := range [][2]string{{"n1", "n2"}, {"n2", "n3"}, {"n3", "n1"}} {
		require.NoError(t, g.AddEdge(core.Edge{
			Address: edgeAddr("e", string(rune('1'+i))),
			Src:     nodeAddr(pair[0]),
			Dst:     nodeAddr(pair[1]),
		}))
	}

	return g
}

func weighted(t *testing.T, g *core.Graph, w weights.Weights, loop float64) *weights.WeightedGraph {
	t.Helper()
	wg, err := weights.NewWeightedGraph(g, w, loop)
	require.NoError(t, err)

	return wg
}

// forwardOnly weights every edge {1, 0}.
func forwardOnly() weights.Weights {
	w := weights.Empty()
	w.EdgeWeights[address.Edge.Empty()] = weights.EdgeWeight{Forwards: 1, Backwards: 0}

	return w
}

func ptr[T any](v T) *T { return &v }
