// SPDX-License-Identifier: MIT
package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/credrank/address"
	"github.com/katalvlaran/credrank/config"
	"github.com/katalvlaran/credrank/core"
	"github.com/katalvlaran/credrank/weights"
)

func TestDefaultIsValid(t *testing.T) {
	p := config.Default()
	require.NoError(t, p.Validate())

	prefixes, err := p.ScoringPrefixes()
	require.NoError(t, err)
	require.Equal(t, []address.NodeAddress{address.Node.Empty()}, prefixes)
}

func TestParseOverlaysDefaults(t *testing.T) {
	p, err := config.Parse([]byte(`
alpha: 0.2
interval_decay: 0.75
scoring_node_prefixes:
  - [sourcecred, github, USERLIKE]
  - [sourcecred, discourse, user]
`))
	require.NoError(t, err)
	require.Equal(t, 0.2, p.Alpha)
	require.Equal(t, 0.75, p.IntervalDecay)
	require.Equal(t, config.Default().MaxIterations, p.MaxIterations)
	require.Equal(t, config.Default().SyntheticLoopWeight, p.SyntheticLoopWeight)

	prefixes, err := p.ScoringPrefixes()
	require.NoError(t, err)
	require.Equal(t, []address.NodeAddress{
		address.Node.MustFromParts("sourcecred", "github", "USERLIKE"),
		address.Node.MustFromParts("sourcecred", "discourse", "user"),
	}, prefixes)
}

func TestParseEmpty(t *testing.T) {
	p, err := config.Parse(nil)
	require.NoError(t, err)
	require.Equal(t, config.Default(), p)
}

func TestParseRejects(t *testing.T) {
	cases := map[string]struct {
		doc string
		err error
	}{
		"alpha one":           {"alpha: 1", config.ErrInvalidParams},
		"negative decay":      {"interval_decay: -0.1", config.ErrInvalidParams},
		"decay above one":     {"interval_decay: 1.5", config.ErrInvalidParams},
		"zero iterations":     {"max_iterations: 0", config.ErrInvalidParams},
		"zero loop weight":    {"synthetic_loop_weight: 0", config.ErrInvalidParams},
		"no scoring prefixes": {"scoring_node_prefixes: []", config.ErrInvalidParams},
		"separator in prefix": {"scoring_node_prefixes: [[\"a\\0b\"]]", config.ErrInvalidParams},
		"unknown key":         {"teleport: 0.1", config.ErrParse},
		"malformed":           {"alpha: [", config.ErrParse},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.doc))
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestWeightedGraphUsesLoopWeight(t *testing.T) {
	p, err := config.Parse([]byte("synthetic_loop_weight: 0.25\n"))
	require.NoError(t, err)

	g := core.NewGraph()
	require.NoError(t, g.AddNode(core.Node{Address: address.Node.MustFromParts("a")}))
	wg, err := p.WeightedGraph(g, weights.Empty())
	require.NoError(t, err)
	require.Equal(t, 0.25, wg.SyntheticLoopWeight)
	require.Same(t, g, wg.Graph)

	p.SyntheticLoopWeight = 0
	_, err = p.WeightedGraph(g, weights.Empty())
	require.ErrorIs(t, err, config.ErrInvalidParams)

	_, err = config.Default().WeightedGraph(nil, weights.Empty())
	require.ErrorIs(t, err, weights.ErrNilGraph)
}
