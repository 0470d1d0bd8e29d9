// SPDX-License-Identifier: MIT
package markov_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/credrank/markov"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// twoState is P = [[0.5, 0.5], [0.2, 0.8]], stationary π = (2/7, 5/7).
func twoState(t *testing.T) markov.Chain {
	t.Helper()
	c, err := markov.FromTransitionMatrix(mat.NewDense(2, 2, []float64{
		0.5, 0.5,
		0.2, 0.8,
	}))
	require.NoError(t, err)
	require.NoError(t, c.Validate(1e-12))

	return c
}

func TestFromTransitionMatrixIsColumnStored(t *testing.T) {
	c := twoState(t)
	require.Equal(t, markov.Row{Neighbor: []uint32{0, 1}, Weight: []float64{0.5, 0.2}}, c[0])
	require.Equal(t, markov.Row{Neighbor: []uint32{0, 1}, Weight: []float64{0.5, 0.8}}, c[1])
	require.Equal(t, []float64{1, 1}, markov.OutMass(c))

	back := markov.TransitionMatrix(c)
	require.True(t, mat.Equal(back, mat.NewDense(2, 2, []float64{0.5, 0.5, 0.2, 0.8})))

	_, err := markov.FromTransitionMatrix(mat.NewDense(2, 3, nil))
	require.ErrorIs(t, err, markov.ErrDimensionMismatch)
	_, err = markov.FromTransitionMatrix(mat.NewDense(1, 1, []float64{-1}))
	require.ErrorIs(t, err, markov.ErrInvalidChain)
}

func TestValidate(t *testing.T) {
	cases := map[string]markov.Chain{
		"ragged":       {{Neighbor: []uint32{0}, Weight: nil}},
		"out of range": {{Neighbor: []uint32{1}, Weight: []float64{1}}},
		"negative":     {{Neighbor: []uint32{0, 0}, Weight: []float64{2, -1}}},
		"nan":          {{Neighbor: []uint32{0}, Weight: []float64{math.NaN()}}},
		"leaky source": {{Neighbor: []uint32{0}, Weight: []float64{0.5}}},
		"source with no out-edges": {
			{Neighbor: []uint32{0}, Weight: []float64{1}},
			{},
		},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, c.Validate(1e-9), markov.ErrInvalidChain)
		})
	}
	require.NoError(t, markov.Chain{}.Validate(0))
}

func TestNormalizeNeighbors(t *testing.T) {
	c := markov.Chain{
		{Neighbor: []uint32{2, 0, 2, 1}, Weight: []float64{0.25, 0.5, 0.25, 1}},
		{Neighbor: []uint32{0}, Weight: []float64{0.5}},
		{},
	}
	got := markov.NormalizeNeighbors(c)
	require.Equal(t, []uint32{0, 1, 2}, got[0].Neighbor)
	require.Equal(t, []float64{0.5, 1, 0.5}, got[0].Weight)
	require.Equal(t, []uint32{0}, got[1].Neighbor)
	require.Empty(t, got[2].Neighbor)
	// Input untouched.
	require.Equal(t, []uint32{2, 0, 2, 1}, c[0].Neighbor)
}

func TestPermute(t *testing.T) {
	c, err := markov.FromTransitionMatrix(mat.NewDense(3, 3, []float64{
		0.1, 0.9, 0,
		0, 0.3, 0.7,
		0.6, 0, 0.4,
	}))
	require.NoError(t, err)

	perm := []int{2, 0, 1}
	p, err := markov.Permute(c, perm)
	require.NoError(t, err)
	require.NoError(t, p.Validate(1e-12))

	orig := markov.TransitionMatrix(c)
	moved := markov.TransitionMatrix(p)
	for u := 0; u < 3; u++ {
		for v := 0; v < 3; v++ {
			require.Equal(t, orig.At(u, v), moved.At(perm[u], perm[v]))
		}
	}

	a, err := markov.FindStationaryDistribution(c, markov.WithConvergenceThreshold(1e-14), markov.WithMaxIterations(10000))
	require.NoError(t, err)
	b, err := markov.FindStationaryDistribution(p, markov.WithConvergenceThreshold(1e-14), markov.WithMaxIterations(10000))
	require.NoError(t, err)
	for i := range perm {
		require.InDelta(t, a.Pi[i], b.Pi[perm[i]], 1e-10)
	}

	_, err = markov.Permute(c, []int{0, 0, 1})
	require.ErrorIs(t, err, markov.ErrInvalidPermutation)
	_, err = markov.Permute(c, []int{0, 1})
	require.ErrorIs(t, err, markov.ErrInvalidPermutation)
}

func TestUniformAndDelta(t *testing.T) {
	require.Empty(t, markov.Uniform(0))
	u := markov.Uniform(4)
	require.Equal(t, markov.Distribution{0.25, 0.25, 0.25, 0.25}, u)
	require.Equal(t, 0.5, markov.Delta(markov.Distribution{1, 0}, markov.Distribution{0.5, 0.25}))
	require.Zero(t, markov.Delta(nil, nil))
	require.Panics(t, func() { markov.Delta(u, markov.Uniform(3)) })
}

func TestFindStationaryDistribution(t *testing.T) {
	res, err := markov.FindStationaryDistribution(twoState(t),
		markov.WithAlpha(0),
		markov.WithConvergenceThreshold(1e-13),
		markov.WithMaxIterations(1000),
	)
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.LessOrEqual(t, res.Delta, 1e-13)
	require.Greater(t, res.Iterations, 1)
	require.InDelta(t, 2.0/7, res.Pi[0], 1e-10)
	require.InDelta(t, 5.0/7, res.Pi[1], 1e-10)
	require.InDelta(t, 1, floats.Sum(res.Pi), 1e-9)
}

func TestSeedAndTeleport(t *testing.T) {
	seed := markov.Distribution{1, 0}
	// With α close to 1 the walk almost always teleports: π ≈ seed after one
	// step, and the second step barely moves it.
	res, err := markov.FindStationaryDistribution(twoState(t),
		markov.WithAlpha(0.999999),
		markov.WithSeed(seed),
		markov.WithConvergenceThreshold(1e-6),
	)
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.InDelta(t, 1, res.Pi[0], 1e-5)

	// The seed slice is not retained.
	seed[0] = 0.5
	seed[1] = 0.5
	require.InDelta(t, 1, res.Pi[0], 1e-5)

	step := markov.Action(twoState(t), markov.Distribution{0, 1}, markov.Distribution{1, 0}, 0.5)
	// 0.5·s + 0.5·(row 0 of P) = (0.25, 0.75).
	require.InDeltaSlice(t, []float64{0.25, 0.75}, step, 1e-15)
}

func TestWarmStartConvergesImmediately(t *testing.T) {
	c := twoState(t)
	first, err := markov.FindStationaryDistribution(c, markov.WithConvergenceThreshold(1e-12), markov.WithMaxIterations(1000))
	require.NoError(t, err)
	second, err := markov.FindStationaryDistribution(c, markov.WithInitial(first.Pi), markov.WithConvergenceThreshold(1e-11))
	require.NoError(t, err)
	require.True(t, second.Converged)
	require.Equal(t, 1, second.Iterations)
}

func TestNonConvergenceIsReported(t *testing.T) {
	res, err := markov.FindStationaryDistribution(twoState(t),
		markov.WithAlpha(0),
		markov.WithConvergenceThreshold(0),
		markov.WithMaxIterations(3),
		markov.WithInitial(markov.Distribution{1, 0}),
	)
	require.NoError(t, err)
	require.False(t, res.Converged)
	require.Equal(t, 3, res.Iterations)
	require.Greater(t, res.Delta, 0.0)
	require.InDelta(t, 1, floats.Sum(res.Pi), 1e-12)
}

func TestBoundaryChains(t *testing.T) {
	res, err := markov.FindStationaryDistribution(markov.Chain{})
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Empty(t, res.Pi)
	require.Zero(t, res.Iterations)

	single := markov.Chain{{Neighbor: []uint32{0}, Weight: []float64{1}}}
	require.NoError(t, single.Validate(0))
	res, err = markov.FindStationaryDistribution(single)
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Len(t, res.Pi, 1)
	require.InDelta(t, 1, res.Pi[0], 1e-15)
}

func TestOptionsValidation(t *testing.T) {
	c := twoState(t)
	for name, opt := range map[string]markov.Option{
		"alpha one":          markov.WithAlpha(1),
		"alpha negative":     markov.WithAlpha(-0.1),
		"alpha nan":          markov.WithAlpha(math.NaN()),
		"negative threshold": markov.WithConvergenceThreshold(-1),
		"zero iterations":    markov.WithMaxIterations(0),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := markov.FindStationaryDistribution(c, opt)
			require.ErrorIs(t, err, markov.ErrInvalidOptions)
		})
	}

	_, err := markov.FindStationaryDistribution(c, markov.WithSeed(markov.Distribution{1}))
	require.ErrorIs(t, err, markov.ErrDimensionMismatch)
	_, err = markov.FindStationaryDistribution(c, markov.WithSeed(markov.Distribution{1, 1}))
	require.ErrorIs(t, err, markov.ErrInvalidDistribution)
	_, err = markov.FindStationaryDistribution(c, markov.WithInitial(markov.Distribution{-1, 2}))
	require.ErrorIs(t, err, markov.ErrInvalidDistribution)

	require.NoError(t, markov.DefaultOptions().Validate())
}
