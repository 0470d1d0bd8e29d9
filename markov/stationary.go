// SPDX-License-Identifier: MIT
// File: stationary.go
// Role: Seeded power iteration (personalized PageRank) over a Chain.
//
// Iteration:
//
//	π_{t+1} = α·s + (1 − α)·Mᵀ·π_t
//
// where M is the transition matrix of the chain and s the seed (teleport)
// vector. Iteration stops as soon as ‖π_{t+1} − π_t‖∞ ≤ θ, or after
// MaxIterations steps. Non-convergence is reported, not treated as an error.

package markov

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Defaults (single source of truth).
const (
	// DefaultAlpha is the teleport probability.
	DefaultAlpha = 0.05

	// DefaultConvergenceThreshold bounds the L∞ change between iterations.
	DefaultConvergenceThreshold = 1e-7

	// DefaultMaxIterations bounds the number of power-iteration steps.
	DefaultMaxIterations = 255

	// distributionTolerance is the allowed deviation from unit mass for
	// user-supplied seed and initial vectors.
	distributionTolerance = 1e-9
)

// Options configures FindStationaryDistribution.
type Options struct {
	// Alpha is the teleport probability, in [0, 1).
	Alpha float64 `validate:"gte=0,lt=1"`
	// ConvergenceThreshold is θ, non-negative.
	ConvergenceThreshold float64 `validate:"gte=0"`
	// MaxIterations is at least 1.
	MaxIterations int `validate:"gte=1"`
	// Seed is the teleport vector s; nil means uniform.
	Seed Distribution
	// Pi0 is the starting vector; nil means uniform.
	Pi0 Distribution
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Alpha:                DefaultAlpha,
		ConvergenceThreshold: DefaultConvergenceThreshold,
		MaxIterations:        DefaultMaxIterations,
	}
}

// WithAlpha sets the teleport probability.
func WithAlpha(alpha float64) Option { return func(o *Options) { o.Alpha = alpha } }

// WithConvergenceThreshold sets θ.
func WithConvergenceThreshold(theta float64) Option {
	return func(o *Options) { o.ConvergenceThreshold = theta }
}

// WithMaxIterations sets the iteration budget.
func WithMaxIterations(n int) Option { return func(o *Options) { o.MaxIterations = n } }

// WithSeed sets the teleport vector.
func WithSeed(s Distribution) Option { return func(o *Options) { o.Seed = s } }

// WithInitial sets the starting vector, e.g. the result of a previous run.
func WithInitial(pi0 Distribution) Option { return func(o *Options) { o.Pi0 = pi0 } }

var validate = validator.New()

// Validate checks numeric ranges.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	return nil
}

// StationaryResult is the outcome of FindStationaryDistribution.
type StationaryResult struct {
	// Pi is the final distribution.
	Pi Distribution
	// Converged reports whether Delta ≤ ConvergenceThreshold.
	Converged bool
	// Iterations is the number of power-iteration steps performed.
	Iterations int
	// Delta is the L∞ change of the last step.
	Delta float64
}

// Action returns one power-iteration step: α·seed + (1 − α)·Mᵀ·pi.
// Complexity: O(n + nnz).
func Action(c Chain, seed, pi Distribution, alpha float64) Distribution {
	out := make(Distribution, len(c))
	ActionInto(c, seed, pi, alpha, out)

	return out
}

// ActionInto is Action writing into out, which must not alias pi.
// Complexity: O(n + nnz), no allocation.
func ActionInto(c Chain, seed, pi Distribution, alpha float64, out Distribution) {
	for v, row := range c {
		var in float64
		for j, u := range row.Neighbor {
			in += pi[u] * row.Weight[j]
		}
		out[v] = alpha*seed[v] + (1-alpha)*in
	}
}

// FindStationaryDistribution runs seeded power iteration on c.
// An empty chain yields an empty, converged result.
// Complexity: O(k·(n + nnz)) for k iterations.
func FindStationaryDistribution(c Chain, opts ...Option) (StationaryResult, error) {
	// 1) Resolve and validate options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return StationaryResult{}, err
	}
	n := len(c)
	if n == 0 {
		return StationaryResult{Pi: Distribution{}, Converged: true}, nil
	}
	seed, err := resolveVector(o.Seed, n, "seed")
	if err != nil {
		return StationaryResult{}, err
	}
	pi, err := resolveVector(o.Pi0, n, "initial distribution")
	if err != nil {
		return StationaryResult{}, err
	}

	// 2) Iterate with two swapped buffers
	next := make(Distribution, n)
	res := StationaryResult{}
	for res.Iterations < o.MaxIterations {
		ActionInto(c, seed, pi, o.Alpha, next)
		res.Iterations++
		res.Delta = Delta(pi, next)
		pi, next = next, pi
		if res.Delta <= o.ConvergenceThreshold {
			res.Converged = true
			break
		}
	}
	res.Pi = pi

	return res, nil
}

// resolveVector copies v, or returns the uniform distribution when v is nil.
func resolveVector(v Distribution, n int, what string) (Distribution, error) {
	if v == nil {
		return Uniform(n), nil
	}
	if err := ValidateDistribution(v, n, distributionTolerance); err != nil {
		return nil, fmt.Errorf("markov: %s: %w", what, err)
	}

	return append(Distribution(nil), v...), nil
}
