// SPDX-License-Identifier: MIT
// File: weight_fn.go
// Role: edge weight generators for BuildWeightedGraph.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/credrank/weights"
)

// WeightFn produces one directional edge weight from an optional RNG.
// It must be deterministic for a given RNG state and never return a
// negative, NaN or infinite value.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn returns the forwards weight of weights.DefaultEdgeWeight.
// Complexity: O(1).
func DefaultWeightFn(_ *rand.Rand) float64 {
	return weights.DefaultEdgeWeight.Forwards
}

// ConstantWeightFn always yields value. Panics if value is negative or not finite.
func ConstantWeightFn(value float64) WeightFn {
	if !(value >= 0) || math.IsInf(value, 1) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite and ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn samples uniformly in [min, max). With a nil RNG it yields
// the default weight. Panics unless 0 ≤ min ≤ max < +Inf.
func UniformWeightFn(min, max float64) WeightFn {
	if !(min >= 0) || !(max >= min) || math.IsInf(max, 1) {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultWeightFn(nil)
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// ExponentialWeightFn samples Exp(rate), mean 1/rate. With a nil RNG it
// yields the default weight. Panics if rate ≤ 0.
func ExponentialWeightFn(rate float64) WeightFn {
	if !(rate > 0) {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %g", rate))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultWeightFn(nil)
		}

		return rng.ExpFloat64() / rate
	}
}

// NormalWeightFn samples N(mean, stddev) clipped at 0. With a nil RNG it
// yields the default weight. Panics if stddev < 0.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if !(stddev >= 0) {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %g", stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultWeightFn(nil)
		}

		return math.Max(0, rng.NormFloat64()*stddev+mean)
	}
}

// WithUniformEdgeWeights draws both directions from UniformWeightFn(min, max).
func WithUniformEdgeWeights(min, max float64) BuilderOption {
	fn := UniformWeightFn(min, max)

	return WithEdgeWeightFns(fn, fn)
}

// WithForwardOnlyWeights weights every edge {Forwards: 1, Backwards: 0}.
func WithForwardOnlyWeights() BuilderOption {
	return WithEdgeWeightFns(ConstantWeightFn(1), ConstantWeightFn(0))
}
