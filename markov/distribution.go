// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Distribution is a probability vector indexed by state.
type Distribution []float64

// Uniform returns the uniform distribution over n states; n == 0 yields an
// empty distribution.
func Uniform(n int) Distribution {
	d := make(Distribution, n)
	if n == 0 {
		return d
	}
	floats.AddConst(1/float64(n), d)

	return d
}

// Delta returns the L∞ distance between a and b.
// Panics if the lengths differ.
func Delta(a, b Distribution) float64 {
	if len(a) != len(b) {
		panic(fmt.Sprintf("markov: Delta: length mismatch %d vs %d", len(a), len(b)))
	}
	if len(a) == 0 {
		return 0
	}

	return floats.Distance(a, b, math.Inf(1))
}

// ValidateDistribution checks that d has n non-negative finite entries summing
// to 1 within tol.
func ValidateDistribution(d Distribution, n int, tol float64) error {
	if len(d) != n {
		return fmt.Errorf("%w: %d entries for %d states", ErrDimensionMismatch, len(d), n)
	}
	for i, x := range d {
		if x < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: entry %d = %v", ErrInvalidDistribution, i, x)
		}
	}
	if n > 0 {
		if sum := floats.Sum(d); math.Abs(sum-1) > tol {
			return fmt.Errorf("%w: mass %v", ErrInvalidDistribution, sum)
		}
	}

	return nil
}
