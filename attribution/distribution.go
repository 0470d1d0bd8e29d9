// SPDX-License-Identifier: MIT

package attribution

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/credrank/address"
	"github.com/katalvlaran/credrank/markov"
)

// NodeDistribution maps node addresses to scores.
type NodeDistribution map[address.NodeAddress]float64

// WeightedDistribution returns the distribution over order proportional to
// w. Nodes absent from w get 0. When w is empty or sums to zero the result
// is uniform.
// Complexity: O(V + |w|).
func WeightedDistribution(order []address.NodeAddress, w map[address.NodeAddress]float64) (markov.Distribution, error) {
	idx := make(map[address.NodeAddress]int, len(order))
	for i, a := range order {
		idx[a] = i
	}
	d := make(markov.Distribution, len(order))
	for a, v := range w {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %s = %v", ErrInvalidSeedWeight, a, v)
		}
		i, ok := idx[a]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSeedNode, a)
		}
		d[i] = v
	}
	// Summed in node order so the result does not depend on map iteration.
	total := floats.Sum(d)
	if total == 0 {
		return markov.Uniform(len(order)), nil
	}
	for i := range d {
		d[i] /= total
	}

	return d, nil
}

// DistributionToNodeDistribution zips order with pi.
func DistributionToNodeDistribution(order []address.NodeAddress, pi markov.Distribution) (NodeDistribution, error) {
	if len(order) != len(pi) {
		return nil, fmt.Errorf("%w: %d entries for %d nodes", ErrDimensionMismatch, len(pi), len(order))
	}
	out := make(NodeDistribution, len(order))
	for i, a := range order {
		out[a] = pi[i]
	}

	return out, nil
}
