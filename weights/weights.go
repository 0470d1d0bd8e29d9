// SPDX-License-Identifier: MIT
// File: weights.go
// Role: Weights container, copying, merging and JSON form.

package weights

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/credrank/address"
)

// Sentinel errors for weights and weighted graphs.
var (
	// ErrInvalidWeight indicates a negative, NaN or infinite weight.
	ErrInvalidWeight = errors.New("weights: invalid weight")

	// ErrInvalidSyntheticLoopWeight indicates a synthetic loop weight that is not finite and positive.
	ErrInvalidSyntheticLoopWeight = errors.New("weights: synthetic loop weight must be finite and positive")

	// ErrWeightConflict indicates two merged weight sets disagree on a prefix and no resolver was given.
	ErrWeightConflict = errors.New("weights: conflicting weights")

	// ErrUnmatchedEdgeWeight indicates, in strict mode, an edge weight prefix that matches no edge.
	ErrUnmatchedEdgeWeight = errors.New("weights: edge weight matches no edge")

	// ErrNilGraph indicates a weighted graph without a graph.
	ErrNilGraph = errors.New("weights: graph is nil")

	// ErrSyntheticLoopMismatch indicates merging weighted graphs with different synthetic loop weights.
	ErrSyntheticLoopMismatch = errors.New("weights: synthetic loop weights differ")
)

// DefaultSyntheticLoopWeight is the self-loop weight used when none is configured.
const DefaultSyntheticLoopWeight = 1e-3

// EdgeWeight is the pair of weights of an edge: Forwards applies when walking
// from Src to Dst, Backwards when walking from Dst to Src.
type EdgeWeight struct {
	Forwards  float64 `json:"forwards"`
	Backwards float64 `json:"backwards"`
}

// DefaultEdgeWeight is the weight of an edge no prefix matches.
var DefaultEdgeWeight = EdgeWeight{Forwards: 1, Backwards: 1}

// Weights maps address prefixes to weights. Node weights are multiplicative
// (see NodeWeightEvaluator); for edges the longest matching prefix wins.
type Weights struct {
	NodeWeights map[address.NodeAddress]float64    `json:"node_weights"`
	EdgeWeights map[address.EdgeAddress]EdgeWeight `json:"edge_weights"`
}

// Empty returns Weights with no entries.
func Empty() Weights {
	return Weights{
		NodeWeights: make(map[address.NodeAddress]float64),
		EdgeWeights: make(map[address.EdgeAddress]EdgeWeight),
	}
}

// Copy returns an independent copy of w.
func (w Weights) Copy() Weights {
	out := Weights{
		NodeWeights: make(map[address.NodeAddress]float64, len(w.NodeWeights)),
		EdgeWeights: make(map[address.EdgeAddress]EdgeWeight, len(w.EdgeWeights)),
	}
	for a, v := range w.NodeWeights {
		out.NodeWeights[a] = v
	}
	for a, v := range w.EdgeWeights {
		out.EdgeWeights[a] = v
	}

	return out
}

// Validate checks every key is an address of the right kind and every weight
// is finite and non-negative.
func (w Weights) Validate() error {
	for a, v := range w.NodeWeights {
		if err := address.Node.Validate(a); err != nil {
			return fmt.Errorf("weights: node weight key: %w", err)
		}
		if !validWeight(v) {
			return fmt.Errorf("%w: %v at %s", ErrInvalidWeight, v, a)
		}
	}
	for a, v := range w.EdgeWeights {
		if err := address.Edge.Validate(a); err != nil {
			return fmt.Errorf("weights: edge weight key: %w", err)
		}
		if !validWeight(v.Forwards) || !validWeight(v.Backwards) {
			return fmt.Errorf("%w: {forwards: %v, backwards: %v} at %s", ErrInvalidWeight, v.Forwards, v.Backwards, a)
		}
	}

	return nil
}

// Resolvers settle merge conflicts. A nil resolver makes conflicts fatal.
type Resolvers struct {
	Node func(a, b float64) float64
	Edge func(a, b EdgeWeight) EdgeWeight
}

// Merge combines ws into a new Weights. When two inputs define the same
// prefix with different values, the matching resolver is applied
// left-to-right; without one the merge fails with ErrWeightConflict.
// Complexity: O(Σ |w|).
func Merge(ws []Weights, r Resolvers) (Weights, error) {
	out := Empty()
	for _, w := range ws {
		for a, v := range w.NodeWeights {
			prev, ok := out.NodeWeights[a]
			switch {
			case !ok || prev == v:
				out.NodeWeights[a] = v
			case r.Node != nil:
				out.NodeWeights[a] = r.Node(prev, v)
			default:
				return Weights{}, fmt.Errorf("%w: node weight %s: %v vs %v", ErrWeightConflict, a, prev, v)
			}
		}
		for a, v := range w.EdgeWeights {
			prev, ok := out.EdgeWeights[a]
			switch {
			case !ok || prev == v:
				out.EdgeWeights[a] = v
			case r.Edge != nil:
				out.EdgeWeights[a] = r.Edge(prev, v)
			default:
				return Weights{}, fmt.Errorf("%w: edge weight %s: %+v vs %+v", ErrWeightConflict, a, prev, v)
			}
		}
	}

	return out, nil
}

// UnmarshalJSON implements json.Unmarshaler and validates the result.
func (w *Weights) UnmarshalJSON(data []byte) error {
	type plain Weights
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("weights: UnmarshalJSON: %w", err)
	}
	parsed := Weights(p)
	if parsed.NodeWeights == nil {
		parsed.NodeWeights = make(map[address.NodeAddress]float64)
	}
	if parsed.EdgeWeights == nil {
		parsed.EdgeWeights = make(map[address.EdgeAddress]EdgeWeight)
	}
	if err := parsed.Validate(); err != nil {
		return err
	}
	*w = parsed

	return nil
}

func validWeight(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
