// SPDX-License-Identifier: MIT
// File: weighted_graph.go
// Role: A Graph bundled with its Weights and synthetic loop weight.

package weights

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/katalvlaran/credrank/address"
	"github.com/katalvlaran/credrank/core"
)

// WeightedGraph is the input of the attribution pipeline. Treat it as
// read-only once constructed.
type WeightedGraph struct {
	Graph               *core.Graph
	Weights             Weights
	SyntheticLoopWeight float64
}

// Options configures NewWeightedGraph.
type Options struct {
	// StrictEdgeWeights rejects edge weight prefixes that match no edge.
	StrictEdgeWeights bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns lenient validation.
func DefaultOptions() Options { return Options{} }

// WithStrictEdgeWeights enables ErrUnmatchedEdgeWeight checks.
func WithStrictEdgeWeights() Option {
	return func(o *Options) { o.StrictEdgeWeights = true }
}

// NewWeightedGraph validates and bundles g, w and loop. w is copied and the
// empty-prefix defaults are installed when missing, so every edge resolves
// to a weight.
// Complexity: O(|w| + E) (O(|w|·E) in strict mode).
func NewWeightedGraph(g *core.Graph, w Weights, loop float64, opts ...Option) (*WeightedGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !(loop > 0) || math.IsInf(loop, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSyntheticLoopWeight, loop)
	}
	w = w.Copy()
	if err := w.Validate(); err != nil {
		return nil, err
	}
	w.withDefaults()

	if o.StrictEdgeWeights {
		edges, err := core.Collect(g.Edges(core.EdgesOptions{ShowDangling: true}))
		if err != nil {
			return nil, err
		}
		for prefix := range w.EdgeWeights {
			matched := prefix == address.Edge.Empty()
			for _, e := range edges {
				if matched {
					break
				}
				matched = e.Address.HasPrefix(prefix)
			}
			if !matched {
				return nil, fmt.Errorf("%w: %s", ErrUnmatchedEdgeWeight, prefix)
			}
		}
	}

	return &WeightedGraph{Graph: g, Weights: w, SyntheticLoopWeight: loop}, nil
}

// Evaluators builds the node and edge evaluators of wg.
func (wg *WeightedGraph) Evaluators() (NodeEvaluator, EdgeEvaluator, error) {
	nodeEval, err := NodeWeightEvaluator(wg.Weights)
	if err != nil {
		return nil, nil, err
	}
	edgeEval, err := EdgeWeightEvaluator(wg.Weights)
	if err != nil {
		return nil, nil, err
	}

	return nodeEval, edgeEval, nil
}

// MergeWeightedGraphs merges graphs and weights. All inputs must share one
// synthetic loop weight; an empty input yields an empty graph with
// DefaultSyntheticLoopWeight.
func MergeWeightedGraphs(wgs []*WeightedGraph, r Resolvers) (*WeightedGraph, error) {
	loop := DefaultSyntheticLoopWeight
	graphs := make([]*core.Graph, len(wgs))
	ws := make([]Weights, len(wgs))
	for i, wg := range wgs {
		if i == 0 {
			loop = wg.SyntheticLoopWeight
		} else if wg.SyntheticLoopWeight != loop {
			return nil, fmt.Errorf("%w: %v vs %v", ErrSyntheticLoopMismatch, loop, wg.SyntheticLoopWeight)
		}
		graphs[i] = wg.Graph
		ws[i] = wg.Weights
	}
	g, err := core.Merge(graphs...)
	if err != nil {
		return nil, err
	}
	w, err := Merge(ws, r)
	if err != nil {
		return nil, err
	}

	return NewWeightedGraph(g, w, loop)
}

type weightedGraphJSON struct {
	Graph               *core.Graph `json:"graph"`
	Weights             Weights     `json:"weights"`
	SyntheticLoopWeight float64     `json:"synthetic_loop_weight"`
}

// MarshalJSON implements json.Marshaler.
func (wg *WeightedGraph) MarshalJSON() ([]byte, error) {
	return json.Marshal(weightedGraphJSON{Graph: wg.Graph, Weights: wg.Weights, SyntheticLoopWeight: wg.SyntheticLoopWeight})
}

// UnmarshalJSON implements json.Unmarshaler; the result is validated as by
// NewWeightedGraph.
func (wg *WeightedGraph) UnmarshalJSON(data []byte) error {
	raw := weightedGraphJSON{Graph: core.NewGraph(), Weights: Empty()}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("weights: UnmarshalJSON: %w", err)
	}
	if raw.Graph == nil {
		return fmt.Errorf("weights: UnmarshalJSON: %w", ErrNilGraph)
	}
	parsed, err := NewWeightedGraph(raw.Graph, raw.Weights, raw.SyntheticLoopWeight)
	if err != nil {
		return err
	}
	*wg = *parsed

	return nil
}
