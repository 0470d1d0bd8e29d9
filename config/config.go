// SPDX-License-Identifier: MIT
// File: config.go
// Role: YAML parameter file for the timeline cred pipeline.
//
// Parse layers the document over Default(), so a file only names the keys it
// changes. Unknown keys are rejected.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/credrank/address"
	"github.com/katalvlaran/credrank/core"
	"github.com/katalvlaran/credrank/markov"
	"github.com/katalvlaran/credrank/weights"
)

// Sentinel errors.
var (
	// ErrParse wraps YAML decoding failures.
	ErrParse = errors.New("config: cannot parse parameters")

	// ErrInvalidParams wraps validation failures.
	ErrInvalidParams = errors.New("config: invalid parameters")
)

// DefaultIntervalDecay is the per-week decay of node and edge weights.
const DefaultIntervalDecay = 0.5

// Params are the knobs of TimelineCred.
type Params struct {
	// Alpha is the teleport probability.
	Alpha float64 `yaml:"alpha" validate:"gte=0,lt=1"`
	// IntervalDecay multiplies every weight once per elapsed interval.
	IntervalDecay float64 `yaml:"interval_decay" validate:"gte=0,lte=1"`
	// ConvergenceThreshold is the L∞ stopping threshold of PageRank.
	ConvergenceThreshold float64 `yaml:"convergence_threshold" validate:"gte=0"`
	// MaxIterations bounds PageRank per interval.
	MaxIterations int `yaml:"max_iterations" validate:"gte=1"`
	// SyntheticLoopWeight is ε, applied by WeightedGraph.
	SyntheticLoopWeight float64 `yaml:"synthetic_loop_weight" validate:"gt=0"`
	// ScoringNodePrefixes are node address prefixes in part form; cred is
	// normalized over the nodes they match.
	ScoringNodePrefixes [][]string `yaml:"scoring_node_prefixes" validate:"min=1"`
}

var validate = validator.New()

// Default returns the parameters used when a file is absent. The single
// empty scoring prefix matches every node.
func Default() Params {
	return Params{
		Alpha:                markov.DefaultAlpha,
		IntervalDecay:        DefaultIntervalDecay,
		ConvergenceThreshold: markov.DefaultConvergenceThreshold,
		MaxIterations:        markov.DefaultMaxIterations,
		SyntheticLoopWeight:  weights.DefaultSyntheticLoopWeight,
		ScoringNodePrefixes:  [][]string{{}},
	}
}

// Parse decodes data over Default and validates the result. Empty input
// yields Default.
func Parse(data []byte) (Params, error) {
	p := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Params{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}

	return p, nil
}

// Validate checks numeric ranges and that every scoring prefix is a valid
// node address.
func (p Params) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	if _, err := p.ScoringPrefixes(); err != nil {
		return err
	}

	return nil
}

// ScoringPrefixes converts ScoringNodePrefixes to node addresses.
func (p Params) ScoringPrefixes() ([]address.NodeAddress, error) {
	out := make([]address.NodeAddress, 0, len(p.ScoringNodePrefixes))
	for i, parts := range p.ScoringNodePrefixes {
		a, err := address.Node.FromParts(parts...)
		if err != nil {
			return nil, fmt.Errorf("%w: scoring prefix %d: %w", ErrInvalidParams, i, err)
		}
		out = append(out, a)
	}

	return out, nil
}

// WeightedGraph bundles g and w with p.SyntheticLoopWeight after validating p.
func (p Params) WeightedGraph(g *core.Graph, w weights.Weights, opts ...weights.Option) (*weights.WeightedGraph, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return weights.NewWeightedGraph(g, w, p.SyntheticLoopWeight, opts...)
}
