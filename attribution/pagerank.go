// SPDX-License-Identifier: MIT
// File: pagerank.go
// Role: Whole-graph PageRank over a weighted graph, with decomposition.
//
// Pipeline:
//
//	evaluators → connections → ordered chain → seed → stationary π → decomposition
//
// Non-convergence is not an error: the result carries Converged, Iterations
// and Delta.

package attribution

import (
	"context"
	"fmt"
	"maps"
	"math"
	"slices"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/katalvlaran/credrank/address"
	"github.com/katalvlaran/credrank/core"
	"github.com/katalvlaran/credrank/markov"
	"github.com/katalvlaran/credrank/weights"
)

var tracer = otel.Tracer("credrank.attribution")

// PagerankResult is the outcome of Pagerank.
type PagerankResult struct {
	// NodeOrder is the state order of Distribution (ascending addresses).
	NodeOrder    []address.NodeAddress
	Distribution markov.Distribution
	// Scores is Distribution keyed by node.
	Scores        NodeDistribution
	Connections   NodeToConnections
	Decomposition Decomposition
	Converged     bool
	Iterations    int
	// Delta is the L∞ change of the last iteration.
	Delta float64
}

// NodeOrder returns the addresses of all nodes of g in ascending order.
func NodeOrder(g *core.Graph) ([]address.NodeAddress, error) {
	var out []address.NodeAddress
	for n, err := range g.Nodes(core.NodesOptions{}) {
		if err != nil {
			return nil, err
		}
		out = append(out, n.Address)
	}

	return out, nil
}

// Pagerank computes the stationary distribution of the weighted graph's
// chain and decomposes every node's score. A graph without nodes yields an
// empty, converged result.
// Complexity: O(V log V + E log E + k·(V + E)) for k iterations.
func Pagerank(ctx context.Context, wg *weights.WeightedGraph, opts ...Option) (*PagerankResult, error) {
	if wg == nil || wg.Graph == nil {
		return nil, ErrNilWeightedGraph
	}
	o := resolveOptions(opts)
	_, span := tracer.Start(ctx, "attribution.Pagerank",
		trace.WithAttributes(
			attribute.Int("node_count", wg.Graph.NodeCount()),
			attribute.Int("edge_count", wg.Graph.EdgeCount()),
			attribute.Float64("alpha", o.Alpha),
			attribute.Float64("convergence_threshold", o.ConvergenceThreshold),
			attribute.Int("max_iterations", o.MaxIterations),
		),
	)
	defer span.End()

	res, err := pagerank(wg, o)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("iterations", res.Iterations),
		attribute.Bool("converged", res.Converged),
		attribute.Float64("delta", res.Delta),
	)
	report(o, "pagerank", res.Converged, res.Iterations, res.Delta, zap.Int("nodes", len(res.NodeOrder)))

	return res, nil
}

func pagerank(wg *weights.WeightedGraph, o Options) (*PagerankResult, error) {
	// 1) Evaluators and connections
	nodeWeight, edgeWeight, err := wg.Evaluators()
	if err != nil {
		return nil, err
	}
	ntc, err := CreateConnections(wg.Graph, edgeWeight, wg.SyntheticLoopWeight)
	if err != nil {
		return nil, err
	}

	// 2) Chain in node order
	osmc, err := CreateOrderedSparseMarkovChain(ntc)
	if err != nil {
		return nil, err
	}
	osmc = osmc.NormalizeNeighbors()

	// 3) Seed
	var seed markov.Distribution
	switch {
	case o.SeedWeights != nil:
		seed, err = WeightedDistribution(osmc.NodeOrder, o.SeedWeights)
	case o.SeedFromNodeWeights:
		seed, err = WeightedDistribution(osmc.NodeOrder, evaluateNodes(osmc.NodeOrder, nodeWeight))
	}
	if err != nil {
		return nil, err
	}

	// 4) Stationary distribution
	sr, err := markov.FindStationaryDistribution(osmc.Chain, o.stationaryOptions(seed, nil)...)
	if err != nil {
		return nil, err
	}

	// 5) Scores and decomposition
	scores, err := DistributionToNodeDistribution(osmc.NodeOrder, sr.Pi)
	if err != nil {
		return nil, err
	}
	dec, err := Decompose(scores, ntc)
	if err != nil {
		return nil, err
	}

	return &PagerankResult{
		NodeOrder:     osmc.NodeOrder,
		Distribution:  sr.Pi,
		Scores:        scores,
		Connections:   ntc,
		Decomposition: dec,
		Converged:     sr.Converged,
		Iterations:    sr.Iterations,
		Delta:         sr.Delta,
	}, nil
}

// evaluateNodes returns the weight of every node in order.
func evaluateNodes(order []address.NodeAddress, eval weights.NodeEvaluator) map[address.NodeAddress]float64 {
	out := make(map[address.NodeAddress]float64, len(order))
	for _, a := range order {
		out[a] = eval(a)
	}

	return out
}

// report logs and records one stationary distribution computation.
func report(o Options, what string, converged bool, iterations int, delta float64, fields ...zap.Field) {
	o.Metrics.observe(converged, iterations)
	fields = append(fields,
		zap.Int("iterations", iterations),
		zap.Bool("converged", converged),
		zap.Float64("delta", delta),
	)
	log := o.Logger.Named(what)
	if !converged {
		log.Warn("stationary distribution did not converge", append(fields, zap.Float64("threshold", o.ConvergenceThreshold))...)
		return
	}
	log.Debug("stationary distribution computed", fields...)
}

// ScoreByConstantTotal rescales pr so that the nodes under prefix sum to
// total. Every other node is scaled by the same factor.
// Complexity: O(V log V).
func ScoreByConstantTotal(pr NodeDistribution, total float64, prefix address.NodeAddress) (NodeDistribution, error) {
	if total < 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTotal, total)
	}
	if err := address.Node.Validate(prefix); err != nil {
		return nil, err
	}
	var matched int
	var mass float64
	for _, a := range slices.Sorted(maps.Keys(pr)) {
		if a.HasPrefix(prefix) {
			matched++
			mass += pr[a]
		}
	}
	if matched == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoScoringNodes, prefix)
	}
	if mass == 0 {
		return nil, fmt.Errorf("%w: %s", ErrZeroScoringMass, prefix)
	}
	out := make(NodeDistribution, len(pr))
	for a, v := range pr {
		out[a] = v * total / mass
	}

	return out, nil
}
