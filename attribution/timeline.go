// SPDX-License-Identifier: MIT
// File: timeline.go
// Role: Per-week PageRank with decaying weights, and its conversion to cred.
//
// For interval t, every node and edge created in an interval s ≤ t carries
// its evaluated weight times decay^(t−s). Nodes created later carry no seed
// weight and edges created later carry zero transition weight, but every
// node of the graph is a state of every interval's chain. Each interval's
// computation starts from the previous interval's distribution.

package attribution

import (
	"context"
	"fmt"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/credrank/address"
	"github.com/katalvlaran/credrank/config"
	"github.com/katalvlaran/credrank/core"
	"github.com/katalvlaran/credrank/interval"
	"github.com/katalvlaran/credrank/markov"
	"github.com/katalvlaran/credrank/weights"
)

// IntervalResult is the stationary distribution of one interval.
type IntervalResult struct {
	Interval interval.Interval
	// IntervalWeight is the total decayed node weight of the interval.
	IntervalWeight float64
	// Distribution is indexed by the graph's node order.
	Distribution markov.Distribution
	Converged    bool
	Iterations   int
	Delta        float64
}

// IntervalCred is the cred of every node, in node order, for one interval.
type IntervalCred struct {
	Interval interval.Interval
	Cred     []float64
}

// TimelinePagerank runs PageRank once per week of wg's graph. intervalDecay
// must be in [0, 1]; alpha overrides any WithAlpha option and the seed
// options are ignored. A graph without timestamps yields no results.
// Cancellation of ctx is checked between intervals.
// Complexity: O(W·(V log V + E log E + k·(V + E))) for W weeks.
func TimelinePagerank(ctx context.Context, wg *weights.WeightedGraph, intervalDecay, alpha float64, opts ...Option) ([]IntervalResult, error) {
	if wg == nil || wg.Graph == nil {
		return nil, ErrNilWeightedGraph
	}
	if !(intervalDecay >= 0 && intervalDecay <= 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidIntervalDecay, intervalDecay)
	}
	o := resolveOptions(opts)
	o.Alpha = alpha
	ctx, span := tracer.Start(ctx, "attribution.TimelinePagerank",
		trace.WithAttributes(
			attribute.Int("node_count", wg.Graph.NodeCount()),
			attribute.Int("edge_count", wg.Graph.EdgeCount()),
			attribute.Float64("alpha", alpha),
			attribute.Float64("interval_decay", intervalDecay),
		),
	)
	defer span.End()

	results, err := timelinePagerank(ctx, wg, intervalDecay, o)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("interval_count", len(results)))

	return results, nil
}

func timelinePagerank(ctx context.Context, wg *weights.WeightedGraph, decay float64, o Options) ([]IntervalResult, error) {
	nodeWeight, edgeWeight, err := wg.Evaluators()
	if err != nil {
		return nil, err
	}
	partitions, err := interval.PartitionGraph(wg.Graph)
	if err != nil {
		return nil, err
	}
	if len(partitions) == 0 {
		return nil, nil
	}
	order, err := NodeOrder(wg.Graph)
	if err != nil {
		return nil, err
	}

	nodeWeights := make(map[address.NodeAddress]float64)
	edgeWeights := make(map[address.EdgeAddress]weights.EdgeWeight)
	// Unborn edges resolve to the zero weight.
	current := func(e core.Edge) weights.EdgeWeight { return edgeWeights[e.Address] }

	results := make([]IntervalResult, 0, len(partitions))
	var pi0 markov.Distribution
	for k, part := range partitions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// 1) Decay what exists, then add this week's births at full weight
		for a, v := range nodeWeights {
			nodeWeights[a] = v * decay
		}
		for a, w := range edgeWeights {
			edgeWeights[a] = weights.EdgeWeight{Forwards: w.Forwards * decay, Backwards: w.Backwards * decay}
		}
		for _, n := range part.Nodes {
			nodeWeights[n.Address] = nodeWeight(n.Address)
		}
		for _, e := range part.Edges {
			edgeWeights[e.Address] = edgeWeight(e)
		}

		// 2) Stationary distribution of this week's chain
		res, err := intervalResult(ctx, wg, current, order, nodeWeights, pi0, o, k, part.Interval)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
		pi0 = res.Distribution
	}

	return results, nil
}

func intervalResult(
	ctx context.Context,
	wg *weights.WeightedGraph,
	edgeWeight weights.EdgeEvaluator,
	order []address.NodeAddress,
	nodeWeights map[address.NodeAddress]float64,
	pi0 markov.Distribution,
	o Options,
	k int,
	iv interval.Interval,
) (IntervalResult, error) {
	_, span := tracer.Start(ctx, "attribution.interval",
		trace.WithAttributes(
			attribute.Int("index", k),
			attribute.Int64("start_time_ms", iv.StartTimeMs),
			attribute.Int64("end_time_ms", iv.EndTimeMs),
		),
	)
	defer span.End()

	ntc, err := CreateConnections(wg.Graph, edgeWeight, wg.SyntheticLoopWeight)
	if err != nil {
		return IntervalResult{}, err
	}
	osmc, err := CreateOrderedSparseMarkovChain(ntc)
	if err != nil {
		return IntervalResult{}, err
	}
	seed, err := WeightedDistribution(order, nodeWeights)
	if err != nil {
		return IntervalResult{}, err
	}
	if pi0 == nil {
		pi0 = seed
	}
	sr, err := markov.FindStationaryDistribution(osmc.NormalizeNeighbors().Chain, o.stationaryOptions(seed, pi0)...)
	if err != nil {
		return IntervalResult{}, err
	}
	span.SetAttributes(
		attribute.Int("iterations", sr.Iterations),
		attribute.Bool("converged", sr.Converged),
	)
	report(o, "timeline", sr.Converged, sr.Iterations, sr.Delta,
		zap.Int("interval", k),
		zap.Int64("start_time_ms", iv.StartTimeMs),
	)

	var total float64
	for _, a := range order {
		total += nodeWeights[a]
	}

	return IntervalResult{
		Interval:       iv,
		IntervalWeight: total,
		Distribution:   sr.Pi,
		Converged:      sr.Converged,
		Iterations:     sr.Iterations,
		Delta:          sr.Delta,
	}, nil
}

// DistributionToCred rescales every interval's distribution so that the
// nodes matching any of scoringPrefixes sum to the interval weight; the
// other nodes are scaled by the same factor. An interval whose scoring
// nodes have zero score yields zero cred. Fails with ErrNoScoringNodes when
// no node of order matches.
// Complexity: O(W·V·P) for P prefixes.
func DistributionToCred(results []IntervalResult, order []address.NodeAddress, scoringPrefixes []address.NodeAddress) ([]IntervalCred, error) {
	var scoring []int
	for i, a := range order {
		if slices.ContainsFunc(scoringPrefixes, a.HasPrefix) {
			scoring = append(scoring, i)
		}
	}
	if len(scoring) == 0 {
		return nil, ErrNoScoringNodes
	}
	if len(results) == 0 {
		return nil, nil
	}

	out := make([]IntervalCred, len(results))
	for t, r := range results {
		if len(r.Distribution) != len(order) {
			return nil, fmt.Errorf("%w: interval %d has %d entries for %d nodes", ErrDimensionMismatch, t, len(r.Distribution), len(order))
		}
		var mass float64
		for _, i := range scoring {
			mass += r.Distribution[i]
		}
		var normalizer float64
		if mass != 0 {
			normalizer = r.IntervalWeight / mass
		}
		cred := make([]float64, len(order))
		floats.ScaleTo(cred, normalizer, r.Distribution)
		out[t] = IntervalCred{Interval: r.Interval, Cred: cred}
	}

	return out, nil
}

// TimelineCredResult is the cred time series of every node.
type TimelineCredResult struct {
	NodeOrder []address.NodeAddress
	Intervals []IntervalCred
	Params    config.Params
}

// TotalCred sums each node's cred over all intervals.
func (r *TimelineCredResult) TotalCred() NodeDistribution {
	out := make(NodeDistribution, len(r.NodeOrder))
	for i, a := range r.NodeOrder {
		var sum float64
		for _, iv := range r.Intervals {
			sum += iv.Cred[i]
		}
		out[a] = sum
	}

	return out
}

// CredOf returns the per-interval cred of a.
func (r *TimelineCredResult) CredOf(a address.NodeAddress) ([]float64, bool) {
	i, ok := slices.BinarySearch(r.NodeOrder, a)
	if !ok {
		return nil, false
	}
	out := make([]float64, len(r.Intervals))
	for t, iv := range r.Intervals {
		out[t] = iv.Cred[i]
	}

	return out, true
}

// TimelineCred runs TimelinePagerank with params and converts the result to
// cred. params.ConvergenceThreshold and params.MaxIterations apply unless
// opts override them. The loop weight is wg's; build wg with
// params.WeightedGraph to apply params.SyntheticLoopWeight.
func TimelineCred(ctx context.Context, wg *weights.WeightedGraph, params config.Params, opts ...Option) (*TimelineCredResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	prefixes, err := params.ScoringPrefixes()
	if err != nil {
		return nil, err
	}
	if wg == nil || wg.Graph == nil {
		return nil, ErrNilWeightedGraph
	}
	opts = append([]Option{
		WithConvergenceThreshold(params.ConvergenceThreshold),
		WithMaxIterations(params.MaxIterations),
	}, opts...)
	results, err := TimelinePagerank(ctx, wg, params.IntervalDecay, params.Alpha, opts...)
	if err != nil {
		return nil, err
	}
	order, err := NodeOrder(wg.Graph)
	if err != nil {
		return nil, err
	}
	cred, err := DistributionToCred(results, order, prefixes)
	if err != nil {
		return nil, err
	}

	return &TimelineCredResult{NodeOrder: order, Intervals: cred, Params: params}, nil
}
