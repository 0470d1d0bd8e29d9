// SPDX-License-Identifier: MIT

// Package attribution turns a weighted graph into cred.
//
// A random walker moves along edges: forwards (Src to Dst) in proportion to
// an edge's forwards weight and backwards in proportion to its backwards
// weight, plus a small synthetic self-loop ε on every node so no node is a
// sink. The walker's stationary distribution, with teleportation to a seed,
// is the PageRank score of every node.
//
// Pipeline:
//
//	CreateConnections(g, edgeEval, ε)        // per-node incoming transitions, with provenance
//	CreateOrderedSparseMarkovChain(ntc)      // indexed markov.Chain in address order
//	WeightedDistribution(order, weights)     // seed vector
//	markov.FindStationaryDistribution(...)   // π
//	Decompose(π, ntc)                        // which connection carried how much score
//
// Pagerank runs the whole pipeline. TimelinePagerank runs it once per UTC
// week with weights that decay as they age, and DistributionToCred rescales
// each week so that the scoring nodes (matched by address prefix) share that
// week's total node weight. TimelineCred composes both from config.Params.
//
// Observability: the entry points log through an injected *zap.Logger
// (WithLogger), open OpenTelemetry spans on the global tracer provider, and
// record runs into Prometheus collectors (NewMetrics, WithMetrics). The
// lower layers (core, weights, markov) never log.
//
// Errors:
//
//	ErrInvalidLoopWeight     - ε negative, NaN or infinite
//	ErrZeroOutWeight         - a node the walker could never leave
//	ErrUnknownNode           - connection or score for a node outside the order
//	ErrTooManyNodes          - more nodes than uint32 indices
//	ErrInvalidOrder          - Permute order is not a permutation
//	ErrInvalidSeedWeight     - negative, NaN or infinite seed weight
//	ErrUnknownSeedNode       - seed weight for a node outside the order
//	ErrDimensionMismatch     - distribution length differs from the order
//	ErrNoScoringNodes        - "no nodes matched scoringNodePrefix"
//	ErrZeroScoringMass       - ScoreByConstantTotal over zero-score nodes
//	ErrInvalidTotal          - ScoreByConstantTotal total not finite and ≥ 0
//	ErrInvalidIntervalDecay  - decay outside [0, 1]
//	ErrNilWeightedGraph      - nil input
//
// PageRank non-convergence is never an error; results carry Converged,
// Iterations and Delta.
package attribution
