// SPDX-License-Identifier: MIT

// Package credrank is an in-memory cred attribution engine: a typed
// multigraph of contributions and a PageRank kernel that turns weighted
// edges into per-node, per-week scores.
//
// Packages:
//
//	address/     - NodeAddress / EdgeAddress: ordered, prefix-comparable keys
//	trie/        - values keyed by address prefixes
//	core/        - Graph with dangling edges, lazy iterators, merge, contraction, JSON
//	weights/     - node and edge weights by prefix, evaluators, WeightedGraph
//	interval/    - UTC week intervals and graph partitioning by creation time
//	markov/      - sparse chain and seeded power iteration (gonum)
//	attribution/ - graph to chain, PageRank, decomposition, timeline cred
//	config/      - YAML parameters for the attribution pipeline
//	builder/     - deterministic fixture graphs for tests and benchmarks
//
// Quick example (a cites b):
//
//	a ──cites──▶ b
//
//	wg, _ := weights.NewWeightedGraph(g, weights.Empty(), 1e-3)
//	res, _ := attribution.Pagerank(ctx, wg)
//	res.Scores[b] > res.Scores[a]
//
// The graph layers never log. attribution logs through zap, opens
// OpenTelemetry spans and records Prometheus metrics when asked to.
package credrank
