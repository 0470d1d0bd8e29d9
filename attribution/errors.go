// SPDX-License-Identifier: MIT

package attribution

import "errors"

// Sentinel errors.
var (
	// ErrInvalidLoopWeight indicates a negative, NaN or infinite synthetic loop weight.
	ErrInvalidLoopWeight = errors.New("attribution: invalid synthetic loop weight")

	// ErrZeroOutWeight indicates a node with no outgoing weight at all, which
	// leaves the walk nowhere to go.
	ErrZeroOutWeight = errors.New("attribution: node has zero total out-weight")

	// ErrUnknownNode indicates a connection or score referring to a node outside the node order.
	ErrUnknownNode = errors.New("attribution: unknown node")

	// ErrTooManyNodes indicates a node count that does not fit uint32 chain indices.
	ErrTooManyNodes = errors.New("attribution: too many nodes for chain indices")

	// ErrInvalidOrder indicates a node order that is not a permutation of the chain's order.
	ErrInvalidOrder = errors.New("attribution: invalid node order")

	// ErrInvalidSeedWeight indicates a negative, NaN or infinite seed weight.
	ErrInvalidSeedWeight = errors.New("attribution: invalid seed weight")

	// ErrUnknownSeedNode indicates a seed weight for a node not in the node order.
	ErrUnknownSeedNode = errors.New("attribution: seed weight for node not in order")

	// ErrDimensionMismatch indicates a distribution whose length differs from the node order.
	ErrDimensionMismatch = errors.New("attribution: distribution does not match node order")

	// ErrNoScoringNodes indicates that no node matched any scoring prefix.
	ErrNoScoringNodes = errors.New("attribution: no nodes matched scoringNodePrefix")

	// ErrZeroScoringMass indicates scoring nodes whose total score is zero.
	ErrZeroScoringMass = errors.New("attribution: scoring nodes have zero total score")

	// ErrInvalidTotal indicates a negative, NaN or infinite score total.
	ErrInvalidTotal = errors.New("attribution: invalid score total")

	// ErrInvalidIntervalDecay indicates an interval decay outside [0, 1].
	ErrInvalidIntervalDecay = errors.New("attribution: interval decay must be in [0, 1]")

	// ErrNilWeightedGraph indicates a nil weighted graph or one without a graph.
	ErrNilWeightedGraph = errors.New("attribution: weighted graph is nil")
)
