// SPDX-License-Identifier: MIT
// Package markov: sentinel error set.
// All functions return these sentinels (optionally wrapped with context via
// fmt.Errorf("...: %w", ErrX)); callers match them with errors.Is.

package markov

import "errors"

var (
	// ErrInvalidChain indicates a chain that is not a valid column-stored
	// transition matrix: ragged rows, out-of-range neighbors, negative or
	// non-finite weights, or a source whose outgoing mass is not 1.
	ErrInvalidChain = errors.New("markov: invalid chain")

	// ErrDimensionMismatch indicates vectors or matrices whose size does not
	// match the chain.
	ErrDimensionMismatch = errors.New("markov: dimension mismatch")

	// ErrInvalidDistribution indicates a vector that is not a probability
	// distribution (negative or non-finite entries, or mass other than 1).
	ErrInvalidDistribution = errors.New("markov: invalid distribution")

	// ErrInvalidOptions indicates options rejected by validation.
	ErrInvalidOptions = errors.New("markov: invalid options")

	// ErrInvalidPermutation indicates an index map that is not a permutation.
	ErrInvalidPermutation = errors.New("markov: invalid permutation")
)
