// SPDX-License-Identifier: MIT

// Package markov implements sparse Markov chains and a seeded power-iteration
// kernel for their stationary distribution.
//
// A Chain is stored by destination: Chain[v] lists every state u that can
// move to v together with P(u → v). This layout makes one iteration step a
// gather over each row (no scatter, no atomics) and lets callers attach
// provenance to every entry of a row.
//
// Core API:
//
//	Chain.Validate(tol)                          // structure + unit out-mass per source
//	NormalizeNeighbors(c) Chain                  // sort rows by neighbor, merge duplicates
//	Permute(c, newIndexOf) (Chain, error)        // relabel states
//	FromTransitionMatrix(mat.Matrix)             // dense gonum input
//	TransitionMatrix(c) *mat.Dense               // dense gonum output
//	Action / ActionInto                          // π' = α·s + (1−α)·Mᵀπ
//	FindStationaryDistribution(c, opts...)       // iterate to ‖π' − π‖∞ ≤ θ
//
// The kernel is single-threaded, allocation-free inside the loop and has no
// cancellation points; callers bound its work with MaxIterations.
package markov
