// SPDX-License-Identifier: MIT
// File: chain.go
// Role: Sparse column-stored Markov chains and their structural transforms.
// Determinism:
//   - NormalizeNeighbors uses a stable sort; equal neighbors are summed in
//     their original order.

package markov

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Row lists the incoming transitions of one state: for every j,
// the walk moves from state Neighbor[j] to this state with probability
// Weight[j].
type Row struct {
	Neighbor []uint32
	Weight   []float64
}

// Chain is a sparse Markov chain stored by destination: Chain[v] holds the
// transitions into v. The underlying transition matrix is row-stochastic,
// so for every source u the weights filed under neighbor u, across all
// rows, sum to 1.
type Chain []Row

// Len returns the number of states.
func (c Chain) Len() int { return len(c) }

// Validate checks the structure of c and that every source's outgoing mass
// is within tol of 1.
// Complexity: O(nnz).
func (c Chain) Validate(tol float64) error {
	n := len(c)
	outMass := make([]float64, n)
	for v, row := range c {
		if len(row.Neighbor) != len(row.Weight) {
			return fmt.Errorf("%w: row %d has %d neighbors and %d weights", ErrInvalidChain, v, len(row.Neighbor), len(row.Weight))
		}
		for j, u := range row.Neighbor {
			w := row.Weight[j]
			if int(u) >= n {
				return fmt.Errorf("%w: row %d neighbor %d out of range", ErrInvalidChain, v, u)
			}
			if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
				return fmt.Errorf("%w: row %d weight %v", ErrInvalidChain, v, w)
			}
			outMass[u] += w
		}
	}
	for u, m := range outMass {
		if math.Abs(m-1) > tol {
			return fmt.Errorf("%w: state %d has outgoing mass %v", ErrInvalidChain, u, m)
		}
	}

	return nil
}

// NormalizeNeighbors returns a copy of c whose rows list neighbors in
// ascending order, with duplicate neighbors combined.
// Complexity: O(nnz log d) for maximum row length d.
func NormalizeNeighbors(c Chain) Chain {
	out := make(Chain, len(c))
	type entry struct {
		neighbor uint32
		weight   float64
	}
	for v, row := range c {
		entries := make([]entry, len(row.Neighbor))
		for j := range row.Neighbor {
			entries[j] = entry{row.Neighbor[j], row.Weight[j]}
		}
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].neighbor < entries[j].neighbor })

		nr := Row{Neighbor: make([]uint32, 0, len(entries)), Weight: make([]float64, 0, len(entries))}
		for _, e := range entries {
			last := len(nr.Neighbor) - 1
			if last >= 0 && nr.Neighbor[last] == e.neighbor {
				nr.Weight[last] += e.weight
				continue
			}
			nr.Neighbor = append(nr.Neighbor, e.neighbor)
			nr.Weight = append(nr.Weight, e.weight)
		}
		out[v] = nr
	}

	return out
}

// Permute relabels the states of c: state i becomes state newIndexOf[i].
// Both rows and neighbor indices are remapped; rows are not re-sorted.
// Complexity: O(n + nnz).
func Permute(c Chain, newIndexOf []int) (Chain, error) {
	n := len(c)
	if len(newIndexOf) != n {
		return nil, fmt.Errorf("%w: %d indices for %d states", ErrInvalidPermutation, len(newIndexOf), n)
	}
	seen := make([]bool, n)
	for i, j := range newIndexOf {
		if j < 0 || j >= n || seen[j] {
			return nil, fmt.Errorf("%w: state %d maps to %d", ErrInvalidPermutation, i, j)
		}
		seen[j] = true
	}
	out := make(Chain, n)
	for v, row := range c {
		nr := Row{Neighbor: make([]uint32, len(row.Neighbor)), Weight: append([]float64(nil), row.Weight...)}
		for j, u := range row.Neighbor {
			if int(u) >= n {
				return nil, fmt.Errorf("%w: row %d neighbor %d out of range", ErrInvalidChain, v, u)
			}
			nr.Neighbor[j] = uint32(newIndexOf[u])
		}
		out[newIndexOf[v]] = nr
	}

	return out, nil
}

// FromTransitionMatrix converts a dense row-stochastic matrix, m[u][v] =
// P(u → v), into a Chain. Zero entries are dropped. Stochasticity is not
// checked; call Validate.
// Complexity: O(n²).
func FromTransitionMatrix(m mat.Matrix) (Chain, error) {
	r, cols := m.Dims()
	if r != cols {
		return nil, fmt.Errorf("%w: transition matrix is %dx%d", ErrDimensionMismatch, r, cols)
	}
	if uint64(r) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d states exceed uint32 indices", ErrDimensionMismatch, r)
	}
	out := make(Chain, r)
	for v := 0; v < r; v++ {
		for u := 0; u < r; u++ {
			w := m.At(u, v)
			if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, fmt.Errorf("%w: entry (%d,%d) = %v", ErrInvalidChain, u, v, w)
			}
			if w == 0 {
				continue
			}
			out[v].Neighbor = append(out[v].Neighbor, uint32(u))
			out[v].Weight = append(out[v].Weight, w)
		}
	}

	return out, nil
}

// TransitionMatrix returns the dense row-stochastic matrix of c, m[u][v] =
// P(u → v). Intended for inspection and tests on small chains.
// Complexity: O(n² + nnz).
func TransitionMatrix(c Chain) *mat.Dense {
	n := len(c)
	if n == 0 {
		return &mat.Dense{}
	}
	m := mat.NewDense(n, n, nil)
	for v, row := range c {
		for j, u := range row.Neighbor {
			m.Set(int(u), v, m.At(int(u), v)+row.Weight[j])
		}
	}

	return m
}

// OutMass returns, for every source state, the total weight leaving it.
func OutMass(c Chain) []float64 {
	out := make([]float64, len(c))
	for _, row := range c {
		for j, u := range row.Neighbor {
			out[u] += row.Weight[j]
		}
	}

	return out
}
