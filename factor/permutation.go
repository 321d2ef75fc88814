// SPDX-License-Identifier: MIT
// Package factor: compact representation of pivoted row exchanges.
//
// The representation mimics the backend's ipiv output: pivots[i] is the
// absolute row exchanged with row i at step i, 0-based, self-swaps being
// no-ops. Application is defined as REPLAYING that transposition
// sequence — it is not a one-shot index permutation, and replaying out of
// order produces a different, generally incorrect result. The inverse is
// the same sequence replayed backwards.

package factor

import "github.com/katalvlaran/lapx/matrix"

// Permutation is an immutable sequence of row transpositions as emitted
// by a pivoted factorization. The zero value is the empty permutation.
type Permutation struct {
	pivots []int
}

// FromPivots builds a Permutation from a backend pivot vector (0-based
// absolute row indices, one per elimination step). The slice is copied.
// Range validation happens at application time, against the target's
// actual row count.
func FromPivots(pivots []int) *Permutation {
	p := &Permutation{pivots: make([]int, len(pivots))}
	copy(p.pivots, pivots)
	return p
}

// Len returns the number of transposition steps.
func (p *Permutation) Len() int { return len(p.pivots) }

// Pivots returns a copy of the pivot sequence in the backend's 0-based
// convention.
func (p *Permutation) Pivots() []int {
	out := make([]int, len(p.pivots))
	copy(out, p.pivots)
	return out
}

// validate checks the step count and every pivot against [0, rows).
func (p *Permutation) validate(rows int) error {
	if len(p.pivots) > rows {
		// More steps than rows: step indices themselves would run off the
		// matrix.
		return ErrPivotOutOfRange
	}
	for _, piv := range p.pivots {
		if piv < 0 || piv >= rows {
			return ErrPivotOutOfRange
		}
	}
	return nil
}

// Permute replays the transposition sequence in ascending step order on a
// fresh copy of m: for i = 0..Len()-1, swap row i with row pivots[i].
// This is the direction the factorization itself applied while pivoting,
// i.e. Permute(A) lands in the L·U domain.
//
// Returns ErrPivotOutOfRange (before any swap) if a pivot does not
// address a row of m, matrix.ErrNilMatrix on nil input.
// Complexity: O(rows·cols) for the copy plus O(Len·cols) swapping.
func Permute[T matrix.Scalar](p *Permutation, m *matrix.Dense[T]) (*matrix.Dense[T], error) {
	return replay[T](p, m, false)
}

// PermuteInverse replays the transposition sequence in descending step
// order on a fresh copy of m, exactly undoing Permute. This is the
// application of the permutation factor P itself: for a packed LU,
// PermuteInverse(L·U) restores the original matrix.
func PermuteInverse[T matrix.Scalar](p *Permutation, m *matrix.Dense[T]) (*matrix.Dense[T], error) {
	return replay[T](p, m, true)
}

// replay copies m and applies the swaps in the requested direction.
func replay[T matrix.Scalar](p *Permutation, m *matrix.Dense[T], reverse bool) (*matrix.Dense[T], error) {
	if m == nil {
		return nil, factorErrorf("Permute", matrix.ErrNilMatrix)
	}
	if err := p.validate(m.Rows()); err != nil {
		return nil, factorErrorf("Permute", err)
	}
	out := m.Clone()
	if reverse {
		for i := len(p.pivots) - 1; i >= 0; i-- {
			mustSwapRows(out, i, p.pivots[i])
		}
	} else {
		for i := 0; i < len(p.pivots); i++ {
			mustSwapRows(out, i, p.pivots[i])
		}
	}
	return out, nil
}

// mustSwapRows swaps validated rows; failure is an internal invariant
// violation, so it panics rather than surfacing an error.
func mustSwapRows[T matrix.Scalar](m *matrix.Dense[T], i, j int) {
	if err := m.SwapRows(i, j); err != nil {
		panic("factor: internal row swap out of range: " + err.Error())
	}
}
