// SPDX-License-Identifier: MIT
// Package factor: triangular/trapezoidal carving of packed factors.
//
// A packed factor matrix encodes two logical factors in one buffer; these
// extractors copy out one side, force the complementary region to exact
// zero, and (for unit-triangular factors) force the diagonal to exact one
// — the backend does not store unit diagonals explicitly.

package factor

import "github.com/katalvlaran/lapx/matrix"

// Lower extracts the m×k lower triangular/trapezoidal factor from the
// packed matrix: entries strictly above the diagonal are exactly zero,
// and when unitDiag is set every diagonal entry is exactly one regardless
// of the packed value.
//
// k = 0 yields an m×0 matrix; k outside [0, min(m, n)] returns
// ErrInconsistentDimensions. A fresh matrix is always allocated.
// Complexity: O(m·k).
func Lower[T matrix.Scalar](packed *matrix.Dense[T], k int, unitDiag bool) (*matrix.Dense[T], error) {
	if packed == nil {
		return nil, factorErrorf("Lower", matrix.ErrNilMatrix)
	}
	m, n := packed.Rows(), packed.Cols()
	if k < 0 || k > min(m, n) {
		return nil, factorErrorf("Lower", ErrInconsistentDimensions)
	}
	out, err := matrix.NewDense[T](m, k)
	if err != nil {
		return nil, factorErrorf("Lower", err)
	}
	for r := 0; r < m; r++ {
		// Columns strictly right of the diagonal stay zero from allocation.
		last := min(r, k-1) // last column of row r inside the lower region
		for c := 0; c <= last; c++ {
			mustSet(out, r, c, mustAt(packed, r, c))
		}
		if unitDiag && r < k {
			mustSet(out, r, r, matrix.One[T]())
		}
	}
	return out, nil
}

// Upper extracts the k×n upper triangular/trapezoidal factor from the
// packed matrix: entries strictly below the diagonal are exactly zero.
//
// k = 0 yields a 0×n matrix; k outside [0, min(m, n)] returns
// ErrInconsistentDimensions. A fresh matrix is always allocated.
// Complexity: O(k·n).
func Upper[T matrix.Scalar](packed *matrix.Dense[T], k int) (*matrix.Dense[T], error) {
	if packed == nil {
		return nil, factorErrorf("Upper", matrix.ErrNilMatrix)
	}
	m, n := packed.Rows(), packed.Cols()
	if k < 0 || k > min(m, n) {
		return nil, factorErrorf("Upper", ErrInconsistentDimensions)
	}
	out, err := matrix.NewDense[T](k, n)
	if err != nil {
		return nil, factorErrorf("Upper", err)
	}
	for r := 0; r < k; r++ {
		// Columns strictly left of the diagonal stay zero from allocation.
		for c := r; c < n; c++ {
			mustSet(out, r, c, mustAt(packed, r, c))
		}
	}
	return out, nil
}

// mustAt reads a loop-bounded index; failure is an internal invariant
// violation and panics.
func mustAt[T matrix.Scalar](m *matrix.Dense[T], r, c int) T {
	v, err := m.At(r, c)
	if err != nil {
		panic("factor: internal read out of range: " + err.Error())
	}
	return v
}

// mustSet writes a loop-bounded index; failure panics, as mustAt.
func mustSet[T matrix.Scalar](m *matrix.Dense[T], r, c int, v T) {
	if err := m.Set(r, c, v); err != nil {
		panic("factor: internal write out of range: " + err.Error())
	}
}
