// SPDX-License-Identifier: MIT
// Package factor: the LU factor set.
//
// FactorizeLU resolves the input's layout, runs the backend's pivoted LU,
// and wraps the packed (matrix, pivot) pair. L, U, Perm, Reconstruct and
// Inverse are pure derivations from that immutable stored state.

package factor

import (
	"github.com/katalvlaran/lapx/backend"
	"github.com/katalvlaran/lapx/matrix"
)

// LU owns the packed output of a pivoted LU factorization of an m×n
// matrix A: P·L·U = A with L m×min(m,n) unit-lower-trapezoidal, U
// min(m,n)×n upper-trapezoidal and P a row permutation. Never mutated
// after construction; all methods allocate fresh outputs.
type LU[T matrix.Scalar] struct {
	packed     *matrix.Dense[T]   // backend-overwritten factor storage, exclusively owned
	perm       *Permutation       // pivot sequence emitted by the backend
	be         backend.Backend[T] // oracle used for the inversion path
	m, n       int                // dimensions of the original matrix
	singularAt int                // 0 = regular; else 1-based first zero pivot
}

// FactorizeLU computes the LU factor set of a. The input is cloned first
// (the factor set takes exclusive ownership of its packed storage) and is
// never modified.
//
// Returns:
//   - matrix.ErrNilMatrix / ErrNilBackend on nil inputs.
//   - matrix.ErrBadLayout when no backend-compatible layout exists.
//   - *ParameterError when the backend flags an argument (negative info);
//     this cannot occur through valid call sites and is never retried.
//
// A positive backend status (exactly-zero pivot) is NOT a constructor
// failure: the factorization is complete, reconstruction is exact, and
// the condition is reported through Singular and by Inverse.
func FactorizeLU[T matrix.Scalar](a *matrix.Dense[T], be backend.Backend[T]) (*LU[T], error) {
	if a == nil {
		return nil, factorErrorf("FactorizeLU", matrix.ErrNilMatrix)
	}
	if be == nil {
		return nil, factorErrorf("FactorizeLU", ErrNilBackend)
	}
	packed := a.Clone()
	ord, lda, flat, err := matrix.Resolve(packed)
	if err != nil {
		return nil, factorErrorf("FactorizeLU", err)
	}
	m, n := packed.Rows(), packed.Cols()
	ipiv := make([]int, min(m, n))
	info := be.LU(ord, m, n, flat, lda, ipiv)
	if info < 0 {
		return nil, &ParameterError{Op: "LU", Index: -info}
	}
	return &LU[T]{
		packed:     packed,
		perm:       FromPivots(ipiv),
		be:         be,
		m:          m,
		n:          n,
		singularAt: info,
	}, nil
}

// Rows returns the row count of the original matrix.
func (f *LU[T]) Rows() int { return f.m }

// Cols returns the column count of the original matrix.
func (f *LU[T]) Cols() int { return f.n }

// k is the shared factor dimension min(m, n).
func (f *LU[T]) k() int { return min(f.m, f.n) }

// Singular reports whether the backend hit an exactly-zero pivot. The
// factors and Reconstruct remain valid; Inverse will fail with
// ErrSingular.
func (f *LU[T]) Singular() bool { return f.singularAt > 0 }

// Perm returns the row permutation P of the factorization. The returned
// value shares no mutable state with the factor set.
func (f *LU[T]) Perm() *Permutation { return FromPivots(f.perm.pivots) }

// L returns the m×min(m,n) unit-lower-triangular/trapezoidal factor:
// diagonal exactly one, entries strictly above it exactly zero.
func (f *LU[T]) L() *matrix.Dense[T] {
	l, err := Lower(f.packed, f.k(), true)
	if err != nil {
		panic("factor: LU.L invariant: " + err.Error())
	}
	return l
}

// U returns the min(m,n)×n upper-triangular/trapezoidal factor: entries
// strictly below the diagonal exactly zero.
func (f *LU[T]) U() *matrix.Dense[T] {
	u, err := Upper(f.packed, f.k())
	if err != nil {
		panic("factor: LU.U invariant: " + err.Error())
	}
	return u
}

// Reconstruct returns P·L·U, which equals the original matrix up to
// floating-point rounding (exactly, for exactly-representable inputs).
// The permutation is applied as the inverse transposition replay — the
// elimination pivoted A into the L·U domain, so restoring A replays the
// swaps backwards.
func (f *LU[T]) Reconstruct() (*matrix.Dense[T], error) {
	lu, err := matrix.Mul(f.L(), f.U())
	if err != nil {
		return nil, factorErrorf("Reconstruct", err)
	}
	return PermuteInverse(f.perm, lu)
}

// Inverse returns the inverse of the original matrix, computed by the
// backend from the stored packed factors and pivots.
//
// Returns:
//   - ErrNotSquare  when the original matrix was rectangular.
//   - ErrSingular   when the matrix is exactly singular (positive backend
//     status — a numerical outcome, not a bug).
//   - *ParameterError on a negative backend status.
func (f *LU[T]) Inverse() (*matrix.Dense[T], error) {
	out, err := matrix.NewDense[T](f.m, f.n)
	if err != nil {
		return nil, factorErrorf("Inverse", err)
	}
	if err := f.InverseInto(out); err != nil {
		return nil, err
	}
	return out, nil
}

// InverseInto computes the inverse into dst, which must be an m×m matrix
// with a backend-compatible layout; dst's existing contents are
// overwritten. Same error contract as Inverse, plus
// matrix.ErrDimensionMismatch when dst has the wrong shape and
// matrix.ErrBadLayout when dst is not backend-compatible.
func (f *LU[T]) InverseInto(dst *matrix.Dense[T]) error {
	if dst == nil {
		return factorErrorf("InverseInto", matrix.ErrNilMatrix)
	}
	if f.m != f.n {
		return factorErrorf("InverseInto", ErrNotSquare)
	}
	if dst.Rows() != f.m || dst.Cols() != f.n {
		return factorErrorf("InverseInto", matrix.ErrDimensionMismatch)
	}
	if f.singularAt > 0 {
		// Known zero pivot: fail fast without a backend round-trip.
		return factorErrorf("InverseInto", ErrSingular)
	}
	ord, lda, flat, err := matrix.Resolve(dst)
	if err != nil {
		return factorErrorf("InverseInto", err)
	}
	// Seed dst with the packed factors; the backend inverts in place.
	for i := 0; i < f.m; i++ {
		for j := 0; j < f.n; j++ {
			mustSet(dst, i, j, mustAt(f.packed, i, j))
		}
	}
	info := f.be.LUInvert(ord, f.n, flat, lda, f.perm.pivots)
	switch {
	case info < 0:
		return &ParameterError{Op: "LUInvert", Index: -info}
	case info > 0:
		return factorErrorf("InverseInto", ErrSingular)
	}
	return nil
}
