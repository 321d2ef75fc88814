// SPDX-License-Identifier: MIT
// Package factor: the QR factor set.
//
// FactorizeQR resolves the input's layout, runs the backend's Householder
// QR, and wraps the packed (matrix, tau) pair. Q and R are derived on
// demand: R by triangular carving, Q by the backend's "form Q from
// Householder data" operation over a fresh panel.

package factor

import (
	"github.com/katalvlaran/lapx/backend"
	"github.com/katalvlaran/lapx/matrix"
)

// QR owns the packed output of a Householder QR factorization of an m×n
// matrix A: Q·R = A with Q m×k column-orthonormal and R k×n
// upper-trapezoidal, k = min(m,n). Never mutated after construction; all
// methods allocate fresh outputs.
type QR[T matrix.Scalar] struct {
	packed *matrix.Dense[T]   // R above the diagonal, reflector vectors below
	tau    []T                // Householder scalars, one per reflector
	be     backend.Backend[T] // oracle used to form Q
	m, n   int                // dimensions of the original matrix
}

// FactorizeQR computes the QR factor set of a. The input is cloned first
// (the factor set takes exclusive ownership of its packed storage) and is
// never modified.
//
// Returns:
//   - matrix.ErrNilMatrix / ErrNilBackend on nil inputs.
//   - matrix.ErrBadLayout when no backend-compatible layout exists.
//   - *ParameterError on a nonzero backend status (geqrf has no
//     soft-failure path, so any report is a call-site defect).
func FactorizeQR[T matrix.Scalar](a *matrix.Dense[T], be backend.Backend[T]) (*QR[T], error) {
	if a == nil {
		return nil, factorErrorf("FactorizeQR", matrix.ErrNilMatrix)
	}
	if be == nil {
		return nil, factorErrorf("FactorizeQR", ErrNilBackend)
	}
	packed := a.Clone()
	ord, lda, flat, err := matrix.Resolve(packed)
	if err != nil {
		return nil, factorErrorf("FactorizeQR", err)
	}
	m, n := packed.Rows(), packed.Cols()
	tau := make([]T, min(m, n))
	if info := be.QR(ord, m, n, flat, lda, tau); info != 0 {
		return nil, &ParameterError{Op: "QR", Index: -info}
	}
	return &QR[T]{packed: packed, tau: tau, be: be, m: m, n: n}, nil
}

// Rows returns the row count of the original matrix.
func (f *QR[T]) Rows() int { return f.m }

// Cols returns the column count of the original matrix.
func (f *QR[T]) Cols() int { return f.n }

// k is the reflector count min(m, n).
func (f *QR[T]) k() int { return min(f.m, f.n) }

// Tau returns a copy of the Householder scalar vector.
func (f *QR[T]) Tau() []T {
	out := make([]T, len(f.tau))
	copy(out, f.tau)
	return out
}

// Q returns the first k columns of the orthonormal factor: an m×k matrix
// whose columns form an orthonormal basis spanning (for k ≥ min(m,n)) the
// column space of A. k may run up to m; columns beyond the reflector
// count extend the basis orthonormally.
//
// Returns:
//   - ErrInconsistentDimensions when k is outside [0, m].
//   - *ParameterError when the backend rejects the panel (negative info,
//     translated as-is via negation — unreachable from valid state).
func (f *QR[T]) Q(k int) (*matrix.Dense[T], error) {
	if k < 0 || k > f.m {
		return nil, factorErrorf("Q", ErrInconsistentDimensions)
	}
	q, err := matrix.NewDense[T](f.m, k)
	if err != nil {
		return nil, factorErrorf("Q", err)
	}
	if k == 0 {
		return q, nil
	}

	// Seed the panel with the reflector columns of the packed matrix; the
	// backend overwrites it with Q. Columns past the reflector count stay
	// zero — orgqr only reads the first p of them.
	p := min(k, f.n)
	for i := 0; i < f.m; i++ {
		for j := 0; j < p; j++ {
			mustSet(q, i, j, mustAt(f.packed, i, j))
		}
	}
	ord, lda, flat, err := matrix.Resolve(q)
	if err != nil {
		return nil, factorErrorf("Q", err)
	}
	if info := f.be.FormQ(ord, f.m, k, p, flat, lda, f.tau[:p]); info != 0 {
		return nil, &ParameterError{Op: "FormQ", Index: -info}
	}
	return q, nil
}

// QThin returns Q(min(m,n)) — the smallest Q that still reconstructs the
// original matrix faithfully.
func (f *QR[T]) QThin() (*matrix.Dense[T], error) { return f.Q(f.k()) }

// R returns the first k rows of the upper triangular/trapezoidal factor
// as a k×n matrix; entries strictly below the diagonal are exactly zero.
//
// Returns ErrInconsistentDimensions when k is outside [0, min(m,n)].
func (f *QR[T]) R(k int) (*matrix.Dense[T], error) {
	r, err := Upper(f.packed, k)
	if err != nil {
		return nil, factorErrorf("R", err)
	}
	return r, nil
}

// RThin returns R(min(m,n)) — the companion of QThin.
func (f *QR[T]) RThin() (*matrix.Dense[T], error) { return f.R(f.k()) }

// Reconstruct returns QThin()·RThin(), which equals the original matrix
// up to floating-point rounding.
func (f *QR[T]) Reconstruct() (*matrix.Dense[T], error) {
	q, err := f.QThin()
	if err != nil {
		return nil, err
	}
	r, err := f.RThin()
	if err != nil {
		return nil, err
	}
	out, err := matrix.Mul(q, r)
	if err != nil {
		return nil, factorErrorf("Reconstruct", err)
	}
	return out, nil
}
