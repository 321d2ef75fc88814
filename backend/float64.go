// SPDX-License-Identifier: MIT
// Package backend: Float64 — the shipped pure-Go oracle.
//
// Implementation notes:
//   - gonum's LAPACK routines are row-major only and panic on malformed
//     arguments; the guards below run first so malformed calls surface as
//     negative-info data (per the Backend contract) instead of panics,
//     and column-major inputs are converted through a scratch row-major
//     buffer and back (see conv.go).
//   - gonum reports soft failures as ok == false without the LAPACK info
//     index; the index is recovered by scanning the packed diagonal for
//     the first exactly-zero pivot.
//   - Work arrays use the standard lwork = -1 size query before the real
//     call.

package backend

import (
	lapackgonum "gonum.org/v1/gonum/lapack/gonum"

	"github.com/katalvlaran/lapx/matrix"
)

// Float64 implements Backend[float64] on top of gonum's pure-Go LAPACK.
// The zero value is ready to use.
type Float64 struct{}

var _ Backend[float64] = Float64{}

// impl64 is the shared routine set; gonum's Implementation is stateless.
var impl64 = lapackgonum.Implementation{}

// orderOK reports whether o is a valid storage-order tag.
func orderOK(o matrix.Order) bool {
	return o == matrix.RowMajor || o == matrix.ColMajor
}

// firstZeroDiag returns the 1-based index of the first exactly-zero
// diagonal entry of the packed factor in a (leading dimension lda; the
// diagonal offset i*(lda+1) is order-independent), or 0 when none of the
// leading mn diagonal entries is zero.
func firstZeroDiag(mn int, a []float64, lda int) int {
	for i := 0; i < mn; i++ {
		if a[i*lda+i] == 0 { // diagonal offset is i*(lda+1) in either order
			return i + 1
		}
	}
	return 0
}

// LU implements Backend.LU via Dgetrf.
// Argument positions follow LAPACKE_dgetrf: (order, m, n, a, lda, ipiv).
func (Float64) LU(o matrix.Order, m, n int, a []float64, lda int, ipiv []int) int {
	switch {
	case !orderOK(o):
		return -1
	case m < 0:
		return -2
	case n < 0:
		return -3
	case lda < minLDA(o, m, n):
		return -5
	case !spanOK(o, m, n, a, lda):
		return -4
	}
	mn := min(m, n)
	if len(ipiv) < mn {
		return -6
	}
	if mn == 0 {
		return 0
	}

	if o == matrix.RowMajor {
		if impl64.Dgetrf(m, n, a, lda, ipiv[:mn]) {
			return 0
		}
		return firstZeroDiag(mn, a, lda)
	}

	// Column-major: factor a row-major scratch copy, then scatter back.
	b := make([]float64, m*n)
	colToRow(m, n, a, lda, b, n)
	ok := impl64.Dgetrf(m, n, b, n, ipiv[:mn])
	rowToCol(m, n, a, lda, b, n)
	if ok {
		return 0
	}
	return firstZeroDiag(mn, b, n)
}

// LUInvert implements Backend.LUInvert via Dgetri.
// Argument positions follow LAPACKE_dgetri: (order, n, a, lda, ipiv).
func (Float64) LUInvert(o matrix.Order, n int, a []float64, lda int, ipiv []int) int {
	switch {
	case !orderOK(o):
		return -1
	case n < 0:
		return -2
	case lda < minLDA(o, n, n):
		return -4
	case !spanOK(o, n, n, a, lda):
		return -3
	case len(ipiv) < n:
		return -5
	}
	if n == 0 {
		return 0
	}

	buf, ldb := a, lda
	if o == matrix.ColMajor {
		buf, ldb = make([]float64, n*n), n
		colToRow(n, n, a, lda, buf, ldb)
	}

	// An exactly-zero pivot makes the matrix singular; report it before
	// spending the inversion work.
	if info := firstZeroDiag(n, buf, ldb); info != 0 {
		return info
	}

	var query [1]float64
	impl64.Dgetri(n, buf, ldb, ipiv[:n], query[:], -1)
	lwork := max(int(query[0]), n, 1)
	work := make([]float64, lwork)
	ok := impl64.Dgetri(n, buf, ldb, ipiv[:n], work, lwork)

	if o == matrix.ColMajor {
		rowToCol(n, n, a, lda, buf, ldb)
	}
	if !ok {
		return n // unreachable after the diagonal pre-scan; kept defensive
	}
	return 0
}

// QR implements Backend.QR via Dgeqrf. geqrf has no soft-failure path.
// Argument positions follow LAPACKE_dgeqrf: (order, m, n, a, lda, tau).
func (Float64) QR(o matrix.Order, m, n int, a []float64, lda int, tau []float64) int {
	switch {
	case !orderOK(o):
		return -1
	case m < 0:
		return -2
	case n < 0:
		return -3
	case lda < minLDA(o, m, n):
		return -5
	case !spanOK(o, m, n, a, lda):
		return -4
	}
	mn := min(m, n)
	if len(tau) < mn {
		return -6
	}
	if mn == 0 {
		return 0
	}

	buf, ldb := a, lda
	if o == matrix.ColMajor {
		buf, ldb = make([]float64, m*n), n
		colToRow(m, n, a, lda, buf, ldb)
	}

	var query [1]float64
	impl64.Dgeqrf(m, n, buf, ldb, tau[:mn], query[:], -1)
	lwork := max(int(query[0]), n, 1)
	work := make([]float64, lwork)
	impl64.Dgeqrf(m, n, buf, ldb, tau[:mn], work, lwork)

	if o == matrix.ColMajor {
		rowToCol(m, n, a, lda, buf, ldb)
	}
	return 0
}

// FormQ implements Backend.FormQ via Dorgqr.
// Argument positions follow LAPACKE_dorgqr: (order, m, n, k, a, lda, tau).
func (Float64) FormQ(o matrix.Order, m, n, k int, a []float64, lda int, tau []float64) int {
	switch {
	case !orderOK(o):
		return -1
	case m < 0:
		return -2
	case n < 0 || n > m:
		return -3
	case k < 0 || k > n:
		return -4
	case lda < minLDA(o, m, n):
		return -6
	case !spanOK(o, m, n, a, lda):
		return -5
	case len(tau) < k:
		return -7
	}
	if n == 0 {
		return 0
	}
	if k == 0 {
		// Zero reflectors: Q is the first n columns of the identity.
		identityPanel(o, m, n, a, lda)
		return 0
	}

	buf, ldb := a, lda
	if o == matrix.ColMajor {
		buf, ldb = make([]float64, m*n), n
		colToRow(m, n, a, lda, buf, ldb)
	}

	var query [1]float64
	impl64.Dorgqr(m, n, k, buf, ldb, tau[:k], query[:], -1)
	lwork := max(int(query[0]), n, 1)
	work := make([]float64, lwork)
	impl64.Dorgqr(m, n, k, buf, ldb, tau[:k], work, lwork)

	if o == matrix.ColMajor {
		rowToCol(m, n, a, lda, buf, ldb)
	}
	return 0
}

// identityPanel overwrites the m×n panel of a with identity columns.
func identityPanel[T matrix.Scalar](o matrix.Order, m, n int, a []T, lda int) {
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			idx := i*lda + j
			if o == matrix.ColMajor {
				idx = j*lda + i
			}
			if i == j {
				a[idx] = matrix.One[T]()
			} else {
				a[idx] = matrix.Zero[T]()
			}
		}
	}
}
