// SPDX-License-Identifier: MIT

package backend

import "github.com/katalvlaran/lapx/matrix"

// Backend is the set of factorization entry points this layer consumes,
// parameterized over the element type. All buffers are flat slices in the
// storage order o with leading dimension lda, exactly as produced by
// matrix.Resolve. Methods overwrite a in place (packed results) and
// return a LAPACKE-style status code; see the package documentation.
type Backend[T matrix.Scalar] interface {
	// LU computes the packed LU factorization with partial pivoting
	// (getrf) of the m×n matrix in a, writing L below and U on/above the
	// diagonal and the pivot sequence into ipiv (length ≥ min(m,n)).
	// info > 0 reports the first exactly-zero pivot; the factorization is
	// still complete and reconstructable.
	LU(o matrix.Order, m, n int, a []T, lda int, ipiv []int) int

	// LUInvert overwrites the packed LU factorization of an n×n matrix
	// with the inverse of the original matrix (getri). info > 0 means the
	// matrix is exactly singular and no inverse exists.
	LUInvert(o matrix.Order, n int, a []T, lda int, ipiv []int) int

	// QR computes the packed QR factorization (geqrf) of the m×n matrix
	// in a: R on/above the diagonal, Householder vectors below, scalars
	// in tau (length ≥ min(m,n)).
	QR(o matrix.Order, m, n int, a []T, lda int, tau []T) int

	// FormQ overwrites the leading m×n panel of a with the first n
	// columns of the orthonormal factor Q, generated from the k
	// Householder reflectors stored in a and tau (orgqr/ungqr).
	// Requires 0 ≤ k ≤ n ≤ m.
	FormQ(o matrix.Order, m, n, k int, a []T, lda int, tau []T) int
}
