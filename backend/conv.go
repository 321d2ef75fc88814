// Package backend: storage-order conversion between the column-major
// layout a caller may hold and the row-major layout the pure-Go oracle
// operates in. This mirrors how LAPACKE's row-major entry points convert
// storage around the column-major Fortran core, just in the opposite
// direction.

package backend

import "github.com/katalvlaran/lapx/matrix"

// colToRow gathers the m×n column-major matrix a (leading dimension lda)
// into the row-major buffer b (leading dimension ldb).
func colToRow[T matrix.Scalar](m, n int, a []T, lda int, b []T, ldb int) {
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			b[i*ldb+j] = a[j*lda+i]
		}
	}
}

// rowToCol scatters the m×n row-major matrix b (leading dimension ldb)
// back into the column-major buffer a (leading dimension lda). Inverse of
// colToRow.
func rowToCol[T matrix.Scalar](m, n int, a []T, lda int, b []T, ldb int) {
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			a[j*lda+i] = b[i*ldb+j]
		}
	}
}

// spanOK reports whether the flat buffer a covers an m×n matrix stored in
// order o with leading dimension lda. Used by the argument guards.
func spanOK[T matrix.Scalar](o matrix.Order, m, n int, a []T, lda int) bool {
	if m == 0 || n == 0 {
		return true
	}
	if o == matrix.RowMajor {
		return len(a) >= (m-1)*lda+n
	}
	return len(a) >= (n-1)*lda+m
}

// minLDA returns the smallest legal leading dimension for an m×n matrix
// in order o: the length of the contiguous (minor) dimension, at least 1.
func minLDA(o matrix.Order, m, n int) int {
	d := n
	if o == matrix.ColMajor {
		d = m
	}
	if d < 1 {
		d = 1
	}
	return d
}
