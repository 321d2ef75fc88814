// SPDX-License-Identifier: MIT
// Package matrix: support kernels used by factor derivation and checks.
//
// Purpose:
//   - Mul powers the reconstruction identities (P·L·U = A, Q·R = A).
//   - ConjTranspose and Eye power the orthonormality check (Qᴴ·Q = I).
//   - EqualApprox is the tolerance comparison every regression test uses.
//
// Notes:
//   - Mul routes the float64 instantiation through BLAS (blas64.Gemm);
//     every other instantiation uses the generic i→k→j kernel. The two
//     paths produce identical shapes and fresh row-major outputs.

package matrix

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// Mul returns the matrix product a·b as a fresh row-major matrix.
//
// Returns:
//   - ErrNilMatrix         when a or b is nil.
//   - ErrDimensionMismatch when a.Cols() != b.Rows().
//
// Complexity: O(m·k·n); one output allocation (plus compaction copies for
// strided operands on the BLAS path).
func Mul[T Scalar](a, b *Dense[T]) (*Dense[T], error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.cols != b.rows {
		return nil, ErrDimensionMismatch
	}
	out, err := NewDense[T](a.rows, b.cols)
	if err != nil {
		return nil, err
	}
	if a.rows == 0 || b.cols == 0 || a.cols == 0 {
		return out, nil // nothing to accumulate
	}

	// float64 fast path through BLAS; operands are compacted first so the
	// General descriptors are legal for any incoming stride pattern.
	if af, ok := any(a).(*Dense[float64]); ok {
		bf := any(b).(*Dense[float64])
		cf := any(out).(*Dense[float64])
		ag, bg := af.compactRowMajor(), bf.compactRowMajor()
		blas64.Gemm(blas.NoTrans, blas.NoTrans, 1,
			blas64.General{Rows: ag.rows, Cols: ag.cols, Stride: ag.cols, Data: ag.data},
			blas64.General{Rows: bg.rows, Cols: bg.cols, Stride: bg.cols, Data: bg.data},
			0,
			blas64.General{Rows: cf.rows, Cols: cf.cols, Stride: cf.cols, Data: cf.data})
		return out, nil
	}

	// Generic kernel; i→k→j order walks b and out along contiguous rows.
	for i := 0; i < a.rows; i++ {
		for k := 0; k < a.cols; k++ {
			av := a.data[a.idx(i, k)]
			if av == Zero[T]() {
				continue // skip zero rows-of-work; common in triangular factors
			}
			for j := 0; j < b.cols; j++ {
				out.data[i*out.cols+j] += av * b.data[b.idx(k, j)]
			}
		}
	}
	return out, nil
}

// ConjTranspose returns the conjugate transpose as a fresh row-major
// matrix (a plain transpose copy for the real instantiations). Unlike
// Transpose it never shares storage with the receiver.
func (m *Dense[T]) ConjTranspose() *Dense[T] {
	out := &Dense[T]{rows: m.cols, cols: m.rows, rs: m.rows, cs: 1, data: make([]T, m.rows*m.cols)}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j*out.cols+i] = Conj(m.data[m.idx(i, j)])
		}
	}
	return out
}

// Eye returns the n×n identity matrix (row-major).
func Eye[T Scalar](n int) (*Dense[T], error) {
	out, err := NewDense[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		out.data[i*n+i] = One[T]()
	}
	return out, nil
}

// EqualApprox reports whether a and b have identical shape and every
// element pair differs by at most tol in magnitude. A nil operand never
// compares equal (even to another nil): there is no shape to agree on.
func EqualApprox[T Scalar](a, b *Dense[T], tol float64) bool {
	if a == nil || b == nil {
		return false
	}
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			if Abs(a.data[a.idx(i, j)]-b.data[b.idx(i, j)]) > tol {
				return false
			}
		}
	}
	return true
}
