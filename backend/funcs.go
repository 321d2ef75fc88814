// SPDX-License-Identifier: MIT

package backend

import "github.com/katalvlaran/lapx/matrix"

// Funcs adapts four loose routine bindings into a Backend[T]. It exists
// so the complex instantiations (and alternative real implementations,
// e.g. cgo LAPACKE or netlib wrappers) can be wired without this package
// depending on them: fill the fields with thin closures that translate
// to the routine set at hand (cgetrf/zgetrf, cungqr/zungqr, ...) and
// return LAPACKE-style status codes with 0-based pivots.
//
// All four bindings are required. Calling a method whose binding is nil
// is a programmer error and panics; user-triggered failures must come
// back as status codes from the bindings themselves.
type Funcs[T matrix.Scalar] struct {
	LUFunc       func(o matrix.Order, m, n int, a []T, lda int, ipiv []int) int
	LUInvertFunc func(o matrix.Order, n int, a []T, lda int, ipiv []int) int
	QRFunc       func(o matrix.Order, m, n int, a []T, lda int, tau []T) int
	FormQFunc    func(o matrix.Order, m, n, k int, a []T, lda int, tau []T) int
}

// LU implements Backend.LU through LUFunc.
func (f Funcs[T]) LU(o matrix.Order, m, n int, a []T, lda int, ipiv []int) int {
	if f.LUFunc == nil {
		panic("backend: Funcs.LUFunc binding is nil")
	}
	return f.LUFunc(o, m, n, a, lda, ipiv)
}

// LUInvert implements Backend.LUInvert through LUInvertFunc.
func (f Funcs[T]) LUInvert(o matrix.Order, n int, a []T, lda int, ipiv []int) int {
	if f.LUInvertFunc == nil {
		panic("backend: Funcs.LUInvertFunc binding is nil")
	}
	return f.LUInvertFunc(o, n, a, lda, ipiv)
}

// QR implements Backend.QR through QRFunc.
func (f Funcs[T]) QR(o matrix.Order, m, n int, a []T, lda int, tau []T) int {
	if f.QRFunc == nil {
		panic("backend: Funcs.QRFunc binding is nil")
	}
	return f.QRFunc(o, m, n, a, lda, tau)
}

// FormQ implements Backend.FormQ through FormQFunc.
func (f Funcs[T]) FormQ(o matrix.Order, m, n, k int, a []T, lda int, tau []T) int {
	if f.FormQFunc == nil {
		panic("backend: Funcs.FormQFunc binding is nil")
	}
	return f.FormQFunc(o, m, n, k, a, lda, tau)
}
