// SPDX-License-Identifier: MIT

package backend

import "github.com/katalvlaran/lapx/matrix"

// Float32 implements Backend[float32] by promoting buffers to float64,
// running the Float64 oracle, and demoting the packed results. No
// pure-Go single-precision LAPACK exists in the ecosystem; callers that
// link dedicated s-routines (cgo LAPACKE) can supply them through
// Funcs[float32] instead. Results agree with a native single-precision
// routine set within float32 rounding, which the factor-set tolerance
// contracts absorb.
//
// Argument guards, status codes and positions are inherited verbatim
// from Float64: buffer lengths and leading dimensions are preserved by
// the promotion, so the same call is legal or illegal on both sides.
type Float32 struct{}

var _ Backend[float32] = Float32{}

// promote copies a into a fresh float64 slice of the same length.
func promote(a []float32) []float64 {
	b := make([]float64, len(a))
	for i, v := range a {
		b[i] = float64(v)
	}
	return b
}

// demote copies b back into a, rounding to float32.
func demote(a []float32, b []float64) {
	for i, v := range b {
		a[i] = float32(v)
	}
}

// LU implements Backend.LU.
func (Float32) LU(o matrix.Order, m, n int, a []float32, lda int, ipiv []int) int {
	a64 := promote(a)
	info := Float64{}.LU(o, m, n, a64, lda, ipiv)
	demote(a, a64)
	return info
}

// LUInvert implements Backend.LUInvert.
func (Float32) LUInvert(o matrix.Order, n int, a []float32, lda int, ipiv []int) int {
	a64 := promote(a)
	info := Float64{}.LUInvert(o, n, a64, lda, ipiv)
	demote(a, a64)
	return info
}

// QR implements Backend.QR.
func (Float32) QR(o matrix.Order, m, n int, a []float32, lda int, tau []float32) int {
	a64, tau64 := promote(a), promote(tau)
	info := Float64{}.QR(o, m, n, a64, lda, tau64)
	demote(a, a64)
	demote(tau, tau64)
	return info
}

// FormQ implements Backend.FormQ.
func (Float32) FormQ(o matrix.Order, m, n, k int, a []float32, lda int, tau []float32) int {
	a64, tau64 := promote(a), promote(tau)
	info := Float64{}.FormQ(o, m, n, k, a64, lda, tau64)
	demote(a, a64)
	demote(tau, tau64)
	return info
}
