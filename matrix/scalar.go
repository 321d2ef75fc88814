// SPDX-License-Identifier: MIT
// Package matrix: the numeric-scalar capability layer.
//
// Purpose:
//   - Define the Scalar constraint shared by every generic component.
//   - Provide the small capability set (zero, one, conjugate, magnitude)
//     that factor extraction and approximate comparison need, so that a
//     single generic implementation replaces four near-identical
//     per-precision code blocks.
//
// Determinism & Performance:
//   - All helpers are pure; the type switches monomorphize to straight
//     arithmetic after inlining.

package matrix

import (
	"math"
	"math/cmplx"
)

// Scalar is the set of element types the layer supports: single- and
// double-precision real and complex values.
type Scalar interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

// Zero returns the additive identity of T.
func Zero[T Scalar]() T {
	var z T // the zero value of every Scalar type is numeric zero
	return z
}

// One returns the multiplicative identity of T.
func One[T Scalar]() T {
	return FromFloat64[T](1)
}

// FromFloat64 converts a real value into T (imaginary part zero for the
// complex instantiations). Used for diagonal fixups and identity rows.
func FromFloat64[T Scalar](v float64) T {
	var z T
	switch p := any(&z).(type) {
	case *float32:
		*p = float32(v)
	case *float64:
		*p = v
	case *complex64:
		*p = complex(float32(v), 0)
	case *complex128:
		*p = complex(v, 0)
	}
	return z
}

// Abs returns the magnitude of v as float64: |v| for reals, the complex
// modulus for complex values.
func Abs[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	case complex128:
		return cmplx.Abs(x)
	}
	return 0 // unreachable: Scalar admits no other dynamic types
}

// Conj returns the complex conjugate of v; for real instantiations it is
// the identity.
func Conj[T Scalar](v T) T {
	switch x := any(v).(type) {
	case complex64:
		return any(complex(real(x), -imag(x))).(T)
	case complex128:
		return any(cmplx.Conj(x)).(T)
	}
	return v
}
