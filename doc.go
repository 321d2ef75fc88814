// Package lapx is the data-layout and factor-extraction layer between
// strided dense matrices and a LAPACK-style solver backend.
//
// 🚀 What is lapx?
//
//	A small, focused library that owns the two error-prone jobs around a
//	numerical factorization backend:
//		• Layout resolution: decide whether a strided matrix view is
//		  row-major or column-major contiguous, derive the leading
//		  dimension, and materialize the minimal flat slice the backend
//		  may touch — or reject the view outright.
//		• Factor post-processing: turn the backend's packed outputs
//		  (one overwritten matrix + pivot/tau side channels) into
//		  independently usable factors (unit-triangular L, trapezoidal
//		  U/R, orthonormal Q, row permutations) with exact
//		  reconstruction back to the original matrix.
//
// ✨ Why choose lapx?
//
//   - No hand-rolled numerics – the backend is the oracle; this layer
//     only reasons about memory layout and packed-result carving
//   - Checked by construction – the spanning-slice arithmetic lives in
//     one chokepoint, bounds-verified before any slice is produced
//   - Generic – one implementation for float32/float64/complex64/complex128,
//     selected by monomorphization instead of four copied code blocks
//
// Everything is organized under three subpackages:
//
//	matrix/  — generic strided Dense view, the layout resolver, and the
//	           support kernels (Mul, EqualApprox, Eye) used by checks
//	backend/ — the solver-backend contract (LAPACKE-style info codes)
//	           plus the shipped pure-Go gonum implementation
//	factor/  — Permutation, triangular extraction, and the LU/QR factor
//	           sets with Reconstruct and Inverse
//
// Quick example:
//
//	a, _ := matrix.NewDenseWithData[float64](3, 3, []float64{
//		1, 0, 0,
//		2, 2, 2,
//		0, 0, 3,
//	})
//	lu, _ := factor.FactorizeLU[float64](a, backend.Float64{})
//	back, _ := lu.Reconstruct() // P·L·U — equals a exactly here
//	_ = back
//
// See each subpackage's doc.go for the full contract.
package lapx
