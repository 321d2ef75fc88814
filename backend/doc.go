// Package backend defines the solver-backend contract this layer calls
// into, and ships a pure-Go implementation of it.
//
// What & Why:
//
//	The factorization work itself (elimination, Householder reflections,
//	inversion) is delegated to an already-correct LAPACK-style oracle.
//	Backend[T] pins down exactly what that oracle must accept and return:
//	a storage-order tag plus leading dimension (as derived by
//	matrix.Resolve), shapes, the flat element buffer, and the side
//	channels (0-based pivot indices for LU, Householder scalars for QR).
//
// Status codes:
//
//	Every method returns a LAPACKE-style integer status:
//	  info == 0  success.
//	  info  < 0  illegal argument at 1-based position -info (argument
//	             positions follow the corresponding LAPACKE prototypes,
//	             counting the storage-order tag as position 1). This is a
//	             programmer error at the call site; retrying cannot help.
//	  info  > 0  routine-specific soft numerical failure (for LU: the
//	             1-based index of the first exactly-zero pivot). A
//	             legitimate outcome, not a bug.
//
// Implementations:
//
//	Float64 is the shipped oracle, backed by gonum's pure-Go LAPACK.
//	Float32 routes through Float64 at double precision (no pure-Go
//	single-precision LAPACK exists in the ecosystem). Funcs[T] is a
//	binding struct so external c/z routines (cgo LAPACKE, netlib) can
//	serve the complex instantiations.
//
// Pivot convention (fixed, documented once):
//
//	ipiv is 0-based. pivot[i] is the absolute row index exchanged with
//	row i at elimination step i; transpositions apply sequentially in
//	ascending i, and pivot[i] == i is a no-op.
package backend
