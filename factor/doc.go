// Package factor turns the solver backend's packed outputs into
// independently usable structured factors.
//
// What & Why:
//
//	A pivoted LU or QR call overwrites a single matrix buffer with two
//	logical factors at once (L below / U on-and-above the diagonal;
//	Householder vectors below / R on-and-above) plus a side channel
//	(pivot indices, Householder scalars). This package owns that packed
//	state and derives, on demand and into fresh allocations:
//
//		• Permutation   — the row-exchange sequence, replayable forward
//		                  and backward (transpositions, NOT an index map)
//		• Lower / Upper — triangular/trapezoidal carving with exact-zero
//		                  complements and optional unit diagonal
//		• LU[T]         — L, U, Perm, Reconstruct (P·L·U = A), Inverse
//		• QR[T]         — Q(k), R(k), Reconstruct (Q·R = A)
//
// Ownership & concurrency:
//
//	FactorizeLU/FactorizeQR clone their input, so a factor set owns its
//	packed storage exclusively; every derivation is a pure read that
//	allocates its output. Instances are safe for concurrent derivation
//	calls only in the trivial sense that they never mutate after
//	construction — there is no internal locking because there is no
//	internal mutation.
//
// Errors:
//
//	All user-triggered failures come back as sentinels (errors.Is) or as
//	*ParameterError (errors.As) wrapping ErrIllegalParameter; see
//	errors.go. Panics are reserved for violated internal invariants in
//	private helpers.
package factor
