// Package matrix provides the generic strided dense-matrix view used as
// the exchange currency between callers and the solver backend, together
// with the layout resolver that decides backend compatibility.
//
// What & Why:
//
//	Dense[T] is a two-dimensional view over a flat slice with independent
//	row and column strides (in elements, not bytes). A view is never
//	required to be contiguous in both dimensions at once — only in one —
//	which is exactly the contract LAPACK-style backends accept. Resolve
//	inspects the strides and either yields a (RowMajor|ColMajor, lda)
//	descriptor plus the minimal spanning flat slice, or rejects the view
//	with ErrBadLayout before any backend call is made.
//
// Safety:
//
//	The spanning-slice element count is computed from the strides in one
//	place (Resolve) and bounds-checked against the backing slice, so no
//	caller ever hands the backend a region larger than the view owns.
//
// Complexity:
//
//	Resolve, At, Set, Strides run in O(1). Clone, Mul, EqualApprox run in
//	O(rows·cols) (O(m·n·k) for Mul) and allocate fresh storage.
package matrix
