// SPDX-License-Identifier: MIT
// Package matrix: the layout resolver.
//
// Purpose:
//   - Decide, from a view's strides alone, whether the backend can consume
//     the view in place, and under which storage order.
//   - Be the single chokepoint that computes the minimal spanning element
//     count before materializing any flat slice (no call site repeats the
//     arithmetic, and no slice ever exceeds the backing storage).
//
// Contract (mirrors the backend's requirement):
//   - Row-major: unit column stride, leading dimension = row stride ≥ cols.
//   - Column-major: unit row stride, leading dimension = column stride ≥ rows.
//   - Single-row and single-column views are layout-agnostic and default
//     to RowMajor with a canonical leading dimension.
//   - Negative strides (non-monotonic views) and views contiguous in
//     neither dimension are rejected with ErrBadLayout.

package matrix

// Order tags the storage order of a backend-compatible view.
type Order uint8

const (
	// RowMajor: consecutive elements of a row are adjacent in memory.
	RowMajor Order = iota
	// ColMajor: consecutive elements of a column are adjacent in memory.
	ColMajor
)

// String returns the conventional name of the order.
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "RowMajor"
	case ColMajor:
		return "ColMajor"
	default:
		return "Order(?)"
	}
}

// Resolve inspects m's strides and returns the storage order, the leading
// dimension, and the minimal spanning flat slice the backend may operate
// on. The slice is zero-copy: it aliases m's storage and holds exactly
// (rows-1)·rs + (cols-1)·cs + 1 elements, the last index the view can
// reach plus one.
//
// Returns:
//   - ErrNilMatrix  when m is nil.
//   - ErrBadLayout  when no stride-respecting leading dimension exists
//     that the backend contract supports (see package doc).
//
// Complexity: O(1); no allocation.
func Resolve[T Scalar](m *Dense[T]) (Order, int, []T, error) {
	if m == nil {
		return RowMajor, 0, nil, ErrNilMatrix
	}
	rows, cols := m.rows, m.cols
	rs, cs := m.rs, m.cs

	// Non-monotonic views are unsupported: a negative stride cannot be
	// described by a leading dimension at all.
	if rs < 0 || cs < 0 {
		return RowMajor, 0, nil, ErrBadLayout
	}

	// Empty views are trivially row-major; the backend never dereferences.
	if rows == 0 || cols == 0 {
		return RowMajor, max(cols, 1), m.data[:0], nil
	}

	ord, lda := RowMajor, 0
	switch {
	case cols == 1:
		// One element per row: the column stride is never walked. The view
		// is layout-agnostic, defaulting to RowMajor; rows must not alias.
		if rows > 1 && rs < 1 {
			return RowMajor, 0, nil, ErrBadLayout
		}
		lda = max(rs, 1)
	case rows == 1:
		// A single row: contiguous rows make it canonical RowMajor; a
		// spaced row is still expressible as ColMajor with lda = cs, since
		// every one-element column is trivially contiguous.
		switch {
		case cs == 1:
			lda = cols
		case cs > 1:
			ord, lda = ColMajor, cs
		default: // cs == 0 with cols > 1: overlapping columns
			return RowMajor, 0, nil, ErrBadLayout
		}
	case cs == 1:
		// Row-major candidate; rows of length cols must not overlap.
		if rs < cols {
			return RowMajor, 0, nil, ErrBadLayout
		}
		lda = rs
	case rs == 1:
		// Column-major candidate; columns of length rows must not overlap.
		if cs < rows {
			return RowMajor, 0, nil, ErrBadLayout
		}
		ord, lda = ColMajor, cs
	default:
		// Neither dimension is contiguous (e.g. strides (2,2)).
		return RowMajor, 0, nil, ErrBadLayout
	}

	// Minimal legal element count spanned by the strides. Constructors
	// validate the reachable range, so this cannot exceed the backing
	// slice; the guard keeps the invariant explicit.
	span := (rows-1)*rs + (cols-1)*cs + 1
	if span > len(m.data) {
		return RowMajor, 0, nil, ErrBadShape
	}
	return ord, lda, m.data[:span], nil
}
