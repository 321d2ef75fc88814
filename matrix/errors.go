// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions; panics are reserved for programmer errors in private
// helpers.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to
// allow easy grepping across logs. Do not %w-wrap these sentinels when
// returning directly; if context is essential, wrap at the outer boundary
// with fmt.Errorf("ctx: %w", ErrX) — callers still match via errors.Is.

var (
	// ErrBadShape is returned when a requested shape or stride set is
	// invalid at construction time (negative dimensions, negative strides,
	// or a backing slice too short for the view's reachable indices).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set/SwapRows) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadLayout signals that no stride pattern of the view satisfies
	// the backend's contiguous-major-dimension requirement: neither
	// dimension has unit stride, a stride is negative, or unit-stride rows
	// would overlap. Detected entirely locally, before any backend call.
	ErrBadLayout = errors.New("matrix: layout not backend-compatible")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was
	// passed where a matrix is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
