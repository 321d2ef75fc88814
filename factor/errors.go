// SPDX-License-Identifier: MIT
// Package factor: sentinel error set (unified, consistent).
// All operations return these sentinels (optionally fmt-wrapped with an
// operation tag) and tests check them via errors.Is. Backend layout
// failures surface as matrix.ErrBadLayout from the resolver, unwrapped.

package factor

import (
	"errors"
	"fmt"
)

var (
	// ErrNotSquare is returned when an operation requiring square input
	// (inversion) received a rectangular matrix. Detected locally.
	ErrNotSquare = errors.New("factor: matrix is not square")

	// ErrInconsistentDimensions is returned when a requested factor size k
	// is incompatible with the stored dimensions. Detected locally.
	ErrInconsistentDimensions = errors.New("factor: factor size inconsistent with dimensions")

	// ErrSingular is returned when the backend reports that the matrix is
	// exactly singular and the requested operation (inversion) is
	// undefined. A legitimate numerical outcome, not a bug.
	ErrSingular = errors.New("factor: matrix is singular")

	// ErrPivotOutOfRange is returned when a pivot index falls outside
	// [0, rows) of the matrix being permuted.
	ErrPivotOutOfRange = errors.New("factor: pivot index out of range")

	// ErrIllegalParameter is the sentinel behind *ParameterError: the
	// backend rejected an argument (negative info). Programmer error at
	// the call site — propagated as data, never retried.
	ErrIllegalParameter = errors.New("factor: backend reported an illegal argument")

	// ErrNilBackend indicates that a nil Backend was passed to a
	// factorization constructor.
	ErrNilBackend = errors.New("factor: nil backend")
)

// ParameterError carries the backend's negative-info report: Op names the
// backend operation, Index is the 1-based argument position the backend
// flagged (the negated info value, translated as-is). It matches
// ErrIllegalParameter under errors.Is.
type ParameterError struct {
	Op    string
	Index int
}

// Error implements the error interface.
func (e *ParameterError) Error() string {
	return fmt.Sprintf("factor: %s: illegal argument at position %d", e.Op, e.Index)
}

// Unwrap ties the typed error to the ErrIllegalParameter sentinel.
func (e *ParameterError) Unwrap() error { return ErrIllegalParameter }

// factorErrorf wraps an underlying error with an operation tag, keeping a
// stable "Op: underlying" shape; errors.Is still matches the sentinel.
func factorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
