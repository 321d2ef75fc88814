// Package matrix_test: support-kernel tests (Mul, ConjTranspose, Eye,
// EqualApprox) across the BLAS fast path and the generic kernel.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lapx/matrix"
	"github.com/stretchr/testify/require"
)

// mustDense builds a row-major matrix from a literal or fails the test.
func mustDense[T matrix.Scalar](t *testing.T, rows, cols int, data []T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDenseWithData(rows, cols, data)
	require.NoError(t, err) // literal shapes are always valid in tests
	return m
}

// TestMulFloat64 exercises the BLAS fast path on a known product.
func TestMulFloat64(t *testing.T) {
	a := mustDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6}) // 2x3 operand
	b := mustDense(t, 3, 2, []float64{7, 8, 9, 10, 11, 12}) // 3x2 operand

	c, err := matrix.Mul(a, b) // 2x2 product
	require.NoError(t, err)    // shapes conform

	want := mustDense(t, 2, 2, []float64{58, 64, 139, 154}) // hand-computed product
	require.True(t, matrix.EqualApprox(c, want, 0))         // integer arithmetic is exact
}

// TestMulFloat32Generic exercises the generic kernel (non-float64 path).
func TestMulFloat32Generic(t *testing.T) {
	a := mustDense(t, 2, 2, []float32{1, 2, 3, 4}) // 2x2 operand
	b := mustDense(t, 2, 2, []float32{5, 6, 7, 8}) // 2x2 operand

	c, err := matrix.Mul(a, b) // generic i-k-j kernel
	require.NoError(t, err)    // shapes conform

	want := mustDense(t, 2, 2, []float32{19, 22, 43, 50}) // hand-computed product
	require.True(t, matrix.EqualApprox(c, want, 0))       // exact in float32
}

// TestMulStridedOperands ensures transposed (column-contiguous) operands
// multiply correctly through operand compaction.
func TestMulStridedOperands(t *testing.T) {
	a := mustDense(t, 3, 2, []float64{1, 4, 2, 5, 3, 6}) // columns of the 2x3 we want
	at := a.Transpose()                                  // 2x3 column-contiguous view
	b := mustDense(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})

	c, err := matrix.Mul(at, b) // strided left operand
	require.NoError(t, err)

	want := mustDense(t, 2, 2, []float64{58, 64, 139, 154}) // same product as the compact case
	require.True(t, matrix.EqualApprox(c, want, 0))         // compaction preserved values
}

// TestMulDimensionMismatch rejects non-conforming shapes.
func TestMulDimensionMismatch(t *testing.T) {
	a := mustDense(t, 2, 3, make([]float64, 6)) // 2x3
	b := mustDense(t, 2, 2, make([]float64, 4)) // 2x2: inner dimensions differ

	_, err := matrix.Mul(a, b)                           // must refuse
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch) // expect ErrDimensionMismatch

	_, err = matrix.Mul[float64](nil, b)         // nil operand
	require.ErrorIs(t, err, matrix.ErrNilMatrix) // expect ErrNilMatrix
}

// TestConjTranspose verifies the conjugating copy for complex elements
// and the plain transpose for reals.
func TestConjTranspose(t *testing.T) {
	c := mustDense(t, 1, 2, []complex128{1 + 2i, 3 - 4i}) // complex row
	ct := c.ConjTranspose()                               // 2x1 conjugated column

	v, err := ct.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, complex128(1-2i), v) // conjugated
	v, _ = ct.At(1, 0)
	require.Equal(t, complex128(3+4i), v) // conjugated

	r := mustDense(t, 2, 2, []float64{1, 2, 3, 4}) // real matrix
	rt := r.ConjTranspose()                        // plain transpose copy
	want := mustDense(t, 2, 2, []float64{1, 3, 2, 4})
	require.True(t, matrix.EqualApprox(rt, want, 0)) // conjugation is identity

	require.NoError(t, r.Set(0, 1, 9))                // mutate the source...
	require.True(t, matrix.EqualApprox(rt, want, 0))  // ...the copy is unaffected
}

// TestEyeAndEqualApprox verifies the identity builder and the tolerance
// comparison semantics.
func TestEyeAndEqualApprox(t *testing.T) {
	i2, err := matrix.Eye[float64](2) // 2x2 identity
	require.NoError(t, err)

	near := mustDense(t, 2, 2, []float64{1, 1e-12, 0, 1}) // identity + tiny noise
	require.True(t, matrix.EqualApprox(i2, near, 1e-9))   // within tolerance
	require.False(t, matrix.EqualApprox(i2, near, 1e-15)) // outside tolerance

	other := mustDense(t, 2, 3, make([]float64, 6))       // different shape
	require.False(t, matrix.EqualApprox(i2, other, 1))    // shapes must agree
	require.False(t, matrix.EqualApprox[float64](nil, i2, 1)) // nil never compares equal
}
