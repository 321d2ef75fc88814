// Package factor_test: QR factor set over the shipped oracles. Q and R
// values depend on the reflector sign convention, so the tests assert
// the defining properties (orthonormality, triangularity, Q·R = A)
// rather than element fixtures.
package factor_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lapx/backend"
	"github.com/katalvlaran/lapx/factor"
	"github.com/katalvlaran/lapx/matrix"
	"github.com/stretchr/testify/require"
)

// vander62 is a tall 6x2 full-rank fixture (constant and linear columns).
func vander62(t *testing.T) *matrix.Dense[float64] {
	t.Helper()
	return mustDense(t, 6, 2, []float64{
		1, 0,
		1, 1,
		1, 2,
		1, 3,
		1, 4,
		1, 5,
	})
}

// requireOrthonormal asserts that the columns of q are orthonormal:
// qᴴ·q must be the identity within tol.
func requireOrthonormal(t *testing.T, q *matrix.Dense[float64], tol float64) {
	t.Helper()
	gram, err := matrix.Mul(q.ConjTranspose(), q)
	require.NoError(t, err)
	require.True(t, matrix.EqualApprox(gram, mustEye[float64](t, q.Cols()), tol))
}

// TestQRReconstruct round-trips the tall fixture through QThin·RThin.
func TestQRReconstruct(t *testing.T) {
	a := vander62(t)
	f, err := factor.FactorizeQR(a, backend.Float64{})
	require.NoError(t, err)
	require.Equal(t, 6, f.Rows())
	require.Equal(t, 2, f.Cols())

	got, err := f.Reconstruct()
	require.NoError(t, err)
	require.True(t, matrix.EqualApprox(got, a, 1e-12)) // Q·R ≈ A
}

// TestQROrthonormalPanels checks Q(k) for every panel width, including
// the basis extension beyond the reflector count.
func TestQROrthonormalPanels(t *testing.T) {
	f, err := factor.FactorizeQR(vander62(t), backend.Float64{})
	require.NoError(t, err)

	for _, k := range []int{1, 2, 4, 6} { // thin, square-of-reflectors, extended, full
		q, err := f.Q(k)
		require.NoError(t, err)
		require.Equal(t, 6, q.Rows()) // always m rows
		require.Equal(t, k, q.Cols()) // requested panel width
		requireOrthonormal(t, q, 1e-12)
	}
}

// TestQRUpperTriangular checks the exact sub-diagonal zeros of R and the
// trapezoid shapes.
func TestQRUpperTriangular(t *testing.T) {
	f, err := factor.FactorizeQR(vander62(t), backend.Float64{})
	require.NoError(t, err)

	r, err := f.RThin()
	require.NoError(t, err)
	require.Equal(t, 2, r.Rows())
	require.Equal(t, 2, r.Cols())
	below, err := r.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, below) // carved, not computed: exactly zero

	r1, err := f.R(1)
	require.NoError(t, err)
	require.Equal(t, 1, r1.Rows()) // leading-rows trapezoid
	require.Equal(t, 2, r1.Cols())
}

// TestQRPanelContract pins the k range checks and the empty panel.
func TestQRPanelContract(t *testing.T) {
	f, err := factor.FactorizeQR(vander62(t), backend.Float64{})
	require.NoError(t, err)

	q0, err := f.Q(0) // empty panel is legal
	require.NoError(t, err)
	require.Equal(t, 6, q0.Rows())
	require.Equal(t, 0, q0.Cols())

	_, err = f.Q(-1) // negative width
	require.ErrorIs(t, err, factor.ErrInconsistentDimensions)
	_, err = f.Q(7) // beyond the row count
	require.ErrorIs(t, err, factor.ErrInconsistentDimensions)
	_, err = f.R(3) // beyond the reflector count
	require.ErrorIs(t, err, factor.ErrInconsistentDimensions)
}

// TestQRWide factors a wide 2x3 matrix: QThin is square orthonormal, R a
// 2x3 trapezoid.
func TestQRWide(t *testing.T) {
	a := mustDense(t, 2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	f, err := factor.FactorizeQR(a, backend.Float64{})
	require.NoError(t, err)

	q, err := f.QThin()
	require.NoError(t, err)
	require.Equal(t, 2, q.Rows())
	require.Equal(t, 2, q.Cols())
	requireOrthonormal(t, q, 1e-12)

	r, err := f.RThin()
	require.NoError(t, err)
	require.Equal(t, 2, r.Rows())
	require.Equal(t, 3, r.Cols())

	got, err := f.Reconstruct()
	require.NoError(t, err)
	require.True(t, matrix.EqualApprox(got, a, 1e-12))
}

// TestQRColumnMajorAgreement drives the same values through a
// column-major input; the packed data reaching the core is identical, so
// the factors must match exactly.
func TestQRColumnMajorAgreement(t *testing.T) {
	row := vander62(t)
	fr, err := factor.FactorizeQR(row, backend.Float64{})
	require.NoError(t, err)
	fc, err := factor.FactorizeQR(colMajorOf(t, row), backend.Float64{})
	require.NoError(t, err)

	require.Equal(t, fr.Tau(), fc.Tau()) // identical reflector scalars
	qr, err := fr.QThin()
	require.NoError(t, err)
	qc, err := fc.QThin()
	require.NoError(t, err)
	require.True(t, matrix.EqualApprox(qr, qc, 0)) // identical Q

	got, err := fc.Reconstruct()
	require.NoError(t, err)
	require.True(t, matrix.EqualApprox(got, row, 1e-12))
}

// TestQRRandom round-trips a seeded random 7x4 matrix.
func TestQRRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	a, err := matrix.NewDense[float64](7, 4)
	require.NoError(t, err)
	for i := 0; i < 7; i++ {
		for j := 0; j < 4; j++ {
			require.NoError(t, a.Set(i, j, rng.NormFloat64()))
		}
	}

	f, err := factor.FactorizeQR(a, backend.Float64{})
	require.NoError(t, err)

	q, err := f.QThin()
	require.NoError(t, err)
	requireOrthonormal(t, q, 1e-9)

	got, err := f.Reconstruct()
	require.NoError(t, err)
	require.True(t, matrix.EqualApprox(got, a, 1e-9))
}

// TestQRTauDetached verifies the tau accessor length and copy semantics.
func TestQRTauDetached(t *testing.T) {
	f, err := factor.FactorizeQR(vander62(t), backend.Float64{})
	require.NoError(t, err)

	tau := f.Tau()
	require.Len(t, tau, 2) // one scalar per reflector
	tau[0] = 99            // mutate the copy
	require.NotEqual(t, 99.0, f.Tau()[0]) // internal state unchanged
}

// TestQRConstructorContract pins the nil-input sentinels.
func TestQRConstructorContract(t *testing.T) {
	_, err := factor.FactorizeQR[float64](nil, backend.Float64{})
	require.ErrorIs(t, err, matrix.ErrNilMatrix) // nil matrix

	a := mustDense(t, 2, 2, []float64{1, 2, 3, 4})
	_, err = factor.FactorizeQR[float64](a, nil)
	require.ErrorIs(t, err, factor.ErrNilBackend) // nil backend
}

// TestQRFloat32 runs the pipeline through the promoted float32 oracle.
func TestQRFloat32(t *testing.T) {
	a := mustDense(t, 4, 2, []float32{
		1, 0,
		1, 1,
		1, 2,
		1, 3,
	})
	f, err := factor.FactorizeQR(a, backend.Float32{})
	require.NoError(t, err)

	q, err := f.QThin()
	require.NoError(t, err)
	gram, err := matrix.Mul(q.ConjTranspose(), q)
	require.NoError(t, err)
	require.True(t, matrix.EqualApprox(gram, mustEye[float32](t, 2), 1e-3)) // orthonormal

	got, err := f.Reconstruct()
	require.NoError(t, err)
	require.True(t, matrix.EqualApprox(got, a, 1e-3)) // single precision
}
