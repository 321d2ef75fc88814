// Package matrix_test: layout-resolver contract tests.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lapx/matrix"
	"github.com/stretchr/testify/require"
)

// TestResolveRowMajor verifies the canonical row-major case.
func TestResolveRowMajor(t *testing.T) {
	m, err := matrix.NewDense[float64](3, 4) // compact row-major 3x4
	require.NoError(t, err)                  // valid creation

	ord, lda, flat, err := matrix.Resolve(m) // resolve layout
	require.NoError(t, err)                  // compatible view
	require.Equal(t, matrix.RowMajor, ord)   // unit column stride wins
	require.Equal(t, 4, lda)                 // leading dimension = row stride
	require.Len(t, flat, 12)                 // spans exactly rows*cols
}

// TestResolveColMajor verifies the canonical column-major case.
func TestResolveColMajor(t *testing.T) {
	m, err := matrix.NewColMajor[float64](4, 3) // compact column-major 4x3
	require.NoError(t, err)                     // valid creation

	ord, lda, flat, err := matrix.Resolve(m) // resolve layout
	require.NoError(t, err)                  // compatible view
	require.Equal(t, matrix.ColMajor, ord)   // unit row stride wins
	require.Equal(t, 4, lda)                 // leading dimension = column stride
	require.Len(t, flat, 12)                 // spans exactly rows*cols
}

// TestResolvePaddedRows verifies the minimal spanning slice on a padded
// row-major view: the final padding tail is NOT included.
func TestResolvePaddedRows(t *testing.T) {
	m, err := matrix.NewStrided(2, 3, 5, 1, make([]float64, 8)) // rows spaced by 5
	require.NoError(t, err)                                     // valid view

	ord, lda, flat, err := matrix.Resolve(m) // resolve layout
	require.NoError(t, err)                  // compatible view
	require.Equal(t, matrix.RowMajor, ord)   // row-major with padding
	require.Equal(t, 5, lda)                 // leading dimension = row stride
	require.Len(t, flat, 8)                  // (2-1)*5 + (3-1)*1 + 1 elements
}

// TestResolveTransposedView verifies that transposing a row-major matrix
// yields a resolvable column-major view over the same storage.
func TestResolveTransposedView(t *testing.T) {
	m, err := matrix.NewDense[float64](3, 4) // row-major 3x4
	require.NoError(t, err)                  // valid creation

	ord, lda, _, err := matrix.Resolve(m.Transpose()) // resolve the 4x3 transpose
	require.NoError(t, err)                           // still compatible
	require.Equal(t, matrix.ColMajor, ord)            // contiguity flipped dimension
	require.Equal(t, 4, lda)                          // old row stride becomes lda
}

// TestResolveNoContiguousDimension rejects views where neither dimension
// has unit stride.
func TestResolveNoContiguousDimension(t *testing.T) {
	m, err := matrix.NewStrided(2, 2, 2, 2, make([]float64, 5)) // strides (2,2)
	require.NoError(t, err)                                     // constructible...

	_, _, _, err = matrix.Resolve(m)              // ...but not backend-compatible
	require.ErrorIs(t, err, matrix.ErrBadLayout)  // expect ErrBadLayout
}

// TestResolveOverlappingRows rejects unit-column-stride views whose rows
// would alias each other.
func TestResolveOverlappingRows(t *testing.T) {
	m, err := matrix.NewStrided(3, 4, 2, 1, make([]float64, 8)) // row stride 2 < 4 cols
	require.NoError(t, err)                                     // constructible view

	_, _, _, err = matrix.Resolve(m)             // rows overlap in memory
	require.ErrorIs(t, err, matrix.ErrBadLayout) // expect ErrBadLayout
}

// TestResolveDegenerateShapes verifies the layout-agnostic single-row,
// single-column and empty cases.
func TestResolveDegenerateShapes(t *testing.T) {
	// Single column: defaults to RowMajor whatever the column stride says.
	col, err := matrix.NewDense[float64](5, 1) // 5x1 vector
	require.NoError(t, err)
	ord, lda, flat, err := matrix.Resolve(col)
	require.NoError(t, err)
	require.Equal(t, matrix.RowMajor, ord) // layout-agnostic default
	require.Equal(t, 1, lda)               // canonical leading dimension
	require.Len(t, flat, 5)

	// Single contiguous row: canonical RowMajor.
	row, err := matrix.NewDense[float64](1, 5) // 1x5 vector
	require.NoError(t, err)
	ord, lda, _, err = matrix.Resolve(row)
	require.NoError(t, err)
	require.Equal(t, matrix.RowMajor, ord) // contiguous row
	require.Equal(t, 5, lda)               // lda canonicalized to cols

	// Single spaced row: expressible only as ColMajor with lda = col stride.
	spaced, err := matrix.NewStrided(1, 4, 4, 2, make([]float64, 7)) // columns spaced by 2
	require.NoError(t, err)
	ord, lda, flat, err = matrix.Resolve(spaced)
	require.NoError(t, err)
	require.Equal(t, matrix.ColMajor, ord) // one-element columns are contiguous
	require.Equal(t, 2, lda)               // lda = column stride
	require.Len(t, flat, 7)                // minimal span over the spaced row

	// Empty view: trivially RowMajor with an empty span.
	empty, err := matrix.NewDense[float64](0, 3)
	require.NoError(t, err)
	ord, _, flat, err = matrix.Resolve(empty)
	require.NoError(t, err)
	require.Equal(t, matrix.RowMajor, ord) // nothing to dereference
	require.Len(t, flat, 0)                // empty spanning slice
}

// TestResolveNil ensures a nil matrix is rejected with ErrNilMatrix.
func TestResolveNil(t *testing.T) {
	_, _, _, err := matrix.Resolve[float64](nil) // nil input
	require.ErrorIs(t, err, matrix.ErrNilMatrix) // expect ErrNilMatrix
}

// TestOrderString pins the diagnostic names of the order tags.
func TestOrderString(t *testing.T) {
	require.Equal(t, "RowMajor", matrix.RowMajor.String())  // row-major name
	require.Equal(t, "ColMajor", matrix.ColMajor.String())  // column-major name
	require.Equal(t, "Order(?)", matrix.Order(9).String())  // unknown tag
}
