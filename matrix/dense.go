// Package matrix: Dense is the concrete strided view over flat storage.
// Dense generalizes the usual row-major flat-slice matrix with independent
// element strides, so transposed and padded views can be expressed without
// copying while remaining candidates for backend calls.
package matrix

import (
	"fmt"
	"strings"
)

// Dense is a two-dimensional view of []T with independent element strides.
// rows/cols give the shape; rs/cs give the distance (in elements) between
// consecutive rows and columns. The zero value is not usable; construct
// through NewDense, NewDenseWithData, NewColMajor or NewStrided.
type Dense[T Scalar] struct {
	rows, cols int // shape; always non-negative
	rs, cs     int // row and column strides, in elements
	data       []T // flat backing storage
}

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// NewDense creates a rows×cols row-major matrix initialized to zeros.
// Zero-sized dimensions are legal (empty factors need them); negative
// dimensions yield ErrBadShape.
// Complexity: O(rows·cols) time and memory.
func NewDense[T Scalar](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}
	return &Dense[T]{rows: rows, cols: cols, rs: cols, cs: 1, data: make([]T, rows*cols)}, nil
}

// NewDenseWithData creates a rows×cols row-major view over data. The
// slice is adopted, not copied; it must hold at least rows*cols elements.
func NewDenseWithData[T Scalar](rows, cols int, data []T) (*Dense[T], error) {
	if rows < 0 || cols < 0 || len(data) < rows*cols {
		return nil, ErrBadShape
	}
	return &Dense[T]{rows: rows, cols: cols, rs: cols, cs: 1, data: data}, nil
}

// NewColMajor creates a rows×cols column-major matrix initialized to
// zeros (consecutive elements walk down a column).
func NewColMajor[T Scalar](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}
	return &Dense[T]{rows: rows, cols: cols, rs: 1, cs: rows, data: make([]T, rows*cols)}, nil
}

// NewStrided creates an arbitrary strided view over data.
// Views carry no start offset, so negative strides can never stay inside
// the backing slice and are rejected here with ErrBadShape; zero strides
// (aliasing views) are representable but rejected later by Resolve.
// The maximal reachable flat index is validated against len(data).
func NewStrided[T Scalar](rows, cols, rowStride, colStride int, data []T) (*Dense[T], error) {
	if rows < 0 || cols < 0 || rowStride < 0 || colStride < 0 {
		return nil, ErrBadShape
	}
	if rows > 0 && cols > 0 {
		// Strides are non-negative, so the far corner is the maximal index.
		if maxIdx := (rows-1)*rowStride + (cols-1)*colStride; maxIdx >= len(data) {
			return nil, ErrBadShape
		}
	}
	return &Dense[T]{rows: rows, cols: cols, rs: rowStride, cs: colStride, data: data}, nil
}

// Rows returns the number of rows in the view. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.rows }

// Cols returns the number of columns in the view. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.cols }

// Strides returns the (rowStride, colStride) pair in elements.
func (m *Dense[T]) Strides() (int, int) { return m.rs, m.cs }

// idx computes the flat index of (i, j). Callers must have validated
// bounds; this helper performs none.
func (m *Dense[T]) idx(i, j int) int {
	return i*m.rs + j*m.cs
}

// inBounds reports whether (i, j) addresses a valid element.
func (m *Dense[T]) inBounds(i, j int) bool {
	return i >= 0 && i < m.rows && j >= 0 && j < m.cols
}

// At retrieves the element at (row, col), or ErrOutOfRange.
func (m *Dense[T]) At(row, col int) (T, error) {
	if !m.inBounds(row, col) {
		return Zero[T](), denseErrorf("At", row, col, ErrOutOfRange)
	}
	return m.data[m.idx(row, col)], nil
}

// Set assigns v at (row, col), or returns ErrOutOfRange.
func (m *Dense[T]) Set(row, col int, v T) error {
	if !m.inBounds(row, col) {
		return denseErrorf("Set", row, col, ErrOutOfRange)
	}
	m.data[m.idx(row, col)] = v
	return nil
}

// SwapRows exchanges rows i and j in place. A self-swap is a no-op.
// Returns ErrOutOfRange on an invalid row index.
func (m *Dense[T]) SwapRows(i, j int) error {
	if i < 0 || i >= m.rows {
		return denseErrorf("SwapRows", i, j, ErrOutOfRange)
	}
	if j < 0 || j >= m.rows {
		return denseErrorf("SwapRows", i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	for c := 0; c < m.cols; c++ {
		a, b := m.idx(i, c), m.idx(j, c)
		m.data[a], m.data[b] = m.data[b], m.data[a]
	}
	return nil
}

// Transpose returns the transposed view: shape and strides swapped, the
// backing slice SHARED with the receiver. A row-major matrix therefore
// transposes into a column-contiguous view, and vice versa, at zero cost.
func (m *Dense[T]) Transpose() *Dense[T] {
	return &Dense[T]{rows: m.cols, cols: m.rows, rs: m.cs, cs: m.rs, data: m.data}
}

// Clone returns a compact deep copy sharing no storage with the receiver.
// The layout class is preserved: a column-contiguous view clones into a
// compact column-major matrix, every other view into compact row-major.
// Preserving the class keeps both backend layout arms honestly exercised
// by whichever views callers hold.
// Complexity: O(rows·cols).
func (m *Dense[T]) Clone() *Dense[T] {
	out := &Dense[T]{rows: m.rows, cols: m.cols, data: make([]T, m.rows*m.cols)}
	if m.rs == 1 && m.cs != 1 && m.rows > 1 {
		out.rs, out.cs = 1, m.rows // column-major target
	} else {
		out.rs, out.cs = m.cols, 1 // row-major target
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[out.idx(i, j)] = m.data[m.idx(i, j)]
		}
	}
	return out
}

// compactRowMajor returns the receiver when it already is a compact
// row-major matrix, otherwise a gathered row-major copy. Internal helper
// for kernels that need canonical storage.
func (m *Dense[T]) compactRowMajor() *Dense[T] {
	if m.cs == 1 && m.rs == m.cols {
		return m
	}
	out := &Dense[T]{rows: m.rows, cols: m.cols, rs: m.cols, cs: 1, data: make([]T, m.rows*m.cols)}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[i*m.cols+j] = m.data[m.idx(i, j)]
		}
	}
	return out
}

// String formats the matrix row by row for debugging output.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Dense %dx%d", m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		sb.WriteString("\n[")
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%v", m.data[m.idx(i, j)])
		}
		sb.WriteByte(']')
	}
	return sb.String()
}
