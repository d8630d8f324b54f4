// SPDX-License-Identifier: MIT

// Package matrix - row-major storage & safe accessors.
//
// Purpose:
//   - Keep a flat buffer with the explicit index formula r*cols + c.
//   - Never panic at the public surface: bad indices yield ErrOutOfRange from
//     At/Set and the OutOfBounds sentinel from Get.
//   - Keep len(data) == rows*cols after every mutation (no slack capacity).
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Get/Set: O(1); Fill/Clone/Equal: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// OutOfBounds is what Get returns for an index outside the matrix.
// It is also a storable value; At disambiguates via its error result.
const OutOfBounds int32 = -1

// MaxCapacity bounds rows*cols for a single Matrix.
const MaxCapacity = math.MaxInt32

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxResize = "Resize"
	ctxRow    = "Row"
	ctxCol    = "Col"
	ctxRegion = "FillRegion"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// matrixErrorf wraps a sentinel with method context and the offending pair.
//
// Implementation:
//   - Stage 1: format "Matrix.<method>(a,b): %w".
//   - Stage 2: return the wrapped error.
//
// Inputs:
//   - method: context tag (ctxAt/ctxSet/ctxResize/...).
//   - a, b: coordinates for accessors, the requested shape for Resize.
//   - err: sentinel (ErrOutOfRange, ErrNilMatrix, ...).
//
// Returns:
//   - error: wrapped; the sentinel stays reachable through errors.Is.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(method string, a, b int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, a, b, err)
}

// Matrix is a growable row-major matrix of int32 values.
//   - r,c hold dimensions; both are zero only after Release.
//   - data has length r*c (offset = i*c + j); its length is the capacity.
type Matrix struct {
	r, c int     // row and column counts
	data []int32 // contiguous row-major storage (len == r*c)
}

var _ fmt.Stringer = (*Matrix)(nil)

// New creates a rows×cols matrix with every element set to zero.
//
// Implementation:
//   - Stage 1: validate the shape with checkShape.
//   - Stage 2: allocate one exact-fit row-major buffer of rows*cols.
//
// Behavior highlights:
//   - No slack capacity: Cap() == rows*cols.
//   - A nil handle is returned on every error.
//
// Inputs:
//   - rows: positive number of rows.
//   - cols: positive number of columns.
//
// Returns:
//   - *Matrix: newly allocated, zero-filled.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//   - ErrTooLarge when rows*cols exceeds MaxCapacity.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
//
// Notes:
//   - MaxCapacity is an addressing ceiling, not a memory budget. Callers
//     that grow on untrusted input bound their own shape first.
func New(rows, cols int) (*Matrix, error) {
	if err := checkShape(rows, cols); err != nil {
		return nil, err
	}

	return &Matrix{r: rows, c: cols, data: make([]int32, rows*cols)}, nil
}

// checkShape validates positive dimensions and the capacity ceiling.
// The division form avoids overflowing rows*cols.
func checkShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrInvalidDimensions
	}
	if rows > MaxCapacity/cols {
		return ErrTooLarge
	}

	return nil
}

// live reports whether m can be read or written.
func (m *Matrix) live() bool { return m != nil && m.data != nil }

// Release drops the backing store. Rows and Cols become zero and every later
// accessor behaves as on a nil matrix. Calling it again, or on nil, is a no-op.
func (m *Matrix) Release() {
	if m == nil {
		return
	}
	m.data = nil
	m.r, m.c = 0, 0
}

// Rows returns the row count (0 for nil or released).
func (m *Matrix) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the column count (0 for nil or released).
func (m *Matrix) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Cap returns the number of allocated elements, always Rows()*Cols().
func (m *Matrix) Cap() int {
	if m == nil {
		return 0
	}

	return len(m.data)
}

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// indexOf bounds-checks (row, col) and returns its flat offset.
func (m *Matrix) indexOf(row, col int) (int, error) {
	if !m.live() {
		return 0, ErrNilMatrix
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col).
// On failure the value is OutOfBounds, so ignoring the error reproduces Get.
//
// Errors:
//   - ErrOutOfRange for a bad index, ErrNilMatrix for a nil or released matrix.
func (m *Matrix) At(row, col int) (int32, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return OutOfBounds, matrixErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Get returns the value at (row, col), or OutOfBounds when the index is
// invalid. A stored -1 and a bad index look the same here.
func (m *Matrix) Get(row, col int) int32 {
	v, _ := m.At(row, col)

	return v
}

// Set stores v at (row, col). A rejected write leaves the matrix unchanged.
//
// Errors:
//   - ErrOutOfRange for a bad index, ErrNilMatrix for a nil or released matrix.
func (m *Matrix) Set(row, col int, v int32) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return matrixErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Fill overwrites the whole backing store with v.
func (m *Matrix) Fill(v int32) {
	if !m.live() {
		return
	}
	for i := range m.data {
		m.data[i] = v
	}
}

// FillRegion writes v into every cell (r, c) with r >= r0 or c >= c0, i.e.
// everything outside the top-left r0×c0 rectangle. After growing from
// (r0, c0) it re-marks exactly the newly exposed cells.
//
// Errors:
//   - ErrOutOfRange when r0 or c0 is negative.
//   - ErrNilMatrix for a nil or released matrix.
func (m *Matrix) FillRegion(r0, c0 int, v int32) error {
	if !m.live() {
		return matrixErrorf(ctxRegion, r0, c0, ErrNilMatrix)
	}
	if r0 < 0 || c0 < 0 {
		return matrixErrorf(ctxRegion, r0, c0, ErrOutOfRange)
	}
	keepR, keepC := min(r0, m.r), min(c0, m.c)

	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		j = 0
		if i < keepR {
			j = keepC // inside the kept band only the right part is exposed
		}
		for ; j < m.c; j++ {
			m.data[base+j] = v
		}
	}

	return nil
}

// Clone returns a deep copy; nil for a nil matrix.
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}

	return &Matrix{r: m.r, c: m.c, data: slices.Clone(m.data)}
}

// Equal reports whether m and o have the same shape and contents.
func (m *Matrix) Equal(o *Matrix) bool {
	if m.Rows() != o.Rows() || m.Cols() != o.Cols() {
		return false
	}
	if m == nil || o == nil {
		return m == o || (m.Cap() == 0 && o.Cap() == 0)
	}

	return slices.Equal(m.data, o.data)
}

// Do visits each element in row-major order; f returning false stops the walk.
func (m *Matrix) Do(f func(r, c int, v int32) bool) {
	if !m.live() {
		return
	}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// String renders one bracketed, comma-separated line per row.
func (m *Matrix) String() string {
	if !m.live() {
		return ""
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(strconv.FormatInt(int64(m.data[base+j]), 10))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
