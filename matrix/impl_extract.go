// SPDX-License-Identifier: MIT

package matrix

// Row returns a freshly allocated copy of row r (Cols() elements).
// Later writes to the matrix do not show through the returned slice.
//
// Errors:
//   - ErrOutOfRange when r is outside [0, Rows()); the slice is nil.
//   - ErrNilMatrix for a nil or released matrix.
//
// Complexity: O(Cols()).
func (m *Matrix) Row(r int) ([]int32, error) {
	if !m.live() {
		return nil, matrixErrorf(ctxRow, r, 0, ErrNilMatrix)
	}
	if r < 0 || r >= m.r {
		return nil, matrixErrorf(ctxRow, r, 0, ErrOutOfRange)
	}
	out := make([]int32, m.c)
	copy(out, m.data[r*m.c:(r+1)*m.c])

	return out, nil
}

// Col returns a freshly allocated copy of column c (Rows() elements).
//
// Errors:
//   - ErrOutOfRange when c is outside [0, Cols()); the slice is nil.
//   - ErrNilMatrix for a nil or released matrix.
//
// Complexity: O(Rows()).
func (m *Matrix) Col(c int) ([]int32, error) {
	if !m.live() {
		return nil, matrixErrorf(ctxCol, 0, c, ErrNilMatrix)
	}
	if c < 0 || c >= m.c {
		return nil, matrixErrorf(ctxCol, 0, c, ErrOutOfRange)
	}
	out := make([]int32, m.r)
	for i := range out {
		out[i] = m.data[i*m.c+c]
	}

	return out, nil
}
