// SPDX-License-Identifier: MIT

// Package matrix - reallocating resize.
//
// Resize never grows in place: it allocates an exact-fit zero buffer, copies
// the overlap row by row, then swaps. Peak memory is old + new during the copy.

package matrix

// Resize changes the shape to newRows×newCols.
//
// Implementation:
//   - Stage 1: validate the receiver and the new shape; on error nothing changes.
//   - Stage 2: allocate a zeroed buffer of newRows*newCols.
//   - Stage 3: copy min(rows,newRows) × min(cols,newCols) cells, mapping
//     (i,j) to i*cols+j on the old side and i*newCols+j on the new side.
//   - Stage 4: swap buffers and update the shape.
//
// Cells outside the overlap are zero, whatever Fill put there before;
// callers that use a sentinel re-apply it (see FillRegion). Cells cut off by
// a shrink are discarded for good.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrTooLarge.
//
// Complexity: O(newRows*newCols + overlap).
func (m *Matrix) Resize(newRows, newCols int) error {
	if !m.live() {
		return matrixErrorf(ctxResize, newRows, newCols, ErrNilMatrix)
	}
	if err := checkShape(newRows, newCols); err != nil {
		return matrixErrorf(ctxResize, newRows, newCols, err)
	}

	buf := make([]int32, newRows*newCols)
	keepR, keepC := min(m.r, newRows), min(m.c, newCols)
	var i, src, dst int
	for i = 0; i < keepR; i++ {
		src = i * m.c
		dst = i * newCols
		copy(buf[dst:dst+keepC], m.data[src:src+keepC])
	}

	m.data = buf
	m.r, m.c = newRows, newCols

	return nil
}

// AddRow appends one zeroed row: Resize(Rows()+1, Cols()).
func (m *Matrix) AddRow() error {
	if !m.live() {
		return matrixErrorf(ctxResize, 1, 0, ErrNilMatrix)
	}

	return m.Resize(m.r+1, m.c)
}

// AddCol appends one zeroed column: Resize(Rows(), Cols()+1).
func (m *Matrix) AddCol() error {
	if !m.live() {
		return matrixErrorf(ctxResize, 0, 1, ErrNilMatrix)
	}

	return m.Resize(m.r, m.c+1)
}
