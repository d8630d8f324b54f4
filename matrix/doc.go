// SPDX-License-Identifier: MIT

// Package matrix provides a growable dense matrix of int32 values.
//
// The Matrix keeps its elements in one flat row-major buffer whose length is
// always exactly Rows()*Cols(). Every Resize reallocates to the new exact
// size and copies the overlapping rectangle; cells outside the overlap start
// at zero.
//
// Two access styles share the same storage:
//
//   - At/Set/Row/Col/Resize return sentinel errors (ErrOutOfRange,
//     ErrInvalidDimensions, ...) matched with errors.Is.
//   - Get and the ignored-error forms of the mutators keep the historical
//     fail-quiet contract: Get answers OutOfBounds (-1) for a bad index and a
//     rejected Set or Resize leaves the matrix untouched.
//
// OutOfBounds is also a legal stored value. Callers that need to tell the two
// apart use At.
//
// Complexity:
//
//   - New, Fill, Clone: O(r*c).
//   - At, Get, Set: O(1).
//   - Resize: O(r'*c' + overlap), with both buffers live during the copy.
//   - Row: O(c). Col: O(r).
//
// The type is not safe for concurrent mutation.
package matrix
