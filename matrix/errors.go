// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Public methods return these sentinels, wrapped with method context via %w
// where coordinates help. Tests match them with errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrTooLarge indicates that rows*cols exceeds MaxCapacity.
	ErrTooLarge = errors.New("matrix: capacity exceeds limit")

	// ErrNilMatrix indicates a nil or already released Matrix.
	ErrNilMatrix = errors.New("matrix: nil or released matrix")

	// ErrBadJSON indicates a JSON document that does not describe a rectangular matrix.
	ErrBadJSON = errors.New("matrix: malformed json matrix")
)
