// SPDX-License-Identifier: MIT

package ackermann

import "errors"

var (
	// ErrNegativeArgument indicates m < 0 or n < 0.
	ErrNegativeArgument = errors.New("ackermann: negative argument")

	// ErrOverflow indicates an intermediate or final value beyond int32.
	ErrOverflow = errors.New("ackermann: int32 overflow")

	// ErrDepthExceeded indicates recursion deeper than Options.MaxDepth.
	ErrDepthExceeded = errors.New("ackermann: recursion depth exceeded")

	// ErrStackExceeded indicates an explicit stack longer than Options.MaxStack.
	ErrStackExceeded = errors.New("ackermann: stack limit exceeded")

	// ErrNilTable indicates a nil or released memo table.
	ErrNilTable = errors.New("ackermann: nil or released table")
)
