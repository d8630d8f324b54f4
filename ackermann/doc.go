// SPDX-License-Identifier: MIT

// Package ackermann evaluates the Ackermann function three ways:
//
//	A(0, n) = n + 1
//	A(m, 0) = A(m-1, 1)
//	A(m, n) = A(m-1, A(m, n-1))
//
//   - Naive(m, n): direct recursion.
//   - Memoized(t, m, n): recursion that consults and fills a caller-owned
//     Table. The table is an explicit value, so independent evaluations
//     never share hidden state.
//   - Iterative(m, n): the same reduction driven by an explicit stack of
//     pending m values.
//
// All three return the same Value for the same input; Calls and CacheHits in
// Result show how much work each strategy did.
//
// Options:
//
//   - WithContext(ctx)    cancellation, checked every few thousand steps.
//   - WithMaxDepth(d)     recursion depth limit for Naive and Memoized.
//   - WithMaxStack(s)     explicit stack limit for Iterative.
//
// Errors:
//
//   - ErrNegativeArgument  m < 0 or n < 0.
//   - ErrOverflow          a value left the int32 range.
//   - ErrDepthExceeded     recursion went deeper than MaxDepth.
//   - ErrStackExceeded     the explicit stack grew beyond MaxStack.
//   - ErrNilTable          Memoized called without a table.
//   - context errors       when the context is done.
package ackermann
