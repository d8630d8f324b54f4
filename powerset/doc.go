// SPDX-License-Identifier: MIT

// Package powerset enumerates every subset of a small int32 set and stores
// the result in a growable matrix.
//
// Storage layout:
//
//	row i of the matrix   = the i-th subset, left-aligned
//	unused cells          = Unused (-1)
//	sizes (parallel list) = logical length of each row
//
// The matrix has no notion of a partially used row, so the per-row length
// list is the only source of truth for where a subset ends.
//
// Builders:
//
//   - Recursive(set): P(∅) = {∅}; P(S) = P(S[1:]) followed by {S[0]} ∪ x for
//     every x already produced, in production order.
//   - Iterative(set): one subset per bitmask 0..2^n-1, elements taken in index
//     order for every set bit.
//
// Both produce 2^n subsets; only the order differs.
//
// Complexity: O(n·2^n) time and O(n·2^n) memory.
package powerset
