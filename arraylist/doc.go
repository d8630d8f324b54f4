// SPDX-License-Identifier: MIT

// Package arraylist implements a growable list of int32 values.
//
// The list starts with DefaultCapacity slots and multiplies its capacity by
// GrowthRatio whenever an Add or Insert finds it full, copying the live
// prefix into the new store. Clear keeps the capacity.
//
// Indexed accessors follow the same two-style contract as package matrix:
// At/Set/Insert/Remove return ErrOutOfRange, while Get answers NotFound (-1)
// and ignored errors leave the list unchanged.
package arraylist
