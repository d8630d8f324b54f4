// SPDX-License-Identifier: MIT

// Package intgrid is a small toolkit built around one growable, row-major
// int32 matrix and two classic exercises that lean on it.
//
// What is inside?
//
//	matrix/    — dense int32 matrix: exact-fit storage, overlap-preserving
//	             Resize, fail-quiet accessors with explicit errors on the side
//	arraylist/ — growable int32 list (capacity 10, doubling)
//	powerset/  — power set enumeration (recursive & bitmask) stored as matrix rows
//	ackermann/ — A(m, n) three ways: naive, memoized over a growable table, explicit stack
//
// Quick example:
//
//	m, _ := matrix.New(3, 1)
//	_ = m.Set(0, 0, 1)
//	_ = m.Resize(3, 3) // new cells are zero
//	fmt.Print(m)
//	// [1, 0, 0]
//	// [0, 0, 0]
//	// [0, 0, 0]
//
// Runnable programs live under examples/:
//
//	go run ./examples/powerset
//	go run ./examples/ackermann -m 3 -n 6
package intgrid
