// SPDX-License-Identifier: MIT
// Package matrix_test contains shared fixtures for the matrix tests.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/intgrid/matrix"
)

// MustMatrix allocates an r×c Matrix or fails the test.
func MustMatrix(tb testing.TB, r, c int) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.New(r, c)
	if err != nil {
		tb.Fatalf("New(%d,%d): %v", r, c, err)
	}

	return m
}

// Numbered returns an r×c Matrix whose cell (i,j) holds i*100 + j + 1,
// so every cell is distinct and non-zero.
func Numbered(tb testing.TB, r, c int) *matrix.Matrix {
	tb.Helper()
	m := MustMatrix(tb, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err := m.Set(i, j, cellValue(i, j)); err != nil {
				tb.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// cellValue is the value Numbered stores at (i,j).
func cellValue(i, j int) int32 { return int32(i*100 + j + 1) }

// Snapshot reads every cell through Get into a fresh [][]int32.
func Snapshot(m *matrix.Matrix) [][]int32 {
	out := make([][]int32, m.Rows())
	for i := range out {
		out[i] = make([]int32, m.Cols())
		for j := range out[i] {
			out[i][j] = m.Get(i, j)
		}
	}

	return out
}
