// SPDX-License-Identifier: MIT

package ackermann

import (
	"fmt"

	"github.com/katalvlaran/intgrid/matrix"
)

// NotComputed marks a table cell with no cached value yet.
// Ackermann values are always >= 1, so it never collides with a result.
const NotComputed int32 = -1

// Growth defaults used when Store lands outside the table.
const (
	DefaultRowGrowth = 10
	DefaultColGrowth = 1000
)

// DefaultMaxCells bounds the table at 4M cells (16 MiB of int32).
const DefaultMaxCells = 1 << 22

// TableOption configures a Table at construction.
type TableOption func(*Table)

// WithRowGrowth sets how many rows past the missing m a growth step adds.
// Values below 1 are ignored.
func WithRowGrowth(k int) TableOption {
	return func(t *Table) {
		if k >= 1 {
			t.rowGrowth = k
		}
	}
}

// WithColGrowth sets how many columns past the missing n a growth step adds.
// Values below 1 are ignored.
func WithColGrowth(k int) TableOption {
	return func(t *Table) {
		if k >= 1 {
			t.colGrowth = k
		}
	}
}

// WithMaxCells sets the largest rows*cols the table may grow to.
// Values below 1 are ignored.
func WithMaxCells(k int) TableOption {
	return func(t *Table) {
		if k >= 1 {
			t.maxCells = k
		}
	}
}

// Table caches A(m, n) in a growable matrix indexed [m][n].
// It is owned by the caller and passed into Memoized explicitly.
type Table struct {
	grid      *matrix.Matrix
	rowGrowth int
	colGrowth int
	maxCells  int
}

// NewTable allocates a (maxM+1)×(maxN+1) table with every cell NotComputed.
//
// Errors:
//   - ErrNegativeArgument when maxM or maxN is negative.
//   - matrix.ErrTooLarge (wrapped) when the shape exceeds the cell limit.
func NewTable(maxM, maxN int, opts ...TableOption) (*Table, error) {
	if maxM < 0 || maxN < 0 {
		return nil, fmt.Errorf("ackermann: NewTable(%d,%d): %w", maxM, maxN, ErrNegativeArgument)
	}
	t := &Table{rowGrowth: DefaultRowGrowth, colGrowth: DefaultColGrowth, maxCells: DefaultMaxCells}
	for _, fn := range opts {
		fn(t)
	}
	if !t.fits(maxM+1, maxN+1) {
		return nil, fmt.Errorf("ackermann: NewTable(%d,%d): %w", maxM, maxN, matrix.ErrTooLarge)
	}

	grid, err := matrix.New(maxM+1, maxN+1)
	if err != nil {
		return nil, fmt.Errorf("ackermann: NewTable(%d,%d): %w", maxM, maxN, err)
	}
	grid.Fill(NotComputed)
	t.grid = grid

	return t, nil
}

// fits reports whether rows×cols stays within maxCells, without overflow.
func (t *Table) fits(rows, cols int) bool {
	return rows > 0 && cols > 0 && rows <= t.maxCells/cols
}

func (t *Table) live() bool { return t != nil && t.grid != nil && t.grid.Cap() > 0 }

// Shape returns the current table dimensions.
func (t *Table) Shape() (rows, cols int) {
	if !t.live() {
		return 0, 0
	}

	return t.grid.Shape()
}

// Lookup returns the cached A(m, n) if present.
func (t *Table) Lookup(m, n int32) (int32, bool) {
	if !t.live() {
		return NotComputed, false
	}
	v, err := t.grid.At(int(m), int(n))
	if err != nil || v == NotComputed {
		return NotComputed, false
	}

	return v, true
}

// Store caches v as A(m, n), growing the table when (m, n) is outside it.
// A growth step resizes to m+rowGrowth rows and/or n+colGrowth columns and
// re-marks the exposed cells NotComputed; cached cells are kept.
// A growth that would pass the cell limit is refused before any allocation.
//
// Errors:
//   - ErrNilTable, ErrNegativeArgument, matrix.ErrTooLarge (wrapped).
//     On error the table is unchanged.
func (t *Table) Store(m, n, v int32) error {
	if !t.live() {
		return ErrNilTable
	}
	if m < 0 || n < 0 {
		return fmt.Errorf("ackermann: Store(%d,%d): %w", m, n, ErrNegativeArgument)
	}

	rows, cols := t.grid.Shape()
	mi, ni := int(m), int(n)
	if mi >= rows || ni >= cols {
		newRows, newCols := rows, cols
		if mi >= rows {
			newRows = mi + t.rowGrowth
		}
		if ni >= cols {
			newCols = ni + t.colGrowth
		}
		if !t.fits(newRows, newCols) {
			return fmt.Errorf("ackermann: Store(%d,%d): grow to %dx%d: %w", m, n, newRows, newCols, matrix.ErrTooLarge)
		}
		if err := t.grid.Resize(newRows, newCols); err != nil {
			return fmt.Errorf("ackermann: Store(%d,%d): %w", m, n, err)
		}
		if err := t.grid.FillRegion(rows, cols, NotComputed); err != nil {
			return fmt.Errorf("ackermann: Store(%d,%d): %w", m, n, err)
		}
	}

	return t.grid.Set(mi, ni, v)
}

// Reset marks every cell NotComputed, keeping the current shape.
func (t *Table) Reset() {
	if t.live() {
		t.grid.Fill(NotComputed)
	}
}

// Grid returns a copy of the backing matrix for inspection or export.
func (t *Table) Grid() *matrix.Matrix {
	if !t.live() {
		return nil
	}

	return t.grid.Clone()
}

// Release drops the backing matrix. Later lookups miss and stores fail with
// ErrNilTable. Safe to call twice.
func (t *Table) Release() {
	if t == nil || t.grid == nil {
		return
	}
	t.grid.Release()
	t.grid = nil
}
