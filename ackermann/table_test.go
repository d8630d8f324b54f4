// SPDX-License-Identifier: MIT

package ackermann_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/intgrid/ackermann"
	"github.com/katalvlaran/intgrid/matrix"
)

func TestNewTable(t *testing.T) {
	table, err := ackermann.NewTable(5, 21)
	require.NoError(t, err)
	rows, cols := table.Shape()
	require.Equal(t, 6, rows)
	require.Equal(t, 22, cols)

	_, ok := table.Lookup(0, 0)
	require.False(t, ok, "fresh table holds nothing")

	_, err = ackermann.NewTable(-1, 3)
	require.ErrorIs(t, err, ackermann.ErrNegativeArgument)
}

func TestStoreLookup(t *testing.T) {
	table, err := ackermann.NewTable(2, 2)
	require.NoError(t, err)

	require.NoError(t, table.Store(1, 1, 3))
	v, ok := table.Lookup(1, 1)
	require.True(t, ok)
	require.Equal(t, int32(3), v)

	_, ok = table.Lookup(-1, 0)
	require.False(t, ok)
	_, ok = table.Lookup(100, 100)
	require.False(t, ok)

	require.ErrorIs(t, table.Store(-1, 0, 1), ackermann.ErrNegativeArgument)
}

// TestStoreGrows lands a store outside the table and checks the growth
// policy, the kept cells and the NotComputed marking of exposed cells.
func TestStoreGrows(t *testing.T) {
	table, err := ackermann.NewTable(1, 1)
	require.NoError(t, err)
	require.NoError(t, table.Store(0, 0, 1))

	require.NoError(t, table.Store(5, 7, 42))
	rows, cols := table.Shape()
	require.Equal(t, 5+ackermann.DefaultRowGrowth, rows)
	require.Equal(t, 7+ackermann.DefaultColGrowth, cols)

	v, ok := table.Lookup(5, 7)
	require.True(t, ok)
	require.Equal(t, int32(42), v)
	v, ok = table.Lookup(0, 0)
	require.True(t, ok)
	require.Equal(t, int32(1), v)

	grid := table.Grid()
	require.Equal(t, ackermann.NotComputed, grid.Get(rows-1, cols-1))
	require.Equal(t, ackermann.NotComputed, grid.Get(0, cols-1))
	require.Equal(t, ackermann.NotComputed, grid.Get(rows-1, 0))
	require.Equal(t, ackermann.NotComputed, grid.Get(1, 1))
}

func TestStoreGrowthOptions(t *testing.T) {
	table, err := ackermann.NewTable(0, 0, ackermann.WithRowGrowth(1), ackermann.WithColGrowth(2), ackermann.WithColGrowth(0))
	require.NoError(t, err)

	require.NoError(t, table.Store(0, 3, 4))
	rows, cols := table.Shape()
	require.Equal(t, 1, rows, "row untouched")
	require.Equal(t, 5, cols)

	require.NoError(t, table.Store(2, 0, 3))
	rows, _ = table.Shape()
	require.Equal(t, 3, rows)
}

func TestResetAndRelease(t *testing.T) {
	table, err := ackermann.NewTable(1, 1)
	require.NoError(t, err)
	require.NoError(t, table.Store(1, 1, 3))

	table.Reset()
	_, ok := table.Lookup(1, 1)
	require.False(t, ok)

	table.Release()
	require.ErrorIs(t, table.Store(0, 0, 1), ackermann.ErrNilTable)
	require.Nil(t, table.Grid())
	rows, cols := table.Shape()
	require.Zero(t, rows)
	require.Zero(t, cols)
}

func TestStoreRespectsMaxCells(t *testing.T) {
	table, err := ackermann.NewTable(1, 1, ackermann.WithMaxCells(100))
	require.NoError(t, err)
	require.NoError(t, table.Store(1, 1, 3))

	err = table.Store(5, 7, 42)
	require.ErrorIs(t, err, matrix.ErrTooLarge)
	rows, cols := table.Shape()
	require.Equal(t, 2, rows, "refused growth leaves the shape")
	require.Equal(t, 2, cols)
	v, ok := table.Lookup(1, 1)
	require.True(t, ok)
	require.Equal(t, int32(3), v)

	_, err = ackermann.NewTable(10, 10, ackermann.WithMaxCells(100))
	require.ErrorIs(t, err, matrix.ErrTooLarge)

	// Default limit: a column far past it is refused without allocating.
	big, err := ackermann.NewTable(5, 21)
	require.NoError(t, err)
	require.ErrorIs(t, big.Store(0, 300_000_000, 300_000_001), matrix.ErrTooLarge)
}
