// SPDX-License-Identifier: MIT

package ackermann_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/intgrid/ackermann"
)

// knownValues are textbook A(m, n) results small enough for every strategy.
var knownValues = []struct {
	m, n int32
	want int32
}{
	{0, 0, 1},
	{0, 5, 6},
	{1, 0, 2},
	{1, 3, 5},
	{2, 0, 3},
	{2, 3, 9},
	{3, 0, 5},
	{3, 3, 61},
	{3, 5, 253},
	{4, 0, 13},
}

func TestStrategiesAgree(t *testing.T) {
	table, err := ackermann.NewTable(5, 21)
	require.NoError(t, err)
	defer table.Release()

	for _, tc := range knownValues {
		tc := tc
		t.Run(fmt.Sprintf("A(%d,%d)", tc.m, tc.n), func(t *testing.T) {
			naive, err := ackermann.Naive(tc.m, tc.n)
			require.NoError(t, err)
			assert.Equal(t, tc.want, naive.Value, "naive")
			assert.Zero(t, naive.CacheHits)

			memo, err := ackermann.Memoized(table, tc.m, tc.n)
			require.NoError(t, err)
			assert.Equal(t, tc.want, memo.Value, "memoized")

			iter, err := ackermann.Iterative(tc.m, tc.n)
			require.NoError(t, err)
			assert.Equal(t, tc.want, iter.Value, "iterative")
		})
	}
}

func TestNegativeArguments(t *testing.T) {
	table, err := ackermann.NewTable(1, 1)
	require.NoError(t, err)

	for _, mn := range [][2]int32{{-1, 0}, {0, -1}, {-3, -3}} {
		_, err = ackermann.Naive(mn[0], mn[1])
		assert.ErrorIs(t, err, ackermann.ErrNegativeArgument)
		_, err = ackermann.Memoized(table, mn[0], mn[1])
		assert.ErrorIs(t, err, ackermann.ErrNegativeArgument)
		_, err = ackermann.Iterative(mn[0], mn[1])
		assert.ErrorIs(t, err, ackermann.ErrNegativeArgument)
	}
}

// TestMemoizedSavesWork compares call counts and checks a warm table answers
// from the cache immediately.
func TestMemoizedSavesWork(t *testing.T) {
	table, err := ackermann.NewTable(3, 5)
	require.NoError(t, err)

	naive, err := ackermann.Naive(3, 5)
	require.NoError(t, err)
	cold, err := ackermann.Memoized(table, 3, 5)
	require.NoError(t, err)
	require.Less(t, cold.Calls, naive.Calls)

	warm, err := ackermann.Memoized(table, 3, 5)
	require.NoError(t, err)
	require.Equal(t, int32(253), warm.Value)
	require.Equal(t, uint64(1), warm.Calls)
	require.Equal(t, uint64(1), warm.CacheHits)
}

// TestMemoizedHugeColumn keeps the value when the table refuses to grow.
func TestMemoizedHugeColumn(t *testing.T) {
	table, err := ackermann.NewTable(5, 21)
	require.NoError(t, err)

	res, err := ackermann.Memoized(table, 0, 300_000_000)
	require.NoError(t, err)
	require.Equal(t, int32(300_000_001), res.Value)

	rows, cols := table.Shape()
	require.Equal(t, 6, rows)
	require.Equal(t, 22, cols)
	_, ok := table.Lookup(0, 300_000_000)
	require.False(t, ok, "value was not cached")
}

func TestOverflow(t *testing.T) {
	table, err := ackermann.NewTable(0, 0)
	require.NoError(t, err)

	_, err = ackermann.Naive(0, math.MaxInt32)
	assert.ErrorIs(t, err, ackermann.ErrOverflow)
	_, err = ackermann.Memoized(table, 0, math.MaxInt32)
	assert.ErrorIs(t, err, ackermann.ErrOverflow)
	_, err = ackermann.Iterative(0, math.MaxInt32)
	assert.ErrorIs(t, err, ackermann.ErrOverflow)
}

func TestLimits(t *testing.T) {
	_, err := ackermann.Naive(2, 3, ackermann.WithMaxDepth(3))
	assert.ErrorIs(t, err, ackermann.ErrDepthExceeded)

	table, err := ackermann.NewTable(2, 3)
	require.NoError(t, err)
	_, err = ackermann.Memoized(table, 2, 3, ackermann.WithMaxDepth(3))
	assert.ErrorIs(t, err, ackermann.ErrDepthExceeded)

	_, err = ackermann.Iterative(3, 3, ackermann.WithMaxStack(2))
	assert.ErrorIs(t, err, ackermann.ErrStackExceeded)

	// non-positive limits keep the defaults
	res, err := ackermann.Naive(2, 3, ackermann.WithMaxDepth(0), ackermann.WithMaxStack(-1))
	require.NoError(t, err)
	assert.Equal(t, int32(9), res.Value)
}

func TestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	table, err := ackermann.NewTable(1, 1)
	require.NoError(t, err)

	_, err = ackermann.Naive(2, 2, ackermann.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = ackermann.Memoized(table, 2, 2, ackermann.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = ackermann.Iterative(2, 2, ackermann.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoizedNilTable(t *testing.T) {
	_, err := ackermann.Memoized(nil, 1, 1)
	require.ErrorIs(t, err, ackermann.ErrNilTable)

	table, err := ackermann.NewTable(1, 1)
	require.NoError(t, err)
	table.Release()
	table.Release()
	_, err = ackermann.Memoized(table, 1, 1)
	require.ErrorIs(t, err, ackermann.ErrNilTable)
}
