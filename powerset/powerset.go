// SPDX-License-Identifier: MIT

package powerset

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/katalvlaran/intgrid/arraylist"
	"github.com/katalvlaran/intgrid/matrix"
)

// Unused marks matrix cells past the end of a subset.
const Unused int32 = -1

// PowerSet is a list of subsets backed by a matrix (one row per subset) and a
// parallel list of row lengths.
type PowerSet struct {
	grid  *matrix.Matrix  // rows = subset capacity, cols = widest subset so far
	sizes *arraylist.List // sizes.Get(i) = length of subset i; Len() = subset count
}

// New allocates room for maxSubsets subsets of up to maxElements values each,
// with every cell marked Unused. Wider subsets widen the matrix on Add.
//
// Errors:
//   - matrix.ErrInvalidDimensions, matrix.ErrTooLarge (wrapped).
func New(maxSubsets, maxElements int) (*PowerSet, error) {
	grid, err := matrix.New(maxSubsets, maxElements)
	if err != nil {
		return nil, fmt.Errorf("powerset: New(%d,%d): %w", maxSubsets, maxElements, err)
	}
	grid.Fill(Unused)

	return &PowerSet{grid: grid, sizes: arraylist.NewWithCapacity(maxSubsets)}, nil
}

// live reports whether p still owns its storage.
func (p *PowerSet) live() bool { return p != nil && p.grid != nil }

// Len returns the number of stored subsets.
func (p *PowerSet) Len() int {
	if !p.live() {
		return 0
	}

	return p.sizes.Len()
}

// Cap returns the number of subset rows.
func (p *PowerSet) Cap() int {
	if !p.live() {
		return 0
	}

	return p.grid.Rows()
}

// Add stores subset in the next free row.
// When subset is wider than the matrix, the matrix is widened and the new
// columns of every row are re-marked Unused.
//
// Errors:
//   - ErrFull when every row is taken; ErrNilPowerSet; resize errors (wrapped).
func (p *PowerSet) Add(subset []int32) error {
	if !p.live() {
		return ErrNilPowerSet
	}
	row := p.sizes.Len()
	if row >= p.grid.Rows() {
		return fmt.Errorf("powerset: Add at row %d: %w", row, ErrFull)
	}

	if oldCols := p.grid.Cols(); len(subset) > oldCols {
		if err := p.grid.Resize(p.grid.Rows(), len(subset)); err != nil {
			return fmt.Errorf("powerset: widen to %d: %w", len(subset), err)
		}
		if err := p.grid.FillRegion(p.grid.Rows(), oldCols, Unused); err != nil {
			return fmt.Errorf("powerset: mark columns from %d: %w", oldCols, err)
		}
	}

	for j, v := range subset {
		if err := p.grid.Set(row, j, v); err != nil {
			return fmt.Errorf("powerset: Add at row %d: %w", row, err)
		}
	}
	p.sizes.Add(int32(len(subset)))

	return nil
}

// Subset returns a copy of subset i (an empty, non-nil slice for ∅).
//
// Errors:
//   - ErrOutOfRange, ErrNilPowerSet.
func (p *PowerSet) Subset(i int) ([]int32, error) {
	if !p.live() {
		return nil, ErrNilPowerSet
	}
	if i < 0 || i >= p.sizes.Len() {
		return nil, fmt.Errorf("powerset: Subset(%d): %w", i, ErrOutOfRange)
	}
	row, err := p.grid.Row(i)
	if err != nil {
		return nil, fmt.Errorf("powerset: Subset(%d): %w", i, err)
	}

	return slices.Clip(row[:p.sizes.Get(i)]), nil
}

// Subsets returns copies of all stored subsets in insertion order.
func (p *PowerSet) Subsets() [][]int32 {
	out := make([][]int32, p.Len())
	for i := range out {
		out[i], _ = p.Subset(i)
	}

	return out
}

// String renders the subsets as "{ {}, {1}, {1,2} }".
func (p *PowerSet) String() string {
	if !p.live() {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString("{ ")
	n := p.sizes.Len()
	for i := 0; i < n; i++ {
		b.WriteByte('{')
		size := int(p.sizes.Get(i))
		for j := 0; j < size; j++ {
			b.WriteString(strconv.FormatInt(int64(p.grid.Get(i, j)), 10))
			if j < size-1 {
				b.WriteByte(',')
			}
		}
		b.WriteByte('}')
		if i < n-1 {
			b.WriteString(", ")
		}
	}
	b.WriteString(" }")

	return b.String()
}

// MarshalJSON encodes the subsets as a JSON array of arrays.
func (p *PowerSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Subsets())
}

// Release drops the matrix and the size list. Safe to call twice.
func (p *PowerSet) Release() {
	if !p.live() {
		return
	}
	p.grid.Release()
	p.sizes.Release()
	p.grid, p.sizes = nil, nil
}
