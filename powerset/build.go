// SPDX-License-Identifier: MIT

package powerset

import (
	"context"
	"fmt"

	"github.com/limpo1989/arena"
	"github.com/teivah/bitvector"

	"github.com/katalvlaran/intgrid/arraylist"
)

// newFor sizes a PowerSet for all 2^n subsets of set.
func newFor(set []int32) (*PowerSet, error) {
	n := len(set)
	if n > MaxSetSize {
		return nil, fmt.Errorf("powerset: %d elements, max %d: %w", n, MaxSetSize, ErrSetTooLarge)
	}

	return New(1<<n, max(n, 1))
}

// Recursive builds the power set of set by peeling off set[0].
//
// Errors:
//   - ErrSetTooLarge; ctx.Err() when cancelled; storage errors (wrapped).
func Recursive(set []int32, opts ...Option) (*PowerSet, error) {
	o := gatherOptions(opts)
	ps, err := newFor(set)
	if err != nil {
		return nil, err
	}
	if err = ps.recurse(o.Ctx, set); err != nil {
		ps.Release()
		return nil, err
	}

	return ps, nil
}

// recurse fills p with P(set): first P(set[1:]), then set[0] prepended to
// each subset produced so far.
func (p *PowerSet) recurse(ctx context.Context, set []int32) error {
	if len(set) == 0 {
		return p.Add(nil)
	}
	if err := p.recurse(ctx, set[1:]); err != nil {
		return err
	}

	count := p.Len()
	scratch := arraylist.NewWithCapacity(len(set))
	defer scratch.Release()
	for i := 0; i < count; i++ {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		existing, err := p.Subset(i)
		if err != nil {
			return err
		}
		scratch.Clear()
		scratch.Add(set[0])
		for _, v := range existing {
			scratch.Add(v)
		}
		if err = p.Add(scratch.ToSlice()); err != nil {
			return err
		}
	}

	return nil
}

// Iterative builds the power set of set by walking every bitmask.
// Subset buffers come from an arena released once the build returns.
//
// Errors:
//   - ErrSetTooLarge; ctx.Err() when cancelled; storage errors (wrapped).
func Iterative(set []int32, opts ...Option) (*PowerSet, error) {
	o := gatherOptions(opts)
	ps, err := newFor(set)
	if err != nil {
		return nil, err
	}

	ar := arena.NewArena()
	defer ar.Reset()

	n := len(set)
	total := 1 << n
	scratch := arena.NewSlice[int32](ar, 0, n)
	for mask := 0; mask < total; mask++ {
		if mask%ctxCheckEvery == 0 {
			if err = o.Ctx.Err(); err != nil {
				ps.Release()
				return nil, err
			}
		}
		bits := bitvector.Len32(mask)
		subset := scratch[:0]
		for i := 0; i < n; i++ {
			if bits.Get(uint8(i)) {
				subset = arena.Append(ar, subset, set[i])
			}
		}
		if err = ps.Add(subset); err != nil {
			ps.Release()
			return nil, err
		}
	}

	return ps, nil
}
