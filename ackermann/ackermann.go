// SPDX-License-Identifier: MIT

package ackermann

import (
	"fmt"
	"math"

	"github.com/katalvlaran/intgrid/arraylist"
)

// Result is the outcome of one evaluation.
type Result struct {
	// Value is A(m, n).
	Value int32

	// Calls counts recursive invocations (Naive, Memoized) or stack steps (Iterative).
	Calls uint64

	// CacheHits counts table hits (Memoized only).
	CacheHits uint64
}

// evaluator carries the state of one recursive evaluation.
type evaluator struct {
	opts Options
	memo *Table // nil for Naive
	res  Result
}

// Naive computes A(m, n) by direct recursion.
// Time grows like A(m, n) itself; keep m <= 3 for interactive use.
func Naive(m, n int32, opts ...Option) (Result, error) {
	if m < 0 || n < 0 {
		return Result{}, fmt.Errorf("ackermann: Naive(%d,%d): %w", m, n, ErrNegativeArgument)
	}
	e := &evaluator{opts: gatherOptions(opts)}
	v, err := e.eval(m, n, 0)
	if err != nil {
		return e.res, fmt.Errorf("ackermann: Naive(%d,%d): %w", m, n, err)
	}
	e.res.Value = v

	return e.res, nil
}

// Memoized computes A(m, n) by recursion, reading and filling t.
// The cache is best effort: when t cannot grow any further the value is
// still computed, just not stored. Reusing t across calls keeps earlier results.
func Memoized(t *Table, m, n int32, opts ...Option) (Result, error) {
	if !t.live() {
		return Result{}, ErrNilTable
	}
	if m < 0 || n < 0 {
		return Result{}, fmt.Errorf("ackermann: Memoized(%d,%d): %w", m, n, ErrNegativeArgument)
	}
	e := &evaluator{opts: gatherOptions(opts), memo: t}
	v, err := e.eval(m, n, 0)
	if err != nil {
		return e.res, fmt.Errorf("ackermann: Memoized(%d,%d): %w", m, n, err)
	}
	e.res.Value = v

	return e.res, nil
}

// eval applies the three defining cases, consulting the memo table if any.
func (e *evaluator) eval(m, n int32, depth int) (int32, error) {
	e.res.Calls++
	if e.res.Calls%ctxCheckEvery == 1 {
		if err := e.opts.Ctx.Err(); err != nil {
			return 0, err
		}
	}
	if depth > e.opts.MaxDepth {
		return 0, ErrDepthExceeded
	}
	if e.memo != nil {
		if v, ok := e.memo.Lookup(m, n); ok {
			e.res.CacheHits++
			return v, nil
		}
	}

	var (
		v     int32
		inner int32
		err   error
	)
	switch {
	case m == 0:
		if n == math.MaxInt32 {
			return 0, ErrOverflow
		}
		v = n + 1
	case n == 0:
		v, err = e.eval(m-1, 1, depth+1)
	default:
		if inner, err = e.eval(m, n-1, depth+1); err == nil {
			v, err = e.eval(m-1, inner, depth+1)
		}
	}
	if err != nil {
		return 0, err
	}

	if e.memo != nil {
		_ = e.memo.Store(m, n, v) // a full table only costs the cache entry
	}

	return v, nil
}

// Iterative computes A(m, n) with an explicit stack of pending m values.
//
// Implementation:
//   - Push m and start the accumulator at n. While the stack is non-empty, pop cm:
//     cm == 0:  acc = acc+1;
//     acc == 0: push cm-1, acc = 1;
//     else:     push cm-1, push cm, acc = acc-1.
//   - The final accumulator is the result.
func Iterative(m, n int32, opts ...Option) (Result, error) {
	if m < 0 || n < 0 {
		return Result{}, fmt.Errorf("ackermann: Iterative(%d,%d): %w", m, n, ErrNegativeArgument)
	}
	o := gatherOptions(opts)

	var res Result
	stack := arraylist.New()
	defer stack.Release()
	stack.Add(m)
	acc := n

	for !stack.IsEmpty() {
		res.Calls++
		if res.Calls%ctxCheckEvery == 1 {
			if err := o.Ctx.Err(); err != nil {
				return res, fmt.Errorf("ackermann: Iterative(%d,%d): %w", m, n, err)
			}
		}
		if stack.Len() > o.MaxStack {
			return res, fmt.Errorf("ackermann: Iterative(%d,%d): %w", m, n, ErrStackExceeded)
		}

		cm, _ := stack.Pop()
		switch {
		case cm == 0:
			if acc == math.MaxInt32 {
				return res, fmt.Errorf("ackermann: Iterative(%d,%d): %w", m, n, ErrOverflow)
			}
			acc++
		case acc == 0:
			stack.Add(cm - 1)
			acc = 1
		default:
			stack.Add(cm - 1)
			stack.Add(cm)
			acc--
		}
	}
	res.Value = acc

	return res, nil
}
