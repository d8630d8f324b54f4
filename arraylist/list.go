// SPDX-License-Identifier: MIT

package arraylist

import (
	"errors"
	"fmt"
)

// DefaultCapacity is the initial capacity of New.
const DefaultCapacity = 10

// GrowthRatio multiplies the capacity on every growth step.
const GrowthRatio = 2

// NotFound is returned by Get for a bad index and by Find for a missing value.
const NotFound int32 = -1

var (
	// ErrOutOfRange indicates an index outside the live range.
	ErrOutOfRange = errors.New("arraylist: index out of range")

	// ErrEmpty indicates Pop on an empty list.
	ErrEmpty = errors.New("arraylist: list is empty")
)

// List is a growable int32 list. The zero value is not usable; call New.
type List struct {
	arr  []int32 // backing store; len(arr) is the capacity
	size int     // number of live elements
}

// New returns an empty list with DefaultCapacity.
func New() *List { return NewWithCapacity(DefaultCapacity) }

// NewWithCapacity returns an empty list with room for n elements before the
// first growth. Non-positive n falls back to DefaultCapacity.
func NewWithCapacity(n int) *List {
	if n <= 0 {
		n = DefaultCapacity
	}

	return &List{arr: make([]int32, n)}
}

// Len returns the number of elements (0 for nil).
func (l *List) Len() int {
	if l == nil {
		return 0
	}

	return l.size
}

// Cap returns the current capacity (0 for nil or released).
func (l *List) Cap() int {
	if l == nil {
		return 0
	}

	return len(l.arr)
}

// IsEmpty reports whether the list holds no elements.
func (l *List) IsEmpty() bool { return l.Len() == 0 }

// grow multiplies the capacity by GrowthRatio, keeping the live prefix.
func (l *List) grow() {
	next := len(l.arr) * GrowthRatio
	if next == 0 {
		next = DefaultCapacity
	}
	buf := make([]int32, next)
	copy(buf, l.arr[:l.size])
	l.arr = buf
}

// At returns the element at i. On failure the value is NotFound.
func (l *List) At(i int) (int32, error) {
	if i < 0 || i >= l.Len() {
		return NotFound, fmt.Errorf("List.At(%d): %w", i, ErrOutOfRange)
	}

	return l.arr[i], nil
}

// Get returns the element at i or NotFound.
func (l *List) Get(i int) int32 {
	v, _ := l.At(i)

	return v
}

// Set overwrites the element at i.
func (l *List) Set(i int, v int32) error {
	if i < 0 || i >= l.Len() {
		return fmt.Errorf("List.Set(%d): %w", i, ErrOutOfRange)
	}
	l.arr[i] = v

	return nil
}

// Add appends v, growing the store when full. Add on nil is a no-op.
// Complexity: amortized O(1).
func (l *List) Add(v int32) {
	if l == nil {
		return
	}
	if l.size == len(l.arr) {
		l.grow()
	}
	l.arr[l.size] = v
	l.size++
}

// Insert places v at i, shifting the tail right. i may equal Len().
// Complexity: O(Len()-i).
func (l *List) Insert(i int, v int32) error {
	if l == nil || i < 0 || i > l.size {
		return fmt.Errorf("List.Insert(%d): %w", i, ErrOutOfRange)
	}
	if l.size == len(l.arr) {
		l.grow()
	}
	copy(l.arr[i+1:l.size+1], l.arr[i:l.size])
	l.arr[i] = v
	l.size++

	return nil
}

// Remove deletes and returns the element at i, shifting the tail left.
// Complexity: O(Len()-i).
func (l *List) Remove(i int) (int32, error) {
	if i < 0 || i >= l.Len() {
		return NotFound, fmt.Errorf("List.Remove(%d): %w", i, ErrOutOfRange)
	}
	v := l.arr[i]
	copy(l.arr[i:l.size-1], l.arr[i+1:l.size])
	l.size--

	return v, nil
}

// Pop removes and returns the last element, so a List doubles as a stack.
func (l *List) Pop() (int32, error) {
	if l.IsEmpty() {
		return NotFound, ErrEmpty
	}
	l.size--

	return l.arr[l.size], nil
}

// Peek returns the last element without removing it.
func (l *List) Peek() (int32, error) {
	if l.IsEmpty() {
		return NotFound, ErrEmpty
	}

	return l.arr[l.size-1], nil
}

// Find returns the first index holding v, or -1.
func (l *List) Find(v int32) int {
	for i := 0; i < l.Len(); i++ {
		if l.arr[i] == v {
			return i
		}
	}

	return -1
}

// ToSlice returns a copy of the live elements, or nil when the list is empty.
func (l *List) ToSlice() []int32 {
	if l.IsEmpty() {
		return nil
	}
	out := make([]int32, l.size)
	copy(out, l.arr[:l.size])

	return out
}

// Clear drops every element but keeps the capacity.
func (l *List) Clear() {
	if l != nil {
		l.size = 0
	}
}

// Release drops the backing store. A later Add starts over at DefaultCapacity.
func (l *List) Release() {
	if l == nil {
		return
	}
	l.arr = nil
	l.size = 0
}
