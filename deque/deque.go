// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package deque implements a double-ended queue backed by a growable ring
// buffer.
package deque

import (
	"fmt"
	"iter"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/ava-labs/ringdeque/alloc"
	"github.com/ava-labs/ringdeque/intmath"
)

// A Deque is a double-ended queue with amortised constant-time pushing and
// constant-time popping at both ends, as well as constant-time indexing. The
// zero value is an empty Deque that allocates from [alloc.Heap] and does not
// log; use [New] for other configurations.
//
// A Deque is not safe for concurrent use.
type Deque[T any] struct {
	ring []T // len(ring) MUST == cap(ring)
	head int // 0 <= head < len(ring), or 0 if ring is nil
	n    int // 0 <= n <= len(ring)

	alloc alloc.Allocator[T]
	log   logging.Logger
}

// New constructs a [Deque]. It returns an error if an initial capacity was
// requested and the allocation failed.
func New[T any](opts ...Option[T]) (*Deque[T], error) {
	c := applyOptions(opts)
	d := &Deque[T]{
		alloc: c.alloc,
		log:   c.log,
	}
	if err := d.EnsureTotalCapacity(c.capacity); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Deque[T]) allocator() alloc.Allocator[T] {
	if d.alloc == nil {
		return alloc.Heap[T]{}
	}
	return d.alloc
}

func (d *Deque[T]) logger() logging.Logger {
	if d.log == nil {
		return logging.NoLog{}
	}
	return d.log
}

func zero[T any]() (z T) { return }

// Len returns the number of elements in the Deque.
func (d *Deque[T]) Len() int {
	return d.n
}

// IsEmpty returns whether the Deque has no elements.
func (d *Deque[T]) IsEmpty() bool {
	return d.n == 0
}

// Cap returns the number of elements that the Deque can hold without
// allocating.
func (d *Deque[T]) Cap() int {
	return len(d.ring)
}

// ringIndex returns the slot in the ring holding the i'th element. It MUST
// NOT be called when the ring is empty.
func (d *Deque[T]) ringIndex(i int) int {
	return intmath.WrapAdd(d.head, i, d.Cap())
}

// EnsureTotalCapacity grows the Deque, if necessary, such that it can hold at
// least `want` elements. When growing, the capacity is at least doubled.
//
// If the allocation fails, the error is returned and the Deque is unchanged.
// EnsureTotalCapacity panics if `want` is negative.
func (d *Deque[T]) EnsureTotalCapacity(want int) error {
	if want < 0 {
		panic(fmt.Sprintf("deque: negative capacity %d", want))
	}
	if want <= d.Cap() {
		return nil
	}
	return d.grow(intmath.GrowCapacity(d.Cap(), want))
}

// EnsureUnusedCapacity is equivalent to calling [Deque.EnsureTotalCapacity]
// with `d.Len()+extra`.
func (d *Deque[T]) EnsureUnusedCapacity(extra int) error {
	if extra < 0 {
		panic(fmt.Sprintf("deque: negative extra capacity %d", extra))
	}
	want := d.n + extra
	if want < d.n {
		return fmt.Errorf("deque of length %d reserving %d more: %w", d.n, extra, intmath.ErrOverflow)
	}
	return d.EnsureTotalCapacity(want)
}

// grow reallocates the ring to `to` slots, linearising the elements such that
// the front is at index 0. It is O(d.Len()).
func (d *Deque[T]) grow(to int) error {
	from := d.Cap()
	ring, err := d.allocator().Alloc(to)
	if err != nil {
		d.logger().Debug("Deque growth failed",
			zap.Int("from", from),
			zap.Int("to", to),
			zap.Error(err),
		)
		return fmt.Errorf("growing deque from %d to %d slots: %w", from, to, err)
	}
	if len(ring) != to || cap(ring) != to {
		panic(fmt.Sprintf("deque: allocator returned buffer of len %d and cap %d; want %d", len(ring), cap(ring), to))
	}

	first, second := d.Slices()
	copy(ring[copy(ring, first):], second)

	if d.ring != nil {
		d.allocator().Free(d.ring)
	}
	d.ring = ring
	d.head = 0

	d.logger().Debug("Deque grown",
		zap.Int("from", from),
		zap.Int("to", to),
		zap.Int("len", d.n),
	)
	return nil
}

func (d *Deque[T]) mustHaveSpace(method string) {
	if d.n == d.Cap() {
		panic(fmt.Sprintf("deque: %s() at full capacity %d", method, d.Cap()))
	}
}

// PushBack appends `x` to the back of the Deque, growing it if necessary. If
// growth fails, the error is returned and the Deque is unchanged.
func (d *Deque[T]) PushBack(x T) error {
	if err := d.EnsureUnusedCapacity(1); err != nil {
		return err
	}
	d.PushBackAssumeCapacity(x)
	return nil
}

// PushBackAssumeCapacity is equivalent to [Deque.PushBack] except that it
// never allocates. It panics if the Deque is full.
func (d *Deque[T]) PushBackAssumeCapacity(x T) {
	d.mustHaveSpace("PushBackAssumeCapacity")
	d.ring[d.ringIndex(d.n)] = x
	d.n++
}

// PushFront prepends `x` to the front of the Deque, growing it if necessary.
// If growth fails, the error is returned and the Deque is unchanged.
func (d *Deque[T]) PushFront(x T) error {
	if err := d.EnsureUnusedCapacity(1); err != nil {
		return err
	}
	d.PushFrontAssumeCapacity(x)
	return nil
}

// PushFrontAssumeCapacity is equivalent to [Deque.PushFront] except that it
// never allocates. It panics if the Deque is full.
func (d *Deque[T]) PushFrontAssumeCapacity(x T) {
	d.mustHaveSpace("PushFrontAssumeCapacity")
	d.head = intmath.WrapSub(d.head, 1, d.Cap())
	d.ring[d.head] = x
	d.n++
}

// PopFront removes and returns the first element, or false if the Deque is
// empty. The vacated slot is zeroed.
func (d *Deque[T]) PopFront() (T, bool) {
	if d.n == 0 {
		return zero[T](), false
	}
	x := d.ring[d.head]
	d.ring[d.head] = zero[T]()
	d.head = d.ringIndex(1)
	d.n--
	return x, true
}

// PopBack removes and returns the last element, or false if the Deque is
// empty. The vacated slot is zeroed.
func (d *Deque[T]) PopBack() (T, bool) {
	if d.n == 0 {
		return zero[T](), false
	}
	i := d.ringIndex(d.n - 1)
	x := d.ring[i]
	d.ring[i] = zero[T]()
	d.n--
	return x, true
}

// PeekFront returns the first element without removing it, or false if the
// Deque is empty.
func (d *Deque[T]) PeekFront() (T, bool) {
	if d.n == 0 {
		return zero[T](), false
	}
	return d.ring[d.head], true
}

// PeekBack returns the last element without removing it, or false if the
// Deque is empty.
func (d *Deque[T]) PeekBack() (T, bool) {
	if d.n == 0 {
		return zero[T](), false
	}
	return d.ring[d.ringIndex(d.n-1)], true
}

// Get returns the i'th element, counting from the front, or false if `i` is
// not in `[0,d.Len())`.
func (d *Deque[T]) Get(i int) (T, bool) {
	if i < 0 || i >= d.n {
		return zero[T](), false
	}
	return d.ring[d.ringIndex(i)], true
}

// Set overwrites the i'th element, counting from the front. Unlike
// [Deque.Get], it panics if `i` is not in `[0,d.Len())`.
func (d *Deque[T]) Set(i int, x T) {
	if i < 0 || i >= d.n {
		panic(fmt.Sprintf("deque: index %d out of bounds with length %d", i, d.n))
	}
	d.ring[d.ringIndex(i)] = x
}

// ClearRetainingCapacity removes all elements in constant time, keeping the
// buffer for reuse. Removed elements are not zeroed so anything they reference
// remains reachable until overwritten; see [Deque.Clear].
func (d *Deque[T]) ClearRetainingCapacity() {
	d.head = 0
	d.n = 0
}

// Clear zeroes all elements and then removes them, keeping the buffer for
// reuse. It is O(d.Len()).
func (d *Deque[T]) Clear() {
	first, second := d.Slices()
	clear(first)
	clear(second)
	d.ClearRetainingCapacity()
}

// ClearAndFree removes all elements and releases the buffer to the allocator,
// returning the Deque to its zero-capacity state.
func (d *Deque[T]) ClearAndFree() {
	if d.ring != nil {
		d.allocator().Free(d.ring)
	}
	d.ring = nil
	d.head = 0
	d.n = 0
}

// Slices returns the Deque's elements, in order, as at most two slices that
// share memory with it. Concatenating `first` and `second` yields every
// element from front to back. If the elements are contiguous in the buffer
// then `second` is nil, and both are nil if the Deque is empty.
//
// The slices MUST NOT be modified, nor used after the next mutation of the
// Deque. Their capacities are limited to their lengths so that appending to
// them never overwrites the Deque's buffer.
func (d *Deque[T]) Slices() (first, second []T) {
	if d.n == 0 {
		return nil, nil
	}
	if end := d.head + d.n; end <= d.Cap() {
		return d.ring[d.head:end:end], nil
	}
	wrapped := d.head + d.n - d.Cap()
	return d.ring[d.head:], d.ring[:wrapped:wrapped]
}

// AppendTo appends the Deque's elements, from front to back, to `dst` and
// returns the extended slice.
func (d *Deque[T]) AppendTo(dst []T) []T {
	first, second := d.Slices()
	return append(append(dst, first...), second...)
}

// All returns an iterator over index-element pairs, from front to back. The
// Deque MUST NOT be modified during iteration.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		first, second := d.Slices()
		for i, x := range first {
			if !yield(i, x) {
				return
			}
		}
		for i, x := range second {
			if !yield(len(first)+i, x) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements, from front to back. The Deque
// MUST NOT be modified during iteration.
func (d *Deque[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range d.All() {
			if !yield(x) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-element pairs, from back to front.
// The Deque MUST NOT be modified during iteration.
func (d *Deque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		first, second := d.Slices()
		for i := len(second) - 1; i >= 0; i-- {
			if !yield(len(first)+i, second[i]) {
				return
			}
		}
		for i := len(first) - 1; i >= 0; i-- {
			if !yield(i, first[i]) {
				return
			}
		}
	}
}
