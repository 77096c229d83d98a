// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package queue provides FIFO and priority queues backed by a [deque.Deque].
package queue

import (
	"fmt"

	"github.com/ava-labs/ringdeque/deque"
)

// must panics if `err` is non-nil. Queues use the deque's default heap
// allocator, which only fails for requests too large to ever be satisfied.
func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("queue: heap-backed deque returned error: %v", err))
	}
}

// A FIFO is a first-in, first-out queue. The zero value is valid.
type FIFO[T any] struct {
	d deque.Deque[T]
}

// Len returns the number of items in the queue.
func (f *FIFO[T]) Len() int {
	return f.d.Len()
}

// Push adds an item to the back of the queue.
func (f *FIFO[T]) Push(x T) {
	must(f.d.PushBack(x))
}

// Peek returns the item at the front of the queue without removing it, or
// false if the queue is empty.
func (f *FIFO[T]) Peek() (T, bool) {
	return f.d.PeekFront()
}

// Pop removes and returns the item at the front of the queue, or false if the
// queue is empty.
func (f *FIFO[T]) Pop() (T, bool) {
	return f.d.PopFront()
}

// Grow increases the queue's allocated buffer to hold at least `n` items. This
// does not place a limit on the size of the queue, but pre-allocates memory.
func (f *FIFO[T]) Grow(n int) {
	must(f.d.EnsureTotalCapacity(n))
}
