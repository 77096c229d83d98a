// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package alloc provides the allocators from which ring buffers acquire, and
// to which they release, their backing storage.
package alloc

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"runtime"
	"unsafe"

	"github.com/ava-labs/ringdeque/intmath"
)

// An Allocator acquires and releases buffers of `T`.
//
// Alloc MUST return a slice with both length and capacity exactly `n`, or a
// non-nil error, in which case the Allocator's state MUST be unchanged. Free
// accepts a slice previously returned by Alloc on the same Allocator; the slice
// MUST NOT be used after being freed.
type Allocator[T any] interface {
	Alloc(n int) ([]T, error)
	Free([]T)
}

// ErrOutOfMemory is returned by an [Allocator] that can't satisfy a request.
var ErrOutOfMemory = errors.New("out of memory")

// MaxHeapBytes is the largest allocation, in bytes, that [Heap] attempts. It
// mirrors the Go runtime's own ceiling on 64-bit platforms.
const MaxHeapBytes uint64 = min(1<<48, math.MaxInt)

// Heap is an [Allocator] backed by the Go heap. The zero value is ready to use.
// Its Free method leaves reclamation to the garbage collector.
type Heap[T any] struct{}

var _ Allocator[int] = Heap[int]{}

// Alloc returns `make([]T, n)`. Requests larger than [MaxHeapBytes], or that
// the runtime rejects as out of range, fail with [ErrOutOfMemory]. Exhausting
// physical memory below that limit remains fatal, as with any Go allocation.
func (Heap[T]) Alloc(n int) (_ []T, retErr error) {
	size, err := SizeOf[T](n)
	if err != nil {
		return nil, fmt.Errorf("%w: %d slots: %v", ErrOutOfMemory, n, err)
	}
	if size > MaxHeapBytes {
		return nil, fmt.Errorf("%w: %d bytes requested; maximum %d", ErrOutOfMemory, size, MaxHeapBytes)
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		rErr, ok := r.(runtime.Error)
		if !ok {
			panic(r)
		}
		retErr = fmt.Errorf("%w: %d slots: %v", ErrOutOfMemory, n, rErr)
	}()
	return make([]T, n), nil
}

// Free is a no-op.
func (Heap[T]) Free([]T) {}

// SizeOf returns the number of bytes occupied by `n` values of type `T`, or
// [intmath.ErrOverflow] if that doesn't fit in a uint64.
func SizeOf[T any](n int) (uint64, error) {
	if n < 0 {
		return 0, errors.New("negative slot count")
	}
	var zero T
	hi, lo := bits.Mul64(uint64(n), uint64(unsafe.Sizeof(zero)))
	if hi != 0 {
		return 0, intmath.ErrOverflow
	}
	return lo, nil
}
