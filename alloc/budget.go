// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package alloc

import (
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/ava-labs/ringdeque/intmath"
)

// A Budget is an [Allocator] that limits the total number of bytes held by
// live allocations. Requests that would exceed the limit fail with
// [ErrOutOfMemory]. A Budget is not safe for concurrent use.
type Budget[T any] struct {
	limit, inUse uint64
	log          logging.Logger
}

var _ Allocator[int] = (*Budget[int])(nil)

// NewBudget returns a [Budget] allowing at most `limit` bytes to be allocated
// at any one time. A nil logger is replaced with [logging.NoLog].
func NewBudget[T any](limit uint64, log logging.Logger) *Budget[T] {
	if log == nil {
		log = logging.NoLog{}
	}
	return &Budget[T]{
		limit: limit,
		log:   log,
	}
}

// Alloc returns a buffer of `n` slots if the budget allows it.
func (b *Budget[T]) Alloc(n int) ([]T, error) {
	size, err := SizeOf[T](n)
	if err != nil {
		b.log.Debug("Allocation size overflow", zap.Int("slots", n), zap.Error(err))
		return nil, fmt.Errorf("%w: %d slots: %v", ErrOutOfMemory, n, err)
	}
	if rem := b.Remaining(); size > rem {
		b.log.Debug("Allocation denied",
			zap.Int("slots", n),
			zap.Uint64("bytes", size),
			zap.Uint64("remaining", rem),
			zap.Uint64("limit", b.limit),
		)
		return nil, fmt.Errorf("%w: %d bytes requested with %d of %d remaining", ErrOutOfMemory, size, rem, b.limit)
	}
	b.inUse += size
	return make([]T, n), nil
}

// Free returns the bytes of `buf` to the budget.
func (b *Budget[T]) Free(buf []T) {
	size, err := SizeOf[T](cap(buf))
	if err != nil {
		// Unreachable for any slice that Alloc returned.
		return
	}
	b.inUse = intmath.BoundedSubtract(b.inUse, size, 0)
}

// Limit returns the maximum number of bytes that may be in use.
func (b *Budget[T]) Limit() uint64 { return b.limit }

// InUse returns the number of bytes currently allocated.
func (b *Budget[T]) InUse() uint64 { return b.inUse }

// Remaining returns the number of bytes that can still be allocated.
func (b *Budget[T]) Remaining() uint64 {
	return intmath.BoundedSubtract(b.limit, b.inUse, 0)
}
