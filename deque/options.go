// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package deque

import (
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/libevm/libevm/options"

	"github.com/ava-labs/ringdeque/alloc"
)

// An Option configures [New].
type Option[T any] interface {
	options.Option[config[T]]
}

type config[T any] struct {
	alloc    alloc.Allocator[T]
	log      logging.Logger
	capacity int
}

// WithAllocator sets the [alloc.Allocator] from which the [Deque] acquires
// its buffer. The default is [alloc.Heap].
func WithAllocator[T any](a alloc.Allocator[T]) Option[T] {
	return options.Func[config[T]](func(c *config[T]) {
		c.alloc = a
	})
}

// WithLogger sets the logger to which buffer growth is reported, at DEBUG
// level. The default is [logging.NoLog].
func WithLogger[T any](l logging.Logger) Option[T] {
	return options.Func[config[T]](func(c *config[T]) {
		c.log = l
	})
}

// WithInitialCapacity reserves space for at least `n` elements when the
// [Deque] is constructed. It MUST NOT be negative.
func WithInitialCapacity[T any](n int) Option[T] {
	return options.Func[config[T]](func(c *config[T]) {
		c.capacity = n
	})
}

func applyOptions[T any](opts []Option[T]) *config[T] {
	all := make([]options.Option[config[T]], len(opts))
	for i, o := range opts {
		all[i] = o
	}
	return options.As(all...)
}
