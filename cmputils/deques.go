// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build !prod && !nocmpopts

// Package cmputils provides [cmp] options for comparing deques.
package cmputils

import (
	"github.com/google/go-cmp/cmp"

	"github.com/ava-labs/ringdeque/deque"
)

// Deques returns a [cmp.Transformer] for [deque.Deque] pointers, equating them
// by their elements, from front to back, regardless of buffer layout or
// capacity. A nil pointer is equal to an empty Deque.
func Deques[T any]() cmp.Option {
	return cmp.Transformer("deque", func(d *deque.Deque[T]) []T {
		if d == nil {
			return nil
		}
		return d.AppendTo(nil)
	})
}
