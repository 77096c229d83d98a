// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package dequetest provides testing helpers for ring-buffer containers and
// their allocators.
package dequetest

import (
	"testing"

	"go.uber.org/goleak"
)

// NoLeak calls [goleak.VerifyTestMain] with [goleak.IgnoreCurrent]. None of
// the packages in this module start goroutines so any leak is a bug.
func NoLeak(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreCurrent())
}

// Ints returns `[from, to)` as a slice.
func Ints(from, to int) []int {
	if to <= from {
		return nil
	}
	out := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, i)
	}
	return out
}
