// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package intmath provides special-case integer arithmetic, including the
// modular index arithmetic of ring buffers.
package intmath

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// WrapAdd returns `(i+n) mod m` without overflow. It requires `0 <= i < m` and
// `0 <= n <= m`; the result is undefined otherwise.
func WrapAdd[T constraints.Integer](i, n, m T) T {
	if i >= m-n {
		return i - (m - n)
	}
	return i + n
}

// WrapSub returns `(i-n) mod m`, mapped into `[0,m)` without underflow. It
// requires `0 <= i < m` and `0 <= n <= m`, and panics if `m == 0`.
func WrapSub[T constraints.Integer](i, n, m T) T {
	if m == 0 {
		panic("intmath: WrapSub with zero modulus")
	}
	if n > i {
		return i + (m - n)
	}
	return i - n
}

// MinGrowCapacity is the capacity allocated by [GrowCapacity] when growing
// from zero.
const MinGrowCapacity = 4

// GrowCapacity returns the capacity to grow to when `cur` can't hold `want`
// elements: `max(want, 2*cur)`, or `max(want, MinGrowCapacity)` if `cur == 0`.
// Doubling saturates instead of overflowing.
func GrowCapacity[T constraints.Integer](cur, want T) T {
	next := T(MinGrowCapacity)
	if cur != 0 {
		next = cur * 2
		if next/2 != cur || next < cur {
			next = cur
		}
	}
	return max(next, want)
}

// BoundedSubtract returns `max(a-b,floor)` without underflow.
func BoundedSubtract[T constraints.Unsigned](a, b, floor T) T {
	// If `floor + b` overflows then it's impossible for `a` to ever be large
	// enough for the subtraction to not be bounded.
	minA := floor + b
	if overflow := minA < b; overflow || a <= minA {
		return floor
	}
	return a - b
}

// ErrOverflow is returned if a value would have overflowed its type.
var ErrOverflow = errors.New("overflow")
