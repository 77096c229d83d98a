// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package intmath

import (
	"math"
	"math/rand/v2"
	"testing"
)

const maxU64 = math.MaxUint64

func TestWrapAdd(t *testing.T) {
	tests := []struct {
		i, n, m, want int
	}{
		{i: 0, n: 0, m: 4, want: 0},
		{i: 0, n: 3, m: 4, want: 3},
		{i: 1, n: 3, m: 4, want: 0}, // exactly wraps
		{i: 3, n: 1, m: 4, want: 0},
		{i: 3, n: 3, m: 4, want: 2},
		{i: 2, n: 4, m: 4, want: 2}, // full lap
		{i: 0, n: 0, m: 1, want: 0},
		{i: 0, n: 1, m: 1, want: 0},
	}

	for _, tt := range tests {
		if got := WrapAdd(tt.i, tt.n, tt.m); got != tt.want {
			t.Errorf("WrapAdd[%T](%[1]d, %d, %d) got %d; want %d", tt.i, tt.n, tt.m, got, tt.want)
		}
	}

	t.Run("no_overflow", func(t *testing.T) {
		const m = math.MaxInt
		if got, want := WrapAdd(m-1, m-1, m), m-2; got != want {
			t.Errorf("WrapAdd(MaxInt-1, MaxInt-1, MaxInt) got %d; want %d", got, want)
		}
		if got, want := WrapAdd[uint64](maxU64-1, maxU64, maxU64), uint64(maxU64-1); got != want {
			t.Errorf("WrapAdd[uint64](max-1, max, max) got %d; want %d", got, want)
		}
	})
}

func TestWrapSub(t *testing.T) {
	tests := []struct {
		i, n, m, want uint
	}{
		{i: 0, n: 0, m: 4, want: 0},
		{i: 0, n: 1, m: 4, want: 3}, // underflow
		{i: 2, n: 1, m: 4, want: 1},
		{i: 2, n: 3, m: 4, want: 3},
		{i: 3, n: 4, m: 4, want: 3}, // full lap
		{i: 0, n: 1, m: 1, want: 0},
	}

	for _, tt := range tests {
		if got := WrapSub(tt.i, tt.n, tt.m); got != tt.want {
			t.Errorf("WrapSub[%T](%[1]d, %d, %d) got %d; want %d", tt.i, tt.n, tt.m, got, tt.want)
		}
	}

	t.Run("zero_modulus", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("WrapSub(0, 0, 0) did not panic")
			}
		}()
		WrapSub(0, 0, 0)
	})
}

func TestWrapAddSubInverse(t *testing.T) {
	rng := rand.New(rand.NewPCG(0, 0)) //nolint:gosec // Reproducibility is valuable for tests
	for range 1000 {
		m := 1 + rng.IntN(1<<16)
		i := rng.IntN(m)
		n := rng.IntN(m + 1)

		if got := WrapSub(WrapAdd(i, n, m), n, m); got != i {
			t.Fatalf("WrapSub(WrapAdd(%d, %d, %d), %[2]d, %[3]d) got %d; want %[1]d", i, n, m, got)
		}
		if got, want := WrapAdd(i, n, m), (i+n)%m; got != want {
			t.Fatalf("WrapAdd(%d, %d, %d) got %d; want %d", i, n, m, got, want)
		}
	}
}

func TestGrowCapacity(t *testing.T) {
	tests := []struct {
		cur, want, expect int
	}{
		{cur: 0, want: 1, expect: MinGrowCapacity},
		{cur: 0, want: 9, expect: 9},
		{cur: 4, want: 5, expect: 8},
		{cur: 8, want: 100, expect: 100},
		{cur: math.MaxInt/2 + 1, want: math.MaxInt/2 + 2, expect: math.MaxInt/2 + 2}, // doubling would overflow
	}

	for _, tt := range tests {
		if got := GrowCapacity(tt.cur, tt.want); got != tt.expect {
			t.Errorf("GrowCapacity[%T](%[1]d, %d) got %d; want %d", tt.cur, tt.want, got, tt.expect)
		}
	}
}

func TestBoundedSubtract(t *testing.T) {
	tests := []struct {
		a, b, floor, want uint64
	}{
		{a: 1, b: 2, floor: 0, want: 0}, // a < b
		{a: 2, b: 1, floor: 0, want: 1}, // not bounded
		{a: 2, b: 1, floor: 1, want: 1}, // a - b == floor
		{a: 2, b: 2, floor: 1, want: 1}, // bounded
		{a: 3, b: 1, floor: 1, want: 2},
		{a: maxU64, b: 10, floor: maxU64 - 9, want: maxU64 - 9}, // `a` threshold (`max+1`) would overflow uint64
		{a: maxU64, b: 10, floor: maxU64 - 11, want: maxU64 - 10},
	}

	for _, tt := range tests {
		if got := BoundedSubtract(tt.a, tt.b, tt.floor); got != tt.want {
			t.Errorf("BoundedSubtract[%T](%[1]d, %d, %d) got %d; want %d", tt.a, tt.b, tt.floor, got, tt.want)
		}
	}
}
