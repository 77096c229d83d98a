// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package alloc

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metered wraps an [Allocator], recording its activity as Prometheus metrics.
// The metrics themselves are safe for concurrent use but the wrapped
// [Allocator] need not be.
type Metered[T any] struct {
	Allocator[T]

	allocs, failures, frees prometheus.Counter
	slots                   prometheus.Gauge
}

var _ Allocator[int] = (*Metered[int])(nil)

// NewMetered wraps `a`, registering its metrics with `reg` under `namespace`.
func NewMetered[T any](a Allocator[T], reg prometheus.Registerer, namespace string) (*Metered[T], error) {
	m := &Metered[T]{
		Allocator: a,
		allocs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "allocations_total",
			Help:      "Number of successful buffer allocations",
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "allocation_failures_total",
			Help:      "Number of failed buffer allocations",
		}),
		frees: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frees_total",
			Help:      "Number of buffers released",
		}),
		slots: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "slots_in_use",
			Help:      "Number of slots held by live buffers",
		}),
	}
	err := errors.Join(
		reg.Register(m.allocs),
		reg.Register(m.failures),
		reg.Register(m.frees),
		reg.Register(m.slots),
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Alloc propagates the call to the wrapped [Allocator].
func (m *Metered[T]) Alloc(n int) ([]T, error) {
	buf, err := m.Allocator.Alloc(n)
	if err != nil {
		m.failures.Inc()
		return nil, err
	}
	m.allocs.Inc()
	m.slots.Add(float64(len(buf)))
	return buf, nil
}

// Free propagates the call to the wrapped [Allocator].
func (m *Metered[T]) Free(buf []T) {
	m.frees.Inc()
	m.slots.Sub(float64(cap(buf)))
	m.Allocator.Free(buf)
}
