// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package countio provides I/O decorators that count bytes.
package countio

import "io"

// A Writer forwards writes to an underlying [io.Writer], counting the bytes
// that it accepts. A Writer is not safe for concurrent use.
type Writer struct {
	w io.Writer
	n uint64
}

var _ io.Writer = (*Writer)(nil)

// NewWriter returns a [Writer] that forwards to `w`.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write propagates the call to the underlying [io.Writer] and adds the number
// of bytes it reports as written to [Writer.BytesWritten], even if it also
// returns an error.
func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	if n > 0 {
		w.n += uint64(n)
	}
	return n, err
}

// BytesWritten returns the total number of bytes accepted by the underlying
// [io.Writer].
func (w *Writer) BytesWritten() uint64 {
	return w.n
}

// Unwrap returns the underlying [io.Writer].
func (w *Writer) Unwrap() io.Writer {
	return w.w
}
