// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package countio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shortWriter accepts at most `limit` bytes per call, returning
// [io.ErrShortWrite] when truncating.
type shortWriter struct {
	buf   bytes.Buffer
	limit int
}

func (s *shortWriter) Write(p []byte) (int, error) {
	if len(p) <= s.limit {
		return s.buf.Write(p)
	}
	n, _ := s.buf.Write(p[:s.limit])
	return n, io.ErrShortWrite
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	assert.Zero(t, w.BytesWritten(), "BytesWritten() before writing")

	for _, s := range []string{"hello", "", ", ", "world"} {
		n, err := w.Write([]byte(s))
		require.NoErrorf(t, err, "Write(%q)", s)
		assert.Lenf(t, s, n, "Write(%q) bytes", s)
	}
	_, err := fmt.Fprintf(w, "%c", '!')
	require.NoError(t, err, "fmt.Fprintf()")

	assert.Equal(t, "hello, world!", buf.String(), "underlying buffer")
	assert.Equal(t, uint64(13), w.BytesWritten(), "BytesWritten()")
	assert.Same(t, &buf, w.Unwrap(), "Unwrap()")
}

func TestWriterShortWrites(t *testing.T) {
	sink := &shortWriter{limit: 3}
	w := NewWriter(sink)

	n, err := w.Write([]byte("ab"))
	require.NoError(t, err, "Write() within limit")
	assert.Equal(t, 2, n, "Write() within limit")

	n, err = w.Write([]byte("cdefg"))
	require.ErrorIs(t, err, io.ErrShortWrite, "Write() beyond limit")
	assert.Equal(t, 3, n, "Write() beyond limit")

	assert.Equal(t, uint64(5), w.BytesWritten(), "BytesWritten() includes partial writes")
	assert.Equal(t, "abcde", sink.buf.String(), "underlying buffer")
}

type errWriter struct{}

var errBroken = errors.New("broken")

func (errWriter) Write([]byte) (int, error) { return 0, errBroken }

func TestWriterErrors(t *testing.T) {
	w := NewWriter(errWriter{})
	for range 3 {
		_, err := w.Write([]byte("x"))
		require.ErrorIs(t, err, errBroken, "Write()")
	}
	assert.Zero(t, w.BytesWritten(), "BytesWritten() after only failed writes")
}
