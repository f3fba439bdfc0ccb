// SPDX-License-Identifier: MIT
// Copyright (c) 2026 lz4go
// Source: github.com/lz4go/lz4

package lz4

import "errors"

// errSinkFull is returned internally by boundedSink when a write would
// overflow its remaining capacity. FrameWriter uses this as the signal
// that a block compressed larger than its own input and should be
// stored raw instead (spec §4.5 "incompressible block" fallback).
var errSinkFull = errors.New("lz4: compressed block exceeded input size")

// boundedSink is a fixed-capacity io.Writer over a pre-allocated slice.
// Writes either land in full or not at all: a write that would overflow
// leaves buf untouched and returns errSinkFull, instead of the partial
// write + range-check-per-byte behavior a plain byte slice gives you.
// This lets CompressRaw's callers avoid ever inspecting a partially
// written buffer, and avoids paying a bounds check per appended byte
// once the block is already known to fit.
type boundedSink struct {
	buf []byte
	n   int
}

func newBoundedSink(buf []byte) *boundedSink {
	return &boundedSink{buf: buf}
}

func (s *boundedSink) Write(p []byte) (int, error) {
	if len(p) > len(s.buf)-s.n {
		return 0, errSinkFull
	}
	n := copy(s.buf[s.n:], p)
	s.n += n
	return n, nil
}

// written returns the slice of buf actually filled so far.
func (s *boundedSink) written() []byte { return s.buf[:s.n] }
