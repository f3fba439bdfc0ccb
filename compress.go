// SPDX-License-Identifier: MIT
// Copyright (c) 2026 lz4go
// Source: github.com/lz4go/lz4

package lz4

import "bytes"

// Compress compresses src into a complete LZ4 frame, using opts (or
// DefaultWriterOptions when nil). This is the one-shot convenience form
// of FrameWriter for callers who already hold src in memory.
func Compress(src []byte, opts *WriterOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultWriterOptions()
	}

	fw, err := NewFrameWriter(*opts)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	out.Grow(MaxCompressedSize(len(src)))
	if err := fw.Compress(bytes.NewReader(src), &out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
