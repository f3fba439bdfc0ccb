// SPDX-License-Identifier: MIT
// Copyright (c) 2026 lz4go
// Source: github.com/lz4go/lz4

package lz4

import "bytes"

// Decompress decodes a complete LZ4 frame from src and returns its
// content, using opts (or DefaultReaderOptions when nil). This is the
// one-shot convenience form of FrameReader for callers who already hold
// the compressed frame in memory.
func Decompress(src []byte, opts *ReaderOptions) ([]byte, error) {
	return DecompressFromReader(bytes.NewReader(src), opts)
}
