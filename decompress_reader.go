// SPDX-License-Identifier: MIT
// Copyright (c) 2026 lz4go
// Source: github.com/lz4go/lz4

package lz4

import "io"

// DecompressFromReader decodes a full LZ4 frame from r and returns the
// decompressed content as a single slice. Unlike Decompress (which
// requires the whole frame already in memory), this streams the frame
// one block at a time internally - no decoding logic of its own beyond
// driving FrameReader to completion.
func DecompressFromReader(r io.Reader, opts *ReaderOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultReaderOptions()
	}

	fr, err := NewFrameReader(r, *opts)
	if err != nil {
		return nil, err
	}

	var out []byte
	var block []byte
	for {
		block = block[:0]
		if err := fr.DecodeBlock(&block); err != nil {
			return nil, err
		}
		if len(block) == 0 {
			break
		}
		out = append(out, block...)
	}

	return out, nil
}
