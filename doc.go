// SPDX-License-Identifier: MIT
// Copyright (c) 2026 lz4go
// Source: github.com/lz4go/lz4

/*
Package lz4 implements LZ4 raw block compression/decompression and the
LZ4 frame container, byte-compatible with the reference lz4 CLI's frame
format (v1.6.x).

# Raw blocks

CompressRaw/DecompressRaw operate on a single block with no header or
checksums, the same unit the frame format wraps:

	block, err := lz4.CompressRaw(data)
	var out []byte
	err = lz4.DecompressRaw(block, nil, &out, len(data))

# Frames

NewFrameWriter/NewFrameReader handle the full container: magic number,
header, one or more blocks, optional checksums, and the terminal marker.

	fw, err := lz4.NewFrameWriter(*lz4.DefaultWriterOptions())
	err = fw.Compress(src, dst)

	fr, err := lz4.NewFrameReader(src, *lz4.DefaultReaderOptions())
	var block []byte
	for {
		block = block[:0]
		if err := fr.DecodeBlock(&block); err != nil {
			// handle err
		}
		if len(block) == 0 {
			break
		}
		// use block
	}

FrameReader also implements io.Reader directly, for callers who just
want a streaming decompressed view:

	fr, err := lz4.NewFrameReader(src, *lz4.DefaultReaderOptions())
	n, err := fr.Read(buf)
*/
package lz4
