// SPDX-License-Identifier: MIT
// Copyright (c) 2026 lz4go
// Source: github.com/lz4go/lz4

package lz4

// WriterOptions configures FrameWriter (spec §4.5, §5).
type WriterOptions struct {
	// BlockMaxSize must be one of BlockSize64KB/256KB/1MB/4MB. Defaults to
	// BlockSize64KB when zero.
	BlockMaxSize int
	// IndependentBlocks disables the 64 KiB carryover window between
	// blocks, letting blocks be decoded or skipped independently at the
	// cost of ratio on small blocks.
	IndependentBlocks bool
	// BlockChecksums adds a per-block xxh32 checksum.
	BlockChecksums bool
	// ContentChecksum adds a trailing whole-content xxh32 checksum.
	ContentChecksum bool
	// DeclaredContentSize, if non-nil, is written into the frame header
	// verbatim by Compress. CompressWithSize and CompressWithDeclaredSize
	// ignore this field, since they each derive their own size (by
	// seeking, or from their explicit size argument).
	DeclaredContentSize *uint64
	// Dictionary seeds the first block's (and, for independent framing,
	// every block's) match window without transmitting it. DictionaryID,
	// if non-nil, is recorded in the header so a reader can confirm it is
	// using the same dictionary; if nil but Dictionary is set, no
	// dictionary ID is written (the reader must already know which
	// dictionary to use out of band).
	Dictionary   []byte
	DictionaryID *uint32
}

// DefaultWriterOptions returns options matching the reference CLI's
// defaults: 64 KiB dependent blocks, no checksums, no dictionary.
func DefaultWriterOptions() *WriterOptions {
	return &WriterOptions{BlockMaxSize: BlockSize64KB}
}

// ReaderOptions configures FrameReader (spec §4.6, §5).
type ReaderOptions struct {
	// Dictionary, if set, seeds the carryover window so the first (and,
	// for independent framing, every) block can reference bytes never
	// present in the frame itself. The caller is responsible for using
	// the same dictionary the writer used; if the frame declares a
	// DictionaryID, callers may compare it against their own copy's ID
	// before decoding, though FrameReader does not enforce that match
	// itself (spec §9 leaves dictionary-identity verification out of
	// scope for the codec).
	Dictionary []byte
	// MemoryLimit bounds the cumulative number of decoded bytes a
	// FrameReader will hand back across all of a frame's blocks,
	// guarding against a hostile or corrupt frame whose block count (or
	// declared content size) would otherwise force an unbounded amount
	// of output into memory. Exceeding it fails with
	// ErrMemoryLimitExceeded. Zero means no limit beyond each
	// individual block's BlockMaxSize cap.
	MemoryLimit int
}

// DefaultReaderOptions returns permissive reader options with no
// dictionary and no explicit memory limit.
func DefaultReaderOptions() *ReaderOptions {
	return &ReaderOptions{}
}
