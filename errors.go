// SPDX-License-Identifier: MIT
// Copyright (c) 2026 lz4go
// Source: github.com/lz4go/lz4

package lz4

import (
	"errors"
	"fmt"
)

// Sentinel errors for the raw block decoder (spec §7).
var (
	// ErrUnexpectedEnd is returned when a block ends mid-sequence: a
	// truncated literal run, offset, or match-length varint.
	ErrUnexpectedEnd = errors.New("lz4: block stream ended prematurely")
	// ErrMemoryLimitExceeded is returned when a match would grow the
	// output past the caller-supplied limit.
	ErrMemoryLimitExceeded = errors.New("lz4: decoded output would exceed the memory limit")
	// ErrZeroDeduplicationOffset is returned for a match offset of 0,
	// which is never valid.
	ErrZeroDeduplicationOffset = errors.New("lz4: deduplication offset is zero")
	// ErrInvalidDeduplicationOffset is returned when a match offset
	// reaches further back than prefix+output can satisfy.
	ErrInvalidDeduplicationOffset = errors.New("lz4: deduplication offset exceeds available history")
)

// Sentinel errors for raw block encoding.
var (
	// ErrInvalidBlockSize is returned at configuration time when a
	// FrameWriter is given a block size the frame format cannot encode.
	ErrInvalidBlockSize = errors.New("lz4: block size is not one of 64KiB/256KiB/1MiB/4MiB")
)

// frameErrorKind classifies frame-level parse/verify failures so callers
// can use errors.Is against a stable sentinel while still getting a
// message with the offending byte or value.
type frameErrorKind int

const (
	kindWrongMagic frameErrorKind = iota
	kindUnsupportedVersion
	kindReservedFlagBitsSet
	kindReservedBdBitsSet
	kindUnimplementedBlocksize
	kindHeaderChecksumFail
	kindBlockChecksumFail
	kindFrameChecksumFail
	kindBlockLengthOverflow
	kindBlockSizeOverflow
)

// Sentinel errors for frame-level failures (spec §7). Each except
// ErrBlockLengthOverflow, which no code path in this package returns, is
// returned wrapped with additional detail by the functions in
// frame_header.go and frame_reader.go; use errors.Is to classify.
var (
	ErrWrongMagic            = errors.New("lz4: wrong magic number in frame header")
	ErrUnsupportedVersion    = errors.New("lz4: unsupported frame version")
	ErrReservedFlagBitsSet   = errors.New("lz4: reserved bits set in frame flags")
	ErrReservedBdBitsSet     = errors.New("lz4: reserved bits set in block descriptor")
	ErrUnimplementedBlocksize = errors.New("lz4: block-maxsize code is reserved")
	ErrHeaderChecksumFail    = errors.New("lz4: frame header checksum mismatch")
	ErrBlockChecksumFail     = errors.New("lz4: block checksum mismatch")
	ErrFrameChecksumFail     = errors.New("lz4: content checksum mismatch")
	ErrBlockLengthOverflow   = errors.New("lz4: block length does not fit in memory")
	ErrBlockSizeOverflow     = errors.New("lz4: block exceeds the frame's block-maxsize")
)

// frameError wraps one of the sentinels above with the offending detail,
// the way moby-moby's errdefs package pairs a stable error kind with a
// concrete message instead of formatting sentinels directly.
type frameError struct {
	kind    frameErrorKind
	sentinel error
	detail  string
}

func (e *frameError) Error() string {
	if e.detail == "" {
		return e.sentinel.Error()
	}
	return fmt.Sprintf("%s: %s", e.sentinel.Error(), e.detail)
}

func (e *frameError) Unwrap() error { return e.sentinel }

func newFrameError(kind frameErrorKind, sentinel error, detail string) *frameError {
	return &frameError{kind: kind, sentinel: sentinel, detail: detail}
}

func errWrongMagic(got uint32) error {
	return newFrameError(kindWrongMagic, ErrWrongMagic, fmt.Sprintf("got 0x%08x", got))
}

func errUnsupportedVersion(version byte) error {
	return newFrameError(kindUnsupportedVersion, ErrUnsupportedVersion, fmt.Sprintf("version=%d", version))
}

func errReservedFlagBitsSet() error {
	return newFrameError(kindReservedFlagBitsSet, ErrReservedFlagBitsSet, "")
}

func errReservedBdBitsSet() error {
	return newFrameError(kindReservedBdBitsSet, ErrReservedBdBitsSet, "")
}

func errUnimplementedBlocksize(code byte) error {
	return newFrameError(kindUnimplementedBlocksize, ErrUnimplementedBlocksize, fmt.Sprintf("code=%d", code))
}

func errHeaderChecksumFail() error {
	return newFrameError(kindHeaderChecksumFail, ErrHeaderChecksumFail, "")
}

func errBlockChecksumFail() error {
	return newFrameError(kindBlockChecksumFail, ErrBlockChecksumFail, "")
}

func errFrameChecksumFail() error {
	return newFrameError(kindFrameChecksumFail, ErrFrameChecksumFail, "")
}

func errBlockLengthOverflow() error {
	return newFrameError(kindBlockLengthOverflow, ErrBlockLengthOverflow, "")
}

func errBlockSizeOverflow() error {
	return newFrameError(kindBlockSizeOverflow, ErrBlockSizeOverflow, "")
}
