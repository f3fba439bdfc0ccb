// SPDX-License-Identifier: MIT
// Copyright (c) 2026 lz4go
// Source: github.com/lz4go/lz4

package lz4

import (
	"encoding/binary"

	"github.com/lz4go/lz4/internal/xxh32"
)

// frameHeader is the parsed form of everything between a frame's magic
// number and its first block (spec §4.4, §6).
type frameHeader struct {
	independentBlocks bool
	blockChecksums    bool
	contentChecksum   bool
	dictionaryID      *uint32
	contentSize       *uint64
	blockMaxSize      int
}

// encode serializes h to its wire form, including the trailing header
// checksum byte, and returns the full header (magic included).
func (h *frameHeader) encode() ([]byte, error) {
	sizeCode, ok := blockSizeCode(h.blockMaxSize)
	if !ok {
		return nil, ErrInvalidBlockSize
	}

	buf := make([]byte, 4, 4+2+8+4+1)
	binary.LittleEndian.PutUint32(buf, frameMagic)

	var flags byte = frameVersion << 6
	if h.independentBlocks {
		flags |= flagIndependentBlocks
	}
	if h.blockChecksums {
		flags |= flagBlockChecksums
	}
	if h.contentSize != nil {
		flags |= flagContentSize
	}
	if h.contentChecksum {
		flags |= flagContentChecksum
	}
	if h.dictionaryID != nil {
		flags |= flagDictionaryID
	}
	buf = append(buf, flags)

	bd := sizeCode << bdSizeShift
	buf = append(buf, bd)

	if h.contentSize != nil {
		var sizeBuf [8]byte
		binary.LittleEndian.PutUint64(sizeBuf[:], *h.contentSize)
		buf = append(buf, sizeBuf[:]...)
	}
	if h.dictionaryID != nil {
		var didBuf [4]byte
		binary.LittleEndian.PutUint32(didBuf[:], *h.dictionaryID)
		buf = append(buf, didBuf[:]...)
	}

	hc := headerChecksum(buf[4:])
	buf = append(buf, hc)

	return buf, nil
}

// headerChecksum computes the one-byte header checksum (spec §4.4): the
// second byte of xxh32 over everything after the magic number.
func headerChecksum(afterMagic []byte) byte {
	return byte(xxh32.Sum32(afterMagic) >> 8)
}

// parseFrameHeader reads a frame header from the start of src, returning
// the parsed header and the number of bytes consumed (magic through the
// header checksum byte, inclusive).
func parseFrameHeader(src []byte) (*frameHeader, int, error) {
	if len(src) < 7 {
		return nil, 0, ErrUnexpectedEnd
	}

	magic := binary.LittleEndian.Uint32(src)
	if magic != frameMagic {
		return nil, 0, errWrongMagic(magic)
	}

	flags := src[4]
	if flags&flagVersionMask != (frameVersion << 6) {
		return nil, 0, errUnsupportedVersion(flags >> 6)
	}
	if flags&flagReservedBit != 0 {
		return nil, 0, errReservedFlagBitsSet()
	}

	bd := src[5]
	if bd&bdReservedMask != 0 {
		return nil, 0, errReservedBdBitsSet()
	}
	sizeCode := bd >> bdSizeShift
	blockMaxSize, ok := blockMaxSizeForCode(sizeCode)
	if !ok {
		return nil, 0, errUnimplementedBlocksize(sizeCode)
	}

	h := &frameHeader{
		independentBlocks: flags&flagIndependentBlocks != 0,
		blockChecksums:    flags&flagBlockChecksums != 0,
		contentChecksum:   flags&flagContentChecksum != 0,
		blockMaxSize:      blockMaxSize,
	}

	pos := 6
	if flags&flagContentSize != 0 {
		if len(src) < pos+8 {
			return nil, 0, ErrUnexpectedEnd
		}
		size := binary.LittleEndian.Uint64(src[pos:])
		h.contentSize = &size
		pos += 8
	}
	if flags&flagDictionaryID != 0 {
		if len(src) < pos+4 {
			return nil, 0, ErrUnexpectedEnd
		}
		did := binary.LittleEndian.Uint32(src[pos:])
		h.dictionaryID = &did
		pos += 4
	}

	if len(src) < pos+1 {
		return nil, 0, ErrUnexpectedEnd
	}
	want := headerChecksum(src[4:pos])
	got := src[pos]
	pos++
	if got != want {
		return nil, 0, errHeaderChecksumFail()
	}

	return h, pos, nil
}
