// SPDX-License-Identifier: MIT
// Copyright (c) 2026 lz4go
// Source: github.com/lz4go/lz4

package lz4

import (
	"encoding/binary"
	"io"

	"github.com/lz4go/lz4/internal/xxh32"
)

// FrameReader decodes one LZ4 frame block by block (spec §4.6).
type FrameReader struct {
	r    io.Reader
	opts ReaderOptions

	header *frameHeader

	contentHasher *xxh32.Digest
	window        []byte // carryover window for dependent blocks; nil when independent
	finished      bool
	decodedTotal  int // cumulative bytes handed back across all DecodeBlock calls; counted only when opts.MemoryLimit > 0

	// streaming Read state
	pending       []byte
	pendingOffset int
}

// NewFrameReader parses the frame header from r and returns a
// FrameReader ready to decode blocks.
func NewFrameReader(r io.Reader, opts ReaderOptions) (*FrameReader, error) {
	fixed := make([]byte, 6, 6+8+4+1)
	if _, err := io.ReadFull(r, fixed); err != nil {
		return nil, err
	}

	flags := fixed[4]
	if flags&flagContentSize != 0 {
		var sizeBuf [8]byte
		if _, err := io.ReadFull(r, sizeBuf[:]); err != nil {
			return nil, err
		}
		fixed = append(fixed, sizeBuf[:]...)
	}
	if flags&flagDictionaryID != 0 {
		var didBuf [4]byte
		if _, err := io.ReadFull(r, didBuf[:]); err != nil {
			return nil, err
		}
		fixed = append(fixed, didBuf[:]...)
	}
	var hcBuf [1]byte
	if _, err := io.ReadFull(r, hcBuf[:]); err != nil {
		return nil, err
	}
	fixed = append(fixed, hcBuf[0])

	h, _, err := parseFrameHeader(fixed)
	if err != nil {
		return nil, err
	}

	fr := &FrameReader{r: r, opts: opts, header: h}

	if h.contentChecksum {
		fr.contentHasher = xxh32.New()
	}
	if !h.independentBlocks {
		fr.window = make([]byte, 0, windowSize)
		if opts.Dictionary != nil {
			seed := opts.Dictionary
			if len(seed) > windowSize {
				seed = seed[len(seed)-windowSize:]
			}
			fr.window = append(fr.window, seed...)
		}
	}

	return fr, nil
}

// BlockSize returns the frame's declared block-maxsize.
func (fr *FrameReader) BlockSize() int { return fr.header.blockMaxSize }

// FrameSize returns the frame's declared content size, if present.
func (fr *FrameReader) FrameSize() *uint64 { return fr.header.contentSize }

// DictionaryID returns the frame's declared dictionary id, if present.
func (fr *FrameReader) DictionaryID() *uint32 { return fr.header.dictionaryID }

// DecodeBlock decodes the next block into *output, which must be empty
// on entry. A zero-length *output on return with no error means the
// frame's terminal marker was reached; callers should stop calling
// DecodeBlock at that point.
func (fr *FrameReader) DecodeBlock(output *[]byte) error {
	if len(*output) != 0 {
		panic("lz4: DecodeBlock requires an empty output buffer")
	}
	if fr.finished {
		return nil
	}

	var lenBuf [4]byte
	if _, err := io.ReadFull(fr.r, lenBuf[:]); err != nil {
		return err
	}
	lenField := binary.LittleEndian.Uint32(lenBuf[:])
	if lenField == 0 {
		if fr.contentHasher != nil {
			var sumBuf [4]byte
			if _, err := io.ReadFull(fr.r, sumBuf[:]); err != nil {
				return err
			}
			if binary.LittleEndian.Uint32(sumBuf[:]) != fr.contentHasher.Sum32() {
				return errFrameChecksumFail()
			}
		}
		fr.finished = true
		return nil
	}

	isCompressed := lenField&frameIncompressible == 0
	blockLen := lenField &^ frameIncompressible
	if int64(blockLen) > int64(fr.header.blockMaxSize) {
		return errBlockSizeOverflow()
	}

	raw := make([]byte, blockLen)
	if _, err := io.ReadFull(fr.r, raw); err != nil {
		return err
	}

	if fr.header.blockChecksums {
		var sumBuf [4]byte
		if _, err := io.ReadFull(fr.r, sumBuf[:]); err != nil {
			return err
		}
		if binary.LittleEndian.Uint32(sumBuf[:]) != xxh32.Sum32(raw) {
			return errBlockChecksumFail()
		}
	}

	if isCompressed {
		var prefix []byte
		if fr.window != nil {
			prefix = fr.window
		} else if fr.opts.Dictionary != nil {
			// Independent blocks still honor a configured dictionary as a
			// static prefix, even though the frame format gives no wire
			// signal distinguishing "no dictionary" from "dictionary, but
			// the reader forgot to supply it" (spec §9).
			prefix = fr.opts.Dictionary
			if len(prefix) > windowSize {
				prefix = prefix[len(prefix)-windowSize:]
			}
		}

		if err := DecompressRaw(raw, prefix, output, fr.header.blockMaxSize); err != nil {
			return err
		}
	} else {
		*output = append(*output, raw...)
	}

	if fr.window != nil {
		fr.window = advanceWindow(fr.window, *output)
	}

	if len(*output) > fr.header.blockMaxSize {
		return errBlockSizeOverflow()
	}

	if fr.opts.MemoryLimit > 0 {
		fr.decodedTotal += len(*output)
		if fr.decodedTotal > fr.opts.MemoryLimit {
			return ErrMemoryLimitExceeded
		}
	}

	if fr.contentHasher != nil {
		fr.contentHasher.Write(*output)
	}

	return nil
}

// advanceWindow appends decoded to window, trimming from the front so
// the result never exceeds windowSize bytes.
func advanceWindow(window, decoded []byte) []byte {
	if len(decoded) >= windowSize {
		out := make([]byte, windowSize)
		copy(out, decoded[len(decoded)-windowSize:])
		return out
	}

	total := len(window) + len(decoded)
	if total <= windowSize {
		return append(window, decoded...)
	}

	surplus := total - windowSize
	window = append(window[:0], window[surplus:]...)
	window = append(window, decoded...)
	return window
}

// Read implements io.Reader over the frame's decoded content, decoding
// one block at a time as the buffer empties.
func (fr *FrameReader) Read(p []byte) (int, error) {
	for fr.pendingOffset == len(fr.pending) {
		if fr.finished {
			return 0, io.EOF
		}
		fr.pending = fr.pending[:0]
		if err := fr.DecodeBlock(&fr.pending); err != nil {
			return 0, err
		}
		fr.pendingOffset = 0
		if fr.finished && len(fr.pending) == 0 {
			return 0, io.EOF
		}
	}

	n := copy(p, fr.pending[fr.pendingOffset:])
	fr.pendingOffset += n
	return n, nil
}
