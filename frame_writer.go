// SPDX-License-Identifier: MIT
// Copyright (c) 2026 lz4go
// Source: github.com/lz4go/lz4

package lz4

import (
	"encoding/binary"
	"io"

	"github.com/lz4go/lz4/internal/xxh32"
)

// FrameWriter compresses one LZ4 frame per call to Compress/
// CompressWithSize/CompressWithDeclaredSize (spec §4.5). A FrameWriter
// may be reused across frames; it holds no open-file or goroutine
// state, only its configured options.
type FrameWriter struct {
	opts WriterOptions
}

// NewFrameWriter validates opts and returns a FrameWriter. BlockMaxSize
// defaults to BlockSize64KB when zero.
func NewFrameWriter(opts WriterOptions) (*FrameWriter, error) {
	if opts.BlockMaxSize == 0 {
		opts.BlockMaxSize = BlockSize64KB
	}
	if _, ok := blockSizeCode(opts.BlockMaxSize); !ok {
		return nil, ErrInvalidBlockSize
	}
	return &FrameWriter{opts: opts}, nil
}

// Compress reads r to EOF and writes a complete LZ4 frame to w, with no
// declared content size in the header.
func (fw *FrameWriter) Compress(r io.Reader, w io.Writer) error {
	return fw.compress(r, w, nil)
}

// CompressWithSize seeks r to determine its remaining length and writes
// that length into the frame header.
func (fw *FrameWriter) CompressWithSize(r io.ReadSeeker, w io.Writer) error {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	end, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return err
	}
	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return err
	}

	size := uint64(end - start)
	return fw.compress(r, w, &size)
}

// CompressWithDeclaredSize writes size into the frame header without
// seeking r, trusting the caller's assertion (e.g. a known HTTP
// Content-Length). The actual byte count read is not verified against
// size; a mismatch produces a frame whose header lies, same as the
// original's compress_with_size_unchecked.
func (fw *FrameWriter) CompressWithDeclaredSize(r io.Reader, w io.Writer, size uint64) error {
	return fw.compress(r, w, &size)
}

func (fw *FrameWriter) compress(r io.Reader, w io.Writer, contentSize *uint64) error {
	opts := fw.opts
	if contentSize == nil {
		contentSize = opts.DeclaredContentSize
	}

	header := &frameHeader{
		independentBlocks: opts.IndependentBlocks,
		blockChecksums:    opts.BlockChecksums,
		contentChecksum:   opts.ContentChecksum,
		dictionaryID:      opts.DictionaryID,
		contentSize:       contentSize,
		blockMaxSize:      opts.BlockMaxSize,
	}
	encoded, err := header.encode()
	if err != nil {
		return err
	}
	if _, err := w.Write(encoded); err != nil {
		return err
	}

	var contentHasher *xxh32.Digest
	if opts.ContentChecksum {
		contentHasher = xxh32.New()
	}

	templateTable := newWideTable()
	var blockInitializer []byte
	if opts.Dictionary != nil {
		seedTableFromDictionary(templateTable, opts.Dictionary)
		blockInitializer = opts.Dictionary
	}

	inBuffer := make([]byte, 0, opts.BlockMaxSize+len(blockInitializer))
	inBuffer = append(inBuffer, blockInitializer...)
	outBuffer := make([]byte, opts.BlockMaxSize)
	table := templateTable.clone()

	readBuf := make([]byte, opts.BlockMaxSize)
	for {
		windowOffset := len(inBuffer)

		read, readErr := io.ReadFull(r, readBuf)
		if readErr != nil && readErr != io.ErrUnexpectedEOF && readErr != io.EOF {
			return readErr
		}
		inBuffer = append(inBuffer, readBuf[:read]...)
		if read == 0 {
			break
		}

		if contentHasher != nil {
			contentHasher.Write(inBuffer[windowOffset:])
		}

		block := inBuffer[windowOffset:]
		sink := newBoundedSink(outBuffer[:len(block)])
		var payload []byte
		var incompressible bool
		if err := compressRawInto(inBuffer, windowOffset, table, sink); err != nil {
			incompressible = true
			payload = block
		} else {
			payload = sink.written()
		}

		var lenField uint32
		if incompressible {
			lenField = uint32(len(payload)) | frameIncompressible
		} else {
			lenField = uint32(len(payload))
		}
		var lenBuf [4]byte
		binary.LittleEndian.PutUint32(lenBuf[:], lenField)
		if _, err := w.Write(lenBuf[:]); err != nil {
			return err
		}
		if _, err := w.Write(payload); err != nil {
			return err
		}
		if opts.BlockChecksums {
			sum := xxh32.Sum32(payload)
			var sumBuf [4]byte
			binary.LittleEndian.PutUint32(sumBuf[:], sum)
			if _, err := w.Write(sumBuf[:]); err != nil {
				return err
			}
		}

		if opts.IndependentBlocks {
			inBuffer = inBuffer[:0]
			inBuffer = append(inBuffer, blockInitializer...)
			table = templateTable.clone()
		} else if len(inBuffer) > windowSize {
			drop := len(inBuffer) - windowSize
			table.offset(drop)
			inBuffer = append(inBuffer[:0], inBuffer[drop:]...)
		}

		if readErr == io.EOF || readErr == io.ErrUnexpectedEOF {
			break
		}
	}

	var zero [4]byte
	if _, err := w.Write(zero[:]); err != nil {
		return err
	}

	if contentHasher != nil {
		var sumBuf [4]byte
		binary.LittleEndian.PutUint32(sumBuf[:], contentHasher.Sum32())
		if _, err := w.Write(sumBuf[:]); err != nil {
			return err
		}
	}

	return nil
}

// seedTableFromDictionary primes table with every 3rd byte offset of
// dict, the same stride the original uses to balance seeding cost
// against match-finding benefit (spec §9).
func seedTableFromDictionary(table *wideTable, dict []byte) {
	const stride = 3
	for offset := 0; offset+8 <= len(dict); offset += stride {
		table.replace(dict, offset)
	}
}
