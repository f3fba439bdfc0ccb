// SPDX-License-Identifier: MIT
// Copyright (c) 2026 lz4go
// Source: github.com/lz4go/lz4

package lz4

import (
	"bytes"
	"encoding/binary"
	"io"
)

// skipAcceleration and skipTrigger tune how fast the encoder widens its
// step through incompressible regions (spec §4.2 step 7). Acceleration
// is fixed at 1: this codec does not expose a tunable "fast mode" the
// way some LZ4 encoders do.
const (
	skipAcceleration = 1
	skipTrigger      = 6
)

// MaxCompressedSize returns an upper bound on the compressed size of n
// bytes of input, suitable for sizing a destination buffer for
// CompressRaw. It is intentionally generous, matching the convention of
// exposing a bound helper for callers who manage their own buffers.
func MaxCompressedSize(n int) int {
	return n + n/255 + 16
}

// CompressRaw compresses src into a new LZ4 raw block. It is a
// convenience wrapper around compressRawInto using a fresh hash table
// sized to src's length.
func CompressRaw(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(MaxCompressedSize(len(src)))

	if len(src) <= (1<<16 - 1) {
		table := acquireNarrowTable()
		defer releaseNarrowTable(table)
		if err := compressRawInto(src, 0, table, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	table := acquireWideTable()
	defer releaseWideTable(table)
	if err := compressRawInto(src, 0, table, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// compressRawInto implements the RawEncoder contract (spec §4.2): given
// src, a starting cursor (non-zero when src is prefixed by dictionary
// bytes already folded into table), and a hash table (possibly
// pre-seeded from a dictionary), it writes a complete LZ4 block stream
// to w.
func compressRawInto(src []byte, cursor int, table encoderTable, w io.Writer) error {
	initCursor := cursor
	srcLen := len(src)

	for cursor < srcLen {
		literalStart := cursor

		stepCounter := skipAcceleration << skipTrigger
		step := 1

		var (
			dupOffset int
			dupExtra  int
		)

		for {
			if srcLen-cursor < tailGuardLen {
				return writeFinalLiteralRun(w, src[literalStart:])
			}

			candidate := table.replace(src, cursor)

			if cursor != initCursor && cursor-candidate <= maxMatchOffset {
				current := src[cursor : srcLen-tailBytes]
				matched := countMatchingBytes(current, src[candidate:])

				if matched >= minMatch {
					extra := matched - minMatch
					offset := cursor - candidate

					// Backtrack into the literal run: grows extra without
					// touching offset (spec §4.2 step 4, §9).
					maxBacktrack := cursor - literalStart
					backtrack := 0
					for backtrack < maxBacktrack && backtrack < candidate &&
						src[cursor-1-backtrack] == src[candidate-1-backtrack] {
						backtrack++
					}
					extra += backtrack

					cursor += matched
					// Deliberate extra insertion replicating the reference
					// encoder's hot loop (spec §4.2 step 5, §9).
					table.replace(src, cursor-2)

					dupOffset = offset
					dupExtra = extra
					break
				}
			}

			cursor += step
			step = stepCounter >> skipTrigger
			// The first byte of a fresh literal run doesn't advance the
			// skip counter, matching a loop-unrolling quirk in the
			// reference C encoder (spec §4.2 step 7, §9).
			if literalStart+1 != cursor {
				stepCounter++
			}
		}

		literalEnd := cursor - dupExtra - minMatch
		if err := writeSequence(w, src[literalStart:literalEnd], uint16(dupOffset), dupExtra); err != nil {
			return err
		}
	}

	return nil
}

// writeSequence emits one token + LSIC-literal-length + literals + offset
// + LSIC-match-length group (spec §3 "sequences").
func writeSequence(w io.Writer, literal []byte, offset uint16, extraMatchLen int) error {
	var token byte
	writeLSICHead(&token, 4, len(literal))
	writeLSICHead(&token, 0, extraMatchLen)

	buf := make([]byte, 0, 1+5+len(literal)+2+5)
	buf = append(buf, token)
	buf = appendLSICTail(buf, len(literal))
	buf = append(buf, literal...)

	var offBuf [2]byte
	binary.LittleEndian.PutUint16(offBuf[:], offset)
	buf = append(buf, offBuf[:]...)
	buf = appendLSICTail(buf, extraMatchLen)

	_, err := w.Write(buf)
	return err
}

// writeFinalLiteralRun emits the block's closing literal-only sequence
// (spec §4.2 step 1): token has a zero match-length nibble and no match
// suffix follows.
func writeFinalLiteralRun(w io.Writer, literal []byte) error {
	var token byte
	writeLSICHead(&token, 4, len(literal))

	buf := make([]byte, 0, 1+5+len(literal))
	buf = append(buf, token)
	buf = appendLSICTail(buf, len(literal))
	buf = append(buf, literal...)

	_, err := w.Write(buf)
	return err
}
