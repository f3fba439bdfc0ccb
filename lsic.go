// SPDX-License-Identifier: MIT
// Copyright (c) 2026 lz4go
// Source: github.com/lz4go/lz4

package lz4

import "encoding/binary"

// writeLSICHead packs the saturating nibble (min(value, 15)) into token
// at the given bit shift (4 for literal length, 0 for match length).
func writeLSICHead(token *byte, shift uint, value int) {
	n := value
	if n > lsicMax {
		n = lsicMax
	}
	*token |= byte(n) << shift
}

// appendLSICTail appends the LSIC continuation bytes for value, if value
// reached the nibble's saturation point (value >= 15 means the nibble
// alone could not represent it, so the tail must always be written in
// that case; the caller is responsible for calling this only then).
//
// The encoder groups full 0xFF bytes in 4-byte chunks where possible
// (one four-byte append standing in for four single-byte appends)
// before falling back to single 0xFF bytes and a residue byte -
// an encoder-side optimization; any valid LSIC encoding decodes the same.
func appendLSICTail(out []byte, value int) []byte {
	if value < lsicMax {
		return out
	}

	v := value - lsicMax
	var group [4]byte
	group[0], group[1], group[2], group[3] = 0xFF, 0xFF, 0xFF, 0xFF
	for v >= 4*0xFF {
		out = append(out, group[:]...)
		v -= 4 * 0xFF
	}
	for v >= 0xFF {
		out = append(out, 0xFF)
		v -= 0xFF
	}
	out = append(out, byte(v))
	return out
}

// readLSIC reads the continuation bytes for an LSIC value whose nibble
// was `initial` (0-15). If initial < 15 no continuation exists and the
// cursor is not advanced.
func readLSIC(src []byte, pos *int, initial byte) (int, error) {
	value := int(initial)
	if value != lsicMax {
		return value, nil
	}

	for {
		if *pos >= len(src) {
			return 0, ErrUnexpectedEnd
		}
		b := src[*pos]
		*pos++
		value += int(b)
		if b != 0xFF {
			break
		}
	}
	return value, nil
}

// readOffsetLE16 is a tiny helper kept next to the LSIC helpers because
// both are "odd-sized varint" concerns in the block codec: it decodes
// the 2-byte little-endian match offset.
func readOffsetLE16(src []byte, pos *int) (uint16, bool) {
	if *pos+2 > len(src) {
		return 0, false
	}
	v := binary.LittleEndian.Uint16(src[*pos:])
	*pos += 2
	return v, true
}
