// SPDX-License-Identifier: MIT
// Copyright (c) 2026 lz4go
// Source: github.com/lz4go/lz4

package lz4

// copyOverlapping is the decoder's copy engine (spec §4.3). It appends
// matchLen bytes to *output, reading from either prefix (when the match
// reaches back before output's start) or output itself, handling the
// case where offset < matchLen (the newly-written bytes become valid
// source for the remainder of the match).
//
// The fast paths are semantically equivalent to the byte-wise fallback;
// they exist purely for throughput.
func copyOverlapping(offset, matchLen int, prefix []byte, output *[]byte) error {
	oldLen := len(*output)

	switch {
	case offset == 0:
		return ErrZeroDeduplicationOffset

	case offset > oldLen:
		// Source lies (at least partly) in prefix.
		prefixNeeded := offset - oldLen
		if prefixNeeded > len(prefix) {
			return ErrInvalidDeduplicationOffset
		}

		fromPrefix := min(prefixNeeded, matchLen)
		*output = append(*output, prefix[len(prefix)-prefixNeeded:][:fromPrefix]...)

		remaining := matchLen - fromPrefix
		if remaining != 0 {
			// The cursor into prefix effectively advanced by fromPrefix,
			// which is the same as asking for the remainder from output
			// alone (offset measured from the new, larger output).
			return copyOverlapping(offset, remaining, nil, output)
		}
		return nil

	case offset == 1:
		// RLE fast path: fill with the single preceding byte.
		b := (*output)[oldLen-1]
		grown := growBy(output, matchLen)
		for i := range grown {
			grown[i] = b
		}
		return nil

	case matchLen <= offset:
		// Non-overlapping: safe to grow then copy in one shot.
		grown := growBy(output, matchLen)
		copy(grown, (*output)[oldLen-offset:oldLen])
		return nil

	case offset == 2 || offset == 4 || offset == 8:
		// Overlapping but small: tile a 16-byte staging buffer and splat
		// it across the output in 16-byte chunks.
		var tile [16]byte
		src := (*output)[oldLen-offset : oldLen]
		for i := 0; i < 16; i += offset {
			copy(tile[i:i+offset], src)
		}

		grown := growBy(output, matchLen)
		for len(grown) > 0 {
			n := copy(grown, tile[:])
			grown = grown[n:]
		}
		return nil

	default:
		// Slowest path: byte-wise copy, one source byte at a time so
		// overlap (offset < matchLen) resolves correctly.
		*output = append(*output, make([]byte, 0, matchLen)...)
		for i := 0; i < matchLen; i++ {
			*output = append(*output, (*output)[oldLen-offset+i])
		}
		return nil
	}
}

// growBy extends *output by n zeroed bytes and returns the new tail as a
// slice, so the caller can fill it in place instead of appending
// byte-by-byte.
func growBy(output *[]byte, n int) []byte {
	oldLen := len(*output)
	*output = append(*output, make([]byte, n)...)
	return (*output)[oldLen : oldLen+n]
}
