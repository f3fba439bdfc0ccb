// SPDX-License-Identifier: MIT
// Copyright (c) 2026 lz4go
// Source: github.com/lz4go/lz4

package lz4

import (
	"encoding/binary"
	"math/bits"
)

// countMatchingBytes returns how many leading bytes of a and b are equal,
// comparing 8 bytes at a time and falling back to a byte-wise tail
// comparison, the same technique the teacher codebase uses in its own
// match extension loop (bits.TrailingZeros64(x) >> 3).
func countMatchingBytes(a, b []byte) int {
	const regSize = 8

	n := min(len(a), len(b))
	matched := 0

	for matched+regSize <= n {
		x := binary.LittleEndian.Uint64(a[matched:]) ^ binary.LittleEndian.Uint64(b[matched:])
		if x == 0 {
			matched += regSize
			continue
		}
		matched += bits.TrailingZeros64(x) / 8
		return matched
	}

	for matched < n && a[matched] == b[matched] {
		matched++
	}
	return matched
}
