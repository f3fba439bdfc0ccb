// SPDX-License-Identifier: MIT
// Copyright (c) 2026 lz4go
// Source: github.com/lz4go/lz4

package lz4

import "encoding/binary"

// encoderTable maps 4-5 byte prefix hashes to prior byte offsets (spec
// §3/§4.1). Both table flavors below satisfy it; RawEncoder is generic
// over the interface so dictionary-seeded frame compression and raw
// one-shot compression share the same match-finding code.
type encoderTable interface {
	// replace hashes input[pos:] and atomically swaps the stored
	// position for that hash slot with pos, returning the prior value
	// (saturated against the table's base offset; 0 if unset/expired).
	replace(input []byte, pos int) int
	// offset advances the table's base offset by delta, so that stale
	// entries predating the new base read back as unset.
	offset(delta int)
	// payloadSizeLimit is the largest logical offset this table can
	// address without overflowing its stored value width.
	payloadSizeLimit() int
}

// wideTable stores 32-bit offsets across 2^12 slots. Used whenever the
// logical input can exceed 65535 bytes.
type wideTable struct {
	slots [wideTableSize]uint32
	base  int
}

func newWideTable() *wideTable { return &wideTable{} }

func (t *wideTable) replace(input []byte, pos int) int {
	o := pos + t.base
	h := hashWide(input[pos:])
	prior := t.slots[h]
	t.slots[h] = uint32(o)
	return saturatingSub(int(prior), t.base)
}

func (t *wideTable) offset(delta int) { t.base += delta }

func (t *wideTable) payloadSizeLimit() int { return 1<<32 - 1 }

// reset clears all slots and base offset, leaving the table as if newly
// allocated. Used by acquireWideTable to recycle a pooled table without
// reallocating.
func (t *wideTable) reset() {
	clear(t.slots[:])
	t.base = 0
}

// clone returns a deep copy, used to derive a fresh per-block table from
// a dictionary-seeded template.
func (t *wideTable) clone() *wideTable {
	c := *t
	return &c
}

// narrowTable stores 16-bit offsets across 2^13 slots (more, smaller
// slots than wideTable, trading addressable range for denser hashing on
// inputs that are known to fit in 64 KiB).
type narrowTable struct {
	slots [narrowTableSize]uint16
	base  int
}

func newNarrowTable() *narrowTable { return &narrowTable{} }

func (t *narrowTable) replace(input []byte, pos int) int {
	o := pos + t.base
	h := hashNarrow(input[pos:])
	prior := t.slots[h]
	t.slots[h] = uint16(o)
	return saturatingSub(int(prior), t.base)
}

func (t *narrowTable) offset(delta int) { t.base += delta }

func (t *narrowTable) payloadSizeLimit() int { return 1<<16 - 1 }

func (t *narrowTable) reset() {
	clear(t.slots[:])
	t.base = 0
}

// saturatingSub subtracts base from v, clamping at 0 instead of going
// negative. This is what lets a sliding window "expire" stale hash
// entries just by advancing base, with no sweep over the table.
func saturatingSub(v, base int) int {
	if v < base {
		return 0
	}
	return v - base
}

// hashWide hashes up to 8 bytes at input[0:] (5 meaningful bytes) into a
// wideTableSize-sized bucket. The encoder never calls replace() within
// tailBytes of the end, but its extra insertion at cursor-2 can land
// where fewer than 8 bytes remain.
func hashWide(input []byte) uint64 {
	var v uint64
	if len(input) >= 8 {
		v = binary.LittleEndian.Uint64(input)
	} else {
		// Fewer than 8 bytes left: zero-extend rather than reading out
		// of bounds.
		var buf [8]byte
		copy(buf[:], input)
		v = binary.LittleEndian.Uint64(buf[:])
	}
	return ((v << 24) * wideHashMul) >> (64 - wideHashBits)
}

// hashNarrow hashes the 4 bytes at input[0:4] into a narrowTableSize-sized
// bucket.
func hashNarrow(input []byte) uint32 {
	v := binary.LittleEndian.Uint32(input)
	return (v * narrowHashMul) >> (32 - narrowHashBits)
}
