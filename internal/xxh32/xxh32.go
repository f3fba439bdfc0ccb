// SPDX-License-Identifier: MIT
// Copyright (c) 2026 lz4go
// Source: github.com/lz4go/lz4

// Package xxh32 implements the 32-bit xxHash algorithm (XXH32) used by
// the LZ4 frame format for header, block, and content checksums.
//
// This is deliberately a small, self-contained implementation rather
// than an import of a third-party xxHash package: the only xxHash
// package available in this module's dependency pool is the 64-bit
// XXH64 variant, an algorithmically different hash that would silently
// break LZ4 frame compatibility.
package xxh32

import "encoding/binary"

const (
	prime1 uint32 = 2654435761
	prime2 uint32 = 2246822519
	prime3 uint32 = 3266489917
	prime4 uint32 = 668265263
	prime5 uint32 = 374761393
)

const seed uint32 = 0 // the LZ4 frame format always uses seed 0

// Digest is a streaming XXH32 hasher with seed 0. Create one with New;
// the zero value's accumulators are not seeded until Reset is called.
type Digest struct {
	v1, v2, v3, v4 uint32
	total          uint64
	buf            [16]byte
	bufLen         int
	started        bool
}

// New returns a new Digest seeded with 0.
func New() *Digest {
	d := &Digest{}
	d.Reset()
	return d
}

// Reset reinitializes the digest to its seeded initial state.
func (d *Digest) Reset() {
	s := seed // non-constant, so the additions below wrap mod 2^32
	d.v1 = s + prime1 + prime2
	d.v2 = s + prime2
	d.v3 = s
	d.v4 = s - prime1
	d.total = 0
	d.bufLen = 0
	d.started = false
}

// Write implements io.Writer, always returning len(p), nil.
func (d *Digest) Write(p []byte) (int, error) {
	n := len(p)
	d.total += uint64(n)

	if d.bufLen+n < 16 {
		copy(d.buf[d.bufLen:], p)
		d.bufLen += n
		return n, nil
	}

	if d.bufLen > 0 {
		filled := copy(d.buf[d.bufLen:], p)
		d.process16(d.buf[:])
		p = p[filled:]
		d.bufLen = 0
	}

	for len(p) >= 16 {
		d.process16(p)
		p = p[16:]
	}

	if len(p) > 0 {
		d.bufLen = copy(d.buf[:], p)
	}

	return n, nil
}

// process16 folds one 16-byte chunk into the four accumulators.
func (d *Digest) process16(b []byte) {
	d.v1 = round(d.v1, binary.LittleEndian.Uint32(b[0:4]))
	d.v2 = round(d.v2, binary.LittleEndian.Uint32(b[4:8]))
	d.v3 = round(d.v3, binary.LittleEndian.Uint32(b[8:12]))
	d.v4 = round(d.v4, binary.LittleEndian.Uint32(b[12:16]))
}

func round(acc, input uint32) uint32 {
	acc += input * prime2
	acc = rotl32(acc, 13)
	acc *= prime1
	return acc
}

func rotl32(x uint32, r uint) uint32 {
	return (x << r) | (x >> (32 - r))
}

// Sum32 returns the current hash value without mutating the digest
// (repeated calls are safe, matching hash.Hash32's Sum semantics).
func (d *Digest) Sum32() uint32 {
	var h uint32
	if d.total >= 16 {
		h = rotl32(d.v1, 1) + rotl32(d.v2, 7) + rotl32(d.v3, 12) + rotl32(d.v4, 18)
	} else {
		h = seed + prime5
	}

	h += uint32(d.total)

	p := d.buf[:d.bufLen]
	for len(p) >= 4 {
		h += binary.LittleEndian.Uint32(p[:4]) * prime3
		h = rotl32(h, 17) * prime4
		p = p[4:]
	}
	for len(p) > 0 {
		h += uint32(p[0]) * prime5
		h = rotl32(h, 11) * prime1
		p = p[1:]
	}

	h ^= h >> 15
	h *= prime2
	h ^= h >> 13
	h *= prime3
	h ^= h >> 16

	return h
}

// Sum32 is a one-shot XXH32 checksum of b, seeded with 0.
func Sum32(b []byte) uint32 {
	d := New()
	_, _ = d.Write(b)
	return d.Sum32()
}
