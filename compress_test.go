// SPDX-License-Identifier: MIT
// Copyright (c) 2026 lz4go
// Source: github.com/lz4go/lz4

package lz4

import (
	"bytes"
	"testing"
)

func testInputSet() []struct {
	name string
	data []byte
} {
	return []struct {
		name string
		data []byte
	}{
		{name: "nil", data: nil},
		{name: "empty", data: []byte{}},
		{name: "single-byte", data: []byte{0xAB}},
		{name: "short-text", data: []byte("hello world, lz4 test")},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 2000)},
		{name: "long-run", data: bytes.Repeat([]byte{0xFF}, 12000)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
		{name: "spans-64kib", data: bytes.Repeat([]byte("0123456789abcdef"), 5000)},
	}
}

func TestCompressDecompressRaw_RoundTrip(t *testing.T) {
	for _, in := range testInputSet() {
		t.Run(in.name, func(t *testing.T) {
			cmp, err := CompressRaw(in.data)
			if err != nil {
				t.Fatalf("CompressRaw failed: %v", err)
			}

			var out []byte
			if err := DecompressRaw(cmp, nil, &out, len(in.data)+64); err != nil {
				t.Fatalf("DecompressRaw failed: %v", err)
			}

			if !bytes.Equal(out, in.data) {
				t.Fatalf("round-trip mismatch: got len=%d want len=%d", len(out), len(in.data))
			}
		})
	}
}

func TestCompressRaw_OutputWithinMaxCompressedSize(t *testing.T) {
	for _, in := range testInputSet() {
		t.Run(in.name, func(t *testing.T) {
			cmp, err := CompressRaw(in.data)
			if err != nil {
				t.Fatalf("CompressRaw failed: %v", err)
			}
			if bound := MaxCompressedSize(len(in.data)); len(cmp) > bound {
				t.Fatalf("compressed size %d exceeds MaxCompressedSize bound %d", len(cmp), bound)
			}
		})
	}
}

func TestCompressRaw_IncompressibleInputStillRoundTrips(t *testing.T) {
	// A short pseudo-random sequence the matcher can't usefully compress.
	data := make([]byte, 4000)
	for i := range data {
		data[i] = byte((i*2654435761 + 7) >> 3)
	}

	cmp, err := CompressRaw(data)
	if err != nil {
		t.Fatalf("CompressRaw failed: %v", err)
	}

	var out []byte
	if err := DecompressRaw(cmp, nil, &out, len(data)+64); err != nil {
		t.Fatalf("DecompressRaw failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("round-trip mismatch on incompressible input")
	}
}

func FuzzCompressDecompressRawRoundTrip(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("hello world"))
	f.Add(bytes.Repeat([]byte{0x00}, 1024))
	f.Add(bytes.Repeat([]byte("abc"), 500))

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 1<<16 {
			data = data[:1<<16]
		}

		cmp, err := CompressRaw(data)
		if err != nil {
			t.Fatalf("CompressRaw failed: %v", err)
		}

		var out []byte
		if err := DecompressRaw(cmp, nil, &out, len(data)+64); err != nil {
			t.Fatalf("DecompressRaw failed: %v", err)
		}

		if !bytes.Equal(out, data) {
			t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(data))
		}
	})
}
