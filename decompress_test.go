// SPDX-License-Identifier: MIT
// Copyright (c) 2026 lz4go
// Source: github.com/lz4go/lz4

package lz4

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecompressRaw_TruncatedInputNeverDecodesToOriginal(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789abcdef"), 256)
	cmp, err := CompressRaw(data)
	if err != nil {
		t.Fatalf("CompressRaw failed: %v", err)
	}
	if len(cmp) < 4 {
		t.Fatalf("compressed data unexpectedly short: %d", len(cmp))
	}

	maxCut := min(32, len(cmp)-1)
	for cut := 1; cut <= maxCut; cut++ {
		truncated := cmp[:len(cmp)-cut]
		var out []byte
		err := DecompressRaw(truncated, nil, &out, len(data)+64)
		if err == nil && bytes.Equal(out, data) {
			t.Fatalf("cut=%d: truncated input decoded to the full original data unexpectedly", cut)
		}
	}
}

func TestDecompressRaw_MemoryLimitEnforced(t *testing.T) {
	block := []byte{0x11, 'a', 0x01, 0x00} // decodes to "aaaaaa" (6 bytes)
	var out []byte
	err := DecompressRaw(block, nil, &out, 3)
	if !errors.Is(err, ErrMemoryLimitExceeded) {
		t.Fatalf("expected ErrMemoryLimitExceeded, got %v", err)
	}
}

func TestDecompressRaw_UnexpectedEndOnTruncatedLiteral(t *testing.T) {
	block := []byte{0x50, 'a', 'b'} // token claims 5 literal bytes, only 2 present
	var out []byte
	err := DecompressRaw(block, nil, &out, 64)
	if !errors.Is(err, ErrUnexpectedEnd) {
		t.Fatalf("expected ErrUnexpectedEnd, got %v", err)
	}
}

func TestCopyOverlapping(t *testing.T) {
	t.Run("non-overlapping", func(t *testing.T) {
		out := []byte("abcdefgh")
		if err := copyOverlapping(8, 4, nil, &out); err != nil {
			t.Fatalf("copyOverlapping failed: %v", err)
		}
		if got, want := string(out), "abcdefghabcd"; got != want {
			t.Fatalf("got %q want %q", got, want)
		}
	})

	t.Run("rle-offset-one", func(t *testing.T) {
		out := []byte("X")
		if err := copyOverlapping(1, 5, nil, &out); err != nil {
			t.Fatalf("copyOverlapping failed: %v", err)
		}
		if got, want := string(out), "XXXXXX"; got != want {
			t.Fatalf("got %q want %q", got, want)
		}
	})

	t.Run("tiled-offset-four", func(t *testing.T) {
		out := []byte("ABCD")
		if err := copyOverlapping(4, 10, nil, &out); err != nil {
			t.Fatalf("copyOverlapping failed: %v", err)
		}
		if got, want := string(out), "ABCDABCDABCDABCD"[:14]; got != want {
			t.Fatalf("got %q want %q", got, want)
		}
	})

	t.Run("byte-wise-overlap-default-path", func(t *testing.T) {
		out := []byte("ABC")
		if err := copyOverlapping(3, 5, nil, &out); err != nil {
			t.Fatalf("copyOverlapping failed: %v", err)
		}
		if got, want := string(out), "ABCABCAB"; got != want {
			t.Fatalf("got %q want %q", got, want)
		}
	})

	t.Run("zero-offset", func(t *testing.T) {
		out := []byte("ABC")
		err := copyOverlapping(0, 2, nil, &out)
		if !errors.Is(err, ErrZeroDeduplicationOffset) {
			t.Fatalf("expected ErrZeroDeduplicationOffset, got %v", err)
		}
	})

	t.Run("offset-exceeds-history", func(t *testing.T) {
		out := []byte("AB")
		err := copyOverlapping(5, 2, nil, &out)
		if !errors.Is(err, ErrInvalidDeduplicationOffset) {
			t.Fatalf("expected ErrInvalidDeduplicationOffset, got %v", err)
		}
	})

	t.Run("reaches-into-prefix", func(t *testing.T) {
		prefix := []byte("0123456789")
		out := []byte("XY")
		// offset 5 reaches 3 bytes into prefix ("789") then 2 bytes of "XY".
		if err := copyOverlapping(5, 5, prefix, &out); err != nil {
			t.Fatalf("copyOverlapping failed: %v", err)
		}
		if got, want := string(out), "XY789XY"; got != want {
			t.Fatalf("got %q want %q", got, want)
		}
	})

	t.Run("prefix-exhausted", func(t *testing.T) {
		prefix := []byte("abc")
		out := []byte{}
		err := copyOverlapping(10, 2, prefix, &out)
		if !errors.Is(err, ErrInvalidDeduplicationOffset) {
			t.Fatalf("expected ErrInvalidDeduplicationOffset, got %v", err)
		}
	})
}
