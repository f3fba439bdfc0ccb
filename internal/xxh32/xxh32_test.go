package xxh32

import (
	"bytes"
	"testing"
)

func TestSum32_EmptyInput(t *testing.T) {
	const want = 0x02CC5D05 // well-known XXH32("", seed=0) test vector
	if got := Sum32(nil); got != want {
		t.Fatalf("Sum32(nil) = 0x%08x, want 0x%08x", got, want)
	}
	if got := Sum32([]byte{}); got != want {
		t.Fatalf("Sum32([]byte{}) = 0x%08x, want 0x%08x", got, want)
	}
}

func TestDigest_ChunkedWritesMatchOneShot(t *testing.T) {
	data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog"), 500)

	want := Sum32(data)

	for _, chunkSize := range []int{1, 3, 4, 7, 16, 17, 1024} {
		d := New()
		for off := 0; off < len(data); off += chunkSize {
			end := min(off+chunkSize, len(data))
			if _, err := d.Write(data[off:end]); err != nil {
				t.Fatalf("Write: %v", err)
			}
		}
		if got := d.Sum32(); got != want {
			t.Fatalf("chunkSize=%d: Sum32() = 0x%08x, want 0x%08x", chunkSize, got, want)
		}
	}
}

func TestDigest_ResetReusesState(t *testing.T) {
	d := New()
	_, _ = d.Write([]byte("first message"))
	first := d.Sum32()

	d.Reset()
	_, _ = d.Write([]byte("second message"))
	second := d.Sum32()

	if first == second {
		t.Fatalf("expected different hashes for different inputs, got 0x%08x twice", first)
	}

	d.Reset()
	_, _ = d.Write([]byte("first message"))
	if got := d.Sum32(); got != first {
		t.Fatalf("after Reset and rewriting the same input, Sum32() = 0x%08x, want 0x%08x", got, first)
	}
}

func TestSum32_DistinctInputsLikelyDiffer(t *testing.T) {
	a := Sum32([]byte("alpha"))
	b := Sum32([]byte("beta"))
	if a == b {
		t.Fatalf("Sum32 collision between distinct short inputs (0x%08x)", a)
	}
}

func TestDigest_SumIsIdempotent(t *testing.T) {
	d := New()
	_, _ = d.Write([]byte("idempotent"))
	first := d.Sum32()
	second := d.Sum32()
	if first != second {
		t.Fatalf("Sum32() not idempotent: 0x%08x vs 0x%08x", first, second)
	}
}
