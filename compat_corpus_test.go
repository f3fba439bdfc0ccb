// SPDX-License-Identifier: MIT
// Copyright (c) 2026 lz4go
// Source: github.com/lz4go/lz4

package lz4

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// TestCompatibility_ReferenceCLICorpus cross-checks this codec against
// frames produced by the reference lz4 CLI, when such a corpus has been
// placed on disk. It is opt-in: absent fixture data is a skip, not a
// failure, since the corpus is not checked into the module itself.
func TestCompatibility_ReferenceCLICorpus(t *testing.T) {
	compressedDir := filepath.Join("ref", "lz4-reference-cli", "test-data", "compressed")
	uncompressedDir := filepath.Join("ref", "lz4-reference-cli", "test-data", "uncompressed")

	if _, err := os.Stat(compressedDir); err != nil {
		t.Skipf("compat corpus not found: %v", err)
	}

	entries, err := os.ReadDir(compressedDir)
	if err != nil {
		t.Fatalf("ReadDir(%q): %v", compressedDir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if filepath.Ext(name) != ".lz4" {
			continue
		}

		testName := name
		t.Run(testName, func(t *testing.T) {
			compressedPath := filepath.Join(compressedDir, testName)
			compressedData, err := os.ReadFile(compressedPath)
			if err != nil {
				t.Fatalf("ReadFile(%q): %v", compressedPath, err)
			}

			baseName := testName[:len(testName)-len(".lz4")]
			plainPath := filepath.Join(uncompressedDir, baseName)
			plainData, err := os.ReadFile(plainPath)
			if err != nil {
				t.Fatalf("ReadFile(%q): %v", plainPath, err)
			}

			out, err := Decompress(compressedData, nil)
			if err != nil {
				t.Fatalf("Decompress(%q): %v", testName, err)
			}
			if !bytes.Equal(out, plainData) {
				t.Fatalf("decoded mismatch for %q: got=%d want=%d", testName, len(out), len(plainData))
			}

			// Round-trip through our own encoder too: the result need not
			// be byte-identical to the reference CLI's frame, but it must
			// decode back to the same content.
			recompressed, err := Compress(plainData, DefaultWriterOptions())
			if err != nil {
				t.Fatalf("Compress(%q): %v", testName, err)
			}
			roundTripped, err := Decompress(recompressed, nil)
			if err != nil {
				t.Fatalf("Decompress(own output for %q): %v", testName, err)
			}
			if !bytes.Equal(roundTripped, plainData) {
				t.Fatalf("own round-trip mismatch for %q", testName)
			}
		})
	}
}
