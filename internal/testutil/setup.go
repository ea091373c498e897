// Package testutil builds nibble files for tests.
package testutil

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/nibkit/internal/format"
)

// WriteNibbleFile writes a nibble file with the given header fields followed
// by pairs into a temporary directory and returns its path. The header is not
// checked, so tests can build corrupt files.
//
// Example:
//
//	path := testutil.WriteNibbleFile(t, 3, 2, []byte{0xAB, 0xC0})
func WriteNibbleFile(t testing.TB, length, capacity uint64, pairs []byte) string {
	t.Helper()

	b := make([]byte, format.HeaderSize+len(pairs))
	h := format.NewHeader(capacity)
	h.Length = length
	h.Encode(b)
	copy(b[format.DataOffset:], pairs)

	path := filepath.Join(t.TempDir(), "raw.nib")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatalf("Failed to write nibble file: %v", err)
	}
	return path
}

// CopyNibbleFile copies src into a temporary directory under tempName and
// returns the new path, so a test can modify the copy freely.
func CopyNibbleFile(t testing.TB, src, tempName string) string {
	t.Helper()

	dst := filepath.Join(t.TempDir(), tempName)

	srcFile, err := os.Open(src)
	if err != nil {
		t.Fatalf("Failed to open nibble file: %v", err)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		t.Fatalf("Failed to create temp nibble file: %v", err)
	}
	defer dstFile.Close()

	if _, copyErr := io.Copy(dstFile, srcFile); copyErr != nil {
		t.Fatalf("Failed to copy nibble file: %v", copyErr)
	}
	return dst
}
