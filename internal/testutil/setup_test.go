package testutil

import (
	"os"
	"testing"

	"github.com/joshuapare/nibkit/internal/format"
)

func TestWriteNibbleFile(t *testing.T) {
	path := WriteNibbleFile(t, 3, 2, []byte{0xAB, 0xC0})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	h, err := format.ParseHeader(data)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if h.Length != 3 || h.Capacity != 2 {
		t.Fatalf("header = %+v, want length 3 capacity 2", h)
	}
	if got := data[format.DataOffset:]; len(got) != 2 || got[0] != 0xAB || got[1] != 0xC0 {
		t.Fatalf("pairs = % x", got)
	}
}

func TestCopyNibbleFile(t *testing.T) {
	src := WriteNibbleFile(t, 1, 1, []byte{0x70})
	dst := CopyNibbleFile(t, src, "copy.nib")

	if err := os.WriteFile(dst, []byte("changed"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(src)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data[:4]) != "nibf" {
		t.Fatalf("source changed: %q", data[:4])
	}
}
