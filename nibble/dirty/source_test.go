package dirty_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// testSource is a file image handed to a Tracker. Platforms with mmap map the
// file; others hold a private copy.
type testSource struct {
	path string
	data []byte
	f    *os.File
}

func (s *testSource) Bytes() []byte  { return s.data }
func (s *testSource) File() *os.File { return s.f }

// setupSource creates a zeroed file of size bytes and opens it as a source.
func setupSource(t *testing.T, size int) *testSource {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.nib")
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	require.NoError(t, err)

	data, unmap := loadSource(t, f, size)
	t.Cleanup(func() {
		unmap()
		f.Close()
	})
	return &testSource{path: path, data: data, f: f}
}
