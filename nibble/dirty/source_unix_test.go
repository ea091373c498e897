//go:build unix

package dirty_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func loadSource(t *testing.T, f *os.File, size int) ([]byte, func()) {
	t.Helper()
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	require.NoError(t, err)
	return data, func() { _ = unix.Munmap(data) }
}
