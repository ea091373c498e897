//go:build unix && !linux && !freebsd && !darwin

package dirty

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile falls back to fsync where fdatasync is unavailable.
func syncFile(f *os.File, _ bool) error {
	return unix.Fsync(int(f.Fd()))
}
