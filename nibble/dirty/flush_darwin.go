//go:build darwin

package dirty

import (
	"context"
	"os"

	"golang.org/x/sys/unix"
)

// flushRanges flushes the whole mapping.
//
// On macOS, msync() requires the address to match the original mmap()
// address, so sub-slices cannot be passed. The kernel only writes pages that
// are actually dirty.
func flushRanges(ctx context.Context, src Source, ranges []Range) error {
	if len(ranges) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return unix.Msync(src.Bytes(), unix.MS_SYNC)
}

// flushHeader flushes the whole mapping for the same reason as flushRanges.
func flushHeader(src Source, _ int) error {
	return unix.Msync(src.Bytes(), unix.MS_SYNC)
}

// syncFile uses F_FULLFSYNC when full is set, fsync otherwise. macOS has no
// fdatasync.
func syncFile(f *os.File, full bool) error {
	if full {
		_, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0)
		return err
	}
	return unix.Fsync(int(f.Fd()))
}
