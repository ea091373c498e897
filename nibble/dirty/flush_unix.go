//go:build unix && !darwin

package dirty

import (
	"context"

	"golang.org/x/sys/unix"
)

// flushRanges msyncs each range of the mapping. Linux and the BSDs accept
// any page-aligned sub-slice of a mapping.
func flushRanges(ctx context.Context, src Source, ranges []Range) error {
	data := src.Bytes()
	for _, r := range ranges {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := unix.Msync(data[r.Off:r.End()], unix.MS_SYNC); err != nil {
			return err
		}
	}
	return nil
}

// flushHeader msyncs the first n bytes of the mapping.
func flushHeader(src Source, n int) error {
	return unix.Msync(src.Bytes()[:n], unix.MS_SYNC)
}
