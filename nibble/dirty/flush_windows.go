//go:build windows

package dirty

import (
	"context"
	"os"

	"golang.org/x/sys/windows"
)

// flushRanges writes each range of the in-memory image back to the file.
func flushRanges(ctx context.Context, src Source, ranges []Range) error {
	return writeBack(ctx, src, ranges)
}

// flushHeader writes the first n bytes of the image back to the file.
func flushHeader(src Source, n int) error {
	_, err := src.File().WriteAt(src.Bytes()[:n], 0)
	return err
}

// syncFile uses FlushFileBuffers. full has no stronger variant here.
func syncFile(f *os.File, _ bool) error {
	return windows.FlushFileBuffers(windows.Handle(f.Fd()))
}
