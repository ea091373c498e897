//go:build !unix && !windows

package dirty

import (
	"context"
	"os"
)

func flushRanges(ctx context.Context, src Source, ranges []Range) error {
	return writeBack(ctx, src, ranges)
}

func flushHeader(src Source, n int) error {
	_, err := src.File().WriteAt(src.Bytes()[:n], 0)
	return err
}

func syncFile(f *os.File, _ bool) error {
	return f.Sync()
}
