//go:build !unix

package dirty

import "context"

// writeBack copies dirty ranges of an unmapped image to the file.
func writeBack(ctx context.Context, src Source, ranges []Range) error {
	data, f := src.Bytes(), src.File()
	for _, r := range ranges {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := f.WriteAt(data[r.Off:r.End()], r.Off); err != nil {
			return err
		}
	}
	return nil
}
