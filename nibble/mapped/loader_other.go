//go:build !unix

package mapped

import (
	"io"
	"os"
)

// mapFile loads the first size bytes of f into memory. Changes reach the file
// when the dirty tracker writes them back.
func mapFile(f *os.File, size int, _ bool) ([]byte, error) {
	data := make([]byte, size)
	if _, err := f.ReadAt(data, 0); err != nil && err != io.EOF {
		return nil, err
	}
	return data, nil
}

func unmapFile([]byte) error { return nil }
