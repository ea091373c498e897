//go:build !unix

package dirty_test

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func loadSource(t *testing.T, f *os.File, size int) ([]byte, func()) {
	t.Helper()
	data := make([]byte, size)
	_, err := io.ReadFull(f, data)
	require.NoError(t, err)
	return data, func() {}
}
