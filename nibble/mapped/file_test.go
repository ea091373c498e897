package mapped

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/nibkit/internal/format"
	"github.com/joshuapare/nibkit/internal/testutil"
	"github.com/joshuapare/nibkit/nibble"
)

func createFile(t *testing.T, capacity int) (*File, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.nib")
	f, err := Create(path, capacity, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f, path
}

func pushAll(t *testing.T, f *File, values ...byte) {
	t.Helper()
	for _, v := range values {
		require.NoError(t, f.Push(nibble.Lo(v)))
	}
}

func TestCreate_Empty(t *testing.T) {
	f, path := createFile(t, 4)

	require.Zero(t, f.Len())
	require.Equal(t, 8, f.Cap())
	require.Equal(t, path, f.Path())
	require.False(t, f.ReadOnly())
	require.Equal(t, format.Header{Version: format.Version, Capacity: 4}, f.Header())

	st, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, int64(format.HeaderSize+4), st.Size())
}

func TestCreate_ReadOnlyRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ro.nib")
	_, err := Create(path, 1, &OpenOptions{ReadOnly: true})
	require.ErrorIs(t, err, ErrReadOnly)
}

func TestFile_PersistsAcrossReopen(t *testing.T) {
	f, path := createFile(t, 3)
	pushAll(t, f, 1, 2, 3, 4, 5)
	require.NoError(t, f.Insert(2, nibble.Lo(0xF)))
	v, err := f.Remove(0)
	require.NoError(t, err)
	require.Equal(t, nibble.Lo(1), v)
	require.NoError(t, f.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte("nibf"), raw[:4])
	require.Equal(t, uint64(5), format.ReadLength(raw))
	require.Equal(t, []byte{0x2F, 0x34, 0x50}, raw[format.DataOffset:])

	g, err := Open(path, nil)
	require.NoError(t, err)
	defer g.Close()
	require.Equal(t, 5, g.Len())
	require.True(t, nibble.Equal(g, nibble.VecOf(nibble.Lo(2), nibble.Lo(0xF), nibble.Lo(3), nibble.Lo(4), nibble.Lo(5))))
	require.Equal(t, nibble.NoRight, g.Slice().Alignment())
}

func TestFile_Push_Full(t *testing.T) {
	f, _ := createFile(t, 1)
	pushAll(t, f, 0xA, 0xB)
	require.True(t, f.IsFull())

	err := f.Push(nibble.Lo(0xC))
	require.ErrorIs(t, err, nibble.ErrCapacity)
	var capErr *nibble.CapacityError
	require.ErrorAs(t, err, &capErr)
	require.Equal(t, nibble.Lo(0xC), capErr.Value)
	require.Equal(t, 2, f.Len())

	err = f.Insert(0, nibble.Lo(0xC))
	require.ErrorIs(t, err, nibble.ErrCapacity)
	require.Equal(t, "ab", f.Slice().String())
}

func TestFile_PopSetClear(t *testing.T) {
	f, _ := createFile(t, 2)

	_, err := f.Pop()
	require.ErrorIs(t, err, ErrEmpty)

	pushAll(t, f, 1, 2, 3)
	require.NoError(t, f.Set(1, nibble.Lo(9)))

	v, err := f.Pop()
	require.NoError(t, err)
	require.Equal(t, nibble.Lo(3), v)
	require.Equal(t, []nibble.Pair{0x19}, f.Pairs())

	require.NoError(t, f.Clear())
	require.Zero(t, f.Len())
	require.Zero(t, f.Header().Length)
	require.Equal(t, 4, f.Cap())
}

func TestFile_IndexErrors(t *testing.T) {
	f, _ := createFile(t, 2)
	pushAll(t, f, 1, 2)

	_, err := f.Get(2)
	require.ErrorIs(t, err, nibble.ErrIndexOutOfRange)
	_, err = f.Get(-1)
	require.ErrorIs(t, err, nibble.ErrIndexOutOfRange)
	require.ErrorIs(t, f.Set(2, nibble.Lo(0)), nibble.ErrIndexOutOfRange)
	require.ErrorIs(t, f.Insert(3, nibble.Lo(0)), nibble.ErrIndexOutOfRange)
	_, err = f.Remove(2)
	require.ErrorIs(t, err, nibble.ErrIndexOutOfRange)

	v, err := f.Get(1)
	require.NoError(t, err)
	require.Equal(t, nibble.Lo(2), v)
}

func TestFile_Extend(t *testing.T) {
	f, _ := createFile(t, 2)
	pushAll(t, f, 7)

	err := f.Extend(nibble.FromBytes([]byte{0x12, 0x34}, nibble.Full))
	require.ErrorIs(t, err, nibble.ErrCapacity)
	require.Equal(t, 4, f.Len())
	require.Equal(t, "7123", f.Slice().String())
	require.Equal(t, uint64(4), f.Header().Length)
}

func TestFile_ReadOnly(t *testing.T) {
	path := testutil.WriteNibbleFile(t, 3, 2, []byte{0xAB, 0xC0})

	f, err := Open(path, &OpenOptions{ReadOnly: true})
	require.NoError(t, err)
	defer f.Close()

	require.True(t, f.ReadOnly())
	require.Equal(t, 3, f.Len())
	require.Equal(t, nibble.NoRight, f.Slice().Alignment())
	v, err := f.Get(2)
	require.NoError(t, err)
	require.Equal(t, nibble.Lo(0xC), v)

	require.ErrorIs(t, f.Push(nibble.Lo(1)), ErrReadOnly)
	_, err = f.Pop()
	require.ErrorIs(t, err, ErrReadOnly)
	require.ErrorIs(t, f.Set(0, nibble.Lo(1)), ErrReadOnly)
	require.ErrorIs(t, f.Clear(), ErrReadOnly)
	require.ErrorIs(t, f.Grow(context.Background(), 1), ErrReadOnly)
	require.NoError(t, f.Flush(context.Background()))
}

func TestOpen_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		setup func(t *testing.T) string
		want  error
	}{
		{"bad signature", func(t *testing.T) string {
			b := make([]byte, format.HeaderSize)
			copy(b, "xxxx")
			p := filepath.Join(t.TempDir(), "bad.nib")
			require.NoError(t, os.WriteFile(p, b, 0o644))
			return p
		}, format.ErrSignatureMismatch},
		{"short file", func(t *testing.T) string {
			p := filepath.Join(t.TempDir(), "short.nib")
			require.NoError(t, os.WriteFile(p, []byte("nibf"), 0o644))
			return p
		}, format.ErrTruncated},
		{"capacity past end", func(t *testing.T) string {
			return testutil.WriteNibbleFile(t, 0, 8, []byte{0, 0})
		}, format.ErrTruncated},
		{"length past capacity", func(t *testing.T) string {
			return testutil.WriteNibbleFile(t, 5, 2, []byte{0x12, 0x34})
		}, format.ErrCorrupt},
		{"pending half set", func(t *testing.T) string {
			return testutil.WriteNibbleFile(t, 3, 2, []byte{0x12, 0x3F})
		}, format.ErrCorrupt},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := Open(tc.setup(t), nil)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, f)
		})
	}
}

func TestFile_Grow(t *testing.T) {
	f, path := createFile(t, 1)
	pushAll(t, f, 1, 2)
	require.ErrorIs(t, f.Push(nibble.Lo(3)), nibble.ErrCapacity)

	ctx := context.Background()
	require.NoError(t, f.Grow(ctx, 0))
	require.Equal(t, 2, f.Cap())

	require.NoError(t, f.Grow(ctx, 2))
	require.Equal(t, 6, f.Cap())
	require.Equal(t, "12", f.Slice().String())

	pushAll(t, f, 3, 4, 5)
	require.NoError(t, f.Close())

	st, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, int64(format.HeaderSize+3), st.Size())

	g, err := Open(path, nil)
	require.NoError(t, err)
	defer g.Close()
	require.Equal(t, format.Header{Version: format.Version, Length: 5, Capacity: 3}, g.Header())
	require.Equal(t, "12345", g.Slice().String())
}

func TestFile_Grow_RemapFailureClosesFile(t *testing.T) {
	f, path := createFile(t, 1)
	pushAll(t, f, 1, 2)

	orig := mapImage
	t.Cleanup(func() { mapImage = orig })
	mapImage = func(*os.File, int, bool) ([]byte, error) {
		return nil, errors.New("mmap refused")
	}

	err := f.Grow(context.Background(), 2)
	require.ErrorIs(t, err, ErrClosed)
	require.ErrorContains(t, err, "mmap refused")

	require.ErrorIs(t, f.Push(nibble.Lo(3)), ErrClosed)
	_, err = f.Get(0)
	require.ErrorIs(t, err, ErrClosed)
	require.ErrorIs(t, f.Grow(context.Background(), 1), ErrClosed)
	require.ErrorIs(t, f.Flush(context.Background()), ErrClosed)
	require.NoError(t, f.Close())

	// Everything pushed before the grow was flushed.
	mapImage = orig
	g, err := Open(path, nil)
	require.NoError(t, err)
	defer g.Close()
	require.Equal(t, "12", g.Slice().String())
}

func TestFile_Closed(t *testing.T) {
	f, _ := createFile(t, 1)
	pushAll(t, f, 1)
	require.NoError(t, f.Close())
	require.NoError(t, f.Close())

	require.Zero(t, f.Len())
	_, err := f.Get(0)
	require.ErrorIs(t, err, ErrClosed)
	require.ErrorIs(t, f.Push(nibble.Lo(1)), ErrClosed)
	require.ErrorIs(t, f.Flush(context.Background()), ErrClosed)
}

func TestFile_FlushCancelled(t *testing.T) {
	f, _ := createFile(t, 2)
	pushAll(t, f, 1, 2, 3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, f.Flush(ctx), context.Canceled)

	// The ranges survive, so a later flush still writes them.
	require.NoError(t, f.Flush(context.Background()))
}

func TestOpen_CopyIsIndependent(t *testing.T) {
	f, path := createFile(t, 2)
	pushAll(t, f, 1, 2, 3)
	require.NoError(t, f.Close())

	dup := testutil.CopyNibbleFile(t, path, "copy.nib")
	g, err := Open(dup, nil)
	require.NoError(t, err)
	require.NoError(t, g.Set(0, nibble.Lo(9)))
	require.NoError(t, g.Push(nibble.Lo(4)))
	require.NoError(t, g.Close())

	h, err := Open(path, &OpenOptions{ReadOnly: true})
	require.NoError(t, err)
	defer h.Close()
	require.Equal(t, "123", h.Slice().String())
}

func TestOpen_CorruptedCopy(t *testing.T) {
	f, path := createFile(t, 2)
	pushAll(t, f, 1, 2, 3)
	require.NoError(t, f.Close())

	dup := testutil.CopyNibbleFile(t, path, "corrupt.nib")
	w, err := os.OpenFile(dup, os.O_WRONLY, 0)
	require.NoError(t, err)
	// Set the unused low half after the third nibble.
	_, err = w.WriteAt([]byte{0x3F}, format.DataOffset+1)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	g, err := Open(dup, nil)
	require.ErrorIs(t, err, format.ErrCorrupt)
	require.Nil(t, g)

	h, err := Open(path, &OpenOptions{ReadOnly: true})
	require.NoError(t, err)
	defer h.Close()
	require.Equal(t, "123", h.Slice().String())
}
