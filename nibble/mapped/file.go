package mapped

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joshuapare/nibkit/internal/buf"
	"github.com/joshuapare/nibkit/internal/format"
	"github.com/joshuapare/nibkit/nibble"
	"github.com/joshuapare/nibkit/nibble/dirty"
)

var (
	// ErrReadOnly is returned by mutating methods of a file opened read-only.
	ErrReadOnly = errors.New("mapped: file opened read-only")
	// ErrClosed is returned by methods called after Close.
	ErrClosed = errors.New("mapped: file closed")
	// ErrEmpty is returned by Pop on a file with no nibbles.
	ErrEmpty = errors.New("mapped: file is empty")
)

// OpenOptions configures Create and Open. The zero value opens read-write
// with FlushAuto.
type OpenOptions struct {
	// ReadOnly maps the file without write access. Mutating methods fail
	// with ErrReadOnly.
	ReadOnly bool

	// FlushMode is passed to the dirty tracker on every Flush.
	FlushMode dirty.FlushMode
}

// image is the file and its mapped bytes, header included.
type image struct {
	f    *os.File
	data []byte
}

func (m *image) Bytes() []byte  { return m.data }
func (m *image) File() *os.File { return m.f }

// File is a fixed-capacity nibble container stored in a file.
//
// Reads and writes go through the mapping; the header length is kept in step
// with every mutation and the touched pages are flushed by Flush or Close.
// A File is not safe for concurrent use.
type File struct {
	path    string
	img     image
	hdr     format.Header
	vec     *nibble.ArrayVec // nil when read-only
	ro      nibble.Slice
	tracker dirty.FlushableTracker
	opts    OpenOptions
}

var _ nibble.View = (*File)(nil)

// mapImage is replaced in tests to simulate mapping failures.
var mapImage = mapFile

// Create makes a new nibble file at path with room for capacity pairs,
// replacing any existing file, and opens it read-write.
func Create(path string, capacity int, opts *OpenOptions) (*File, error) {
	if opts != nil && opts.ReadOnly {
		return nil, fmt.Errorf("create %s: %w", path, ErrReadOnly)
	}
	size, err := format.FileSize(capacity)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	if err := f.Truncate(int64(size)); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("create %s: %w", path, err)
	}

	hdr := make([]byte, format.HeaderSize)
	format.NewHeader(uint64(capacity)).Encode(hdr)
	if _, err := f.WriteAt(hdr, 0); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("create %s: %w", path, err)
	}

	return load(path, f, opts)
}

// Open maps an existing nibble file.
func Open(path string, opts *OpenOptions) (*File, error) {
	flag := os.O_RDWR
	if opts != nil && opts.ReadOnly {
		flag = os.O_RDONLY
	}
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, err
	}
	return load(path, f, opts)
}

func load(path string, f *os.File, opts *OpenOptions) (*File, error) {
	var o OpenOptions
	if opts != nil {
		o = *opts
	}

	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	size := st.Size()
	if size < format.HeaderSize {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %d byte file: %w", path, size, format.ErrTruncated)
	}

	data, err := mapImage(f, int(size), o.ReadOnly)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	fail := func(err error) (*File, error) {
		_ = unmapFile(data)
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	hdr, err := format.ParseHeader(data)
	if err != nil {
		return fail(err)
	}
	if err := hdr.Validate(len(data)); err != nil {
		return fail(err)
	}

	nf := &File{
		path: path,
		img:  image{f: f, data: data},
		hdr:  hdr,
		opts: o,
	}
	nf.tracker = dirty.NewTracker(&nf.img)
	if err := nf.attach(); err != nil {
		return fail(err)
	}
	return nf, nil
}

// attach builds the container over the pair region of the current mapping.
func (f *File) attach() error {
	capacity := int(f.hdr.Capacity)
	region, ok := buf.Slice(f.img.data, format.DataOffset, capacity)
	if !ok {
		return fmt.Errorf("pair region: %w", format.ErrTruncated)
	}
	pairs := nibble.PairsFromBytes(region)
	length := int(f.hdr.Length)

	if length%nibble.PerPair == 1 && pairs[length/nibble.PerPair].Lo() != 0 {
		return fmt.Errorf("unused low half of pair %d is set: %w", length/nibble.PerPair, format.ErrCorrupt)
	}

	if f.opts.ReadOnly {
		used, _ := buf.PairsFor(length)
		align := nibble.Full
		if length%nibble.PerPair == 1 {
			align = nibble.NoRight
		}
		f.ro = nibble.NewSlice(pairs[:used], align)
		return nil
	}
	f.vec = nibble.ArrayVecOver(pairs, length)
	return nil
}

func (f *File) closed() bool { return f.img.f == nil }

func (f *File) view() nibble.View {
	if f.vec != nil {
		return f.vec
	}
	return f.ro
}

func (f *File) IncludesLeadingHigh() bool { return true }
func (f *File) IncludesTrailingLow() bool { return f.view().IncludesTrailingLow() }
func (f *File) Pairs() []nibble.Pair       { return f.view().Pairs() }

// Path returns the path the file was opened with.
func (f *File) Path() string { return f.path }

// ReadOnly reports whether the file was opened read-only.
func (f *File) ReadOnly() bool { return f.opts.ReadOnly }

// Len returns the number of stored nibbles.
func (f *File) Len() int { return nibble.Len(f) }

// Cap returns the maximum number of nibbles the file can hold without Grow.
func (f *File) Cap() int { return int(f.hdr.Capacity) * nibble.PerPair }

// IsFull reports whether another Push would fail.
func (f *File) IsFull() bool { return f.Len() == f.Cap() }

// Header returns the header as it would be written now.
func (f *File) Header() format.Header {
	h := f.hdr
	h.Length = uint64(f.Len())
	return h
}

// Slice returns a view of the stored nibbles. The view is invalidated by
// Grow and Close.
func (f *File) Slice() nibble.Slice { return nibble.Generic(f.view()) }

// Get returns the nibble at i.
func (f *File) Get(i int) (nibble.Lo, error) {
	if f.closed() {
		return 0, ErrClosed
	}
	v, ok := nibble.Get(f, i)
	if !ok {
		return 0, nibble.IndexError(i, f.Len())
	}
	return v, nil
}

func (f *File) writable() error {
	if f.closed() {
		return ErrClosed
	}
	if f.vec == nil {
		return ErrReadOnly
	}
	return nil
}

// markPairs records pairs [from, to) as dirty.
func (f *File) markPairs(from, to int) {
	if to > from {
		f.tracker.Add(format.DataOffset+from, to-from)
	}
}

// syncLength writes the current length into the header.
func (f *File) syncLength() {
	format.PutLength(f.img.data, uint64(f.vec.Len()))
	f.tracker.Add(format.LengthOffset, 8)
}

// Push appends n. A full file returns a *nibble.CapacityError holding n.
func (f *File) Push(n nibble.U4) error {
	if err := f.writable(); err != nil {
		return err
	}
	if err := f.vec.TryPush(n); err != nil {
		return err
	}
	last := (f.vec.Len() - 1) / nibble.PerPair
	f.markPairs(last, last+1)
	f.syncLength()
	return nil
}

// Extend appends every nibble of v, stopping at the first that does not fit.
func (f *File) Extend(v nibble.View) error {
	if err := f.writable(); err != nil {
		return err
	}
	from := f.vec.Len() / nibble.PerPair
	err := f.vec.Extend(v)
	f.markPairs(from, len(f.vec.Pairs()))
	f.syncLength()
	return err
}

// Pop removes and returns the last nibble.
func (f *File) Pop() (nibble.Lo, error) {
	if err := f.writable(); err != nil {
		return 0, err
	}
	before := len(f.vec.Pairs())
	v, ok := f.vec.Pop()
	if !ok {
		return 0, ErrEmpty
	}
	f.markPairs(before-1, before)
	f.syncLength()
	return v, nil
}

// Insert places n at i, moving later nibbles right. i may equal Len.
func (f *File) Insert(i int, n nibble.U4) error {
	if err := f.writable(); err != nil {
		return err
	}
	if i < 0 || i > f.vec.Len() {
		return nibble.IndexError(i, f.vec.Len())
	}
	if err := f.vec.TryInsert(i, n); err != nil {
		return err
	}
	f.markPairs(i/nibble.PerPair, len(f.vec.Pairs()))
	f.syncLength()
	return nil
}

// Remove deletes and returns the nibble at i, moving later nibbles left.
func (f *File) Remove(i int) (nibble.Lo, error) {
	if err := f.writable(); err != nil {
		return 0, err
	}
	if i < 0 || i >= f.vec.Len() {
		return 0, nibble.IndexError(i, f.vec.Len())
	}
	before := len(f.vec.Pairs())
	v := f.vec.Remove(i)
	f.markPairs(i/nibble.PerPair, before)
	f.syncLength()
	return v, nil
}

// Set overwrites the nibble at i.
func (f *File) Set(i int, n nibble.U4) error {
	if err := f.writable(); err != nil {
		return err
	}
	if i < 0 || i >= f.vec.Len() {
		return nibble.IndexError(i, f.vec.Len())
	}
	f.vec.Set(i, n)
	f.markPairs(i/nibble.PerPair, i/nibble.PerPair+1)
	return nil
}

// Clear removes every nibble. The capacity is unchanged.
func (f *File) Clear() error {
	if err := f.writable(); err != nil {
		return err
	}
	before := len(f.vec.Pairs())
	f.vec.Clear()
	f.markPairs(0, before)
	f.syncLength()
	return nil
}

// Grow adds extra pairs of capacity, extending the file and remapping it.
// Outstanding views and cells into the file are invalidated.
func (f *File) Grow(ctx context.Context, extra int) error {
	if err := f.writable(); err != nil {
		return err
	}
	if extra <= 0 {
		return nil
	}
	newCap, ok := buf.AddOverflowSafe(int(f.hdr.Capacity), extra)
	if !ok {
		return fmt.Errorf("grow by %d pairs: %w", extra, format.ErrCorrupt)
	}
	newSize, err := format.FileSize(newCap)
	if err != nil {
		return fmt.Errorf("grow by %d pairs: %w", extra, err)
	}

	// Unflushed changes would be lost on platforms that keep a private copy.
	if err := f.Flush(ctx); err != nil {
		return err
	}

	f.hdr.Length = uint64(f.vec.Len())
	oldSize := len(f.img.data)
	if err := unmapFile(f.img.data); err != nil {
		return fmt.Errorf("mapped: failed to unmap before grow: %w", err)
	}
	f.img.data, f.vec = nil, nil

	if err := f.img.f.Truncate(int64(newSize)); err != nil {
		if rerr := f.remap(oldSize); rerr != nil {
			return f.abandon(errors.Join(fmt.Errorf("mapped: failed to grow file: %w", err), rerr))
		}
		return fmt.Errorf("mapped: failed to grow file: %w", err)
	}

	f.hdr.Capacity = uint64(newCap)
	if err := f.remap(newSize); err != nil {
		return f.abandon(err)
	}
	f.hdr.Encode(f.img.data)
	f.tracker.Add(0, format.HeaderSize)
	return f.Flush(ctx)
}

func (f *File) remap(size int) error {
	data, err := mapImage(f.img.f, size, false)
	if err != nil {
		return fmt.Errorf("mapped: failed to remap: %w", err)
	}
	f.img.data = data
	return f.attach()
}

// abandon closes a file left without a usable mapping. Later calls report
// ErrClosed.
func (f *File) abandon(err error) error {
	errs := []error{err, ErrClosed}
	if f.img.data != nil {
		errs = append(errs, unmapFile(f.img.data))
	}
	errs = append(errs, f.img.f.Close())

	f.img.data, f.img.f = nil, nil
	f.vec, f.ro = nil, nibble.Slice{}
	return errors.Join(errs...)
}

// Flush writes dirty pairs and then the header to stable storage using the
// file's FlushMode. Read-only files have nothing to flush.
func (f *File) Flush(ctx context.Context) error {
	if f.closed() {
		return ErrClosed
	}
	if f.opts.ReadOnly {
		return nil
	}
	if err := f.tracker.FlushDataOnly(ctx); err != nil {
		return fmt.Errorf("flush data: %w", err)
	}
	if err := f.tracker.FlushHeaderAndMeta(ctx, f.opts.FlushMode); err != nil {
		return fmt.Errorf("flush header: %w", err)
	}
	return nil
}

// Close flushes a writable file, releases the mapping and closes the file.
// Calling Close again returns nil.
func (f *File) Close() error {
	if f.closed() {
		return nil
	}
	var errs []error
	if !f.opts.ReadOnly {
		errs = append(errs, f.Flush(context.Background()))
	}
	errs = append(errs, unmapFile(f.img.data), f.img.f.Close())

	f.img.data, f.img.f = nil, nil
	f.vec, f.ro = nil, nibble.Slice{}
	return errors.Join(errs...)
}
