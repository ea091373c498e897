package dirty

import (
	"context"
	"os"
	"sort"

	"github.com/joshuapare/nibkit/internal/format"
)

const (
	// defaultRangeCapacity is the pre-allocated capacity for dirty ranges.
	defaultRangeCapacity = 64
)

// FlushMode controls how hard FlushHeaderAndMeta pushes data to stable storage.
type FlushMode int

const (
	// FlushAuto syncs the header page and then the file's data:
	// fdatasync on Linux and the BSDs, fsync on macOS.
	FlushAuto FlushMode = iota

	// FlushDataOnly syncs the header page but skips the file sync. The caller
	// is responsible for syncing later, e.g. after batching several flushes.
	FlushDataOnly

	// FlushFull is FlushAuto, using F_FULLFSYNC on macOS so the drive cache is
	// flushed as well.
	FlushFull
)

func (m FlushMode) String() string {
	switch m {
	case FlushAuto:
		return "auto"
	case FlushDataOnly:
		return "data-only"
	case FlushFull:
		return "full"
	default:
		return "unknown"
	}
}

// Source is the storage a Tracker flushes: the full file image, header
// included, and the file it belongs to.
type Source interface {
	Bytes() []byte
	File() *os.File
}

// Range represents a dirty byte range (absolute file offsets).
type Range struct {
	Off int64 // Absolute offset in file
	Len int64 // Length in bytes
}

// End returns the first offset past the range.
func (r Range) End() int64 { return r.Off + r.Len }

// Tracker accumulates dirty ranges and flushes them efficiently.
//
// NOT thread-safe. Only one goroutine should use it at a time.
type Tracker struct {
	src      Source
	ranges   []Range // Dirty data ranges (coalesced at flush time)
	pageSize int64
}

var _ FlushableTracker = (*Tracker)(nil)

// NewTracker creates a dirty tracker for src.
func NewTracker(src Source) *Tracker {
	return &Tracker{
		src:      src,
		ranges:   make([]Range, 0, defaultRangeCapacity),
		pageSize: format.PageSize,
	}
}

// Add records a dirty range. Empty and negative ranges are ignored.
//
// The range is page-aligned and coalesced with other ranges at flush time;
// Add itself only appends to a slice.
func (t *Tracker) Add(off, length int) {
	if length <= 0 || off < 0 {
		return
	}
	t.ranges = append(t.ranges, Range{
		Off: int64(off),
		Len: int64(length),
	})
}

// Len returns the number of recorded (uncoalesced) ranges.
func (t *Tracker) Len() int { return len(t.ranges) }

// FlushDataOnly flushes all dirty ranges except the header page.
//
// This method:
//  1. Coalesces all ranges into page-aligned, non-overlapping ranges
//  2. Flushes each range (msync on mapped platforms, WriteAt elsewhere)
//  3. Clears the ranges slice
//
// The first page is left to FlushHeaderAndMeta. If ctx is cancelled part way
// through, some ranges may already be on disk; the ranges are kept so a
// retry flushes them again.
func (t *Tracker) FlushDataOnly(ctx context.Context) error {
	if len(t.ranges) == 0 {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	data := t.src.Bytes()
	if len(data) == 0 {
		t.Reset()
		return nil
	}

	if err := flushRanges(ctx, t.src, t.clamped(len(data))); err != nil {
		return err
	}

	t.Reset()
	return nil
}

// FlushHeaderAndMeta flushes the header page and then, depending on mode,
// syncs the file descriptor:
//   - FlushAuto: fdatasync (fsync on macOS)
//   - FlushDataOnly: no sync
//   - FlushFull: fdatasync, F_FULLFSYNC on macOS
//
// If ctx is cancelled between the two steps the header may be on disk
// without the file sync having completed.
func (t *Tracker) FlushHeaderAndMeta(ctx context.Context, mode FlushMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data := t.src.Bytes()
	if len(data) == 0 {
		return nil
	}

	headerLen := min(int(t.pageSize), len(data))
	if err := flushHeader(t.src, headerLen); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if mode == FlushDataOnly {
		return nil
	}
	return syncFile(t.src.File(), mode == FlushFull)
}

// Reset clears all tracked ranges.
func (t *Tracker) Reset() {
	t.ranges = t.ranges[:0]
}

// DebugRanges returns a copy of the raw, uncoalesced ranges.
func (t *Tracker) DebugRanges() []Range {
	result := make([]Range, len(t.ranges))
	copy(result, t.ranges)
	return result
}

// DebugCoalescedRanges returns the page-aligned, sorted, merged ranges that
// the next flush would write.
func (t *Tracker) DebugCoalescedRanges() []Range {
	return t.coalesce()
}

// clamped returns the coalesced data ranges, minus the header page, cut
// short at size.
func (t *Tracker) clamped(size int) []Range {
	coalesced := t.coalesce()
	out := coalesced[:0]
	for _, r := range coalesced {
		if r.Off < t.pageSize {
			r.Len -= t.pageSize - r.Off
			r.Off = t.pageSize
		}
		if end := int64(size); r.End() > end {
			r.Len = end - r.Off
		}
		if r.Len > 0 {
			out = append(out, r)
		}
	}
	return out
}

// coalesce page-aligns all ranges, sorts them, and merges overlapping/adjacent ranges.
func (t *Tracker) coalesce() []Range {
	if len(t.ranges) == 0 {
		return nil
	}

	aligned := make([]Range, len(t.ranges))
	for i, r := range t.ranges {
		start := int64(format.PageFloor(int(r.Off)))
		end := int64(format.AlignPage(int(r.End())))

		aligned[i] = Range{
			Off: start,
			Len: end - start,
		}
	}

	sort.Slice(aligned, func(i, j int) bool {
		return aligned[i].Off < aligned[j].Off
	})

	merged := make([]Range, 0, len(aligned))
	current := aligned[0]

	for i := 1; i < len(aligned); i++ {
		next := aligned[i]

		if next.Off <= current.End() {
			current.Len = max(current.End(), next.End()) - current.Off
		} else {
			merged = append(merged, current)
			current = next
		}
	}

	merged = append(merged, current)

	return merged
}
