// Package dirty provides page-level dirty tracking for nibble files.
//
// # Overview
//
// Editing a mapped nibble file touches a few bytes of the header and a few
// pairs of data. The Tracker records those byte ranges and, at flush time,
// rounds them to 4KB pages, merges neighbours and writes only those pages.
//
// # Usage
//
//	tracker := dirty.NewTracker(src)
//
//	// After changing the pair at file offset 0x2010
//	tracker.Add(0x2010, 1)
//
//	// Data first, then the header page that describes it
//	if err := tracker.FlushDataOnly(ctx); err != nil {
//	    return err
//	}
//	if err := tracker.FlushHeaderAndMeta(ctx, dirty.FlushAuto); err != nil {
//	    return err
//	}
//
// # Page-Level Granularity
//
//   - Modifications are rounded to page boundaries
//   - A 1-byte change marks the entire 4KB page dirty
//   - The first page always belongs to FlushHeaderAndMeta, even though the
//     first pairs of a nibble file share it with the header
//
// # Range Coalescing
//
//	Dirty pages: [1, 2, 5, 6] → Ranges: [0x1000-0x3000, 0x5000-0x7000]
//
// # Platforms
//
// On Linux and the BSDs ranges are flushed with msync(2) and the file with
// fdatasync(2). macOS cannot msync a sub-slice of a mapping, so the whole
// mapping is flushed and FlushFull issues F_FULLFSYNC. Where files are not
// memory mapped the Source holds a private copy and ranges are written back
// with WriteAt.
//
// # Thread Safety
//
// Tracker instances are not thread-safe. Callers must synchronize access
// externally.
package dirty
