package dirty

import "context"

// DirtyTracker is the minimal interface for recording modified byte ranges.
//
// Code that edits a mapped file only needs to report what it touched; it does
// not decide when the ranges reach disk.
type DirtyTracker interface {
	// Add marks a byte range as dirty.
	// off is the offset from the start of the file, length is the number of bytes.
	Add(off, length int)
}

// FlushableTracker extends DirtyTracker with the flush operations used by the
// owner of the file.
type FlushableTracker interface {
	DirtyTracker

	// FlushDataOnly flushes only the data regions (not the header page).
	FlushDataOnly(ctx context.Context) error

	// FlushHeaderAndMeta flushes the header page and syncs per mode.
	FlushHeaderAndMeta(ctx context.Context, mode FlushMode) error
}
