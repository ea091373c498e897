// Package format holds the on-disk layout of a nibble file: a fixed 32-byte
// header followed by packed pairs. The package only encodes and decodes; the
// mapped package owns the file itself.
package format

// Signature is the four-byte magic at the start of every nibble file.
//
//	0x00  'n' 'i' 'b' 'f'
var Signature = []byte{'n', 'i', 'b', 'f'}

const (
	// SignatureSize is the length of Signature.
	SignatureSize = 4

	// Version is the only header version this package reads and writes.
	Version = 1

	// HeaderSize is the size of the header in bytes.
	HeaderSize = 0x20

	// VersionOffset is the offset of the uint16 format version.
	VersionOffset = 0x04

	// LengthOffset is the offset of the uint64 logical nibble count.
	LengthOffset = 0x08

	// CapacityOffset is the offset of the uint64 capacity in pairs.
	CapacityOffset = 0x10

	// DataOffset is where the packed pairs begin.
	DataOffset = HeaderSize

	// PageSize is the flush granularity used for dirty tracking.
	PageSize = 0x1000

	// PageAlignmentMask is PageSize - 1.
	PageAlignmentMask = PageSize - 1

	// NibblesPerPair is the number of nibbles packed in one data byte.
	NibblesPerPair = 2
)
