package format

import "errors"

var (
	// ErrSignatureMismatch indicates the file did not start with Signature.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrUnsupported indicates a header version this package cannot read.
	ErrUnsupported = errors.New("format: unsupported version")
	// ErrCorrupt indicates header fields that contradict each other or the file size.
	ErrCorrupt = errors.New("format: corrupt header")
)
