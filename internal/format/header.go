package format

import (
	"bytes"
	"fmt"
	"math"

	"github.com/joshuapare/nibkit/internal/buf"
)

// Header is the fixed prefix of a nibble file.
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------------
//	 0x00    4    'n' 'i' 'b' 'f'
//	 0x04    2    Format version (1)
//	 0x06    2    Reserved, zero
//	 0x08    8    Logical length in nibbles
//	 0x10    8    Capacity in pairs
//	 0x18    8    Reserved, zero
//	 0x20   ...   Packed pairs, high nibble first
//
// All integers are little-endian.
type Header struct {
	Version  uint16
	Length   uint64
	Capacity uint64
}

// NewHeader returns an empty current-version header for capacity pairs.
func NewHeader(capacity uint64) Header {
	return Header{Version: Version, Capacity: capacity}
}

// ParseHeader checks the signature and version and extracts the header fields.
// It does not check the fields against each other; see Validate.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("nibble header: %w", ErrTruncated)
	}
	if !bytes.Equal(b[:SignatureSize], Signature) {
		return Header{}, fmt.Errorf("nibble header: %w", ErrSignatureMismatch)
	}
	h := Header{
		Version:  buf.U16LE(b[VersionOffset:]),
		Length:   buf.U64LE(b[LengthOffset:]),
		Capacity: buf.U64LE(b[CapacityOffset:]),
	}
	if h.Version != Version {
		return Header{}, fmt.Errorf("nibble header version %d: %w", h.Version, ErrUnsupported)
	}
	return h, nil
}

// Validate checks that the pair region fits in a file of fileSize bytes and
// that the length fits the capacity.
func (h Header) Validate(fileSize int) error {
	if h.Capacity > math.MaxInt/NibblesPerPair {
		return fmt.Errorf("capacity %d: %w", h.Capacity, ErrCorrupt)
	}
	if _, err := buf.CheckSpan(fileSize, DataOffset, int(h.Capacity), 1); err != nil {
		return fmt.Errorf("capacity %d pairs in %d byte file: %w: %w", h.Capacity, fileSize, ErrTruncated, err)
	}
	if h.Length > h.Capacity*NibblesPerPair {
		return fmt.Errorf("length %d exceeds capacity %d: %w", h.Length, h.Capacity, ErrCorrupt)
	}
	return nil
}

// Encode writes h into the first HeaderSize bytes of b, clearing the
// reserved fields.
func (h Header) Encode(b []byte) {
	clear(b[:HeaderSize])
	copy(b, Signature)
	PutU16(b, VersionOffset, h.Version)
	PutU64(b, LengthOffset, h.Length)
	PutU64(b, CapacityOffset, h.Capacity)
}

// PutLength updates only the length field of an encoded header.
func PutLength(b []byte, length uint64) {
	PutU64(b, LengthOffset, length)
}

// ReadLength reads the length field of an encoded header.
func ReadLength(b []byte) uint64 {
	return ReadU64(b, LengthOffset)
}

// FileSize returns the size of a file holding capacity pairs.
func FileSize(capacity int) (int, error) {
	if _, ok := buf.NibblesIn(capacity); !ok {
		return 0, fmt.Errorf("capacity %d: %w", capacity, ErrCorrupt)
	}
	size, ok := buf.AddOverflowSafe(DataOffset, capacity)
	if !ok {
		return 0, fmt.Errorf("capacity %d: %w", capacity, ErrCorrupt)
	}
	return size, nil
}
