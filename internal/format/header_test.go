package format

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestParseHeaderSuccess(t *testing.T) {
	buf := make([]byte, HeaderSize)
	copy(buf, Signature)
	binary.LittleEndian.PutUint16(buf[VersionOffset:], Version)
	binary.LittleEndian.PutUint64(buf[LengthOffset:], 7)
	binary.LittleEndian.PutUint64(buf[CapacityOffset:], 4)

	hdr, err := ParseHeader(buf)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if hdr.Length != 7 || hdr.Capacity != 4 {
		t.Fatalf("field mismatch: %+v", hdr)
	}
	if err := hdr.Validate(HeaderSize + 4); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestParseHeaderErrors(t *testing.T) {
	buf := make([]byte, HeaderSize)
	if _, err := ParseHeader(buf[:10]); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected truncation error, got %v", err)
	}
	copy(buf, []byte{'B', 'A', 'D', '!'})
	if _, err := ParseHeader(buf); !errors.Is(err, ErrSignatureMismatch) {
		t.Fatalf("expected signature error, got %v", err)
	}
	copy(buf, Signature)
	binary.LittleEndian.PutUint16(buf[VersionOffset:], 9)
	if _, err := ParseHeader(buf); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected version error, got %v", err)
	}
}

func TestHeaderValidate(t *testing.T) {
	cases := []struct {
		name     string
		hdr      Header
		fileSize int
		want     error
	}{
		{"empty", NewHeader(0), HeaderSize, nil},
		{"full", Header{Version: Version, Length: 8, Capacity: 4}, HeaderSize + 4, nil},
		{"slack after data", Header{Version: Version, Length: 1, Capacity: 4}, HeaderSize + 100, nil},
		{"file too small", NewHeader(4), HeaderSize + 3, ErrTruncated},
		{"length past capacity", Header{Version: Version, Length: 9, Capacity: 4}, HeaderSize + 4, ErrCorrupt},
		{"absurd capacity", NewHeader(1 << 63), HeaderSize, ErrCorrupt},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.hdr.Validate(tc.fileSize)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("Validate = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestHeaderEncodeRoundTrip(t *testing.T) {
	buf := make([]byte, HeaderSize)
	for i := range buf {
		buf[i] = 0xFF
	}
	want := Header{Version: Version, Length: 5, Capacity: 3}
	want.Encode(buf)

	if buf[6] != 0 || buf[0x18] != 0 {
		t.Fatalf("reserved fields not cleared: % x", buf)
	}
	got, err := ParseHeader(buf)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if got != want {
		t.Fatalf("round trip: got %+v want %+v", got, want)
	}

	PutLength(buf, 6)
	if ReadLength(buf) != 6 {
		t.Fatalf("PutLength did not stick")
	}
}

func TestFileSizeAndAlign(t *testing.T) {
	if n, err := FileSize(10); err != nil || n != HeaderSize+10 {
		t.Fatalf("FileSize(10) = %d, %v", n, err)
	}
	if _, err := FileSize(-1); err == nil {
		t.Fatalf("FileSize should reject negative capacity")
	}
	if AlignPage(1) != PageSize || AlignPage(PageSize) != PageSize || AlignPage(PageSize+1) != 2*PageSize {
		t.Fatalf("AlignPage mismatch")
	}
	if PageFloor(PageSize+5) != PageSize || PageFloor(5) != 0 {
		t.Fatalf("PageFloor mismatch")
	}
}
