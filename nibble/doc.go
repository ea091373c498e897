// Package nibble provides packed storage for 4-bit values ("nibbles"), two per
// byte, with views and containers that address individual nibbles without
// expanding storage to one byte per value.
//
// # Overview
//
// A byte is treated as a Pair of half-units: the high nibble occupies bits 4-7
// and the low nibble bits 0-3. Half-units come in two positionings, Hi and Lo,
// which hold the same 0-15 value in different bit positions. Both satisfy the
// U4 interface, so any setter accepts either.
//
// # Key Types
//
//   - Hi, Lo: a single nibble, high- or low-positioned within its byte
//   - Pair: one byte interpreted as two nibbles
//   - HiCell, LoCell: handles that mutate one half of a Pair in place
//   - Alignment: whether a view includes the leading high and trailing low half
//   - Slice: a nibble view over a run of pairs, tagged with its Alignment
//   - Vec: a growable nibble container
//   - ArrayVec: a fixed-capacity nibble container over a preallocated buffer
//   - EvenArray, OddArray, Array: full fixed-size nibble arrays
//
// # Alignment
//
// A view over pairs may start in the middle of its first byte or end in the
// middle of its last one:
//
//	bytes:      [a b] [c d] [e f]
//	Full:        a b   c d   e f     (6 nibbles)
//	NoLeft:        b   c d   e f     (5 nibbles)
//	NoRight:     a b   c d   e       (5 nibbles)
//	NoBoth:        b   c d   e       (4 nibbles)
//
// Containers always start on a byte boundary, so they present either Full
// (even length) or NoRight (odd length, the last low half is pending).
//
// Every view implements the View interface. The derived operations (Len, At,
// Decompose, Nibbles, Equal, ...) are package functions written once against
// View, so they behave identically for slices, containers and arrays.
//
// # Mutation through cells
//
// Two adjacent logical nibbles can share one byte, so mutable access is handed
// out as cells rather than *byte. A HiCell and a LoCell over the same Pair are
// both valid at once; each write reads the byte, replaces its own half and
// stores the result.
//
//	p := nibble.PairFromByte(0x13)
//	hi, lo := p.Cells()
//	lo.Set(nibble.LoFromLow(2))
//	hi.Set(nibble.LoFromLow(4))
//	// p.Byte() == 0x42
//
// # Thread Safety
//
// Nothing in this package is synchronized. Concurrent writes to the same half
// of the same pair are a data race; callers that share views between
// goroutines must lock externally.
package nibble
