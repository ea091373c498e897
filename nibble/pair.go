package nibble

import (
	"fmt"
	"unsafe"
)

// Pair is one byte split into its two nibbles. The high-order nibble comes
// first in iteration order.
type Pair uint8

// PairFromHi creates a pair with an empty low-order nibble.
func PairFromHi(hi Hi) Pair { return Pair(hi.ToHi()) }

// PairFromLo creates a pair with an empty high-order nibble.
func PairFromLo(lo Lo) Pair { return Pair(lo.ToLo()) }

// PairOf creates a pair from its components.
func PairOf(hi Hi, lo Lo) Pair { return Pair(hi.ToHi() | lo.ToLo()) }

// PairFromByte creates a pair from an already-combined byte.
func PairFromByte(b byte) Pair { return Pair(b) }

// PairsFromBytes reinterprets b as pairs without copying. Writes through either
// slice are visible in the other.
func PairsFromBytes(b []byte) []Pair {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Slice((*Pair)(unsafe.SliceData(b)), len(b))
}

// PairBytes reinterprets pairs as bytes without copying.
func PairBytes(pairs []Pair) []byte {
	if len(pairs) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.SliceData(pairs)), len(pairs))
}

// Hi returns the high-order nibble.
func (p Pair) Hi() Hi { return HiFromHigh(byte(p)) }

// Lo returns the low-order nibble.
func (p Pair) Lo() Lo { return LoFromLow(byte(p)) }

// Both returns both nibbles.
func (p Pair) Both() (Hi, Lo) { return p.Hi(), p.Lo() }

// Byte returns both nibbles as a byte.
func (p Pair) Byte() byte { return byte(p) }

// SetHi replaces the high-order nibble, leaving the low-order bits untouched.
func (p *Pair) SetHi(n U4) { *p = Pair(byte(*p)&LowMask | n.ToHi()) }

// SetLo replaces the low-order nibble, leaving the high-order bits untouched.
func (p *Pair) SetLo(n U4) { *p = Pair(byte(*p)&HighMask | n.ToLo()) }

// SwapHalves exchanges the two nibbles in place.
func (p *Pair) SwapHalves() { *p = Pair(byte(*p)<<4 | byte(*p)>>4) }

// HiCell returns a handle that mutates only the high-order nibble of p.
func (p *Pair) HiCell() HiCell { return HiCell{p: p} }

// LoCell returns a handle that mutates only the low-order nibble of p.
func (p *Pair) LoCell() LoCell { return LoCell{p: p} }

// Cells returns handles for both halves of p. The two handles may be used in
// any order; neither disturbs the other's bits.
func (p *Pair) Cells() (HiCell, LoCell) { return p.HiCell(), p.LoCell() }

func (p Pair) String() string { return fmt.Sprintf("%02x", byte(p)) }
