package nibble

import (
	"fmt"
	"strings"
)

// Slice is a view over pairs with one of the four alignments. It shares
// storage with whatever produced it; writes through a Slice are visible to
// the owner.
//
// The zero Slice is empty.
type Slice struct {
	pairs []Pair
	align Alignment
}

var (
	_ View = Slice{}
	_ View = Aligned{}
	_ View = Unaligned{}
	_ View = Even{}
	_ View = Odd{}
)

// NewSlice returns a view of pairs with the given alignment.
func NewSlice(pairs []Pair, align Alignment) Slice {
	return Slice{pairs: pairs, align: align}
}

// FromBytes returns a view of b with the given alignment. The view aliases b.
func FromBytes(b []byte, align Alignment) Slice {
	return NewSlice(PairsFromBytes(b), align)
}

func (s Slice) IncludesLeadingHigh() bool { return s.align.IncludesLeadingHigh() }
func (s Slice) IncludesTrailingLow() bool { return s.align.IncludesTrailingLow() }
func (s Slice) Pairs() []Pair             { return s.pairs }

// Alignment returns the slice's alignment tag.
func (s Slice) Alignment() Alignment { return s.align }

// Len returns the number of nibbles in the slice.
func (s Slice) Len() int { return s.align.Len(len(s.pairs)) }

// IsEmpty reports whether the slice holds no nibbles.
func (s Slice) IsEmpty() bool { return s.Len() == 0 }

// At returns the nibble at i. It panics if i is out of range.
func (s Slice) At(i int) Lo { return At(s, i) }

// Get returns the nibble at i, or false if i is out of range.
func (s Slice) Get(i int) (Lo, bool) { return Get(s, i) }

// Set writes n at i. It panics if i is out of range.
func (s Slice) Set(i int, n U4) { SetAt(s, i, n) }

// Sub returns the nibbles in [from, to) as a new view over the same pairs.
// Either end may fall in the middle of a pair. It panics unless
// 0 <= from <= to <= s.Len().
func (s Slice) Sub(from, to int) Slice {
	n := s.Len()
	if from < 0 || to < from || to > n {
		panic(fmt.Sprintf("nibble: sub range [%d:%d] out of range with length %d", from, to, n))
	}
	if from == to {
		return Slice{}
	}
	off := s.align.offset()
	rawFrom, rawTo := from+off, to+off
	first, last := rawFrom/PerPair, (rawTo-1)/PerPair
	return Slice{
		pairs: s.pairs[first : last+1],
		align: AlignmentOf(rawFrom%PerPair == 0, rawTo%PerPair == 0),
	}
}

// AsAligned returns the slice as Aligned if it starts on a byte boundary.
func (s Slice) AsAligned() (Aligned, bool) {
	if !s.align.IsAligned() {
		return Aligned{}, false
	}
	return Aligned{s}, true
}

// AsUnaligned returns the slice as Unaligned if it starts mid-byte.
func (s Slice) AsUnaligned() (Unaligned, bool) {
	if s.align.IsAligned() {
		return Unaligned{}, false
	}
	return Unaligned{s}, true
}

// AsEven returns the slice as Even if its length is always even.
func (s Slice) AsEven() (Even, bool) {
	if !s.align.IsEven() {
		return Even{}, false
	}
	return Even{s}, true
}

// AsOdd returns the slice as Odd if its length is always odd.
func (s Slice) AsOdd() (Odd, bool) {
	if !s.align.IsOdd() {
		return Odd{}, false
	}
	return Odd{s}, true
}

func (s Slice) String() string {
	var sb strings.Builder
	it := Nibbles(s)
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		sb.WriteString(n.String())
	}
	return sb.String()
}

// Aligned is a Slice known to start on a byte boundary (Full or NoRight).
type Aligned struct{ s Slice }

func (a Aligned) IncludesLeadingHigh() bool { return true }
func (a Aligned) IncludesTrailingLow() bool { return a.s.IncludesTrailingLow() }
func (a Aligned) Pairs() []Pair             { return a.s.pairs }

// Generic returns the underlying Slice.
func (a Aligned) Generic() Slice { return a.s }

// Unaligned is a Slice known to start mid-byte (NoLeft or NoBoth).
type Unaligned struct{ s Slice }

func (u Unaligned) IncludesLeadingHigh() bool { return false }
func (u Unaligned) IncludesTrailingLow() bool { return u.s.IncludesTrailingLow() }
func (u Unaligned) Pairs() []Pair             { return u.s.pairs }

// Generic returns the underlying Slice.
func (u Unaligned) Generic() Slice { return u.s }

// Even is a Slice whose length is even (Full or NoBoth).
type Even struct{ s Slice }

func (e Even) IncludesLeadingHigh() bool { return e.s.IncludesLeadingHigh() }
func (e Even) IncludesTrailingLow() bool { return e.s.IncludesTrailingLow() }
func (e Even) Pairs() []Pair             { return e.s.pairs }

// Generic returns the underlying Slice.
func (e Even) Generic() Slice { return e.s }

// Odd is a Slice whose length is odd (NoLeft or NoRight).
type Odd struct{ s Slice }

func (o Odd) IncludesLeadingHigh() bool { return o.s.IncludesLeadingHigh() }
func (o Odd) IncludesTrailingLow() bool { return o.s.IncludesTrailingLow() }
func (o Odd) Pairs() []Pair             { return o.s.pairs }

// Generic returns the underlying Slice.
func (o Odd) Generic() Slice { return o.s }
