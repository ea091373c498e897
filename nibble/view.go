package nibble

import "fmt"

// View is anything that exposes a run of pairs with known boundary halves.
// Every slice shape and every container implements it, and the free functions
// in this file are defined once in terms of it.
type View interface {
	IncludesLeadingHigh() bool
	IncludesTrailingLow() bool
	Pairs() []Pair
}

// AlignmentFor returns the alignment of v.
func AlignmentFor(v View) Alignment {
	return AlignmentOf(v.IncludesLeadingHigh(), v.IncludesTrailingLow())
}

// Len returns the number of nibbles in v.
func Len(v View) int { return AlignmentFor(v).Len(len(v.Pairs())) }

// IsEmpty reports whether v holds no nibbles.
func IsEmpty(v View) bool { return Len(v) == 0 }

// Generic returns v as a plain Slice sharing its storage.
func Generic(v View) Slice {
	if s, ok := v.(Slice); ok {
		return s
	}
	return NewSlice(v.Pairs(), AlignmentFor(v))
}

func rawIndex(v View, i int) int {
	n := Len(v)
	if i < 0 || i >= n {
		panic(fmt.Sprintf("nibble: index %d out of range with length %d", i, n))
	}
	return i + AlignmentFor(v).offset()
}

// At returns the nibble at logical index i. It panics if i is out of range.
func At(v View, i int) Lo { return getNib(v.Pairs(), rawIndex(v, i)) }

// Get returns the nibble at logical index i, or false if i is out of range.
func Get(v View, i int) (Lo, bool) {
	if i < 0 || i >= Len(v) {
		return 0, false
	}
	return At(v, i), true
}

// CellAt returns a mutable handle for the nibble at logical index i.
// It panics if i is out of range.
func CellAt(v View, i int) Cell { return nibCell(v.Pairs(), rawIndex(v, i)) }

// SetAt writes n at logical index i. It panics if i is out of range.
func SetAt(v View, i int, n U4) { setNib(v.Pairs(), rawIndex(v, i), n) }

// Collect copies every nibble of v into a new slice.
func Collect(v View) []Lo {
	out := make([]Lo, 0, Len(v))
	it := Nibbles(v)
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		out = append(out, n)
	}
	return out
}
