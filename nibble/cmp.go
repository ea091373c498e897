package nibble

import (
	"bytes"
	"cmp"
)

// Equal reports whether a and b hold the same nibbles in the same order,
// regardless of how either is aligned.
func Equal(a, b View) bool {
	if Len(a) != Len(b) {
		return false
	}
	if AlignmentFor(a) == AlignmentFor(b) {
		da, db := Decompose(a), Decompose(b)
		return da.HasLeading == db.HasLeading && da.Leading == db.Leading &&
			da.HasTrailing == db.HasTrailing && da.Trailing == db.Trailing &&
			bytes.Equal(PairBytes(da.Interior), PairBytes(db.Interior))
	}
	ia, ib := Nibbles(a), Nibbles(b)
	for x, ok := ia.Next(); ok; x, ok = ia.Next() {
		y, _ := ib.Next()
		if x != y {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically by nibble. A proper prefix sorts
// first. The result is -1, 0 or +1.
func Compare(a, b View) int {
	aa, ab := AlignmentFor(a), AlignmentFor(b)
	if aa == ab && aa.IncludesTrailingLow() {
		da, db := Decompose(a), Decompose(b)
		if da.HasLeading && db.HasLeading {
			if c := cmp.Compare(da.Leading, db.Leading); c != 0 {
				return c
			}
		}
		if c := bytes.Compare(PairBytes(da.Interior), PairBytes(db.Interior)); c != 0 {
			return c
		}
		return cmp.Compare(da.Len(), db.Len())
	}

	ia, ib := Nibbles(a), Nibbles(b)
	for {
		x, okA := ia.Next()
		y, okB := ib.Next()
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return -1
		case !okB:
			return 1
		}
		if c := cmp.Compare(x, y); c != 0 {
			return c
		}
	}
}
