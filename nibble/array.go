package nibble

var (
	_ View = EvenArray{}
	_ View = OddArray{}
	_ View = Array{}
)

// EvenArray is a fixed run of pairs with every half in use.
type EvenArray struct {
	pairs []Pair
}

// NewEvenArray wraps pairs as an EvenArray of 2*len(pairs) nibbles.
func NewEvenArray(pairs []Pair) EvenArray { return EvenArray{pairs: pairs} }

func (a EvenArray) IncludesLeadingHigh() bool { return true }
func (a EvenArray) IncludesTrailingLow() bool { return true }
func (a EvenArray) Pairs() []Pair             { return a.pairs }

func (a EvenArray) Len() int        { return len(a.pairs) * PerPair }
func (a EvenArray) At(i int) Lo     { return At(a, i) }
func (a EvenArray) Set(i int, n U4) { SetAt(a, i, n) }
func (a EvenArray) AsSlice() Slice  { return NewSlice(a.pairs, Full) }
func (a EvenArray) String() string  { return a.AsSlice().String() }

// OddArray is a fixed run of pairs whose last low half is unused.
type OddArray struct {
	pairs []Pair
}

// NewOddArray wraps pairs as an OddArray of 2*len(pairs)-1 nibbles. The last
// pair's low half is cleared.
func NewOddArray(pairs []Pair) OddArray {
	if len(pairs) > 0 {
		pairs[len(pairs)-1].SetLo(Lo(0))
	}
	return OddArray{pairs: pairs}
}

func (a OddArray) IncludesLeadingHigh() bool { return true }
func (a OddArray) IncludesTrailingLow() bool { return false }
func (a OddArray) Pairs() []Pair             { return a.pairs }

func (a OddArray) Len() int        { return NoRight.Len(len(a.pairs)) }
func (a OddArray) At(i int) Lo     { return At(a, i) }
func (a OddArray) Set(i int, n U4) { SetAt(a, i, n) }
func (a OddArray) AsSlice() Slice  { return NewSlice(a.pairs, NoRight) }
func (a OddArray) String() string  { return a.AsSlice().String() }

// Array is either an EvenArray or an OddArray.
type Array struct {
	pairs []Pair
	odd   bool
}

func (a Array) IncludesLeadingHigh() bool { return true }
func (a Array) IncludesTrailingLow() bool { return !a.odd }
func (a Array) Pairs() []Pair             { return a.pairs }

// IsOdd reports whether the array holds an odd number of nibbles.
func (a Array) IsOdd() bool { return a.odd }

// AsEven returns the array as an EvenArray if it has an even length.
func (a Array) AsEven() (EvenArray, bool) {
	if a.odd {
		return EvenArray{}, false
	}
	return EvenArray{pairs: a.pairs}, true
}

// AsOdd returns the array as an OddArray if it has an odd length.
func (a Array) AsOdd() (OddArray, bool) {
	if !a.odd {
		return OddArray{}, false
	}
	return OddArray{pairs: a.pairs}, true
}

func (a Array) Len() int       { return Len(a) }
func (a Array) At(i int) Lo    { return At(a, i) }
func (a Array) AsSlice() Slice { return Generic(a) }
