package nibble

// Vec is a growable sequence of nibbles packed two per byte.
//
// The zero Vec is empty and ready to use.
type Vec struct {
	store
}

var _ View = (*Vec)(nil)

// NewVec returns an empty Vec.
func NewVec() *Vec { return &Vec{} }

// VecWithCapacity returns an empty Vec with room for at least nibbles nibbles.
func VecWithCapacity(nibbles int) *Vec {
	return &Vec{store{pairs: make([]Pair, 0, (nibbles+1)/PerPair)}}
}

// VecFromPairs returns a Vec holding every nibble of pairs. The Vec takes
// ownership of pairs.
func VecFromPairs(pairs []Pair) *Vec {
	return &Vec{store{pairs: pairs}}
}

// VecFromBytes returns a Vec holding a copy of b's nibbles.
func VecFromBytes(b []byte) *Vec {
	pairs := make([]Pair, len(b))
	copy(PairBytes(pairs), b)
	return VecFromPairs(pairs)
}

// VecOf returns a Vec holding values in order.
func VecOf(values ...U4) *Vec {
	v := VecWithCapacity(len(values))
	for _, n := range values {
		v.Push(n)
	}
	return v
}

// Cap returns the number of nibbles the Vec can hold without reallocating.
func (v *Vec) Cap() int { return cap(v.pairs) * PerPair }

// Push appends n.
func (v *Vec) Push(n U4) { v.push(n) }

// Insert places n at i, moving later nibbles one position right. It panics if
// i > v.Len().
func (v *Vec) Insert(i int, n U4) { v.insert(i, n) }

// Extend appends every nibble of other.
func (v *Vec) Extend(other View) {
	it := Nibbles(other)
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		v.push(n)
	}
}
