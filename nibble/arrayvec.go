package nibble

import "fmt"

// ArrayVec is a nibble sequence over a fixed pair buffer that is never
// reallocated. Views and cells into it stay valid across pushes.
type ArrayVec struct {
	store
}

var _ View = (*ArrayVec)(nil)

// NewArrayVec returns an empty ArrayVec with room for pairs pairs.
func NewArrayVec(pairs int) *ArrayVec {
	return &ArrayVec{storeOver(make([]Pair, pairs), 0, true)}
}

// ArrayVecOver returns an ArrayVec using backing as its storage, with the
// first length nibbles already present. When length is odd the unused low
// half of the last pair is cleared. It panics if length does not fit.
func ArrayVecOver(backing []Pair, length int) *ArrayVec {
	return &ArrayVec{storeOver(backing[:len(backing):len(backing)], length, true)}
}

// Cap returns the maximum number of nibbles.
func (a *ArrayVec) Cap() int { return cap(a.pairs) * PerPair }

// IsFull reports whether another push would fail.
func (a *ArrayVec) IsFull() bool { return a.full() }

// Push appends n. It panics if the ArrayVec is full.
func (a *ArrayVec) Push(n U4) {
	if err := a.TryPush(n); err != nil {
		panic(err)
	}
}

// TryPush appends n, or returns a *CapacityError holding n if full.
func (a *ArrayVec) TryPush(n U4) error {
	if a.full() {
		return &CapacityError{Value: asLo(n)}
	}
	a.push(n)
	return nil
}

// PushUnchecked appends n without a capacity check. Pushing onto a full
// ArrayVec panics with a runtime bounds error.
func (a *ArrayVec) PushUnchecked(n U4) { a.push(n) }

// Insert places n at i. It panics if i > a.Len() or the ArrayVec is full.
func (a *ArrayVec) Insert(i int, n U4) {
	if err := a.TryInsert(i, n); err != nil {
		panic(err)
	}
}

// TryInsert places n at i, or returns a *CapacityError holding n if full.
// It panics if i > a.Len().
func (a *ArrayVec) TryInsert(i int, n U4) error {
	if i < 0 || i > a.Len() {
		panic(fmt.Sprintf("nibble: insert index %d out of range with length %d", i, a.Len()))
	}
	if a.full() {
		return &CapacityError{Value: asLo(n)}
	}
	a.insert(i, n)
	return nil
}

// Extend appends every nibble of other, stopping at the first one that does
// not fit.
func (a *ArrayVec) Extend(other View) error {
	it := Nibbles(other)
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		if err := a.TryPush(n); err != nil {
			return err
		}
	}
	return nil
}

func (a *ArrayVec) release() []Pair {
	p := a.pairs[:cap(a.pairs)]
	a.pairs, a.pending = nil, false
	return p
}

// IntoEvenArray hands the buffer to an EvenArray if every pair is full.
// On success the ArrayVec is left empty with no capacity.
func (a *ArrayVec) IntoEvenArray() (EvenArray, bool) {
	if !a.full() {
		return EvenArray{}, false
	}
	return EvenArray{pairs: a.release()}, true
}

// IntoOddArray hands the buffer to an OddArray if it is full except for the
// last low half. On success the ArrayVec is left empty with no capacity.
func (a *ArrayVec) IntoOddArray() (OddArray, bool) {
	if !a.pending || len(a.pairs) != cap(a.pairs) {
		return OddArray{}, false
	}
	return OddArray{pairs: a.release()}, true
}

// IntoArray is IntoEvenArray or IntoOddArray, whichever applies.
func (a *ArrayVec) IntoArray() (Array, bool) {
	if e, ok := a.IntoEvenArray(); ok {
		return Array{pairs: e.pairs}, true
	}
	if o, ok := a.IntoOddArray(); ok {
		return Array{pairs: o.pairs, odd: true}, true
	}
	return Array{}, false
}
