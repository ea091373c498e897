package nibble

import "fmt"

// store is the pair buffer shared by Vec and ArrayVec. Nibbles fill each pair
// high half first; when the count is odd the last pair's low half is pending
// and holds zero.
//
// A fixed store never reallocates: growing past cap(pairs) panics instead.
type store struct {
	pairs   []Pair
	pending bool
	fixed   bool
}

func storeOver(pairs []Pair, length int, fixed bool) store {
	if length < 0 || length > len(pairs)*PerPair {
		panic(fmt.Sprintf("nibble: length %d does not fit %d pairs", length, len(pairs)))
	}
	used := (length + 1) / PerPair
	s := store{pairs: pairs[:used], pending: length%PerPair == 1, fixed: fixed}
	if s.pending {
		s.pairs[used-1].SetLo(Lo(0))
	}
	return s
}

func (s *store) IncludesLeadingHigh() bool { return true }
func (s *store) IncludesTrailingLow() bool { return !s.pending }
func (s *store) Pairs() []Pair             { return s.pairs }

// Len returns the number of nibbles stored.
func (s *store) Len() int {
	n := len(s.pairs) * PerPair
	if s.pending {
		n--
	}
	return n
}

// IsEmpty reports whether no nibbles are stored.
func (s *store) IsEmpty() bool { return len(s.pairs) == 0 }

// AsSlice returns a Full view when the length is even and a NoRight view when
// it is odd. The view is invalidated by any mutation that reallocates.
func (s *store) AsSlice() Slice {
	if s.pending {
		return NewSlice(s.pairs, NoRight)
	}
	return NewSlice(s.pairs, Full)
}

// At returns the nibble at i. It panics if i is out of range.
func (s *store) At(i int) Lo { return At(s, i) }

// Get returns the nibble at i, or false if i is out of range.
func (s *store) Get(i int) (Lo, bool) { return Get(s, i) }

// Set overwrites the nibble at i. It panics if i is out of range.
func (s *store) Set(i int, n U4) { SetAt(s, i, n) }

// Bytes returns a copy of the packed pairs. A pending low half is zero.
func (s *store) Bytes() []byte {
	out := make([]byte, len(s.pairs))
	copy(out, PairBytes(s.pairs))
	return out
}

func (s *store) grow() {
	n := len(s.pairs)
	if s.fixed || n < cap(s.pairs) {
		s.pairs = s.pairs[:n+1]
		s.pairs[n] = 0
		return
	}
	s.pairs = append(s.pairs, 0)
}

// full reports whether a fixed store has no room for another nibble.
func (s *store) full() bool {
	return !s.pending && len(s.pairs) == cap(s.pairs)
}

func (s *store) push(n U4) {
	if s.pending {
		s.pairs[len(s.pairs)-1].SetLo(n)
		s.pending = false
		return
	}
	s.grow()
	s.pairs[len(s.pairs)-1].SetHi(n)
	s.pending = true
}

// Pop removes and returns the last nibble. The vacated half is zeroed.
func (s *store) Pop() (Lo, bool) {
	last := len(s.pairs) - 1
	if last < 0 {
		return 0, false
	}
	if s.pending {
		v := s.pairs[last].Hi().AsLo()
		s.pairs[last] = 0
		s.pairs = s.pairs[:last]
		s.pending = false
		return v, true
	}
	v := s.pairs[last].Lo()
	s.pairs[last].SetLo(Lo(0))
	s.pending = true
	return v, true
}

func (s *store) insert(i int, n U4) {
	if i < 0 || i > s.Len() {
		panic(fmt.Sprintf("nibble: insert index %d out of range with length %d", i, s.Len()))
	}
	s.push(Lo(0))
	ShiftRight(s.pairs, i)
	setNib(s.pairs, i, n)
}

// Remove deletes the nibble at i and returns it, moving later nibbles one
// position left. It panics if i is out of range.
func (s *store) Remove(i int) Lo {
	if i < 0 || i >= s.Len() {
		panic(fmt.Sprintf("nibble: remove index %d out of range with length %d", i, s.Len()))
	}
	v := getNib(s.pairs, i)
	ShiftLeft(s.pairs, i)
	if s.pending {
		last := len(s.pairs) - 1
		s.pairs[last] = 0
		s.pairs = s.pairs[:last]
		s.pending = false
	} else {
		s.pending = true
	}
	return v
}

// PopAt is Remove returning false instead of panicking when i is out of range.
func (s *store) PopAt(i int) (Lo, bool) {
	if i < 0 || i >= s.Len() {
		return 0, false
	}
	return s.Remove(i), true
}

// Clear removes every nibble, keeping the allocated capacity.
func (s *store) Clear() {
	clear(s.pairs)
	s.pairs = s.pairs[:0]
	s.pending = false
}

func (s *store) String() string { return s.AsSlice().String() }
