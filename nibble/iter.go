package nibble

import "iter"

// Iter walks the nibbles of a view from either end. Front and back never
// cross: once they meet both directions are exhausted.
type Iter struct {
	pairs       []Pair
	front, back int // raw indices, back exclusive
}

// Nibbles returns an iterator over v.
func Nibbles(v View) *Iter {
	off := AlignmentFor(v).offset()
	return &Iter{pairs: v.Pairs(), front: off, back: off + Len(v)}
}

// Next returns the next nibble from the front.
func (it *Iter) Next() (Lo, bool) {
	if it.front >= it.back {
		return 0, false
	}
	n := getNib(it.pairs, it.front)
	it.front++
	return n, true
}

// NextBack returns the next nibble from the back.
func (it *Iter) NextBack() (Lo, bool) {
	if it.front >= it.back {
		return 0, false
	}
	it.back--
	return getNib(it.pairs, it.back), true
}

// Len returns the number of nibbles not yet yielded.
func (it *Iter) Len() int { return it.back - it.front }

// All drains the iterator front to back.
func (it *Iter) All() iter.Seq[Lo] {
	return func(yield func(Lo) bool) {
		for n, ok := it.Next(); ok; n, ok = it.Next() {
			if !yield(n) {
				return
			}
		}
	}
}

// Backward drains the iterator back to front.
func (it *Iter) Backward() iter.Seq[Lo] {
	return func(yield func(Lo) bool) {
		for n, ok := it.NextBack(); ok; n, ok = it.NextBack() {
			if !yield(n) {
				return
			}
		}
	}
}

// IterMut is Iter yielding cells instead of values.
type IterMut struct {
	pairs       []Pair
	front, back int
}

// NibblesMut returns a mutable iterator over v.
func NibblesMut(v View) *IterMut {
	off := AlignmentFor(v).offset()
	return &IterMut{pairs: v.Pairs(), front: off, back: off + Len(v)}
}

// Next returns a cell for the next nibble from the front.
func (it *IterMut) Next() (Cell, bool) {
	if it.front >= it.back {
		return nil, false
	}
	c := nibCell(it.pairs, it.front)
	it.front++
	return c, true
}

// NextBack returns a cell for the next nibble from the back.
func (it *IterMut) NextBack() (Cell, bool) {
	if it.front >= it.back {
		return nil, false
	}
	it.back--
	return nibCell(it.pairs, it.back), true
}

// Len returns the number of cells not yet yielded.
func (it *IterMut) Len() int { return it.back - it.front }

// All drains the iterator front to back.
func (it *IterMut) All() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for c, ok := it.Next(); ok; c, ok = it.Next() {
			if !yield(c) {
				return
			}
		}
	}
}
