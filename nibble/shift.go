package nibble

import "fmt"

// ShiftRight makes room for one nibble at logical index at by moving every
// nibble at or after it one position towards the end. The last nibble of the
// buffer falls off; callers that need to keep it must append a pair first.
//
// If at is even the target pair's high nibble moves to its low half; if at is
// odd only the low half is cleared. Either way the slot at is left zero for
// the caller to fill. at == 2*len(pairs) is a no-op.
//
// Panics if at is negative or greater than 2*len(pairs).
func ShiftRight(pairs []Pair, at int) {
	n := len(pairs) * PerPair
	if at < 0 || at > n {
		panic(fmt.Sprintf("nibble: shift right index %d out of range [0, %d]", at, n))
	}
	if at == n {
		return
	}
	idx := at / PerPair

	for i := len(pairs) - 1; i > idx; i-- {
		pairs[i] = Pair(byte(pairs[i])>>4 | pairs[i-1].Lo().ToHi())
	}

	if at%PerPair == 0 {
		pairs[idx] = Pair(byte(pairs[idx]) >> 4)
	} else {
		pairs[idx] = Pair(byte(pairs[idx]) & HighMask)
	}
}

// ShiftLeft removes the nibble at logical index at by moving every later nibble
// one position towards the start. The vacated final low half is zeroed.
//
// Panics if at is negative or not less than 2*len(pairs).
func ShiftLeft(pairs []Pair, at int) {
	n := len(pairs) * PerPair
	if at < 0 || at >= n {
		panic(fmt.Sprintf("nibble: shift left index %d out of range [0, %d)", at, n))
	}
	idx := at / PerPair
	last := len(pairs) - 1

	// An odd index keeps the target's high nibble and pulls the next high
	// nibble into the low half.
	if at%PerPair == 1 {
		var next byte
		if idx < last {
			next = pairs[idx+1].Hi().ToLo()
		}
		pairs[idx] = Pair(byte(pairs[idx])&HighMask | next)
		idx++
	}

	for i := idx; i < last; i++ {
		pairs[i] = Pair(byte(pairs[i])<<4 | pairs[i+1].Hi().ToLo())
	}

	if idx <= last {
		pairs[last] = Pair(byte(pairs[last]) << 4)
	}
}

// getNib reads the nibble at raw index raw, counting from the high half of
// pairs[0].
func getNib(pairs []Pair, raw int) Lo {
	p := pairs[raw/PerPair]
	if raw%PerPair == 0 {
		return p.Hi().AsLo()
	}
	return p.Lo()
}

// setNib writes the nibble at raw index raw.
func setNib(pairs []Pair, raw int, n U4) {
	p := &pairs[raw/PerPair]
	if raw%PerPair == 0 {
		p.SetHi(n)
	} else {
		p.SetLo(n)
	}
}

// nibCell returns a cell for the nibble at raw index raw.
func nibCell(pairs []Pair, raw int) Cell {
	p := &pairs[raw/PerPair]
	if raw%PerPair == 0 {
		return p.HiCell()
	}
	return p.LoCell()
}
