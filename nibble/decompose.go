package nibble

import "iter"

// Decomposition splits a view into an optional leading low nibble, a run of
// whole pairs, and an optional trailing high nibble.
type Decomposition struct {
	Leading     Lo
	HasLeading  bool
	Interior    []Pair
	Trailing    Hi
	HasTrailing bool
}

// Decompose splits v at its byte boundaries. Interior aliases v's storage.
// A NoBoth view over a single pair decomposes to nothing.
func Decompose(v View) Decomposition {
	pairs := v.Pairs()
	lead, trail := v.IncludesLeadingHigh(), v.IncludesTrailingLow()

	var d Decomposition
	switch len(pairs) {
	case 0:
		return d
	case 1:
		p := pairs[0]
		switch {
		case lead && trail:
			d.Interior = pairs
		case lead:
			d.Trailing, d.HasTrailing = p.Hi(), true
		case trail:
			d.Leading, d.HasLeading = p.Lo(), true
		}
		return d
	}

	start, end := 0, len(pairs)
	if !lead {
		d.Leading, d.HasLeading = pairs[0].Lo(), true
		start = 1
	}
	if !trail {
		d.Trailing, d.HasTrailing = pairs[end-1].Hi(), true
		end--
	}
	d.Interior = pairs[start:end]
	return d
}

// Len returns the number of nibbles the decomposition covers.
func (d Decomposition) Len() int {
	n := len(d.Interior) * PerPair
	if d.HasLeading {
		n++
	}
	if d.HasTrailing {
		n++
	}
	return n
}

// Nibbles reassembles the decomposition in order.
func (d Decomposition) Nibbles() iter.Seq[Lo] {
	return func(yield func(Lo) bool) {
		if d.HasLeading && !yield(d.Leading) {
			return
		}
		for _, p := range d.Interior {
			if !yield(p.Hi().AsLo()) || !yield(p.Lo()) {
				return
			}
		}
		if d.HasTrailing {
			yield(d.Trailing.AsLo())
		}
	}
}

// CellDecomposition is the mutable form of Decomposition. A boundary that is
// absent has an invalid cell.
type CellDecomposition struct {
	Leading  LoCell
	Interior []Pair
	Trailing HiCell
}

// DecomposeCells splits v like Decompose but hands out cells for the boundary
// halves so they can be written in place.
func DecomposeCells(v View) CellDecomposition {
	pairs := v.Pairs()
	lead, trail := v.IncludesLeadingHigh(), v.IncludesTrailingLow()

	var d CellDecomposition
	switch len(pairs) {
	case 0:
		return d
	case 1:
		switch {
		case lead && trail:
			d.Interior = pairs
		case lead:
			d.Trailing = pairs[0].HiCell()
		case trail:
			d.Leading = pairs[0].LoCell()
		}
		return d
	}

	start, end := 0, len(pairs)
	if !lead {
		d.Leading = pairs[0].LoCell()
		start = 1
	}
	if !trail {
		d.Trailing = pairs[end-1].HiCell()
		end--
	}
	d.Interior = pairs[start:end]
	return d
}
