package nibble

// Cell is a mutable handle to one nibble inside a Pair.
//
// Cells never expose the underlying byte: a write reads the current byte,
// replaces the cell's own half and stores the result, so handles to the two
// halves of one pair may be held and used together. Two handles to the same
// half must not be written from different goroutines.
type Cell interface {
	// GetHi returns the nibble in high-order form.
	GetHi() Hi
	// GetLo returns the nibble in low-order form.
	GetLo() Lo
	// SetFromHi stores a high-order nibble.
	SetFromHi(hi Hi)
	// SetFromLo stores a low-order nibble.
	SetFromLo(lo Lo)
	// Set stores any nibble.
	Set(n U4)
	// Swap exchanges the value of this cell with other.
	Swap(other Cell)
}

var (
	_ Cell = HiCell{}
	_ Cell = LoCell{}
)

// HiCell mutates the high-order nibble of a pair.
type HiCell struct {
	p *Pair
}

// Valid reports whether the cell refers to a pair.
func (c HiCell) Valid() bool { return c.p != nil }

func (c HiCell) GetHi() Hi       { return c.p.Hi() }
func (c HiCell) GetLo() Lo       { return c.p.Hi().AsLo() }
func (c HiCell) SetFromHi(hi Hi) { c.p.SetHi(hi) }
func (c HiCell) SetFromLo(lo Lo) { c.p.SetHi(lo) }
func (c HiCell) Set(n U4)        { c.p.SetHi(n) }
func (c HiCell) Swap(other Cell) { swapCells(c, other) }
func (c HiCell) String() string  { return c.GetLo().String() }

// LoCell mutates the low-order nibble of a pair.
type LoCell struct {
	p *Pair
}

// Valid reports whether the cell refers to a pair.
func (c LoCell) Valid() bool { return c.p != nil }

func (c LoCell) GetHi() Hi       { return c.p.Lo().AsHi() }
func (c LoCell) GetLo() Lo       { return c.p.Lo() }
func (c LoCell) SetFromHi(hi Hi) { c.p.SetLo(hi) }
func (c LoCell) SetFromLo(lo Lo) { c.p.SetLo(lo) }
func (c LoCell) Set(n U4)        { c.p.SetLo(n) }
func (c LoCell) Swap(other Cell) { swapCells(c, other) }
func (c LoCell) String() string  { return c.GetLo().String() }

func swapCells(a, b Cell) {
	v := a.GetLo()
	a.SetFromLo(b.GetLo())
	b.SetFromLo(v)
}
