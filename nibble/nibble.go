package nibble

import "fmt"

const (
	// HighMask selects the high-order half of a byte.
	HighMask byte = 0xF0
	// LowMask selects the low-order half of a byte.
	LowMask byte = 0x0F
	// PerPair is the number of nibbles stored in one Pair.
	PerPair = 2
	// BitsPerNibble is the width of a single nibble.
	BitsPerNibble = 4
)

// U4 is any nibble, regardless of where in its byte it is stored.
type U4 interface {
	// ToHi returns the nibble in the high-order bits with the low-order bits zero.
	ToHi() byte
	// ToLo returns the nibble in the low-order bits with the high-order bits zero.
	ToLo() byte
}

// Hi is a nibble stored in the high-order bits of a byte. The low-order bits
// are always zero.
type Hi uint8

// Lo is a nibble stored in the low-order bits of a byte. The high-order bits
// are always zero.
type Lo uint8

var (
	_ U4 = Hi(0)
	_ U4 = Lo(0)
)

func hasHigher(b byte) bool { return b&HighMask != 0 }
func hasLower(b byte) bool  { return b&LowMask != 0 }

// HiFromHigh constructs a Hi from the high-order bits of b.
func HiFromHigh(b byte) Hi { return Hi(b & HighMask) }

// HiFromLow constructs a Hi from the low-order bits of b.
func HiFromLow(b byte) Hi { return Hi(b << 4) }

// HiFromRepeated constructs a Hi from a byte holding the same nibble in both halves.
func HiFromRepeated(b byte) Hi { return HiFromHigh(b) }

// LoFromHigh constructs a Lo from the high-order bits of b.
func LoFromHigh(b byte) Lo { return Lo(b >> 4) }

// LoFromLow constructs a Lo from the low-order bits of b.
func LoFromLow(b byte) Lo { return Lo(b & LowMask) }

// LoFromRepeated constructs a Lo from a byte holding the same nibble in both halves.
func LoFromRepeated(b byte) Lo { return LoFromLow(b) }

// TryHiFromHigh is HiFromHigh, failing if any low-order bit of b is set.
func TryHiFromHigh(b byte) (Hi, error) {
	if hasLower(b) {
		return 0, fmt.Errorf("high nibble 0x%02x: %w", b, ErrMalformed)
	}
	return HiFromHigh(b), nil
}

// TryHiFromLow is HiFromLow, failing if any high-order bit of b is set.
func TryHiFromLow(b byte) (Hi, error) {
	if hasHigher(b) {
		return 0, fmt.Errorf("low nibble 0x%02x: %w", b, ErrMalformed)
	}
	return HiFromLow(b), nil
}

// TryLoFromHigh is LoFromHigh, failing if any low-order bit of b is set.
func TryLoFromHigh(b byte) (Lo, error) {
	if hasLower(b) {
		return 0, fmt.Errorf("high nibble 0x%02x: %w", b, ErrMalformed)
	}
	return LoFromHigh(b), nil
}

// TryLoFromLow is LoFromLow, failing if any high-order bit of b is set.
func TryLoFromLow(b byte) (Lo, error) {
	if hasHigher(b) {
		return 0, fmt.Errorf("low nibble 0x%02x: %w", b, ErrMalformed)
	}
	return LoFromLow(b), nil
}

func (h Hi) ToHi() byte { return byte(h) & HighMask }
func (h Hi) ToLo() byte { return byte(h) >> 4 }

// ToRepeated returns a byte with the nibble in both halves.
func (h Hi) ToRepeated() byte { return h.ToHi() | h.ToLo() }

// Value returns the nibble as a number in [0, 15].
func (h Hi) Value() uint8 { return h.ToLo() }

func (h Hi) AsHi() Hi { return h }
func (h Hi) AsLo() Lo { return Lo(h.ToLo()) }

func (h Hi) String() string { return fmt.Sprintf("%x", h.Value()) }

func (l Lo) ToHi() byte { return byte(l) << 4 }
func (l Lo) ToLo() byte { return byte(l) & LowMask }

// ToRepeated returns a byte with the nibble in both halves.
func (l Lo) ToRepeated() byte { return l.ToHi() | l.ToLo() }

// Value returns the nibble as a number in [0, 15].
func (l Lo) Value() uint8 { return l.ToLo() }

func (l Lo) AsHi() Hi { return Hi(l.ToHi()) }
func (l Lo) AsLo() Lo { return l }

func (l Lo) String() string { return fmt.Sprintf("%x", l.Value()) }

// asLo converts any U4 into its low-positioned form.
func asLo(n U4) Lo { return Lo(n.ToLo()) }
