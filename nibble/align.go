package nibble

// Alignment records which boundary halves of a run of pairs belong to a view.
//
// A view over n pairs always includes every interior half. Only the high half
// of the first pair and the low half of the last pair may be left out.
type Alignment uint8

const (
	// Full includes both boundary halves.
	Full Alignment = iota
	// NoLeft excludes the high half of the first pair.
	NoLeft
	// NoRight excludes the low half of the last pair.
	NoRight
	// NoBoth excludes both boundary halves.
	NoBoth
)

// AlignmentOf returns the alignment that includes the given boundary halves.
func AlignmentOf(leadingHigh, trailingLow bool) Alignment {
	switch {
	case leadingHigh && trailingLow:
		return Full
	case trailingLow:
		return NoLeft
	case leadingHigh:
		return NoRight
	default:
		return NoBoth
	}
}

// IncludesLeadingHigh reports whether the first pair's high half is part of the view.
func (a Alignment) IncludesLeadingHigh() bool { return a == Full || a == NoRight }

// IncludesTrailingLow reports whether the last pair's low half is part of the view.
func (a Alignment) IncludesTrailingLow() bool { return a == Full || a == NoLeft }

// IsAligned reports whether the view starts on a byte boundary.
func (a Alignment) IsAligned() bool { return a.IncludesLeadingHigh() }

// IsEven reports whether a view with this alignment always holds an even
// number of nibbles.
func (a Alignment) IsEven() bool { return a == Full || a == NoBoth }

// IsOdd reports whether a view with this alignment always holds an odd
// number of nibbles.
func (a Alignment) IsOdd() bool { return !a.IsEven() }

// offset is the raw index of logical index 0.
func (a Alignment) offset() int {
	if a.IncludesLeadingHigh() {
		return 0
	}
	return 1
}

// Len returns the number of nibbles visible across pairs pairs.
// A single NoBoth pair is empty.
func (a Alignment) Len(pairs int) int {
	n := pairs * PerPair
	if !a.IncludesLeadingHigh() {
		n--
	}
	if !a.IncludesTrailingLow() {
		n--
	}
	if n < 0 {
		return 0
	}
	return n
}

func (a Alignment) String() string {
	switch a {
	case Full:
		return "Full"
	case NoLeft:
		return "NoLeft"
	case NoRight:
		return "NoRight"
	case NoBoth:
		return "NoBoth"
	default:
		return "Alignment(?)"
	}
}
