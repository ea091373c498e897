package format

// AlignPage returns n aligned up to the next page boundary.
//
//	AlignPage(1)    = 4096
//	AlignPage(4096) = 4096
//	AlignPage(4097) = 8192
func AlignPage(n int) int {
	return (n + PageAlignmentMask) & ^PageAlignmentMask
}

// PageFloor returns n aligned down to a page boundary.
func PageFloor(n int) int {
	return n & ^PageAlignmentMask
}
