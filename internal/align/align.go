// Package align holds the rounding arithmetic shared by the layout engine.
package align

import "math"

// To rounds offset up to the next multiple of align. align must be a power
// of two; zero leaves offset unchanged.
func To(offset, align uint32) uint32 {
	if align == 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}

// Padding returns the number of bytes needed to move offset onto an align
// boundary.
func Padding(offset int, align uint32) int {
	if align <= 1 {
		return 0
	}
	a := int(align)
	return (a - offset%a) % a
}

// IsPow2 reports whether v is a positive power of two.
func IsPow2(v uint32) bool {
	return v != 0 && v&(v-1) == 0
}

func Max(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

func SafeMulU32(a, b uint32) (uint32, bool) {
	if b != 0 && a > math.MaxUint32/b {
		return 0, false
	}
	return a * b, true
}

func SafeAddU32(a, b uint32) (uint32, bool) {
	if a > math.MaxUint32-b {
		return 0, false
	}
	return a + b, true
}
