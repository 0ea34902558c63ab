package huffman

import (
	mathbits "math/bits"
)

// log2int returns the number of bits needed to represent x, treating 0 as 1.
// Used as a capacity hint for tree walks.
func log2int(x int) int {
	if x <= 0 {
		x = 1
	}
	return mathbits.Len(uint(x))
}

// addSaturating returns a+b, clamped to math.MaxUint64.
func addSaturating(a, b uint64) uint64 {
	sum, carry := mathbits.Add64(a, b, 0)
	if carry != 0 {
		return ^uint64(0)
	}
	return sum
}
