// Package word describes the unsigned fixed-width integers the clmul and crc
// packages operate on.
//
// Every member of the Unsigned type set is a whole number of bytes wide, so
// splitting a word into 8-bit lanes never leaves a remainder.
package word

import "math/bits"

// Unsigned is the set of unsigned integer types usable as operands, products
// and CRC registers.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// LaneBits is the width of one byte lane.
const LaneBits = 8

// MaxLanes is the lane count of the widest member of Unsigned.
const MaxLanes = 64 / LaneBits

// Width returns the bit width of V.
func Width[V Unsigned]() int {
	return bits.Len64(uint64(^V(0)))
}

// Bytes returns the number of byte lanes in V.
func Bytes[V Unsigned]() int {
	return Width[V]() / LaneBits
}

// TopBit returns a V with only its most significant bit set.
func TopBit[V Unsigned]() V {
	return V(1) << (Width[V]() - 1)
}

// Mask returns a V with its low n bits set. n must not exceed the width of V.
func Mask[V Unsigned](n int) V {
	if n >= Width[V]() {
		return ^V(0)
	}
	return V(1)<<n - 1
}
