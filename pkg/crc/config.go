package crc

import "github.com/iamNilotpal/gf2/pkg/word"

// Config describes one CRC variant. The register width is the width of V.
//
// For LSB-first (reflected) variants Modulus holds the bit-mirrored
// polynomial, the same convention hash/crc32 and hash/crc64 use.
type Config[V word.Unsigned] struct {
	// MSBFirst selects the bit order in which input bytes are consumed.
	MSBFirst bool

	// Modulus is the generator polynomial without its leading term.
	Modulus V

	// Initial is the register value before any input.
	Initial V

	// FinalXor is applied to the register once all input is consumed.
	FinalXor V
}

// Width returns the register width in bits.
func (c Config[V]) Width() int {
	return word.Width[V]()
}
