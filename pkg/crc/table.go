package crc

import "github.com/iamNilotpal/gf2/pkg/word"

// tableSize is the number of entries in a byte-indexed lookup table.
const tableSize = 256

// generateTable builds the Sarwate lookup table for cfg.
//
// In GF(2) terms entry i is (i * x^W) mod P. Only the entries at single-bit
// indices are reduced explicitly, each one x times the previous. The map is
// linear, so every other entry is the XOR of a single-bit entry and an entry
// already built below it. LSB-first variants mirror both the indices and the
// values.
func generateTable[V word.Unsigned](cfg Config[V]) [tableSize]V {
	var table [tableSize]V

	if cfg.MSBFirst {
		top := word.TopBit[V]()
		single := top
		for i := 1; i < tableSize; i <<= 1 {
			carry := single&top != 0
			single <<= 1
			if carry {
				single ^= cfg.Modulus
			}
			for j := 0; j < i; j++ {
				table[i+j] = single ^ table[j]
			}
		}
		return table
	}

	single := V(1)
	for i := tableSize / 2; i > 0; i >>= 1 {
		carry := single&1 != 0
		single >>= 1
		if carry {
			single ^= cfg.Modulus
		}
		for j := 0; j < tableSize; j += i << 1 {
			table[i+j] = single ^ table[j]
		}
	}
	return table
}
