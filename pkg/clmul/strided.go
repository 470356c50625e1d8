package clmul

import "github.com/iamNilotpal/gf2/pkg/word"

// StridedForward computes the same product as NaiveForward in
// word.LaneBits rounds instead of one round per bit of V.
//
// The operand r is split into byte lanes, each with its own partial
// accumulator. Every round tests one bit of every lane against a single
// shifted copy of l, which is shared because all lanes sit at the same bit
// offset within their byte. The partial products are then stacked back
// together, highest lane first.
func StridedForward[R, V word.Unsigned](l, r V) R {
	return stridedForward[R](l, forwardLanes(r), word.Bytes[V]())
}

// StridedReflected computes the same product as NaiveReflected in
// word.LaneBits rounds. Lane 0 is the most significant byte of r.
func StridedReflected[R, V word.Unsigned](l, r V) R {
	return stridedReflected[R](l, reflectedLanes(r), word.Bytes[V]())
}

func stridedForward[R, V word.Unsigned](l V, ls lanes, n int) R {
	var acc [word.MaxLanes]R
	shifted := R(l)
	for i := 0; i < word.LaneBits; i++ {
		for k := 0; k < n; k++ {
			if ls[k]>>i&1 != 0 {
				acc[k] ^= shifted
			}
		}
		shifted <<= 1
	}

	// A variable shift count keeps 8-bit products legal to shift by a lane.
	step := word.LaneBits
	var result R
	for k := n; k > 0; k-- {
		result <<= step
		result ^= acc[k-1]
	}
	return result
}

func stridedReflected[R, V word.Unsigned](l V, ls lanes, n int) R {
	var acc [word.MaxLanes]R
	shifted := alignTop[R](l)
	for i := 0; i < word.LaneBits; i++ {
		for k := 0; k < n; k++ {
			if ls[k]<<i&0x80 != 0 {
				acc[k] ^= shifted
			}
		}
		shifted >>= 1
	}

	step := word.LaneBits
	var result R
	for k := n; k > 0; k-- {
		result >>= step
		result ^= acc[k-1]
	}
	return result
}
