package clmul

import "github.com/iamNilotpal/gf2/pkg/word"

// NaiveForward returns the carry-less product of l and r, examining one bit
// of r per round starting from the least significant bit.
//
// It is the reference every other multiplier in this package must match bit
// for bit.
func NaiveForward[R, V word.Unsigned](l, r V) R {
	var result R
	shifted := R(l)
	for i := 0; i < word.Width[V](); i++ {
		if r&1 != 0 {
			result ^= shifted
		}
		shifted <<= 1
		r >>= 1
	}
	return result
}

// NaiveReflected returns the bit-reflected carry-less product of l and r, as
// used by CRC variants that consume bits least significant first. l is
// aligned to the top of R and r is examined from its most significant bit.
func NaiveReflected[R, V word.Unsigned](l, r V) R {
	var result R
	top := word.TopBit[V]()
	shifted := alignTop[R](l)
	for i := 0; i < word.Width[V](); i++ {
		if r&top != 0 {
			result ^= shifted
		}
		shifted >>= 1
		r <<= 1
	}
	return result
}

// alignTop widens l into the most significant bits of R. When R is narrower
// than V only the top bits of l survive.
func alignTop[R, V word.Unsigned](l V) R {
	wr, wv := word.Width[R](), word.Width[V]()
	if wr >= wv {
		return R(l) << (wr - wv)
	}
	return R(l >> (wv - wr))
}
