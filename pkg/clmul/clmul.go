// Package clmul implements carry-less (GF(2)) multiplication of unsigned
// fixed-width integers.
//
// Two algorithms are provided, each in a forward and a reflected form:
//
//   - Naive walks every bit of the multiplier and is the reference result.
//   - Strided splits the multiplier into byte lanes and runs only eight
//     rounds, one per bit of a lane, updating every lane per round.
//
// The product type R may be any width. With R at least twice as wide as the
// operand type V the product is exact; narrower products lose the bits that
// do not fit.
//
// Direction and algorithm are fixed by which function is called. Use Bind to
// choose them once and keep the returned Func:
//
//	mul := clmul.Bind[uint64, uint32](clmul.Strided, true)
//	p := mul(a, b)
package clmul

import "github.com/iamNilotpal/gf2/pkg/word"

// Algorithm identifies a carry-less multiplication implementation.
type Algorithm uint8

const (
	// Naive is the bit-at-a-time reference implementation.
	Naive Algorithm = iota + 1

	// Strided is the byte-lane implementation.
	Strided
)

// String returns the name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case Naive:
		return "naive"
	case Strided:
		return "strided"
	default:
		return "unknown"
	}
}

// Func multiplies two operands without carries.
type Func[R, V word.Unsigned] func(l, r V) R

// Bind returns the implementation of alg for the given direction. An
// unknown algorithm binds to the strided implementation.
func Bind[R, V word.Unsigned](alg Algorithm, reversed bool) Func[R, V] {
	switch {
	case alg == Naive && reversed:
		return NaiveReflected[R, V]
	case alg == Naive:
		return NaiveForward[R, V]
	case reversed:
		return StridedReflected[R, V]
	default:
		return StridedForward[R, V]
	}
}

// Multiply returns the carry-less product of l and r, bit-reflected when
// reversed is set.
func Multiply[R, V word.Unsigned](l, r V, reversed bool) R {
	if reversed {
		return StridedReflected[R](l, r)
	}
	return StridedForward[R](l, r)
}
