package clmul

import (
	"unsafe"

	"github.com/iamNilotpal/gf2/pkg/word"
)

// Addressing names how the byte lanes of an operand are located.
type Addressing uint8

const (
	// Arithmetic extracts lanes with shift-and-mask. It is correct on any
	// host regardless of memory layout.
	Arithmetic Addressing = iota

	// HostLittle reads lanes straight from the operand's bytes, assuming the
	// least significant byte is stored first.
	HostLittle

	// HostBig reads lanes straight from the operand's bytes, assuming the
	// most significant byte is stored first.
	HostBig
)

// String returns the name of the addressing strategy.
func (a Addressing) String() string {
	switch a {
	case Arithmetic:
		return "arithmetic"
	case HostLittle:
		return "host-little"
	case HostBig:
		return "host-big"
	default:
		return "unknown"
	}
}

// DefaultAddressing returns the lane addressing compiled into the strided
// multipliers for this target.
func DefaultAddressing() Addressing {
	return defaultAddressing
}

// lanes holds the byte lanes of an operand, lane 0 first. Forward lanes
// count from the least significant byte, reflected lanes from the most
// significant one, so lane 0 always holds the bits consumed first.
type lanes [word.MaxLanes]uint8

func shiftLanes[V word.Unsigned](v V) (ls lanes) {
	n := word.Bytes[V]()
	for k := 0; k < n; k++ {
		ls[k] = uint8(v >> (k * word.LaneBits))
	}
	return ls
}

func shiftLanesReflected[V word.Unsigned](v V) (ls lanes) {
	n := word.Bytes[V]()
	for k := 0; k < n; k++ {
		ls[k] = uint8(v >> ((n - 1 - k) * word.LaneBits))
	}
	return ls
}

// memoryLanes copies the bytes of v in storage order.
func memoryLanes[V word.Unsigned](v V) (ls lanes) {
	copy(ls[:], unsafe.Slice((*byte)(unsafe.Pointer(&v)), unsafe.Sizeof(v)))
	return ls
}

// memoryLanesReversed copies the bytes of v in reverse storage order.
func memoryLanesReversed[V word.Unsigned](v V) (ls lanes) {
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&v)), unsafe.Sizeof(v))
	n := len(raw)
	for k := 0; k < n; k++ {
		ls[k] = raw[n-1-k]
	}
	return ls
}
