//go:build purego || !(386 || amd64 || arm || arm64 || loong64 || mips64le || mipsle || ppc64le || riscv64 || wasm || mips || mips64 || ppc64 || s390x)

package clmul

import "github.com/iamNilotpal/gf2/pkg/word"

// Without a known byte order lanes are always extracted with shift-and-mask.
const defaultAddressing = Arithmetic

func forwardLanes[V word.Unsigned](v V) lanes {
	return shiftLanes(v)
}

func reflectedLanes[V word.Unsigned](v V) lanes {
	return shiftLanesReflected(v)
}
