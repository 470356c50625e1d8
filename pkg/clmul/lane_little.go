//go:build !purego && (386 || amd64 || arm || arm64 || loong64 || mips64le || mipsle || ppc64le || riscv64 || wasm)

package clmul

import "github.com/iamNilotpal/gf2/pkg/word"

const defaultAddressing = HostLittle

func forwardLanes[V word.Unsigned](v V) lanes {
	return memoryLanes(v)
}

func reflectedLanes[V word.Unsigned](v V) lanes {
	return memoryLanesReversed(v)
}
