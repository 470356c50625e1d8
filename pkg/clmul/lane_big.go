//go:build !purego && (mips || mips64 || ppc64 || s390x)

package clmul

import "github.com/iamNilotpal/gf2/pkg/word"

const defaultAddressing = HostBig

func forwardLanes[V word.Unsigned](v V) lanes {
	return memoryLanesReversed(v)
}

func reflectedLanes[V word.Unsigned](v V) lanes {
	return memoryLanes(v)
}
