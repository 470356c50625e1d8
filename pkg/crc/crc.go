// Package crc computes table-driven cyclic redundancy checks of any register
// width in the word.Unsigned type set.
//
// A variant is described by a Config. New builds its 256-entry lookup table
// once; the resulting Engine offers Init, Update and Finalize for streaming
// input and Checksum for one-shot use:
//
//	e := crc.New(crc.CRC32)
//	reg := e.Init()
//	reg = e.Update(reg, chunk1)
//	reg = e.Update(reg, chunk2)
//	sum := e.Finalize(reg)
//
// The package-level functions take a Config directly and share one Engine per
// distinct Config for the lifetime of the process.
package crc

import (
	"sync"

	"github.com/iamNilotpal/gf2/pkg/word"
)

// engines maps a Config[V] to its *Engine[V].
var engines sync.Map

// Shared returns the process-wide engine for cfg, building it on first use.
// Two goroutines racing on the first lookup may both build a table; only one
// is kept and both are equal.
func Shared[V word.Unsigned](cfg Config[V]) *Engine[V] {
	if e, ok := engines.Load(cfg); ok {
		return e.(*Engine[V])
	}
	e, _ := engines.LoadOrStore(cfg, New(cfg))
	return e.(*Engine[V])
}

// Table returns the lookup table of cfg.
func Table[V word.Unsigned](cfg Config[V]) [tableSize]V {
	return Shared(cfg).Table()
}

// Init returns the initial register of cfg.
func Init[V word.Unsigned](cfg Config[V]) V {
	return cfg.Initial
}

// Update folds p into the register crc of cfg.
func Update[V word.Unsigned](cfg Config[V], crc V, p []byte) V {
	return Shared(cfg).Update(crc, p)
}

// Finalize applies the final XOR of cfg to the register.
func Finalize[V word.Unsigned](cfg Config[V], crc V) V {
	return crc ^ cfg.FinalXor
}

// Compute returns the CRC of p under cfg.
func Compute[V word.Unsigned](cfg Config[V], p []byte) V {
	return Shared(cfg).Checksum(p)
}
