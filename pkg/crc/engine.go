package crc

import "github.com/iamNilotpal/gf2/pkg/word"

// Engine computes one CRC variant with Sarwate's byte-at-a-time algorithm.
//
// An Engine is immutable once built and may be shared by any number of
// goroutines. The register threaded through Init, Update and Finalize
// belongs to the caller.
type Engine[V word.Unsigned] struct {
	cfg   Config[V]
	table [tableSize]V
	shift int
}

// New builds the lookup table for cfg and returns an Engine for it.
func New[V word.Unsigned](cfg Config[V]) *Engine[V] {
	return &Engine[V]{
		cfg:   cfg,
		table: generateTable(cfg),
		shift: word.Width[V]() - word.LaneBits,
	}
}

// Config returns the variant the engine computes.
func (e *Engine[V]) Config() Config[V] {
	return e.cfg
}

// Size returns the checksum size in bytes.
func (e *Engine[V]) Size() int {
	return word.Bytes[V]()
}

// Table returns a copy of the lookup table.
func (e *Engine[V]) Table() [tableSize]V {
	return e.table
}

// Init returns the register value that starts a computation.
func (e *Engine[V]) Init() V {
	return e.cfg.Initial
}

// Update folds p into the register crc and returns the new register. Split
// input may be fed across any number of calls.
func (e *Engine[V]) Update(crc V, p []byte) V {
	// A variable shift count keeps 8-bit registers legal to shift by a byte.
	step := word.LaneBits
	if e.cfg.MSBFirst {
		for _, b := range p {
			crc = e.table[b^uint8(crc>>e.shift)] ^ (crc << step)
		}
		return crc
	}
	for _, b := range p {
		crc = e.table[b^uint8(crc)] ^ (crc >> step)
	}
	return crc
}

// Finalize applies the final XOR to the register.
func (e *Engine[V]) Finalize(crc V) V {
	return crc ^ e.cfg.FinalXor
}

// Checksum returns the CRC of p.
func (e *Engine[V]) Checksum(p []byte) V {
	return e.Finalize(e.Update(e.Init(), p))
}

// Verify reports whether the CRC of p equals expected.
func (e *Engine[V]) Verify(p []byte, expected V) bool {
	return e.Checksum(p) == expected
}
