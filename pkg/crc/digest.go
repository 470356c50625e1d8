package crc

import (
	"hash"

	"github.com/iamNilotpal/gf2/pkg/word"
)

// Digest is a streaming CRC that implements hash.Hash64. Sum64 returns the
// finalized checksum widened to 64 bits.
type Digest[V word.Unsigned] struct {
	engine *Engine[V]
	reg    V
}

var _ hash.Hash64 = (*Digest[uint16])(nil)

// New returns a Digest starting from the variant's initial register.
func (e *Engine[V]) New() *Digest[V] {
	return &Digest[V]{engine: e, reg: e.Init()}
}

// Resume returns a Digest that continues a computation whose finalized
// checksum is sum, as if the input behind sum had been written to it.
func (e *Engine[V]) Resume(sum V) *Digest[V] {
	return &Digest[V]{engine: e, reg: sum ^ e.cfg.FinalXor}
}

// Write folds p into the digest. It never returns an error.
func (d *Digest[V]) Write(p []byte) (int, error) {
	d.reg = d.engine.Update(d.reg, p)
	return len(p), nil
}

// Value returns the finalized checksum of everything written so far.
func (d *Digest[V]) Value() V {
	return d.engine.Finalize(d.reg)
}

// Sum64 returns Value widened to 64 bits.
func (d *Digest[V]) Sum64() uint64 {
	return uint64(d.Value())
}

// Sum appends the checksum to b in big-endian order.
func (d *Digest[V]) Sum(b []byte) []byte {
	v := d.Value()
	for shift := word.Width[V]() - word.LaneBits; shift >= 0; shift -= word.LaneBits {
		b = append(b, byte(v>>shift))
	}
	return b
}

// Reset restores the initial register.
func (d *Digest[V]) Reset() {
	d.reg = d.engine.Init()
}

// Size returns the checksum size in bytes.
func (d *Digest[V]) Size() int {
	return d.engine.Size()
}

// BlockSize returns 1; a CRC has no block structure.
func (d *Digest[V]) BlockSize() int {
	return 1
}

type digest32 struct {
	*Digest[uint32]
}

func (d digest32) Sum32() uint32 {
	return d.Value()
}

// NewHash32 returns a hash.Hash32 for a 32-bit engine.
func NewHash32(e *Engine[uint32]) hash.Hash32 {
	return digest32{e.New()}
}
