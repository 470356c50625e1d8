package checksum

import (
	"hash"

	"github.com/iamNilotpal/gf2/pkg/crc"
	"github.com/iamNilotpal/gf2/pkg/word"
)

// crcAdapter exposes a CRC engine of any width as a ports.ChecksumPort.
type crcAdapter[V word.Unsigned] struct {
	name   string
	engine *crc.Engine[V]
}

func newCRCAdapter[V word.Unsigned](name string, engine *crc.Engine[V]) *crcAdapter[V] {
	return &crcAdapter[V]{name: name, engine: engine}
}

func (c *crcAdapter[V]) Calculate(data []byte) uint64 {
	return uint64(c.engine.Checksum(data))
}

func (c *crcAdapter[V]) Verify(data []byte, expected uint64) bool {
	return c.Calculate(data) == expected
}

func (c *crcAdapter[V]) New() hash.Hash64 {
	return c.engine.New()
}

func (c *crcAdapter[V]) Size() uint8 {
	return uint8(c.engine.Size())
}

func (c *crcAdapter[V]) Name() string {
	return c.name
}
