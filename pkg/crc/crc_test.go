package crc

import (
	"hash/crc32"
	"hash/crc64"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/iamNilotpal/gf2/pkg/word"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var checkInput = []byte("123456789")

func randomBytes(n int) []byte {
	rng := rand.New(rand.NewPCG(1, 2))
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(rng.Uint32())
	}
	return p
}

// bitwise computes the CRC one bit at a time, straight from the definition.
func bitwise[V word.Unsigned](cfg Config[V], p []byte) V {
	reg := cfg.Initial
	top := word.TopBit[V]()
	for _, b := range p {
		for i := 0; i < 8; i++ {
			if cfg.MSBFirst {
				in := (b>>(7-i))&1 != 0
				fb := (reg&top != 0) != in
				reg <<= 1
				if fb {
					reg ^= cfg.Modulus
				}
			} else {
				in := (b>>i)&1 != 0
				fb := (reg&1 != 0) != in
				reg >>= 1
				if fb {
					reg ^= cfg.Modulus
				}
			}
		}
	}
	return reg ^ cfg.FinalXor
}

func TestCRC32CheckValue(t *testing.T) {
	assert.Equal(t, uint32(0xCBF43926), Compute(CRC32, checkInput))
	assert.Equal(t, uint32(0xCBF43926), IEEE.Checksum(checkInput))
}

func TestCRC32EmptyInput(t *testing.T) {
	assert.Equal(t, uint32(0), Compute(CRC32, nil))
	assert.Equal(t, uint32(0), Compute(CRC32, []byte{}))
	assert.Equal(t, CRC32.Initial^CRC32.FinalXor, IEEE.Checksum(nil))
}

func TestPresetCheckValues(t *testing.T) {
	t.Run("crc8-smbus", func(t *testing.T) { assert.Equal(t, uint8(0xF4), Compute(CRC8SMBus, checkInput)) })
	t.Run("crc16-arc", func(t *testing.T) { assert.Equal(t, uint16(0xBB3D), Compute(CRC16ARC, checkInput)) })
	t.Run("crc16-ccitt-false", func(t *testing.T) { assert.Equal(t, uint16(0x29B1), Compute(CRC16CCITTFalse, checkInput)) })
	t.Run("crc16-xmodem", func(t *testing.T) { assert.Equal(t, uint16(0x31C3), Compute(CRC16XModem, checkInput)) })
	t.Run("crc32c", func(t *testing.T) { assert.Equal(t, uint32(0xE3069283), Compute(CRC32C, checkInput)) })
	t.Run("crc32-bzip2", func(t *testing.T) { assert.Equal(t, uint32(0xFC891918), Compute(CRC32BZip2, checkInput)) })
	t.Run("crc32-mpeg2", func(t *testing.T) { assert.Equal(t, uint32(0x0376E6E7), Compute(CRC32MPEG2, checkInput)) })
	t.Run("crc64-xz", func(t *testing.T) { assert.Equal(t, uint64(0x995DC9BBDF1939FA), Compute(CRC64XZ, checkInput)) })
	t.Run("crc64-iso", func(t *testing.T) { assert.Equal(t, uint64(0xB90956C775A41001), Compute(CRC64ISO, checkInput)) })
}

func TestTableMatchesStandardLibrary(t *testing.T) {
	want32 := crc32.MakeTable(crc32.IEEE)
	got32 := Table(CRC32)
	assert.Equal(t, [256]uint32(*want32), got32)

	wantC := crc32.MakeTable(crc32.Castagnoli)
	assert.Equal(t, [256]uint32(*wantC), Castagnoli.Table())

	want64 := crc64.MakeTable(crc64.ECMA)
	assert.Equal(t, [256]uint64(*want64), Table(CRC64XZ))

	wantISO := crc64.MakeTable(crc64.ISO)
	assert.Equal(t, [256]uint64(*wantISO), Table(CRC64ISO))
}

func TestChecksumMatchesStandardLibrary(t *testing.T) {
	ieee := crc32.MakeTable(crc32.IEEE)
	castagnoli := crc32.MakeTable(crc32.Castagnoli)
	ecma := crc64.MakeTable(crc64.ECMA)
	iso := crc64.MakeTable(crc64.ISO)

	for _, n := range []int{0, 1, 7, 64, 1000, 4096} {
		p := randomBytes(n)
		assert.Equal(t, crc32.Checksum(p, ieee), Compute(CRC32, p), "crc32 n=%d", n)
		assert.Equal(t, crc32.Checksum(p, castagnoli), Compute(CRC32C, p), "crc32c n=%d", n)
		assert.Equal(t, crc64.Checksum(p, ecma), Compute(CRC64XZ, p), "crc64-xz n=%d", n)
		assert.Equal(t, crc64.Checksum(p, iso), Compute(CRC64ISO, p), "crc64-iso n=%d", n)
	}
}

func TestTableEntriesAreSingleByteRemainders(t *testing.T) {
	msb := Config[uint32]{MSBFirst: true, Modulus: 0x04C11DB7}
	lsb := Config[uint16]{Modulus: 0xA001}
	msbTable, lsbTable := Table(msb), Table(lsb)

	for i := 0; i < 256; i++ {
		b := []byte{byte(i)}
		assert.Equal(t, bitwise(msb, b), msbTable[i], "msb index %d", i)
		assert.Equal(t, bitwise(lsb, b), lsbTable[i], "lsb index %d", i)
	}
}

func TestMatchesBitwiseDefinition(t *testing.T) {
	p := randomBytes(513)

	assert.Equal(t, bitwise(CRC8SMBus, p), Compute(CRC8SMBus, p))
	assert.Equal(t, bitwise(CRC16ARC, p), Compute(CRC16ARC, p))
	assert.Equal(t, bitwise(CRC16CCITTFalse, p), Compute(CRC16CCITTFalse, p))
	assert.Equal(t, bitwise(CRC32, p), Compute(CRC32, p))
	assert.Equal(t, bitwise(CRC32BZip2, p), Compute(CRC32BZip2, p))
	assert.Equal(t, bitwise(CRC32MPEG2, p), Compute(CRC32MPEG2, p))
	assert.Equal(t, bitwise(CRC64XZ, p), Compute(CRC64XZ, p))

	msb64 := Config[uint64]{MSBFirst: true, Modulus: 0x42F0E1EBA9EA3693}
	assert.Equal(t, bitwise(msb64, p), Compute(msb64, p))
}

func TestStreamingEquivalence(t *testing.T) {
	p := randomBytes(300)
	for split := 0; split <= len(p); split += 13 {
		a, b := p[:split], p[split:]

		streamed := Update(CRC32, Update(CRC32, Init(CRC32), a), b)
		whole := Update(CRC32, Init(CRC32), p)
		require.Equal(t, whole, streamed, "split at %d", split)
		require.Equal(t, Compute(CRC32, p), Finalize(CRC32, streamed))

		e := New(CRC32BZip2)
		require.Equal(t, e.Update(e.Init(), p), e.Update(e.Update(e.Init(), a), b))
	}
}

func TestDeterministic(t *testing.T) {
	p := randomBytes(1024)
	first := Compute(CRC32C, p)
	second := Compute(CRC32C, p)
	assert.Equal(t, first, second)
	assert.Equal(t, New(CRC32C).Table(), New(CRC32C).Table())
}

func TestVerify(t *testing.T) {
	assert.True(t, IEEE.Verify(checkInput, 0xCBF43926))
	assert.False(t, IEEE.Verify(checkInput, 0xCBF43927))
}

func TestEngineAccessors(t *testing.T) {
	e := New(CRC16ARC)
	assert.Equal(t, CRC16ARC, e.Config())
	assert.Equal(t, 2, e.Size())
	assert.Equal(t, 16, CRC16ARC.Width())
	assert.Equal(t, 8, ECMA.Size())
}

func TestTableIsCopied(t *testing.T) {
	tab := IEEE.Table()
	tab[1] = 0
	assert.NotZero(t, IEEE.Table()[1])
}

func TestConcurrentSharedEngine(t *testing.T) {
	cfg := Config[uint32]{MSBFirst: true, Modulus: 0x1EDC6F41, Initial: 0xFFFFFFFF}
	p := randomBytes(2048)
	want := bitwise(cfg, p)

	var wg sync.WaitGroup
	results := make([]uint32, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Compute(cfg, p)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func BenchmarkChecksum(b *testing.B) {
	p := randomBytes(64 * 1024)

	b.Run("crc32", func(b *testing.B) {
		b.SetBytes(int64(len(p)))
		for i := 0; i < b.N; i++ {
			_ = IEEE.Checksum(p)
		}
	})

	b.Run("crc32-bzip2", func(b *testing.B) {
		e := New(CRC32BZip2)
		b.SetBytes(int64(len(p)))
		for i := 0; i < b.N; i++ {
			_ = e.Checksum(p)
		}
	})

	b.Run("crc64-xz", func(b *testing.B) {
		b.SetBytes(int64(len(p)))
		for i := 0; i < b.N; i++ {
			_ = ECMA.Checksum(p)
		}
	})
}

func TestSharedReturnsOneEnginePerConfig(t *testing.T) {
	assert.Same(t, IEEE, Shared(CRC32))
	assert.Same(t, Shared(CRC16ARC), Shared(CRC16ARC))
	assert.NotSame(t, Shared(CRC32BZip2), Shared(CRC32MPEG2))
}
