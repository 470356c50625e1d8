package crc

// CRC32 is the reflected CRC-32 used by zip, gzip, PNG and Ethernet.
var CRC32 = Config[uint32]{
	MSBFirst: false,
	Modulus:  0xEDB88320,
	Initial:  0xFFFFFFFF,
	FinalXor: 0xFFFFFFFF,
}

// Other well-known variants. The comment on each gives its check value, the
// CRC of the nine ASCII bytes "123456789".
var (
	// CRC8SMBus checks to 0xF4.
	CRC8SMBus = Config[uint8]{MSBFirst: true, Modulus: 0x07}

	// CRC16ARC checks to 0xBB3D.
	CRC16ARC = Config[uint16]{Modulus: 0xA001}

	// CRC16CCITTFalse checks to 0x29B1.
	CRC16CCITTFalse = Config[uint16]{MSBFirst: true, Modulus: 0x1021, Initial: 0xFFFF}

	// CRC16XModem checks to 0x31C3.
	CRC16XModem = Config[uint16]{MSBFirst: true, Modulus: 0x1021}

	// CRC32C (Castagnoli) checks to 0xE3069283.
	CRC32C = Config[uint32]{Modulus: 0x82F63B78, Initial: 0xFFFFFFFF, FinalXor: 0xFFFFFFFF}

	// CRC32BZip2 checks to 0xFC891918.
	CRC32BZip2 = Config[uint32]{MSBFirst: true, Modulus: 0x04C11DB7, Initial: 0xFFFFFFFF, FinalXor: 0xFFFFFFFF}

	// CRC32MPEG2 checks to 0x0376E6E7.
	CRC32MPEG2 = Config[uint32]{MSBFirst: true, Modulus: 0x04C11DB7, Initial: 0xFFFFFFFF}

	// CRC64XZ is hash/crc64 with the ECMA table and checks to 0x995DC9BBDF1939FA.
	CRC64XZ = Config[uint64]{Modulus: 0xC96C5795D7870F42, Initial: ^uint64(0), FinalXor: ^uint64(0)}

	// CRC64ISO is hash/crc64 with the ISO table and checks to 0xB90956C775A41001.
	CRC64ISO = Config[uint64]{Modulus: 0xD800000000000000, Initial: ^uint64(0), FinalXor: ^uint64(0)}
)

// Engines for the most common variants, built at package init and shared
// with the package-level functions.
var (
	IEEE       = Shared(CRC32)
	Castagnoli = Shared(CRC32C)
	ECMA       = Shared(CRC64XZ)
)
