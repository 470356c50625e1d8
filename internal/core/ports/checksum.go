package ports

import "hash"

// ChecksumPort calculates and verifies checksums of one algorithm.
// Values narrower than 64 bits are returned zero-extended.
type ChecksumPort interface {
	// Calculate returns the checksum of data.
	Calculate(data []byte) uint64

	// Verify reports whether data has the expected checksum.
	Verify(data []byte, expected uint64) bool

	// New returns a streaming digest whose Sum64 equals Calculate over
	// everything written to it.
	New() hash.Hash64

	// Size returns the checksum size in bytes.
	Size() uint8

	// Name returns the algorithm name.
	Name() string
}
