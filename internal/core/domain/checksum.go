package domain

import (
	"github.com/iamNilotpal/gf2/internal/core/ports"
)

// ChecksumAlgorithm names a checksum algorithm.
type ChecksumAlgorithm string

// ChecksumOptions defines how the checksum service computes checksums.
type ChecksumOptions struct {
	// Algorithm selects a preset or a configured algorithm by name.
	// Defaults to CRC32 if not specified.
	Algorithm ChecksumAlgorithm

	// Custom allows using a custom ChecksumPort implementation.
	// If provided, it takes precedence over Algorithm.
	Custom ports.ChecksumPort

	// Specs lists user-described CRC variants that Algorithm may name.
	Specs []AlgorithmSpec

	// BufferSize is the read chunk size used when streaming input.
	// Default: 64KB
	BufferSize int

	// Decompress treats input as zstd-compressed and checksums the
	// decompressed content.
	Decompress bool
}

// AlgorithmSpec describes a CRC variant outside the preset catalogue.
// Width picks one of the fixed register widths; the remaining values must
// fit in it.
type AlgorithmSpec struct {
	Name string `yaml:"name"`

	// Width is the register width in bits: 8, 16, 32 or 64.
	Width uint8 `yaml:"width"`

	// Reflected selects LSB-first processing. Poly is then given in
	// bit-mirrored form.
	Reflected bool `yaml:"reflected"`

	Poly   uint64 `yaml:"poly"`
	Init   uint64 `yaml:"init"`
	XorOut uint64 `yaml:"xor_out"`

	// Check is the expected checksum of "123456789". Zero skips the check.
	Check uint64 `yaml:"check"`
}
