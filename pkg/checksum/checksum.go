// Package checksum is a one-call CRC-32 helper for callers that do not need
// to pick a variant. It is a library entry point for importers of this
// module; the bitsum command selects algorithms through its adapters instead.
package checksum

import "github.com/iamNilotpal/gf2/pkg/crc"

// Checksum returns the standard CRC-32 of data.
func Checksum(data []byte) uint32 {
	return crc.IEEE.Checksum(data)
}

// VerifyChecksum reports whether data has the CRC-32 checksum.
func VerifyChecksum(data []byte, checksum uint32) bool {
	return crc.IEEE.Verify(data, checksum)
}
