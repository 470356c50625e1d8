package ports

import "io"

// Defines the interface for reading compressed input.
// This allows us to swap compression algorithms without changing core logic.
type CompressionPort interface {
	// NewReader returns a reader yielding the decompressed content of r.
	// The caller must close it.
	NewReader(r io.Reader) (io.ReadCloser, error)
}
