package domain

// CompressionOptions configures the zstd decoder used for compressed input.
type CompressionOptions struct {
	// DecoderConcurrency is the number of blocks decoded in flight.
	// Default is number of CPU cores if set to 0.
	DecoderConcurrency uint8

	// MaxWindow caps the window size a frame may ask for, in bytes.
	// Zero keeps the decoder's own limit.
	MaxWindow uint64
}
