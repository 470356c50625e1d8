// Package compression decodes zstd-compressed checksum input.
package compression

import (
	"fmt"
	"io"

	"github.com/iamNilotpal/gf2/internal/core/domain"
	"github.com/klauspost/compress/zstd"
)

// ZstdCompression implements CompressionPort using zstd. Every reader it
// returns owns its own decoder, so one ZstdCompression may serve concurrent
// inputs.
type ZstdCompression struct {
	options []zstd.DOption
}

// NewZstdCompression creates a zstd decoder factory from opts.
func NewZstdCompression(opts *domain.CompressionOptions) (*ZstdCompression, error) {
	if err := Validate(opts); err != nil {
		return nil, err
	}

	options := []zstd.DOption{zstd.WithDecoderConcurrency(int(opts.DecoderConcurrency))}
	if opts.MaxWindow != 0 {
		options = append(options, zstd.WithDecoderMaxWindow(opts.MaxWindow))
	}

	return &ZstdCompression{options: options}, nil
}

// NewReader returns a streaming decoder over r. Closing it releases the
// decoder; r itself is left open.
func (z *ZstdCompression) NewReader(r io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(r, z.options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create stream decoder: %w", err)
	}
	return dec.IOReadCloser(), nil
}
