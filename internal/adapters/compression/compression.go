package compression

import (
	"fmt"
	"math"
	"runtime"

	"github.com/iamNilotpal/gf2/internal/core/domain"
	"github.com/iamNilotpal/gf2/pkg/errors"
	"github.com/klauspost/compress/zstd"
	"go.uber.org/multierr"
)

// Bounds of a configured decoder window.
const (
	MinWindow uint64 = zstd.MinWindowSize
	MaxWindow uint64 = 1 << 41
)

// Returns CompressionOptions initialized with values suited to decoding
// checksum input.
func DefaultOptions() *domain.CompressionOptions {
	return &domain.CompressionOptions{
		DecoderConcurrency: maxConcurrency(),
	}
}

// Checks if the compression options are valid. Every out-of-range option is
// reported.
func Validate(input *domain.CompressionOptions) error {
	var err error

	if input.DecoderConcurrency > maxConcurrency() {
		err = multierr.Append(err, errors.NewValidationError(
			"compression.decoder_concurrency", input.DecoderConcurrency,
			fmt.Errorf("decoder concurrency must be between 0 and %d", maxConcurrency()),
		))
	}

	if input.MaxWindow != 0 && (input.MaxWindow < MinWindow || input.MaxWindow > MaxWindow) {
		err = multierr.Append(err, errors.NewValidationError(
			"compression.max_window", input.MaxWindow,
			fmt.Errorf("max window must be between %d and %d bytes", MinWindow, MaxWindow),
		))
	}

	return err
}

// maxConcurrency is the CPU count, saturated to fit a uint8.
func maxConcurrency() uint8 {
	return uint8(min(runtime.NumCPU(), math.MaxUint8))
}
