package checksum

import (
	"fmt"
	"sort"

	"github.com/iamNilotpal/gf2/internal/core/domain"
	"github.com/iamNilotpal/gf2/internal/core/ports"
	"github.com/iamNilotpal/gf2/pkg/crc"
	"github.com/iamNilotpal/gf2/pkg/errors"
	"github.com/iamNilotpal/gf2/pkg/word"
	"go.uber.org/multierr"
)

const (
	CRC8SMBus       domain.ChecksumAlgorithm = "crc8-smbus"
	CRC16ARC        domain.ChecksumAlgorithm = "crc16-arc"
	CRC16CCITTFalse domain.ChecksumAlgorithm = "crc16-ccitt-false"
	CRC16XModem     domain.ChecksumAlgorithm = "crc16-xmodem"

	// CRC32 is the standard reflected CRC-32 and the default algorithm.
	CRC32 domain.ChecksumAlgorithm = "crc32"

	// CRC32C uses the Castagnoli polynomial.
	CRC32C     domain.ChecksumAlgorithm = "crc32c"
	CRC32BZip2 domain.ChecksumAlgorithm = "crc32-bzip2"
	CRC32MPEG2 domain.ChecksumAlgorithm = "crc32-mpeg2"
	CRC64XZ    domain.ChecksumAlgorithm = "crc64-xz"
	CRC64ISO   domain.ChecksumAlgorithm = "crc64-iso"
)

const (
	DefaultBufferSize = 64 * 1024        // 64KB
	MinBufferSize     = 512              // 512B
	MaxBufferSize     = 16 * 1024 * 1024 // 16MB
)

// checkInput is the message every catalogued check value is computed over.
var checkInput = []byte("123456789")

type preset struct {
	width int
	check uint64
	port  func() ports.ChecksumPort
}

func presetOf[V word.Unsigned](name domain.ChecksumAlgorithm, cfg crc.Config[V], check V) preset {
	return preset{
		width: cfg.Width(),
		check: uint64(check),
		port: func() ports.ChecksumPort {
			return newCRCAdapter(string(name), crc.Shared(cfg))
		},
	}
}

var presets = map[domain.ChecksumAlgorithm]preset{
	CRC8SMBus:       presetOf(CRC8SMBus, crc.CRC8SMBus, 0xF4),
	CRC16ARC:        presetOf(CRC16ARC, crc.CRC16ARC, 0xBB3D),
	CRC16CCITTFalse: presetOf(CRC16CCITTFalse, crc.CRC16CCITTFalse, 0x29B1),
	CRC16XModem:     presetOf(CRC16XModem, crc.CRC16XModem, 0x31C3),
	CRC32:           presetOf(CRC32, crc.CRC32, 0xCBF43926),
	CRC32C:          presetOf(CRC32C, crc.CRC32C, 0xE3069283),
	CRC32BZip2:      presetOf(CRC32BZip2, crc.CRC32BZip2, 0xFC891918),
	CRC32MPEG2:      presetOf(CRC32MPEG2, crc.CRC32MPEG2, 0x0376E6E7),
	CRC64XZ:         presetOf(CRC64XZ, crc.CRC64XZ, 0x995DC9BBDF1939FA),
	CRC64ISO:        presetOf(CRC64ISO, crc.CRC64ISO, 0xB90956C775A41001),
}

// Info describes an available algorithm.
type Info struct {
	Name    string
	Width   int
	Check   uint64
	Builtin bool
}

// Returns recommended checksum settings.
func DefaultOptions() *domain.ChecksumOptions {
	return &domain.ChecksumOptions{
		Algorithm:  CRC32,
		BufferSize: DefaultBufferSize,
	}
}

// New returns the checksum port selected by opts: Custom if set, otherwise
// the configured spec or preset named by Algorithm.
func New(opts *domain.ChecksumOptions) (ports.ChecksumPort, error) {
	if opts.Custom != nil {
		return opts.Custom, nil
	}

	for _, spec := range opts.Specs {
		if spec.Name == string(opts.Algorithm) {
			return FromSpec(spec)
		}
	}

	if p, ok := presets[opts.Algorithm]; ok {
		return p.port(), nil
	}

	return nil, errors.NewValidationError(
		"algorithm", opts.Algorithm, fmt.Errorf("unsupported checksum algorithm: %s", opts.Algorithm),
	)
}

// Validate reports every problem with opts at once.
func Validate(input *domain.ChecksumOptions) error {
	var err error

	if input.BufferSize < MinBufferSize || input.BufferSize > MaxBufferSize {
		err = multierr.Append(err, errors.NewValidationError(
			"buffer_size", input.BufferSize,
			fmt.Errorf("buffer size must be between %d and %d bytes", MinBufferSize, MaxBufferSize),
		))
	}

	seen := make(map[string]bool, len(input.Specs))
	for _, spec := range input.Specs {
		if _, ok := presets[domain.ChecksumAlgorithm(spec.Name)]; ok {
			err = multierr.Append(err, errors.NewValidationError(
				"algorithms.name", spec.Name, fmt.Errorf("%q is a built-in algorithm", spec.Name),
			))
			continue
		}
		if seen[spec.Name] {
			err = multierr.Append(err, errors.NewValidationError(
				"algorithms.name", spec.Name, fmt.Errorf("duplicate algorithm %q", spec.Name),
			))
			continue
		}
		seen[spec.Name] = true

		if _, specErr := FromSpec(spec); specErr != nil {
			err = multierr.Append(err, specErr)
		}
	}

	if input.Custom == nil {
		_, builtin := presets[input.Algorithm]
		if !builtin && !seen[string(input.Algorithm)] {
			err = multierr.Append(err, errors.NewValidationError(
				"algorithm", input.Algorithm, fmt.Errorf("unsupported checksum algorithm: %s", input.Algorithm),
			))
		}
	}

	return err
}

// Algorithms lists the built-in algorithms followed by specs, each group
// sorted by name.
func Algorithms(specs []domain.AlgorithmSpec) []Info {
	infos := make([]Info, 0, len(presets)+len(specs))
	for name, p := range presets {
		infos = append(infos, Info{Name: string(name), Width: p.width, Check: p.check, Builtin: true})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })

	custom := make([]Info, 0, len(specs))
	for _, spec := range specs {
		custom = append(custom, Info{Name: spec.Name, Width: int(spec.Width), Check: spec.Check})
	}
	sort.Slice(custom, func(i, j int) bool { return custom[i].Name < custom[j].Name })

	return append(infos, custom...)
}
