package checksum

import (
	"fmt"
	"strings"

	"github.com/iamNilotpal/gf2/internal/core/domain"
	"github.com/iamNilotpal/gf2/internal/core/ports"
	"github.com/iamNilotpal/gf2/pkg/crc"
	"github.com/iamNilotpal/gf2/pkg/errors"
	"github.com/iamNilotpal/gf2/pkg/word"
)

// FromSpec builds a checksum port for a user-described CRC variant. Specs
// carrying a check value are rejected unless they reproduce it.
func FromSpec(spec domain.AlgorithmSpec) (ports.ChecksumPort, error) {
	if strings.TrimSpace(spec.Name) == "" {
		return nil, errors.NewValidationError("algorithms.name", spec.Name, fmt.Errorf("name is required"))
	}

	switch spec.Width {
	case 8:
		return fromSpec[uint8](spec)
	case 16:
		return fromSpec[uint16](spec)
	case 32:
		return fromSpec[uint32](spec)
	case 64:
		return fromSpec[uint64](spec)
	default:
		return nil, errors.NewValidationError(
			"algorithms.width", spec.Width, fmt.Errorf("%s: width must be 8, 16, 32 or 64", spec.Name),
		)
	}
}

func fromSpec[V word.Unsigned](spec domain.AlgorithmSpec) (ports.ChecksumPort, error) {
	limit := uint64(^V(0))
	fields := []struct {
		name  string
		value uint64
	}{
		{"algorithms.poly", spec.Poly},
		{"algorithms.init", spec.Init},
		{"algorithms.xor_out", spec.XorOut},
		{"algorithms.check", spec.Check},
	}
	for _, f := range fields {
		if f.value > limit {
			return nil, errors.NewValidationError(
				f.name, f.value, fmt.Errorf("%s: %#x does not fit in %d bits", spec.Name, f.value, spec.Width),
			)
		}
	}

	if spec.Poly == 0 {
		return nil, errors.NewValidationError("algorithms.poly", spec.Poly, fmt.Errorf("%s: poly must be non-zero", spec.Name))
	}

	cfg := crc.Config[V]{
		MSBFirst: !spec.Reflected,
		Modulus:  V(spec.Poly),
		Initial:  V(spec.Init),
		FinalXor: V(spec.XorOut),
	}
	port := newCRCAdapter(spec.Name, crc.Shared(cfg))

	if spec.Check != 0 {
		if got := port.Calculate(checkInput); got != spec.Check {
			return nil, errors.NewValidationError(
				"algorithms.check", spec.Check,
				fmt.Errorf("%s: computed check value %#x, expected %#x", spec.Name, got, spec.Check),
			)
		}
	}

	return port, nil
}
