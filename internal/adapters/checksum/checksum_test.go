package checksum

import (
	"hash/crc32"
	"testing"

	"github.com/iamNilotpal/gf2/internal/core/domain"
	"github.com/iamNilotpal/gf2/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

var modbus = domain.AlgorithmSpec{
	Name:      "crc16-modbus",
	Width:     16,
	Reflected: true,
	Poly:      0xA001,
	Init:      0xFFFF,
	Check:     0x4B37,
}

func TestPresetsReproduceCheckValues(t *testing.T) {
	for name, p := range presets {
		t.Run(string(name), func(t *testing.T) {
			port := p.port()
			assert.Equal(t, p.check, port.Calculate(checkInput))
			assert.Equal(t, string(name), port.Name())
			assert.Equal(t, uint8(p.width/8), port.Size())
		})
	}
}

func TestNewDefault(t *testing.T) {
	port, err := New(DefaultOptions())
	require.NoError(t, err)

	data := []byte("the quick brown fox")
	assert.Equal(t, uint64(crc32.ChecksumIEEE(data)), port.Calculate(data))
	assert.True(t, port.Verify(data, uint64(crc32.ChecksumIEEE(data))))
	assert.False(t, port.Verify(data, 0))
}

func TestNewPrefersCustom(t *testing.T) {
	custom, err := FromSpec(modbus)
	require.NoError(t, err)

	port, err := New(&domain.ChecksumOptions{Algorithm: CRC32, Custom: custom})
	require.NoError(t, err)
	assert.Same(t, custom, port)
}

func TestNewFromSpec(t *testing.T) {
	opts := DefaultOptions()
	opts.Algorithm = domain.ChecksumAlgorithm(modbus.Name)
	opts.Specs = []domain.AlgorithmSpec{modbus}

	require.NoError(t, Validate(opts))
	port, err := New(opts)
	require.NoError(t, err)
	assert.Equal(t, "crc16-modbus", port.Name())
	assert.Equal(t, uint64(0x4B37), port.Calculate(checkInput))
}

func TestNewUnknownAlgorithm(t *testing.T) {
	_, err := New(&domain.ChecksumOptions{Algorithm: "adler32"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestStreamingDigest(t *testing.T) {
	port, err := New(&domain.ChecksumOptions{Algorithm: CRC64XZ})
	require.NoError(t, err)

	h := port.New()
	_, _ = h.Write(checkInput[:4])
	_, _ = h.Write(checkInput[4:])
	assert.Equal(t, port.Calculate(checkInput), h.Sum64())
	assert.Len(t, h.Sum(nil), 8)
}

func TestFromSpecRejectsBadSpecs(t *testing.T) {
	tests := []struct {
		name  string
		spec  domain.AlgorithmSpec
		field string
	}{
		{"missing name", domain.AlgorithmSpec{Width: 8, Poly: 7}, "algorithms.name"},
		{"bad width", domain.AlgorithmSpec{Name: "x", Width: 12, Poly: 7}, "algorithms.width"},
		{"zero poly", domain.AlgorithmSpec{Name: "x", Width: 8}, "algorithms.poly"},
		{"poly overflow", domain.AlgorithmSpec{Name: "x", Width: 8, Poly: 0x107}, "algorithms.poly"},
		{"init overflow", domain.AlgorithmSpec{Name: "x", Width: 16, Poly: 0x1021, Init: 0x1FFFF}, "algorithms.init"},
		{"wrong check", domain.AlgorithmSpec{Name: "x", Width: 8, Poly: 7, Check: 0xF5}, "algorithms.check"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromSpec(tt.spec)
			require.Error(t, err)
			ve := errors.AsValidationError(err)
			require.NotNil(t, ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestFromSpecWithoutCheck(t *testing.T) {
	port, err := FromSpec(domain.AlgorithmSpec{Name: "smbus-copy", Width: 8, Poly: 0x07})
	require.NoError(t, err)
	assert.Equal(t, uint64(0xF4), port.Calculate(checkInput))
	assert.Equal(t, uint8(1), port.Size())
}

func TestValidateCollectsAllErrors(t *testing.T) {
	opts := &domain.ChecksumOptions{
		Algorithm:  "nope",
		BufferSize: 1,
		Specs: []domain.AlgorithmSpec{
			modbus,
			modbus,
			{Name: "crc32", Width: 32, Poly: 0x04C11DB7},
		},
	}

	err := Validate(opts)
	require.Error(t, err)
	errs := multierr.Errors(err)
	require.Len(t, errs, 4)
	for _, e := range errs {
		assert.True(t, errors.IsValidationError(e))
	}
}

func TestValidateDefaults(t *testing.T) {
	assert.NoError(t, Validate(DefaultOptions()))
}

func TestAlgorithmsListing(t *testing.T) {
	infos := Algorithms([]domain.AlgorithmSpec{modbus})
	require.Len(t, infos, len(presets)+1)

	for i := 1; i < len(presets); i++ {
		assert.Less(t, infos[i-1].Name, infos[i].Name)
	}
	for _, info := range infos[:len(presets)] {
		assert.True(t, info.Builtin)
	}

	last := infos[len(infos)-1]
	assert.Equal(t, "crc16-modbus", last.Name)
	assert.False(t, last.Builtin)
	assert.Equal(t, 16, last.Width)
}
