package config

import (
	"fmt"
	"os"

	"github.com/iamNilotpal/gf2/internal/adapters/checksum"
	"github.com/iamNilotpal/gf2/internal/core/domain"
	"github.com/iamNilotpal/gf2/internal/core/services/verify"
	"github.com/iamNilotpal/gf2/pkg/errors"
	"github.com/iamNilotpal/gf2/pkg/logger"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel   string                 `yaml:"log_level"`
	Checksum   ChecksumConfig         `yaml:"checksum"`
	Verify     domain.VerifyOptions   `yaml:"verify"`
	Algorithms []domain.AlgorithmSpec `yaml:"algorithms"`
}

// Holds settings of the sum command.
type ChecksumConfig struct {
	Algorithm  string `yaml:"algorithm"`   // Preset or configured algorithm name
	BufferSize int    `yaml:"buffer_size"` // Read chunk size in bytes
	Decompress bool   `yaml:"decompress"`  // Treat input as zstd
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Checksum: ChecksumConfig{
			Algorithm:  string(checksum.CRC32),
			BufferSize: checksum.DefaultBufferSize,
		},
		Verify: *verify.DefaultOptions(),
	}
}

// ChecksumOptions converts the checksum section into adapter options.
func (c *Config) ChecksumOptions() *domain.ChecksumOptions {
	return &domain.ChecksumOptions{
		Algorithm:  domain.ChecksumAlgorithm(c.Checksum.Algorithm),
		Specs:      c.Algorithms,
		BufferSize: c.Checksum.BufferSize,
		Decompress: c.Checksum.Decompress,
	}
}

// Loads configuration from a YAML file. Omitted fields keep their defaults.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := Validate(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Validate reports every invalid field of config.
func Validate(config *Config) error {
	var err error

	if _, levelErr := logger.ParseLevel(config.LogLevel); levelErr != nil {
		err = multierr.Append(err, errors.NewValidationError("log_level", config.LogLevel, levelErr))
	}

	err = multierr.Append(err, checksum.Validate(config.ChecksumOptions()))
	err = multierr.Append(err, verify.Validate(&config.Verify))

	return err
}
