package checksum

import (
	"github.com/iamNilotpal/gf2/internal/adapters/checksum"
	"github.com/iamNilotpal/gf2/pkg/fs"
	"github.com/iamNilotpal/gf2/pkg/logger"
)

func prepareDefaults(cfg *Config) *Config {
	if cfg.BufferSize < checksum.MinBufferSize {
		cfg.BufferSize = checksum.DefaultBufferSize
	}

	if cfg.BufferSize > checksum.MaxBufferSize {
		cfg.BufferSize = checksum.MaxBufferSize
	}

	if cfg.FS == nil {
		cfg.FS = fs.NewLocalFileSystem()
	}

	if cfg.Logger == nil {
		cfg.Logger = logger.New("checksum-service")
	}

	return cfg
}
