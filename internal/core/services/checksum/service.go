// Package checksum streams files and readers through a checksum port.
package checksum

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/iamNilotpal/gf2/internal/core/ports"
	cerrors "github.com/iamNilotpal/gf2/pkg/errors"
	"github.com/iamNilotpal/gf2/pkg/fs"
	"github.com/iamNilotpal/gf2/pkg/pool"
	"go.uber.org/zap"
)

// ErrNotFound reports an input path that does not exist.
var ErrNotFound = errors.New("no such file or directory")

// Config holds the collaborators of a Service.
type Config struct {
	// Checksum computes the checksum. Required.
	Checksum ports.ChecksumPort

	// Compression, when set, decodes every input before it is checksummed.
	Compression ports.CompressionPort

	// BufferSize is the read chunk size. Default: 64KB
	BufferSize int

	Logger *zap.SugaredLogger
	FS     fs.FileSystem
}

// Service computes checksums of streamed input.
type Service struct {
	checksum    ports.ChecksumPort
	compression ports.CompressionPort
	buffers     *pool.BufferPool
	log         *zap.SugaredLogger
	fs          fs.FileSystem
}

// Result is the checksum of one input.
type Result struct {
	Path  string
	Sum   uint64
	Bytes int64
}

// NewService creates a Service from cfg.
func NewService(cfg Config) (*Service, error) {
	if cfg.Checksum == nil {
		return nil, cerrors.NewChecksumError(
			cerrors.ErrorConfig, "new service",
			cerrors.NewValidationError("checksum", nil, fmt.Errorf("checksum port is required")),
		)
	}

	prepareDefaults(&cfg)
	return &Service{
		checksum:    cfg.Checksum,
		compression: cfg.Compression,
		buffers:     pool.NewBufferPool(cfg.BufferSize),
		log:         cfg.Logger,
		fs:          cfg.FS,
	}, nil
}

// Algorithm returns the name of the checksum algorithm in use.
func (s *Service) Algorithm() string {
	return s.checksum.Name()
}

// Width returns the number of hex digits needed to print a checksum.
func (s *Service) Width() int {
	return int(s.checksum.Size()) * 2
}

// Sum returns the checksum of everything read from r and the number of
// bytes checksummed. The context is checked between chunks.
func (s *Service) Sum(ctx context.Context, r io.Reader) (uint64, int64, error) {
	if s.compression != nil {
		dr, err := s.compression.NewReader(r)
		if err != nil {
			return 0, 0, cerrors.NewChecksumError(cerrors.ErrorDecompress, "sum", err)
		}
		defer dr.Close()
		r = dr
	}

	buf := s.buffers.Get()
	defer s.buffers.Put(buf)

	digest := s.checksum.New()
	var total int64

	for {
		if err := ctx.Err(); err != nil {
			return 0, total, err
		}

		n, err := r.Read(*buf)
		if n > 0 {
			_, _ = digest.Write((*buf)[:n])
			total += int64(n)
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			category := cerrors.ErrorIO
			if s.compression != nil {
				category = cerrors.ErrorDecompress
			}
			return 0, total, cerrors.NewChecksumError(category, "sum", err)
		}
	}

	return digest.Sum64(), total, nil
}

// SumFile returns the checksum of the file at path. fs.StdinName reads
// standard input.
func (s *Service) SumFile(ctx context.Context, path string) (*Result, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, cerrors.NewChecksumError(cerrors.ErrorIO, "open "+path, err)
	}
	defer f.Close()

	sum, n, err := s.Sum(ctx, f)
	if err != nil {
		s.log.Errorw("checksum failed", "path", path, "algorithm", s.checksum.Name(), "error", err)
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	s.log.Debugw("checksum computed", "path", path, "algorithm", s.checksum.Name(), "bytes", n)
	return &Result{Path: path, Sum: sum, Bytes: n}, nil
}

// SumFiles checksums every regular file named by paths, descending into
// directories. Every path must exist before any is read. It stops at the
// first failure.
func (s *Service) SumFiles(ctx context.Context, paths []string) ([]*Result, error) {
	for _, path := range paths {
		if path == fs.StdinName {
			continue
		}
		ok, err := s.fs.Exists(path)
		if err != nil {
			return nil, cerrors.NewChecksumError(cerrors.ErrorIO, "stat "+path, err)
		}
		if !ok {
			return nil, cerrors.NewChecksumError(cerrors.ErrorIO, "open "+path, ErrNotFound)
		}
	}

	files, err := s.fs.Expand(paths, nil)
	if err != nil {
		return nil, cerrors.NewChecksumError(cerrors.ErrorIO, "expand", err)
	}

	results := make([]*Result, 0, len(files))
	for _, path := range files {
		res, err := s.SumFile(ctx, path)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Check computes the checksum of path and compares it with expected. A
// difference is reported as an ErrorMismatch ChecksumError alongside the
// computed result.
func (s *Service) Check(ctx context.Context, path string, expected uint64) (*Result, error) {
	res, err := s.SumFile(ctx, path)
	if err != nil {
		return nil, err
	}

	if res.Sum != expected {
		s.log.Warnw("checksum mismatch", "path", path, "expected", expected, "actual", res.Sum)
		return res, cerrors.NewChecksumError(
			cerrors.ErrorMismatch, "check "+path,
			fmt.Errorf("expected %0*x, got %0*x", s.Width(), expected, s.Width(), res.Sum),
		)
	}

	return res, nil
}
