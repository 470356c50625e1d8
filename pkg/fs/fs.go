package fs

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// StdinName is the path that selects standard input.
const StdinName = "-"

// FileSystem is the file access the checksum service needs.
type FileSystem interface {
	Open(filePath string) (io.ReadCloser, error)
	Exists(filePath string) (bool, error)
	Expand(paths []string, excludeDirs []string) ([]string, error)
}

type LocalFileSystem struct {
	stdin io.Reader
}

func NewLocalFileSystem() *LocalFileSystem {
	return &LocalFileSystem{stdin: os.Stdin}
}

// Opens a file for reading. StdinName opens standard input, which is never
// closed by the returned ReadCloser.
func (lfs *LocalFileSystem) Open(filePath string) (io.ReadCloser, error) {
	if filePath == StdinName {
		return io.NopCloser(lfs.stdin), nil
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if stat.IsDir() {
		file.Close()
		return nil, fmt.Errorf("%s is a directory", filePath)
	}

	return file, nil
}

// Checks if a file exists or not.
func (lfs *LocalFileSystem) Exists(file string) (bool, error) {
	_, err := os.Stat(file)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Expands directories in paths into the regular files below them, in lexical
// order. Files and StdinName are kept as given. Paths containing any of
// excludeDirs are skipped while walking.
func (lfs *LocalFileSystem) Expand(paths []string, excludeDirs []string) ([]string, error) {
	files := make([]string, 0, len(paths))

	for _, p := range paths {
		if p == StdinName {
			files = append(files, p)
			continue
		}

		stat, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !stat.IsDir() {
			files = append(files, p)
			continue
		}

		var found []string
		if err := filepath.WalkDir(p, func(path string, ds fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if ds.Type().IsRegular() && !isAncestor(excludeDirs, path) {
				found = append(found, path)
			}
			return nil
		}); err != nil {
			return nil, err
		}

		sort.Strings(found)
		files = append(files, found...)
	}

	return files, nil
}

func isAncestor(excludeDirs []string, path string) bool {
	for _, excludeDir := range excludeDirs {
		if excludeDir != "" && strings.Contains(path, excludeDir) {
			return true
		}
	}
	return false
}
