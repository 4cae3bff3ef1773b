package dataset

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileProvider reads the dataset from the local file system.
type FileProvider struct {
	path string // absolute path to the dataset file
}

// NewFile creates a FileProvider for path. The file must already exist and
// must not be a directory.
func NewFile(path string) (*FileProvider, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: resolve path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("dataset: stat: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("dataset: path is a directory: %s", abs)
	}
	return &FileProvider{path: abs}, nil
}

// Open opens the dataset file for reading.
func (f *FileProvider) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", f.path, err)
	}
	return file, nil
}

// Name returns the absolute file path.
func (f *FileProvider) Name() string {
	return f.path
}

// Path returns the absolute file path, for watchers.
func (f *FileProvider) Path() string {
	return f.path
}
