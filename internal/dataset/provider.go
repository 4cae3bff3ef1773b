// Package dataset acquires the raw glossary file and decodes it into rows.
package dataset

import (
	"context"
	"io"
	"strings"
)

// Provider yields the raw bytes of the glossary dataset.
type Provider interface {
	// Open returns a reader over the current dataset content.
	Open(ctx context.Context) (io.ReadCloser, error)
	// Name identifies the dataset location in logs.
	Name() string
}

// NewProvider returns an HTTPProvider for http(s) URLs and a FileProvider
// for everything else.
func NewProvider(location string) (Provider, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTP(location, nil), nil
	}
	return NewFile(location)
}
