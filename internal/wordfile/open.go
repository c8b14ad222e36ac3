// Package wordfile opens dictionary files, decompressing them by extension.
package wordfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

var ErrNoPath = errors.New("word file path is required")

type Compression string

const (
	CompressionNone Compression = "none"
	CompressionGzip Compression = "gzip"
	CompressionZstd Compression = "zstd"
	CompressionLZ4  Compression = "lz4"
)

// Detect picks the codec from the file extension.
func Detect(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return CompressionGzip
	case ".zst", ".zstd":
		return CompressionZstd
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// Open returns the plain text of the word file at path. Closing the reader
// closes the underlying file.
func Open(path string) (io.ReadCloser, error) {
	if path == "" {
		return nil, ErrNoPath
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word file: %w", err)
	}

	rc, err := decompress(file, Detect(path))
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("open word file %s: %w", path, err)
	}

	return rc, nil
}

func decompress(file *os.File, c Compression) (io.ReadCloser, error) {
	switch c {
	case CompressionGzip:
		zr, err := gzip.NewReader(file)
		if err != nil {
			return nil, err
		}
		return &stacked{Reader: zr, closers: []func() error{zr.Close, file.Close}}, nil
	case CompressionZstd:
		dec, err := zstd.NewReader(file)
		if err != nil {
			return nil, err
		}
		return &stacked{Reader: dec, closers: []func() error{closeFn(dec.Close), file.Close}}, nil
	case CompressionLZ4:
		return &stacked{Reader: lz4.NewReader(file), closers: []func() error{file.Close}}, nil
	default:
		return file, nil
	}
}

// stacked closes a decoder and the file under it in order.
type stacked struct {
	io.Reader
	closers []func() error
}

func (s *stacked) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func closeFn(f func()) func() error {
	return func() error {
		f()
		return nil
	}
}
