package source

import (
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Compression identifies how a source file is compressed
type Compression int

const (
	CompressionNone Compression = iota
	CompressionGZ
	CompressionBZ2
	CompressionXZ
	CompressionZSTD
)

var compressionExtensions = map[string]Compression{
	".gz":  CompressionGZ,
	".bz2": CompressionBZ2,
	".xz":  CompressionXZ,
	".zst": CompressionZSTD,
}

// String returns the file extension of the compression type
func (c Compression) String() string {
	for ext, ct := range compressionExtensions {
		if ct == c {
			return ext
		}
	}
	return ""
}

// detectCompression returns the compression type of a path and the path
// with the compression extension removed.
func detectCompression(path string) (Compression, string) {
	ext := strings.ToLower(filepath.Ext(path))
	if ct, ok := compressionExtensions[ext]; ok {
		return ct, strings.TrimSuffix(path, filepath.Ext(path))
	}
	return CompressionNone, path
}

// decompress wraps r with a decompressing reader. The returned func
// releases decoder resources.
func decompress(r io.Reader, ct Compression) (io.Reader, func() error, error) {
	switch ct {
	case CompressionNone:
		return r, func() error { return nil }, nil

	case CompressionGZ:
		gzReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return gzReader, gzReader.Close, nil

	case CompressionBZ2:
		return bzip2.NewReader(r), func() error { return nil }, nil

	case CompressionXZ:
		xzReader, err := xz.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		return xzReader, func() error { return nil }, nil

	case CompressionZSTD:
		decoder, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		return decoder, func() error {
			decoder.Close()
			return nil
		}, nil

	default:
		return nil, nil, fmt.Errorf("unsupported compression type: %d", ct)
	}
}
