package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/gzip"
)

// gzipWriterPool pools gzip writers for reuse; a gzip.Writer carries large
// internal compression state that is expensive to reallocate per call.
var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(io.Discard)
	},
}

// gzipReaderPool pools gzip readers, rebound to each input with Reset.
var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// GzipCompressor provides gzip compression for whole log containers. Gzip
// is the most common wrapper for archived flight logs since it is what
// generic tooling produces by default.
type GzipCompressor struct{}

var _ Codec = (*GzipCompressor)(nil)

// NewGzipCompressor creates a new gzip compressor with default settings.
func NewGzipCompressor() GzipCompressor {
	return GzipCompressor{}
}

// Compress compresses the input into a single gzip member stream.
func (c GzipCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	writer, _ := gzipWriterPool.Get().(*gzip.Writer)
	defer gzipWriterPool.Put(writer)

	var buf bytes.Buffer
	buf.Grow(len(data) / 2)
	writer.Reset(&buf)

	if _, err := writer.Write(data); err != nil {
		return nil, fmt.Errorf("gzip compression failed: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("gzip compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress expands a gzip member stream.
func (c GzipCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	reader, _ := gzipReaderPool.Get().(*gzip.Reader)
	defer gzipReaderPool.Put(reader)

	if err := reader.Reset(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("gzip decompression failed: %w", err)
	}

	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("gzip decompression failed: %w", err)
	}
	if err := reader.Close(); err != nil {
		return nil, fmt.Errorf("gzip decompression failed: %w", err)
	}

	return raw, nil
}
