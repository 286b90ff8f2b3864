package compress

import "fmt"

// Type identifies the compression container wrapped around a log file.
type Type uint8

const (
	// TypeNone marks a bare, uncompressed ULog file.
	TypeNone Type = iota
	// TypeGzip marks a gzip member stream.
	TypeGzip
	// TypeZstd marks a Zstandard frame.
	TypeZstd
	// TypeLZ4 marks an LZ4 frame.
	TypeLZ4
	// TypeS2 marks an S2/snappy framed stream.
	TypeS2
	// TypeUnknown marks input matching neither the ULog magic nor a
	// recognized compression magic.
	TypeUnknown
)

// String returns the lowercase name of the compression type.
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeGzip:
		return "gzip"
	case TypeZstd:
		return "zstd"
	case TypeLZ4:
		return "lz4"
	case TypeS2:
		return "s2"
	default:
		return "unknown"
	}
}

// Compressor compresses a whole in-memory buffer.
type Compressor interface {
	// Compress compresses the input and returns a newly allocated result.
	// The input slice is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor expands a whole in-memory compressed buffer.
//
// Implementations must be safe for concurrent use; internal buffers are
// pooled, never shared across calls.
type Decompressor interface {
	// Decompress expands the input and returns a newly allocated result.
	// It fails when the input is corrupt or belongs to a different
	// compression format.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one compression format. The read path
// only decompresses; Compress exists so tooling and tests can produce
// wrapped fixtures.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Type]Codec{
	TypeNone: NewNoOpCompressor(),
	TypeGzip: NewGzipCompressor(),
	TypeZstd: NewZstdCompressor(),
	TypeLZ4:  NewLZ4Compressor(),
	TypeS2:   NewS2Compressor(),
}

// ForType retrieves the built-in Codec for the given compression type.
func ForType(t Type) (Codec, error) {
	if codec, ok := builtinCodecs[t]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", t)
}
