package compress

// ZstdCompressor provides Zstandard frame compression for whole log
// containers.
//
// Zstd offers the best ratio/speed balance for archived flight logs and is
// the recommended wrapper for long-term retention. Two implementations are
// selected at build time:
//   - cgo builds use the libzstd binding for maximum throughput
//   - pure Go builds use a pooled stream codec with no C dependency
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
