package ulog

import (
	"fmt"
	"os"

	"github.com/arloliu/ulog/compress"
)

// ReadFile reads a ULog file from disk and decodes it.
//
// The file may be stored bare or wrapped in a recognized compression
// container (gzip, zstd, LZ4 frame, S2 stream); containers are detected
// by their leading magic and unwrapped transparently before decoding.
//
// Decode failures are wrapped with the file path.
func ReadFile(path string, opts ...DecoderOption) (*Log, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	raw, _, err := compress.Unwrap(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log, err := Decode(raw, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return log, nil
}
