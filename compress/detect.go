package compress

import (
	"bytes"
	"fmt"

	"github.com/arloliu/ulog/errs"
	"github.com/arloliu/ulog/section"
)

// Leading magic bytes of the supported compression containers.
var (
	gzipMagic = []byte{0x1F, 0x8B}
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4Magic  = []byte{0x04, 0x22, 0x4D, 0x18}

	// The framed snappy/S2 stream opens with a stream-identifier chunk:
	// type 0xFF, 3-byte length 6, then a 6-byte format name.
	s2ChunkHeader = []byte{0xFF, 0x06, 0x00, 0x00}
)

// Detect sniffs the compression container from the leading magic bytes.
// Input starting with the ULog file magic reports TypeNone; input matching
// no known magic reports TypeUnknown.
func Detect(data []byte) Type {
	switch {
	case bytes.HasPrefix(data, section.Magic[:]):
		return TypeNone
	case bytes.HasPrefix(data, gzipMagic):
		return TypeGzip
	case bytes.HasPrefix(data, zstdMagic):
		return TypeZstd
	case bytes.HasPrefix(data, lz4Magic):
		return TypeLZ4
	case isS2Stream(data):
		return TypeS2
	default:
		return TypeUnknown
	}
}

func isS2Stream(data []byte) bool {
	if len(data) < 10 || !bytes.HasPrefix(data, s2ChunkHeader) {
		return false
	}

	switch string(data[4:10]) {
	case "S2sTwO", "sNaPpY":
		return true
	default:
		return false
	}
}

// Unwrap detects the compression wrapped around data and returns the
// decompressed content together with the detected type.
//
// Bare ULog input passes through untouched with TypeNone. Input matching no
// known magic fails with errs.ErrUnknownCompression; whether the content
// inside a recognized wrapper is actually a valid log is left to the
// decoder.
func Unwrap(data []byte) ([]byte, Type, error) {
	typ := Detect(data)
	switch typ {
	case TypeNone:
		return data, typ, nil
	case TypeUnknown:
		return nil, typ, fmt.Errorf("%w: leading bytes % X",
			errs.ErrUnknownCompression, data[:min(len(data), 8)])
	}

	codec, err := ForType(typ)
	if err != nil {
		return nil, typ, err
	}

	raw, err := codec.Decompress(data)
	if err != nil {
		return nil, typ, fmt.Errorf("%s container: %w", typ, err)
	}

	return raw, typ, nil
}
