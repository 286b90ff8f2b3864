// Package compress identifies and unwraps the compression containers that
// flight logs are commonly archived in.
//
// Log producers write bare ULog files, but files at rest and in transit are
// routinely wrapped in a general-purpose compression container. This
// package lets the ingest path accept either form: Detect sniffs the
// container from the leading magic bytes, and Unwrap hands back the bare
// log buffer ready for decoding.
//
// # Supported Containers
//
//	Type     | Magic (leading bytes)     | Typical origin
//	---------|---------------------------|---------------------------
//	none     | 55 4C 6F 67 01 12 35      | bare ULog file
//	gzip     | 1F 8B                     | gzip, HTTP transfer
//	zstd     | 28 B5 2F FD               | zstd CLI, archival
//	lz4      | 04 22 4D 18               | lz4 CLI frame format
//	s2       | FF 06 00 00 + identifier  | S2/snappy framed stream
//
// Only self-identifying formats appear here: headerless block formats
// cannot be sniffed and are not supported.
//
// # Architecture
//
// Each container is a Codec:
//
//	type Codec interface {
//	    Compressor   // Compress(data []byte) ([]byte, error)
//	    Decompressor // Decompress(data []byte) ([]byte, error)
//	}
//
// The read path only decompresses; Compress exists so tooling and tests
// can produce wrapped fixtures. All codecs are stateless values, safe for
// concurrent use, with hot internal state (zstd coders, gzip windows) held
// in pools.
//
// Zstd has two implementations selected at build time: cgo builds bind
// libzstd, pure Go builds use a pooled stream codec.
//
// # Usage
//
// Unwrapping an archived log before decoding:
//
//	raw, typ, err := compress.Unwrap(fileBytes)
//	if err != nil {
//	    return err // errs.ErrUnknownCompression for unrecognized input
//	}
//	log, err := ulog.Decode(raw)
//
// Most users reach this path through ulog.ReadFile, which performs the
// read-unwrap-decode sequence in one call.
package compress
