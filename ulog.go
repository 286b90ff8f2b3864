// Package ulog decodes the ULog binary container, the flight-log format
// written by PX4-family autopilots.
//
// A ULog file is a 16-byte file header, one mandatory flag-bits record,
// and then a flat stream of size-prefixed records: message type
// definitions, information entries, parameters, subscriptions, sampled
// data, logged strings, sync markers and dropout markers. This package
// reads a complete file from memory and hands every record back as a
// typed Go value, in file order.
//
// # Core Features
//
//   - One-shot decoding of in-memory buffers with eager header validation
//   - Typed record values for all twelve record kinds (see the record package)
//   - Strict by default, with opt-in lenient decoding of truncated files
//   - Transparent unwrapping of gzip, zstd, LZ4 and S2 compressed files
//   - Sentinel error taxonomy for precise failure classification (see the errs package)
//   - 64-bit xxHash64 fingerprints for log identity and deduplication
//
// # Basic Usage
//
// Decoding a buffer:
//
//	import "github.com/arloliu/ulog"
//
//	log, err := ulog.Decode(data)
//	if err != nil {
//	    // errors.Is against the errs package sentinels
//	}
//
//	fmt.Printf("version %d, booted %s before logging started\n",
//	    log.Header.Version, log.Header.Uptime())
//
//	for _, rec := range log.Records {
//	    switch r := rec.(type) {
//	    case record.Format:
//	        fmt.Println("format:", r.Definition)
//	    case record.Data:
//	        fmt.Println("data for msg", r.MsgID, "payload", len(r.Payload))
//	    }
//	}
//
// Reading a file, compressed or not:
//
//	log, err := ulog.ReadFile("flight_0042.ulg")
//
// Salvaging a log cut short mid-record:
//
//	log, err := ulog.Decode(data, ulog.WithAllowPartial())
//	if err == nil && log.Truncation != nil {
//	    fmt.Printf("kept %d records, lost the tail at offset %d: %v\n",
//	        len(log.Records), log.Truncation.Offset, log.Truncation.Err)
//	}
//
// # Package Structure
//
// This package provides convenient top-level entry points around the
// lower layers. For fine-grained control, use the layered packages
// directly: section parses the file header and flag bits, record decodes
// individual records from a cursor, compress sniffs and unwraps
// compression containers, and errs holds the sentinel errors.
package ulog

import (
	"github.com/arloliu/ulog/internal/hash"
)

// Decode decodes a complete in-memory ULog buffer.
//
// The buffer must hold the whole file: the file header, the flag-bits
// record, and zero or more records running to the exact end of the
// buffer. Compressed buffers are not unwrapped here; use ReadFile or
// compress.Unwrap first.
//
// Parameters:
//   - data: The raw file bytes
//   - opts: Optional configuration functions (see DecoderOption)
//
// Returns:
//   - *Log: The decoded log with records in file order.
//   - error: The first failure, classified by the errs package sentinels.
//
// Available options:
//   - WithAllowPartial() to keep the good prefix of a truncated file
//
// Example:
//
//	log, err := ulog.Decode(data)
//	if errors.Is(err, errs.ErrBadMagic) {
//	    // not a ULog file at all
//	}
func Decode(data []byte, opts ...DecoderOption) (*Log, error) {
	decoder, err := NewDecoder(data, opts...)
	if err != nil {
		return nil, err
	}

	return decoder.Decode()
}

// Fingerprint returns the 64-bit xxHash64 identity of raw log bytes.
//
// The fingerprint is deterministic, so the same file always hashes to the
// same value, which makes it suitable for naming decoded artifacts and
// for deduplicating logs collected more than once.
//
// Hash the bytes as stored: fingerprinting a compressed file and its
// unwrapped content gives different values.
//
// Example:
//
//	fp := ulog.Fingerprint(data)
//	name := fmt.Sprintf("%016x.json", fp)
func Fingerprint(data []byte) uint64 {
	return hash.Sum(data)
}
