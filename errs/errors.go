// Package errs defines the sentinel errors returned by ulog decoding.
//
// Every error produced while decoding a log wraps exactly one of these
// sentinels, so callers can classify failures with errors.Is without
// depending on message text:
//
//	log, err := ulog.Decode(data)
//	if errors.Is(err, errs.ErrTruncatedInput) {
//	    // stream ended mid-record
//	}
//
// Decoders attach positional detail (byte offsets, declared vs. available
// sizes) via fmt.Errorf("%w: ...") wrapping.
package errs

import "errors"

var (
	// ErrBadMagic indicates the input does not begin with the ULog file
	// magic, or the trailer bytes of the magic do not match.
	ErrBadMagic = errors.New("ulog: bad file magic")

	// ErrUnexpectedTag indicates a record tag outside the known message
	// set, or a message appearing where the format forbids it (for
	// example, a missing flag-bits message directly after the header).
	ErrUnexpectedTag = errors.New("ulog: unexpected message tag")

	// ErrTruncatedInput indicates the input ended before a fixed-size
	// field or a declared record body was complete.
	ErrTruncatedInput = errors.New("ulog: truncated input")

	// ErrInvalidLength indicates a declared length field that is
	// inconsistent with the record containing it, such as a key length
	// exceeding the remaining record body.
	ErrInvalidLength = errors.New("ulog: invalid declared length")

	// ErrInvalidText indicates a text field that is not valid UTF-8.
	ErrInvalidText = errors.New("ulog: invalid UTF-8 text")

	// ErrUnknownCompression indicates a compressed container whose
	// format could not be identified from its leading magic bytes.
	ErrUnknownCompression = errors.New("ulog: unknown compression format")
)
