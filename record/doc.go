// Package record decodes the size-framed message stream of a ULog file.
//
// Each record is framed by a 3-byte message header (uint16 body size plus a
// tag byte); Next parses the header once, slices off exactly the declared
// body, and dispatches to the tag's body decoder through a fixed lookup
// table. Because every body decoder operates on a cursor scoped to its own
// body, a malformed declared size can never make a trailing field read past
// the record boundary or corrupt the framing of subsequent records.
//
// Decoding is strict: an unknown tag, a body extending past the input, an
// inconsistent declared key length, or invalid UTF-8 in a text field all
// fail the record with a sentinel error from the errs package. Records with
// a fixed-width body (remove_logged, sync, dropout) tolerate and ignore
// excess body bytes, the same leniency the flag-bits block receives.
//
// The typical consumer is the ulog root package, which drives Next in a
// loop and assembles the decoded records into a Log.
package record
