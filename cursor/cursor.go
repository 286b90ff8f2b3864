// Package cursor provides the primitive byte readers used by ulog decoding.
//
// A Reader walks an in-memory buffer and exposes the handful of shapes the
// ULog container is built from: unsigned little-endian integers and
// length-delimited byte runs. Reads never panic on short input; they return
// an error wrapping errs.ErrTruncatedInput that records the offset and the
// need/have byte counts.
//
// Returned slices alias the underlying buffer. Callers that retain data
// beyond the decode call must copy (the record package does).
package cursor

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/ulog/errs"
)

// Reader is a forward-only cursor over an immutable byte buffer.
//
// The zero value is an empty reader; use New to wrap a buffer.
type Reader struct {
	data []byte
	off  int
}

// New returns a Reader positioned at the start of data.
// The Reader does not copy data and never mutates it.
func New(data []byte) *Reader {
	return &Reader{data: data}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.off
}

// Remaining returns the number of unconsumed bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.off
}

// Uint8 consumes one byte.
func (r *Reader) Uint8() (uint8, error) {
	if r.Remaining() < 1 {
		return 0, r.short(1)
	}

	v := r.data[r.off]
	r.off++

	return v, nil
}

// Uint16 consumes two bytes as a little-endian uint16.
func (r *Reader) Uint16() (uint16, error) {
	if r.Remaining() < 2 {
		return 0, r.short(2)
	}

	v := binary.LittleEndian.Uint16(r.data[r.off:])
	r.off += 2

	return v, nil
}

// Uint64 consumes eight bytes as a little-endian uint64.
func (r *Reader) Uint64() (uint64, error) {
	if r.Remaining() < 8 {
		return 0, r.short(8)
	}

	v := binary.LittleEndian.Uint64(r.data[r.off:])
	r.off += 8

	return v, nil
}

// Take consumes exactly n bytes and returns them as a subslice of the
// underlying buffer. It fails when fewer than n bytes remain.
func (r *Reader) Take(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, r.short(n)
	}

	b := r.data[r.off : r.off+n]
	r.off += n

	return b, nil
}

// Rest consumes and returns all remaining bytes. The returned slice may be
// empty but is never nil.
func (r *Reader) Rest() []byte {
	b := r.data[r.off:]
	r.off = len(r.data)

	return b
}

func (r *Reader) short(need int) error {
	return fmt.Errorf("%w: need %d bytes at offset %d, have %d",
		errs.ErrTruncatedInput, need, r.off, r.Remaining())
}
