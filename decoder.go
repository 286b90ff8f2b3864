package ulog

import (
	"github.com/arloliu/ulog/cursor"
	"github.com/arloliu/ulog/internal/options"
	"github.com/arloliu/ulog/record"
	"github.com/arloliu/ulog/section"
)

// DecoderOption configures a Decoder.
type DecoderOption = options.Option[*Decoder]

// WithAllowPartial switches the decoder to lenient mode: a record-level
// failure stops the scan and reports the good prefix through
// Log.Truncation instead of returning an error.
//
// File header and flag-bits failures are never absorbed. A log whose
// preamble is broken decodes to nothing in either mode.
func WithAllowPartial() DecoderOption {
	return options.NoError(func(d *Decoder) {
		d.allowPartial = true
	})
}

// Decoder decodes one in-memory ULog buffer.
//
// The constructor validates the file header eagerly, so a Decoder in hand
// is already known to point at a ULog file. Decode then consumes the rest
// of the buffer.
//
// A Decoder is NOT safe for concurrent use and is NOT reusable. After
// Decode returns, create a new Decoder to decode again.
type Decoder struct {
	cur          *cursor.Reader
	header       section.FileHeader
	allowPartial bool
}

// NewDecoder creates a decoder over data and validates the file header.
//
// Returns errs.ErrBadMagic when data does not start with the ULog magic,
// or errs.ErrTruncatedInput when the header itself is cut short.
func NewDecoder(data []byte, opts ...DecoderOption) (*Decoder, error) {
	d := &Decoder{cur: cursor.New(data)}

	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}

	header, err := section.ParseFileHeader(d.cur)
	if err != nil {
		return nil, err
	}
	d.header = header

	return d, nil
}

// Header returns the file header validated at construction.
func (d *Decoder) Header() section.FileHeader {
	return d.header
}

// Decode consumes the buffer after the file header and returns the
// decoded log.
//
// The flag-bits record must come first. Every following record is decoded
// through its declared size, in order, until the buffer is exhausted. In
// strict mode (the default) the first failure aborts the decode; with
// WithAllowPartial the failure is recorded in Log.Truncation and the good
// prefix is returned instead.
func (d *Decoder) Decode() (*Log, error) {
	log := &Log{Header: d.header}

	// Step 1: flag bits, mandatory and first. Broken preambles fail in
	// both modes.
	flagBits, err := section.ParseFlagBits(d.cur)
	if err != nil {
		return nil, err
	}
	log.FlagBits = flagBits

	// Step 2: record stream to exact exhaustion. Zero records is a
	// valid log.
	for d.cur.Remaining() > 0 {
		start := d.cur.Offset()

		rec, err := record.Next(d.cur)
		if err != nil {
			if d.allowPartial {
				log.Truncation = &Truncation{Offset: start, Err: err}
				return log, nil
			}

			return nil, err
		}

		log.Records = append(log.Records, rec)
	}

	return log, nil
}
