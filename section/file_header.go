package section

import (
	"bytes"
	"fmt"
	"time"

	"github.com/arloliu/ulog/cursor"
	"github.com/arloliu/ulog/errs"
)

// FileHeader is the fixed 16-byte prologue of a ULog file.
type FileHeader struct {
	// Version is the container format version byte.
	Version uint8 // byte offset 7
	// Timestamp is the recording start time in microseconds on the device
	// clock. The format defines no epoch for it beyond the clock being
	// monotonic, so it is an uptime-like value rather than wall time.
	Timestamp uint64 // byte offset 8-15
}

// Uptime returns the recording start timestamp as a duration on the
// device clock.
func (h FileHeader) Uptime() time.Duration {
	return time.Duration(h.Timestamp) * time.Microsecond
}

// ParseFileHeader consumes the 16-byte file header from cur.
//
// The 7-byte magic must match exactly, byte for byte; an input shorter than
// the magic or differing in any byte fails with errs.ErrBadMagic. This is
// the sole file-identification gate. A valid magic followed by a cut-short
// version or timestamp fails with errs.ErrTruncatedInput.
func ParseFileHeader(cur *cursor.Reader) (FileHeader, error) {
	if cur.Remaining() < MagicSize {
		return FileHeader{}, fmt.Errorf("%w: input of %d bytes is shorter than the %d-byte magic",
			errs.ErrBadMagic, cur.Remaining(), MagicSize)
	}

	magic, err := cur.Take(MagicSize)
	if err != nil {
		return FileHeader{}, err
	}
	if !bytes.Equal(magic, Magic[:]) {
		return FileHeader{}, fmt.Errorf("%w: got % X", errs.ErrBadMagic, magic)
	}

	version, err := cur.Uint8()
	if err != nil {
		return FileHeader{}, err
	}

	timestamp, err := cur.Uint64()
	if err != nil {
		return FileHeader{}, err
	}

	return FileHeader{Version: version, Timestamp: timestamp}, nil
}
