package section

import (
	"fmt"

	"github.com/arloliu/ulog/cursor"
	"github.com/arloliu/ulog/errs"
)

// Known flag bit masks. Each applies to byte 0 of its flag array.
const (
	compatDefaultParams = 0x01 // parameter_default records may be present
	incompatAppended    = 0x01 // data sections are appended at AppendedOffsets
)

// FlagBits is the mandatory first record of every ULog file, carrying the
// compatibility bitmasks and the offsets of appended data sections.
type FlagBits struct {
	// Header is the framing message header, always tag 'B'.
	Header MessageHeader

	// CompatFlags are compatibility bits. A reader can safely decode the
	// file even when bits it does not know are set.
	CompatFlags [8]byte
	// IncompatFlags are incompatibility bits. A strict reader should
	// refuse files with unknown set bits; this decoder exposes them via
	// HasUnknownIncompat without enforcing rejection.
	IncompatFlags [8]byte
	// AppendedOffsets are file offsets of data sections appended after the
	// regular record stream. Zero entries are unused.
	AppendedOffsets [3]byte
}

// HasDefaultParameters reports whether the default-parameters compat bit
// is set.
func (f FlagBits) HasDefaultParameters() bool {
	return f.CompatFlags[0]&compatDefaultParams != 0
}

// DataAppended reports whether the appended-data incompat bit is set, in
// which case AppendedOffsets locate the appended sections.
func (f FlagBits) DataAppended() bool {
	return f.IncompatFlags[0]&incompatAppended != 0
}

// HasUnknownIncompat reports whether any incompatibility bit beyond the
// known set is raised. Callers wanting strict compatibility semantics can
// reject the file when this returns true.
func (f FlagBits) HasUnknownIncompat() bool {
	if f.IncompatFlags[0]&^byte(incompatAppended) != 0 {
		return true
	}
	for _, b := range f.IncompatFlags[1:] {
		if b != 0 {
			return true
		}
	}

	return false
}

// ParseFlagBits consumes the mandatory flag-bits record from cur. It must
// be called with the cursor positioned directly after the file header.
//
// The message header must carry tag 'B' (else errs.ErrUnexpectedTag). The
// declared body is consumed in full; the first 19 bytes are carved into
// flags and offsets, and any excess body bytes are ignored. A body shorter
// than 19 bytes fails with errs.ErrTruncatedInput.
func ParseFlagBits(cur *cursor.Reader) (FlagBits, error) {
	hdr, err := ParseMessageHeader(cur)
	if err != nil {
		return FlagBits{}, err
	}
	if hdr.Type != TypeFlagBits {
		return FlagBits{}, fmt.Errorf("%w: want flag_bits tag 'B' after the file header, got 0x%02X (%s)",
			errs.ErrUnexpectedTag, uint8(hdr.Type), hdr.Type)
	}

	body, err := cur.Take(int(hdr.Size))
	if err != nil {
		return FlagBits{}, err
	}

	flags := FlagBits{Header: hdr}
	bcur := cursor.New(body)

	compat, err := bcur.Take(len(flags.CompatFlags))
	if err != nil {
		return FlagBits{}, fmt.Errorf("flag bits body: %w", err)
	}
	copy(flags.CompatFlags[:], compat)

	incompat, err := bcur.Take(len(flags.IncompatFlags))
	if err != nil {
		return FlagBits{}, fmt.Errorf("flag bits body: %w", err)
	}
	copy(flags.IncompatFlags[:], incompat)

	offsets, err := bcur.Take(len(flags.AppendedOffsets))
	if err != nil {
		return FlagBits{}, fmt.Errorf("flag bits body: %w", err)
	}
	copy(flags.AppendedOffsets[:], offsets)

	return flags, nil
}
