package record

import (
	"fmt"
	"unicode/utf8"

	"github.com/arloliu/ulog/cursor"
	"github.com/arloliu/ulog/errs"
	"github.com/arloliu/ulog/section"
)

// Record is one decoded, tag-identified unit from the record stream.
//
// Concrete implementations are the twelve message types of the container
// format. Callers recover the concrete shape with a type switch:
//
//	switch r := rec.(type) {
//	case record.Data:
//	    process(r.MsgID, r.Payload)
//	case record.Logging:
//	    fmt.Println(r.Message)
//	}
//
// Every record owns its decoded strings and byte slices; none alias the
// input buffer after decoding returns.
type Record interface {
	// Type returns the tag identifying the record shape.
	Type() section.MsgType
	// Frame returns a copy of the record's framing message header, kept
	// for diagnostics even though it is redundant with Type.
	Frame() section.MessageHeader
}

// bodyDecoder parses one record body. The cursor is scoped to exactly the
// declared body, so trailing-field lengths are simply the body remainder
// and can never underflow past the record boundary.
type bodyDecoder func(hdr section.MessageHeader, body *cursor.Reader) (Record, error)

// bodyDecoders maps each known tag to its body decoder. The flag-bits tag
// is deliberately absent: that block is parsed positionally by
// section.ParseFlagBits, never from the record stream.
var bodyDecoders = map[section.MsgType]bodyDecoder{
	section.TypeFormat:           decodeFormat,
	section.TypeInfo:             decodeInfo,
	section.TypeInfoMultiple:     decodeInfoMultiple,
	section.TypeParameter:        decodeParameter,
	section.TypeParameterDefault: decodeParameterDefault,
	section.TypeAddLogged:        decodeAddLogged,
	section.TypeRemoveLogged:     decodeRemoveLogged,
	section.TypeData:             decodeData,
	section.TypeLogging:          decodeLogging,
	section.TypeLoggingTagged:    decodeLoggingTagged,
	section.TypeSync:             decodeSync,
	section.TypeDropout:          decodeDropout,
}

// Next decodes the record starting at the cursor position: a 3-byte
// message header, then a body of exactly the declared size handed to the
// tag's body decoder.
//
// A tag outside the known message set fails with errs.ErrUnexpectedTag. A
// declared body longer than the remaining input fails with
// errs.ErrTruncatedInput before any body parsing runs.
func Next(cur *cursor.Reader) (Record, error) {
	start := cur.Offset()

	hdr, err := section.ParseMessageHeader(cur)
	if err != nil {
		return nil, err
	}

	decode, ok := bodyDecoders[hdr.Type]
	if !ok {
		return nil, fmt.Errorf("%w: tag 0x%02X at offset %d",
			errs.ErrUnexpectedTag, uint8(hdr.Type), start)
	}

	body, err := cur.Take(int(hdr.Size))
	if err != nil {
		return nil, fmt.Errorf("%s record at offset %d: %w", hdr.Type, start, err)
	}

	rec, err := decode(hdr, cursor.New(body))
	if err != nil {
		return nil, fmt.Errorf("%s record at offset %d: %w", hdr.Type, start, err)
	}

	return rec, nil
}

// takeKey consumes a declared-length key from the record body and returns
// it as an owned string. The declared length is validated against the body
// remainder first, so a key_len inconsistent with the record's size fails
// with errs.ErrInvalidLength instead of underflowing the trailing value.
func takeKey(body *cursor.Reader, keyLen uint8) (string, error) {
	if int(keyLen) > body.Remaining() {
		return "", fmt.Errorf("%w: key length %d exceeds remaining body %d",
			errs.ErrInvalidLength, keyLen, body.Remaining())
	}

	key, err := body.Take(int(keyLen))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(key) {
		return "", fmt.Errorf("%w: key", errs.ErrInvalidText)
	}

	return string(key), nil
}

// takeText consumes the rest of the record body as an owned UTF-8 string.
func takeText(body *cursor.Reader, field string) (string, error) {
	raw := body.Rest()
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: %s", errs.ErrInvalidText, field)
	}

	return string(raw), nil
}
