package section

import (
	"github.com/arloliu/ulog/cursor"
)

// MessageHeader is the 3-byte frame preceding every record body.
type MessageHeader struct {
	// Size is the declared body length in bytes. It never includes the
	// 3-byte message header itself.
	Size uint16 // byte offset 0-1
	// Type is the tag byte identifying the body shape that follows.
	Type MsgType // byte offset 2
}

// ParseMessageHeader consumes a 3-byte message header from cur. It performs
// no tag validation; callers decide which tags are acceptable in their
// position.
func ParseMessageHeader(cur *cursor.Reader) (MessageHeader, error) {
	size, err := cur.Uint16()
	if err != nil {
		return MessageHeader{}, err
	}

	tag, err := cur.Uint8()
	if err != nil {
		return MessageHeader{}, err
	}

	return MessageHeader{Size: size, Type: MsgType(tag)}, nil
}
