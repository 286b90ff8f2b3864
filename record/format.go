package record

import (
	"github.com/arloliu/ulog/cursor"
	"github.com/arloliu/ulog/section"
)

// Format carries one message type definition. The definition text follows
// the container's "name:field0;field1;..." grammar; interpreting it is left
// to the consumer.
type Format struct {
	Header     section.MessageHeader
	Definition string
}

var _ Record = Format{}

func (r Format) Type() section.MsgType        { return section.TypeFormat }
func (r Format) Frame() section.MessageHeader { return r.Header }

func decodeFormat(hdr section.MessageHeader, body *cursor.Reader) (Record, error) {
	definition, err := takeText(body, "type definition")
	if err != nil {
		return nil, err
	}

	return Format{Header: hdr, Definition: definition}, nil
}
