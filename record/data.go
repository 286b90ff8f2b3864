package record

import (
	"bytes"

	"github.com/arloliu/ulog/cursor"
	"github.com/arloliu/ulog/section"
)

// Data carries one sampled payload for a subscribed msg_id. The payload
// layout is defined by the Format record named in the subscription; the
// decoder exposes it as opaque bytes.
type Data struct {
	Header  section.MessageHeader
	MsgID   uint16
	Payload []byte
}

var _ Record = Data{}

func (r Data) Type() section.MsgType        { return section.TypeData }
func (r Data) Frame() section.MessageHeader { return r.Header }

func decodeData(hdr section.MessageHeader, body *cursor.Reader) (Record, error) {
	msgID, err := body.Uint16()
	if err != nil {
		return nil, err
	}

	return Data{
		Header:  hdr,
		MsgID:   msgID,
		Payload: bytes.Clone(body.Rest()),
	}, nil
}
