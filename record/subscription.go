package record

import (
	"github.com/arloliu/ulog/cursor"
	"github.com/arloliu/ulog/section"
)

// AddLogged subscribes a named message format to a msg_id: data records
// carrying that msg_id sample the named format from this point on. MultiID
// discriminates multiple concurrently logged instances of the same format.
type AddLogged struct {
	Header      section.MessageHeader
	MultiID     uint8
	MsgID       uint16
	MessageName string
}

var _ Record = AddLogged{}

func (r AddLogged) Type() section.MsgType        { return section.TypeAddLogged }
func (r AddLogged) Frame() section.MessageHeader { return r.Header }

func decodeAddLogged(hdr section.MessageHeader, body *cursor.Reader) (Record, error) {
	multiID, err := body.Uint8()
	if err != nil {
		return nil, err
	}

	msgID, err := body.Uint16()
	if err != nil {
		return nil, err
	}

	name, err := takeText(body, "message name")
	if err != nil {
		return nil, err
	}

	return AddLogged{
		Header:      hdr,
		MultiID:     multiID,
		MsgID:       msgID,
		MessageName: name,
	}, nil
}

// RemoveLogged ends the subscription of a msg_id.
type RemoveLogged struct {
	Header section.MessageHeader
	MsgID  uint16
}

var _ Record = RemoveLogged{}

func (r RemoveLogged) Type() section.MsgType        { return section.TypeRemoveLogged }
func (r RemoveLogged) Frame() section.MessageHeader { return r.Header }

func decodeRemoveLogged(hdr section.MessageHeader, body *cursor.Reader) (Record, error) {
	msgID, err := body.Uint16()
	if err != nil {
		return nil, err
	}

	return RemoveLogged{Header: hdr, MsgID: msgID}, nil
}
