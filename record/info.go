package record

import (
	"bytes"

	"github.com/arloliu/ulog/cursor"
	"github.com/arloliu/ulog/section"
)

// Info carries a single key/value information entry. The key includes the
// value's type prefix (for example "char[5] sys_name"); the value bytes are
// opaque to the decoder.
type Info struct {
	Header section.MessageHeader
	Key    string
	Value  []byte
}

var _ Record = Info{}

func (r Info) Type() section.MsgType        { return section.TypeInfo }
func (r Info) Frame() section.MessageHeader { return r.Header }

func decodeInfo(hdr section.MessageHeader, body *cursor.Reader) (Record, error) {
	keyLen, err := body.Uint8()
	if err != nil {
		return nil, err
	}

	key, err := takeKey(body, keyLen)
	if err != nil {
		return nil, err
	}

	return Info{
		Header: hdr,
		Key:    key,
		Value:  bytes.Clone(body.Rest()),
	}, nil
}

// InfoMultiple carries one part of a multi-part information value. Parts
// sharing a key form one logical value: a part with IsContinued false
// starts a new value, true appends to the previous part's value.
type InfoMultiple struct {
	Header      section.MessageHeader
	IsContinued bool
	Key         string
	Value       []byte
}

var _ Record = InfoMultiple{}

func (r InfoMultiple) Type() section.MsgType        { return section.TypeInfoMultiple }
func (r InfoMultiple) Frame() section.MessageHeader { return r.Header }

func decodeInfoMultiple(hdr section.MessageHeader, body *cursor.Reader) (Record, error) {
	isContinued, err := body.Uint8()
	if err != nil {
		return nil, err
	}

	keyLen, err := body.Uint8()
	if err != nil {
		return nil, err
	}

	key, err := takeKey(body, keyLen)
	if err != nil {
		return nil, err
	}

	return InfoMultiple{
		Header:      hdr,
		IsContinued: isContinued != 0,
		Key:         key,
		Value:       bytes.Clone(body.Rest()),
	}, nil
}
