package record

import (
	"bytes"

	"github.com/arloliu/ulog/cursor"
	"github.com/arloliu/ulog/section"
)

// Parameter carries one parameter key/value. The key includes the value's
// type prefix (for example "float MC_PITCH_P"); the value bytes are opaque
// to the decoder.
type Parameter struct {
	Header section.MessageHeader
	Key    string
	Value  []byte
}

var _ Record = Parameter{}

func (r Parameter) Type() section.MsgType        { return section.TypeParameter }
func (r Parameter) Frame() section.MessageHeader { return r.Header }

func decodeParameter(hdr section.MessageHeader, body *cursor.Reader) (Record, error) {
	keyLen, err := body.Uint8()
	if err != nil {
		return nil, err
	}

	key, err := takeKey(body, keyLen)
	if err != nil {
		return nil, err
	}

	return Parameter{
		Header: hdr,
		Key:    key,
		Value:  bytes.Clone(body.Rest()),
	}, nil
}

// ParameterDefault carries a parameter key/value together with a bitmask
// naming the default configurations the value belongs to.
type ParameterDefault struct {
	Header section.MessageHeader
	// DefaultTypes is the raw default-configuration bitmask.
	DefaultTypes uint8
	Key          string
	Value        []byte
}

var _ Record = ParameterDefault{}

func (r ParameterDefault) Type() section.MsgType        { return section.TypeParameterDefault }
func (r ParameterDefault) Frame() section.MessageHeader { return r.Header }

func decodeParameterDefault(hdr section.MessageHeader, body *cursor.Reader) (Record, error) {
	defaultTypes, err := body.Uint8()
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

	return ParameterDefault{
		Header:       hdr,
		DefaultTypes: defaultTypes,
		Key:          key,
		Value:        bytes.Clone(body.Rest()),
	}, nil
}
