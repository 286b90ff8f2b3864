package record

import (
	"time"

	"github.com/arloliu/ulog/cursor"
	"github.com/arloliu/ulog/section"
)

// Sync is a stream synchronization marker carrying a single magic byte.
type Sync struct {
	Header    section.MessageHeader
	SyncMagic uint8
}

var _ Record = Sync{}

func (r Sync) Type() section.MsgType        { return section.TypeSync }
func (r Sync) Frame() section.MessageHeader { return r.Header }

func decodeSync(hdr section.MessageHeader, body *cursor.Reader) (Record, error) {
	magic, err := body.Uint8()
	if err != nil {
		return nil, err
	}

	return Sync{Header: hdr, SyncMagic: magic}, nil
}

// Dropout marks a gap in data capture.
type Dropout struct {
	Header section.MessageHeader
	// Duration is the gap length in milliseconds.
	Duration uint16
}

var _ Record = Dropout{}

func (r Dropout) Type() section.MsgType        { return section.TypeDropout }
func (r Dropout) Frame() section.MessageHeader { return r.Header }

// Gap returns the dropout duration as a time.Duration.
func (r Dropout) Gap() time.Duration {
	return time.Duration(r.Duration) * time.Millisecond
}

func decodeDropout(hdr section.MessageHeader, body *cursor.Reader) (Record, error) {
	duration, err := body.Uint16()
	if err != nil {
		return nil, err
	}

	return Dropout{Header: hdr, Duration: duration}, nil
}
