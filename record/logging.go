package record

import (
	"github.com/arloliu/ulog/cursor"
	"github.com/arloliu/ulog/section"
)

// Logging carries one free-form logged string.
type Logging struct {
	Header section.MessageHeader
	// LogLevel is the raw severity byte as written by the producer.
	LogLevel uint8
	// Timestamp is in microseconds on the device clock.
	Timestamp uint64
	Message   string
}

var _ Record = Logging{}

func (r Logging) Type() section.MsgType        { return section.TypeLogging }
func (r Logging) Frame() section.MessageHeader { return r.Header }

func decodeLogging(hdr section.MessageHeader, body *cursor.Reader) (Record, error) {
	level, err := body.Uint8()
	if err != nil {
		return nil, err
	}

	timestamp, err := body.Uint64()
	if err != nil {
		return nil, err
	}

	message, err := takeText(body, "log message")
	if err != nil {
		return nil, err
	}

	return Logging{
		Header:    hdr,
		LogLevel:  level,
		Timestamp: timestamp,
		Message:   message,
	}, nil
}

// LoggingTagged carries one logged string attributed to a numeric tag,
// typically identifying the emitting subsystem or process.
type LoggingTagged struct {
	Header   section.MessageHeader
	LogLevel uint8
	Tag      uint16
	// Timestamp is in microseconds on the device clock.
	Timestamp uint64
	Message   string
}

var _ Record = LoggingTagged{}

func (r LoggingTagged) Type() section.MsgType        { return section.TypeLoggingTagged }
func (r LoggingTagged) Frame() section.MessageHeader { return r.Header }

func decodeLoggingTagged(hdr section.MessageHeader, body *cursor.Reader) (Record, error) {
	level, err := body.Uint8()
	if err != nil {
		return nil, err
	}

	tag, err := body.Uint16()
	if err != nil {
		return nil, err
	}

	timestamp, err := body.Uint64()
	if err != nil {
		return nil, err
	}

	message, err := takeText(body, "log message")
	if err != nil {
		return nil, err
	}

	return LoggingTagged{
		Header:    hdr,
		LogLevel:  level,
		Tag:       tag,
		Timestamp: timestamp,
		Message:   message,
	}, nil
}
