package ulog

import (
	"github.com/arloliu/ulog/record"
	"github.com/arloliu/ulog/section"
)

// Log is one fully decoded flight log: the file header, the mandatory
// flag-bits block, and every record in file order. Record order is
// semantically significant and is preserved exactly.
//
// A Log is immutable after decoding and safe for concurrent reads.
type Log struct {
	Header   section.FileHeader
	FlagBits section.FlagBits
	Records  []record.Record

	// Truncation is non-nil only when the log was decoded with
	// WithAllowPartial and the record scan stopped early. Records then
	// holds the good prefix.
	Truncation *Truncation
}

// Truncation describes where and why a lenient decode stopped.
type Truncation struct {
	// Offset is the byte offset of the first record that failed to
	// decode, relative to the start of the log buffer.
	Offset int
	// Err is the failure that stopped the scan.
	Err error
}

// LogLine is a uniform view over plain and tagged log messages.
type LogLine struct {
	// Level is the raw severity byte as written by the producer.
	Level uint8
	// Tag is the numeric tag of a tagged message; zero when Tagged is
	// false.
	Tag    uint16
	Tagged bool
	// Timestamp is in microseconds on the device clock.
	Timestamp uint64
	Message   string
}

func collect[T record.Record](records []record.Record) []T {
	var out []T
	for _, rec := range records {
		if v, ok := rec.(T); ok {
			out = append(out, v)
		}
	}

	return out
}

// Formats returns the message type definitions in file order.
func (l *Log) Formats() []record.Format {
	return collect[record.Format](l.Records)
}

// Infos returns the single-part information entries in file order.
// Multi-part entries are available by walking Records.
func (l *Log) Infos() []record.Info {
	return collect[record.Info](l.Records)
}

// Parameters returns the parameter records in file order. A key appearing
// more than once reflects a parameter change during the flight.
func (l *Log) Parameters() []record.Parameter {
	return collect[record.Parameter](l.Records)
}

// ParameterDefaults returns the default-parameter records in file order.
func (l *Log) ParameterDefaults() []record.ParameterDefault {
	return collect[record.ParameterDefault](l.Records)
}

// Subscriptions returns the add_logged records in file order.
func (l *Log) Subscriptions() []record.AddLogged {
	return collect[record.AddLogged](l.Records)
}

// Dropouts returns the data-loss markers in file order.
func (l *Log) Dropouts() []record.Dropout {
	return collect[record.Dropout](l.Records)
}

// Messages returns all logged strings, plain and tagged, in file order.
func (l *Log) Messages() []LogLine {
	var out []LogLine
	for _, rec := range l.Records {
		switch r := rec.(type) {
		case record.Logging:
			out = append(out, LogLine{
				Level:     r.LogLevel,
				Timestamp: r.Timestamp,
				Message:   r.Message,
			})
		case record.LoggingTagged:
			out = append(out, LogLine{
				Level:     r.LogLevel,
				Tag:       r.Tag,
				Tagged:    true,
				Timestamp: r.Timestamp,
				Message:   r.Message,
			})
		}
	}

	return out
}

// Count returns the number of records carrying the given tag.
func (l *Log) Count(t section.MsgType) int {
	n := 0
	for _, rec := range l.Records {
		if rec.Type() == t {
			n++
		}
	}

	return n
}
