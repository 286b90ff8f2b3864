package section

// Magic is the 7-byte literal identifying a ULog file at offset 0.
// It decodes as "ULog" followed by the bytes 0x01 0x12 0x35.
var Magic = [MagicSize]byte{0x55, 0x4C, 0x6F, 0x67, 0x01, 0x12, 0x35}

// Sizes of the fixed structures in the container.
const (
	MagicSize         = 7  // file magic length in bytes
	FileHeaderSize    = 16 // magic + version byte + uint64 timestamp
	MessageHeaderSize = 3  // uint16 size + tag byte
	FlagBitsSize      = 19 // 8 compat flags + 8 incompat flags + 3 appended offsets
)

// MsgType identifies the shape of a record body. The value is the literal
// tag byte stored in the message header.
type MsgType uint8

const (
	TypeFlagBits         MsgType = 'B' // mandatory flag-bits block after the file header
	TypeFormat           MsgType = 'F' // message type definition text
	TypeInfo             MsgType = 'I' // single key/value information entry
	TypeInfoMultiple     MsgType = 'M' // continuable key/value information entry
	TypeParameter        MsgType = 'P' // parameter key/value
	TypeParameterDefault MsgType = 'Q' // parameter key/value with default-type bitmask
	TypeAddLogged        MsgType = 'A' // subscription of a named message to a msg_id
	TypeRemoveLogged     MsgType = 'R' // unsubscription of a msg_id
	TypeData             MsgType = 'D' // sampled data payload for a subscribed msg_id
	TypeLogging          MsgType = 'L' // free-form logged string
	TypeLoggingTagged    MsgType = 'C' // logged string with a numeric tag
	TypeSync             MsgType = 'S' // stream synchronization marker
	TypeDropout          MsgType = 'O' // data loss gap marker
)

// String returns the conventional lowercase message name for the tag.
func (t MsgType) String() string {
	switch t {
	case TypeFlagBits:
		return "flag_bits"
	case TypeFormat:
		return "format"
	case TypeInfo:
		return "info"
	case TypeInfoMultiple:
		return "info_multiple"
	case TypeParameter:
		return "parameter"
	case TypeParameterDefault:
		return "parameter_default"
	case TypeAddLogged:
		return "add_logged"
	case TypeRemoveLogged:
		return "remove_logged"
	case TypeData:
		return "data"
	case TypeLogging:
		return "logging"
	case TypeLoggingTagged:
		return "logging_tagged"
	case TypeSync:
		return "sync"
	case TypeDropout:
		return "dropout"
	default:
		return "unknown"
	}
}
