// Package section defines the low-level binary structures and constants of
// the ULog container format.
//
// This package provides the foundational types that define the physical
// layout of a ULog file: the file header, the generic message header that
// frames every record, and the mandatory flag-bits block. It handles the
// byte-level parsing of these fixed structures, ensuring a consistent
// representation across platforms.
//
// # Container Structure
//
// A ULog file is a fixed header followed by size-framed records:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ File Header (16 bytes, fixed)                           │
//	│  - Magic (7 bytes): 55 4C 6F 67 01 12 35                │
//	│  - Version (1 byte)                                     │
//	│  - Timestamp (8 bytes): uint64 LE, microseconds         │
//	├─────────────────────────────────────────────────────────┤
//	│ Flag Bits Record (3 + 19 bytes, mandatory, tag 'B')     │
//	│  - CompatFlags (8 bytes)                                │
//	│  - IncompatFlags (8 bytes)                              │
//	│  - AppendedOffsets (3 bytes)                            │
//	├─────────────────────────────────────────────────────────┤
//	│ Record 0 ... Record N (variable)                        │
//	│  - Size (2 bytes): uint16 LE, body length               │
//	│  - Type (1 byte): message tag                           │
//	│  - Body (Size bytes)                                    │
//	└─────────────────────────────────────────────────────────┘
//
// # File Header Format
//
//	Bytes  | Field     | Type   | Description
//	-------|-----------|--------|----------------------------------
//	0-6    | Magic     | [7]u8  | Literal 55 4C 6F 67 01 12 35
//	7      | Version   | uint8  | Container format version
//	8-15   | Timestamp | uint64 | Recording start, microseconds LE
//
// # Message Header Format
//
// Every record, including the flag-bits block, is framed by a 3-byte
// message header. Size counts only the body and never includes the header
// itself.
//
//	Bytes  | Field | Type   | Description
//	-------|-------|--------|----------------------------------
//	0-1    | Size  | uint16 | Body length in bytes, LE
//	2      | Type  | uint8  | Message tag (see MsgType)
//
// # Message Set
//
//	Tag | Message           | Body
//	----|-------------------|--------------------------------------
//	'B' | flag_bits         | compat[8] + incompat[8] + offsets[3]
//	'F' | format            | type definition text
//	'I' | info              | key_len u8 + key + value
//	'M' | info_multiple     | is_continued u8 + key_len u8 + key + value
//	'P' | parameter         | key_len u8 + key + value
//	'Q' | parameter_default | default_types u8 + key_len u8 + key + value
//	'A' | add_logged        | multi_id u8 + msg_id u16 + message name
//	'R' | remove_logged     | msg_id u16
//	'D' | data              | msg_id u16 + payload
//	'L' | logging           | log_level u8 + timestamp u64 + text
//	'C' | logging_tagged    | log_level u8 + tag u16 + timestamp u64 + text
//	'S' | sync              | sync magic u8
//	'O' | dropout           | duration u16, milliseconds
//
// The flag-bits block is parsed unconditionally right after the file header
// and is not part of the general record dispatch; the remaining tags are
// handled by the record package.
//
// # Usage
//
// Parsing the fixed file prologue:
//
//	cur := cursor.New(data)
//	hdr, err := section.ParseFileHeader(cur)
//	if err != nil {
//	    return err
//	}
//	flags, err := section.ParseFlagBits(cur)
//
// Most users should interact with the ulog root package instead of using
// section directly. Use this package only when driving the decode loop
// manually or implementing custom record handling.
package section
