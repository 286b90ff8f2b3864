package ulog

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ulog/errs"
	"github.com/arloliu/ulog/record"
	"github.com/arloliu/ulog/section"
)

// TestDecodeMinimalFile verifies a header plus zeroed flag bits decodes to
// an empty log
func TestDecodeMinimalFile(t *testing.T) {
	log, err := Decode(minimalFile())

	require.NoError(t, err)
	require.Equal(t, uint8(1), log.Header.Version)
	require.Equal(t, uint64(0), log.Header.Timestamp)
	require.False(t, log.FlagBits.DataAppended())
	require.False(t, log.FlagBits.HasDefaultParameters())
	require.Empty(t, log.Records)
	require.Nil(t, log.Truncation)
}

// TestDecodeRecordOrder verifies records come back in file order with their
// payloads intact
func TestDecodeRecordOrder(t *testing.T) {
	data := minimalFile()
	data = append(data, framedRecord('F', []byte("vehicle_status:uint64_t timestamp;uint8_t arming_state;"))...)
	data = append(data, framedRecord('I', infoBody("ver_sw", "v1.14.0"))...)
	data = append(data, framedRecord('P', paramBody("MC_ROLL_P", 0x3F, 0x00, 0x00, 0x40))...)
	data = append(data, framedRecord('A', addLoggedBody(0, 7, "vehicle_status"))...)
	data = append(data, framedRecord('D', dataBody(7, []byte{1, 2, 3, 4}))...)
	data = append(data, framedRecord('S', []byte{0x81})...)
	data = append(data, framedRecord('D', dataBody(7, []byte{5, 6, 7, 8}))...)
	data = append(data, framedRecord('O', []byte{0x2C, 0x01})...)

	log, err := Decode(data)

	require.NoError(t, err)
	require.Len(t, log.Records, 8)
	require.Nil(t, log.Truncation)

	wantTypes := []section.MsgType{
		section.TypeFormat,
		section.TypeInfo,
		section.TypeParameter,
		section.TypeAddLogged,
		section.TypeData,
		section.TypeSync,
		section.TypeData,
		section.TypeDropout,
	}
	for i, rec := range log.Records {
		require.Equal(t, wantTypes[i], rec.Type(), "record %d", i)
	}

	info, ok := log.Records[1].(record.Info)
	require.True(t, ok)
	require.Equal(t, "ver_sw", info.Key)
	require.Equal(t, []byte("v1.14.0"), info.Value)

	first, ok := log.Records[4].(record.Data)
	require.True(t, ok)
	require.Equal(t, uint16(7), first.MsgID)
	require.Equal(t, []byte{1, 2, 3, 4}, first.Payload)

	dropout, ok := log.Records[7].(record.Dropout)
	require.True(t, ok)
	require.Equal(t, uint16(300), dropout.Duration)
}

// TestDecodeBadMagic verifies non-ULog input is rejected up front
func TestDecodeBadMagic(t *testing.T) {
	corrupt := minimalFile()
	corrupt[0] = 0x56

	for name, data := range map[string][]byte{
		"corrupt first byte": corrupt,
		"empty input":        {},
		"shorter than magic": {0x55, 0x4C, 0x6F},
		"random bytes":       []byte("this is not a flight log at all"),
	} {
		log, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrBadMagic, name)
		require.Nil(t, log, name)
	}
}

// TestDecodeTruncatedHeader verifies a cut file header reports truncation,
// not a magic failure
func TestDecodeTruncatedHeader(t *testing.T) {
	data := fileHeader(1, 1_000_000)[:10]

	_, err := Decode(data)

	require.ErrorIs(t, err, errs.ErrTruncatedInput)
}

// TestDecodeMissingFlagBits verifies a stream not starting with the
// flag-bits record is rejected
func TestDecodeMissingFlagBits(t *testing.T) {
	data := fileHeader(1, 0)
	data = append(data, framedRecord('I', infoBody("k", "v"))...)

	_, err := Decode(data)

	require.ErrorIs(t, err, errs.ErrUnexpectedTag)
}

// TestDecodeFlagBitsBodyShort verifies an undersized flag-bits body is
// reported as truncation
func TestDecodeFlagBitsBodyShort(t *testing.T) {
	data := fileHeader(1, 0)
	data = append(data, framedRecord('B', make([]byte, 10))...)

	_, err := Decode(data)

	require.ErrorIs(t, err, errs.ErrTruncatedInput)
}

// TestDecodeStrictTruncatedTail verifies the default mode rejects a file
// cut mid-record
func TestDecodeStrictTruncatedTail(t *testing.T) {
	data := minimalFile()
	data = append(data, framedRecord('D', dataBody(3, []byte{9, 9, 9}))...)
	cut := framedRecord('D', dataBody(3, make([]byte, 64)))
	data = append(data, cut[:len(cut)-20]...)

	log, err := Decode(data)

	require.ErrorIs(t, err, errs.ErrTruncatedInput)
	require.Nil(t, log)
}

// TestDecodeStrictUnknownTag verifies an unrecognized record tag aborts a
// strict decode
func TestDecodeStrictUnknownTag(t *testing.T) {
	data := minimalFile()
	data = append(data, framedRecord('Z', []byte{1, 2, 3})...)

	_, err := Decode(data)

	require.ErrorIs(t, err, errs.ErrUnexpectedTag)
}

// TestDecodeAllowPartial verifies lenient mode keeps the good prefix and
// reports where the scan stopped
func TestDecodeAllowPartial(t *testing.T) {
	data := minimalFile()
	data = append(data, framedRecord('I', infoBody("ver_hw", "px4_fmu-v5"))...)
	data = append(data, framedRecord('D', dataBody(1, []byte{0xAA, 0xBB}))...)
	wantOffset := len(data)
	cut := framedRecord('D', dataBody(1, make([]byte, 128)))
	data = append(data, cut[:len(cut)-50]...)

	log, err := Decode(data, WithAllowPartial())

	require.NoError(t, err)
	require.Len(t, log.Records, 2)
	require.NotNil(t, log.Truncation)
	require.Equal(t, wantOffset, log.Truncation.Offset)
	require.ErrorIs(t, log.Truncation.Err, errs.ErrTruncatedInput)
}

// TestDecodeAllowPartialCleanFile verifies lenient mode leaves a complete
// file untouched
func TestDecodeAllowPartialCleanFile(t *testing.T) {
	data := minimalFile()
	data = append(data, framedRecord('S', []byte{0x81})...)

	log, err := Decode(data, WithAllowPartial())

	require.NoError(t, err)
	require.Len(t, log.Records, 1)
	require.Nil(t, log.Truncation)
}

// TestDecodeAllowPartialPreamble verifies lenient mode never absorbs header
// or flag-bits failures
func TestDecodeAllowPartialPreamble(t *testing.T) {
	log, err := Decode([]byte("junk"), WithAllowPartial())
	require.ErrorIs(t, err, errs.ErrBadMagic)
	require.Nil(t, log)

	data := fileHeader(1, 0)
	data = append(data, framedRecord('B', make([]byte, 4))...)
	log, err = Decode(data, WithAllowPartial())
	require.ErrorIs(t, err, errs.ErrTruncatedInput)
	require.Nil(t, log)
}

// TestNewDecoderEagerValidation verifies the constructor checks the header
// before Decode is ever called
func TestNewDecoderEagerValidation(t *testing.T) {
	_, err := NewDecoder([]byte("not a log"))
	require.ErrorIs(t, err, errs.ErrBadMagic)

	decoder, err := NewDecoder(fileHeader(1, 123_456_789))
	require.NoError(t, err)
	require.Equal(t, uint8(1), decoder.Header().Version)
	require.Equal(t, uint64(123_456_789), decoder.Header().Timestamp)
}

// TestDecodeDanglingHeaderBytes verifies leftover bytes too short for a
// record header are reported as truncation
func TestDecodeDanglingHeaderBytes(t *testing.T) {
	data := minimalFile()
	data = append(data, 0x05)

	_, err := Decode(data)

	require.ErrorIs(t, err, errs.ErrTruncatedInput)
}

// Helper builders shared by the tests in this package. They assemble files
// byte by byte so every fixture documents the wire layout it exercises.

func fileHeader(version uint8, timestamp uint64) []byte {
	buf := make([]byte, 0, section.FileHeaderSize)
	buf = append(buf, section.Magic[:]...)
	buf = append(buf, version)
	buf = binary.LittleEndian.AppendUint64(buf, timestamp)

	return buf
}

func framedRecord(tag byte, body []byte) []byte {
	buf := make([]byte, 0, section.MessageHeaderSize+len(body))
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(body))) //nolint:gosec
	buf = append(buf, tag)
	buf = append(buf, body...)

	return buf
}

func flagBitsRecord() []byte {
	return framedRecord('B', make([]byte, section.FlagBitsSize))
}

// minimalFile is the smallest valid log: header, zeroed flag bits, no
// records.
func minimalFile() []byte {
	return append(fileHeader(1, 0), flagBitsRecord()...)
}

func infoBody(key, value string) []byte {
	body := []byte{uint8(len(key))} //nolint:gosec
	body = append(body, key...)
	body = append(body, value...)

	return body
}

func paramBody(key string, value ...byte) []byte {
	body := []byte{uint8(len(key))} //nolint:gosec
	body = append(body, key...)
	body = append(body, value...)

	return body
}

func addLoggedBody(multiID uint8, msgID uint16, name string) []byte {
	body := []byte{multiID}
	body = binary.LittleEndian.AppendUint16(body, msgID)
	body = append(body, name...)

	return body
}

func dataBody(msgID uint16, payload []byte) []byte {
	body := binary.LittleEndian.AppendUint16(nil, msgID)
	body = append(body, payload...)

	return body
}

func loggingBody(level uint8, timestamp uint64, message string) []byte {
	body := []byte{level}
	body = binary.LittleEndian.AppendUint64(body, timestamp)
	body = append(body, message...)

	return body
}

func taggedLoggingBody(level uint8, tag uint16, timestamp uint64, message string) []byte {
	body := []byte{level}
	body = binary.LittleEndian.AppendUint16(body, tag)
	body = binary.LittleEndian.AppendUint64(body, timestamp)
	body = append(body, message...)

	return body
}
