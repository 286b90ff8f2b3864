package ulog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ulog/compress"
)

// TestFingerprint verifies hash generation is deterministic
func TestFingerprint(t *testing.T) {
	data := minimalFile()
	data = append(data, framedRecord('S', []byte{0x81})...)

	fp1 := Fingerprint(data)
	fp2 := Fingerprint(data)

	require.Equal(t, fp1, fp2, "Fingerprint should be deterministic")
	require.NotZero(t, fp1)

	// A single flipped payload bit must change the identity.
	mutated := append([]byte(nil), data...)
	mutated[len(mutated)-1] ^= 0x01
	require.NotEqual(t, fp1, Fingerprint(mutated))
}

// TestFingerprintTracksStoredBytes verifies a compressed file and its
// unwrapped content hash differently
func TestFingerprintTracksStoredBytes(t *testing.T) {
	data := minimalFile()

	codec, err := compress.ForType(compress.TypeGzip)
	require.NoError(t, err)

	wrapped, err := codec.Compress(data)
	require.NoError(t, err)

	require.NotEqual(t, Fingerprint(data), Fingerprint(wrapped))
}

// TestDecodeFacade verifies the top-level wrapper matches the staged
// decoder
func TestDecodeFacade(t *testing.T) {
	data := minimalFile()
	data = append(data, framedRecord('I', infoBody("sys_name", "PX4"))...)

	fromFacade, err := Decode(data)
	require.NoError(t, err)

	decoder, err := NewDecoder(data)
	require.NoError(t, err)
	fromDecoder, err := decoder.Decode()
	require.NoError(t, err)

	require.Equal(t, fromDecoder.Header, fromFacade.Header)
	require.Equal(t, fromDecoder.Records, fromFacade.Records)
}
