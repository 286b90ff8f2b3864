package record

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ulog/cursor"
	"github.com/arloliu/ulog/errs"
)

func TestDecodeParameter(t *testing.T) {
	t.Run("FloatParameter", func(t *testing.T) {
		value := binary.LittleEndian.AppendUint32(nil, math.Float32bits(0.25))
		body := append([]byte{16}, "float MC_PITCH_P"...)
		body = append(body, value...)

		rec, err := Next(cursor.New(framed('P', body)))
		require.NoError(t, err)

		param, ok := rec.(Parameter)
		require.True(t, ok)
		require.Equal(t, "float MC_PITCH_P", param.Key)
		require.Equal(t, value, param.Value)
	})

	t.Run("SizeSmallerThanPrefix", func(t *testing.T) {
		_, err := Next(cursor.New(framed('P', nil)))
		require.ErrorIs(t, err, errs.ErrTruncatedInput)
	})

	t.Run("KeyLengthExceedsBody", func(t *testing.T) {
		_, err := Next(cursor.New(framed('P', []byte{255, 'k', 'e', 'y'})))
		require.ErrorIs(t, err, errs.ErrInvalidLength)
	})
}

func TestDecodeParameterDefault(t *testing.T) {
	t.Run("DefaultTypesAndValue", func(t *testing.T) {
		body := []byte{0x03, 12}
		body = append(body, "int32_t SYS_X"[:12]...)
		body = append(body, 0x2A, 0, 0, 0)

		rec, err := Next(cursor.New(framed('Q', body)))
		require.NoError(t, err)

		def, ok := rec.(ParameterDefault)
		require.True(t, ok)
		require.Equal(t, uint8(0x03), def.DefaultTypes)
		require.Equal(t, "int32_t SYS_", def.Key)
		require.Equal(t, []byte{0x2A, 0, 0, 0}, def.Value)
	})

	t.Run("MissingKeyLength", func(t *testing.T) {
		_, err := Next(cursor.New(framed('Q', []byte{0x01})))
		require.ErrorIs(t, err, errs.ErrTruncatedInput)
	})

	t.Run("KeyLengthExceedsBody", func(t *testing.T) {
		_, err := Next(cursor.New(framed('Q', []byte{0x01, 50, 'x'})))
		require.ErrorIs(t, err, errs.ErrInvalidLength)
	})
}
