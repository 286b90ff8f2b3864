package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParamValue verifies typed rendering driven by the key prefix
func TestParamValue(t *testing.T) {
	t.Run("float key", func(t *testing.T) {
		assert.Equal(t, "1.5", paramValue("float MC_ROLL_P", []byte{0x00, 0x00, 0xC0, 0x3F}))
	})

	t.Run("int32 key", func(t *testing.T) {
		assert.Equal(t, "-2", paramValue("int32_t SYS_AUTOSTART", []byte{0xFE, 0xFF, 0xFF, 0xFF}))
	})

	t.Run("untyped key falls back to hex", func(t *testing.T) {
		assert.Equal(t, "DE AD BE EF", paramValue("MC_ROLL_P", []byte{0xDE, 0xAD, 0xBE, 0xEF}))
	})

	t.Run("wrong width falls back to hex", func(t *testing.T) {
		assert.Equal(t, "01 02", paramValue("float SHORT", []byte{0x01, 0x02}))
	})
}

// TestParamsCommand verifies the listing of one log's parameters
func TestParamsCommand(t *testing.T) {
	path := writeSampleLog(t, t.TempDir(), "flight.ulg", sampleLogBytes())

	out, err := runCommand(t, "params", path)

	require.NoError(t, err)
	require.Contains(t, out, "float MC_ROLL_P")
	require.Contains(t, out, "1.5")
}
