package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLevelName verifies severity mapping including out-of-range bytes
func TestLevelName(t *testing.T) {
	assert.Equal(t, "EMERG", levelName(0))
	assert.Equal(t, "INFO", levelName(6))
	assert.Equal(t, "DEBUG", levelName(7))
	assert.Equal(t, "LEVEL9", levelName(9))
}

// TestMessagesCommand verifies message lines carry uptime, severity and text
func TestMessagesCommand(t *testing.T) {
	path := writeSampleLog(t, t.TempDir(), "flight.ulg", sampleLogBytes())

	out, err := runCommand(t, "messages", path)

	require.NoError(t, err)
	require.Contains(t, out, "2s")
	require.Contains(t, out, "INFO")
	require.Contains(t, out, "takeoff detected")
}
