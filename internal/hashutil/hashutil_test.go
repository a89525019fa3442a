package hashutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSHA256Hex(t *testing.T) {
	t.Parallel()

	// Deterministic
	require.Equal(t, SHA256Hex("device-1"), SHA256Hex("device-1"))
	require.NotEqual(t, SHA256Hex("device-1"), SHA256Hex("device-2"))

	// Hex-encoded SHA-256 is 64 characters
	require.Len(t, SHA256Hex("anything"), 64)
}

func TestSHA256Hex_TrimsInput(t *testing.T) {
	t.Parallel()
	require.Equal(t, SHA256Hex("device-1"), SHA256Hex("  device-1\n"))
}
