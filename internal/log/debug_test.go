package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetFileFlushesBuffered(t *testing.T) {
	Printf("buffered message %d", 42)

	path := filepath.Join(t.TempDir(), "debug.log")
	require.NoError(t, SetFile(path))
	t.Cleanup(func() { _ = Close() })

	Printf("direct message")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "buffered message 42")
	assert.Contains(t, string(data), "direct message")
}

func TestSetFileEmptyDiscards(t *testing.T) {
	require.NoError(t, SetFile(""))
	// Must not panic or block with no destination configured.
	Printf("dropped message")
	assert.NoError(t, Close())
}
