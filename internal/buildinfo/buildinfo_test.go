package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAndGetters(t *testing.T) {
	Set("1.2.3", "abc123", "2025-01-01")

	assert.Equal(t, "1.2.3", Version())
	assert.Equal(t, "abc123", Commit())
	assert.Equal(t, "2025-01-01", Date())
}

func TestEnrichPreservesExplicitCommit(t *testing.T) {
	Set("v1.0.0", "deadbeef", "2025-06-01")
	Enrich()

	assert.Equal(t, "deadbeef", Commit())
}
