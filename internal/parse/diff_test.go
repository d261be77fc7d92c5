package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDiffLines() []string {
	return []string{
		"diff --git a/src/foo.lua b/src/foo.lua",
		"index 83db48f..bf269f4 100644",
		"--- a/src/foo.lua",
		"+++ b/src/foo.lua",
		"@@ -1,4 +1,5 @@",
		" local M = {}",
		"-M.old = true",
		"+M.new = true",
		"+M.extra = 1",
		" return M",
		"@@ -20,3 +21,3 @@",
		" function M.run()",
		"-  return 1",
		"+  return 2",
	}
}

func TestParseDiffHeader(t *testing.T) {
	d := ParseDiff(sampleDiffLines())

	assert.Equal(t, "--git a/src/foo.lua", d.Kind)
	assert.Equal(t, "b/src/foo.lua", d.File)
	assert.Empty(t, d.Diagnostics)
	assert.Len(t, d.Lines, 14)
}

func TestParseDiffHunks(t *testing.T) {
	d := ParseDiff(sampleDiffLines())

	require.Len(t, d.Hunks, 2)

	first := d.Hunks[0]
	assert.Equal(t, 4, first.HeaderLine)
	assert.Equal(t, 4, first.Start)
	assert.Equal(t, 9, first.End)

	second := d.Hunks[1]
	assert.Equal(t, 10, second.HeaderLine)
	assert.Equal(t, 13, second.End)

	// Hunks are ordered and non-overlapping.
	assert.Less(t, first.End, second.Start)
	for _, h := range d.Hunks {
		assert.LessOrEqual(t, h.Start, h.HeaderLine)
		assert.LessOrEqual(t, h.HeaderLine, h.End)
	}
}

func TestParseDiffNoHunks(t *testing.T) {
	lines := []string{
		"diff --git a/img.png b/img.png",
		"Binary files a/img.png and b/img.png differ",
	}
	d := ParseDiff(lines)

	assert.Empty(t, d.Hunks)
	assert.Len(t, d.Lines, 2)
	assert.Equal(t, "b/img.png", d.File)
}

func TestParseDiffMalformedHeader(t *testing.T) {
	lines := []string{
		"not a diff header",
		"@@ -1,1 +1,1 @@",
		"-a",
		"+b",
	}
	d := ParseDiff(lines)

	assert.Empty(t, d.Kind)
	assert.Empty(t, d.File)
	require.Len(t, d.Diagnostics, 1)
	assert.Equal(t, "diff header", d.Diagnostics[0].Field)
	assert.Len(t, d.Hunks, 1)
}

func TestParseDiffEmpty(t *testing.T) {
	d := ParseDiff(nil)
	assert.Empty(t, d.Lines)
	assert.Empty(t, d.Hunks)
}

func TestParseDiffIdempotent(t *testing.T) {
	lines := sampleDiffLines()
	first := ParseDiff(lines)
	second := ParseDiff(lines)
	assert.Equal(t, first, second)
}

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want LineKind
	}{
		{"+added", LineAddition},
		{"+++ b/file", LineAddition},
		{"-removed", LineDeletion},
		{"--- a/file", LineDeletion},
		{" context", LineContext},
		{"", LineContext},
		{"@@ -1 +1 @@", LineContext},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyLine(tt.line), "line %q", tt.line)
	}
}

func TestIsHunkHeader(t *testing.T) {
	assert.True(t, IsHunkHeader("@@ -1,4 +1,5 @@"))
	assert.True(t, IsHunkHeader("@@ -1 +1 @@ func main()"))
	assert.False(t, IsHunkHeader("@@ not a range @@"))
	assert.False(t, IsHunkHeader(" @@ -1 +1 @@"))
}
