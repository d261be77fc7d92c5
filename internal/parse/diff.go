// Package parse turns raw git command output into the structured records
// consumed by the renderer. Parsing is line-oriented: each field is extracted
// by a small anchored pattern, and a pattern that fails to match leaves the
// field empty and records a diagnostic instead of aborting the parse.
package parse

import (
	"regexp"
	"strings"

	"github.com/chmouel/commitview/internal/models"
)

// LineKind classifies a diff body line for display purposes.
type LineKind int

const (
	LineContext LineKind = iota
	LineAddition
	LineDeletion
)

var (
	// diffHeaderRe splits "diff <kind...> <file>" into the kind token(s) and
	// the trailing file path. The kind is kept verbatim; for plain git output
	// ("diff --git a/x b/x") that means kind "--git a/x" and file "b/x".
	diffHeaderRe = regexp.MustCompile(`^diff\s+(.+)\s+(\S+)$`)

	// hunkHeaderRe matches a unified diff hunk header. Only the shape matters;
	// the numeric ranges are never parsed.
	hunkHeaderRe = regexp.MustCompile(`^@@ -\d+(?:,\d+)? \+\d+(?:,\d+)? @@`)
)

// ClassifyLine classifies a diff body line by its leading character.
// The classification is recomputed wherever needed and never stored on the
// Diff, which stays purely structural.
func ClassifyLine(line string) LineKind {
	switch {
	case strings.HasPrefix(line, "+"):
		return LineAddition
	case strings.HasPrefix(line, "-"):
		return LineDeletion
	default:
		return LineContext
	}
}

// IsHunkHeader reports whether line opens a new hunk.
func IsHunkHeader(line string) bool {
	return hunkHeaderRe.MatchString(line)
}

// ParseDiff parses the lines covering exactly one file's diff, from its
// "diff ..." header through the line preceding the next file header or end of
// input. The input slice is copied; the returned Diff owns its lines.
func ParseDiff(lines []string) models.Diff {
	d := models.Diff{
		Lines: append([]string(nil), lines...),
	}
	if len(d.Lines) == 0 {
		return d
	}

	if m := diffHeaderRe.FindStringSubmatch(d.Lines[0]); m != nil {
		d.Kind = m[1]
		d.File = m[2]
	} else {
		d.Diagnostics = append(d.Diagnostics, models.Diagnostic{
			Line:  0,
			Field: "diff header",
			Text:  d.Lines[0],
		})
	}

	for i := 1; i < len(d.Lines); i++ {
		if !IsHunkHeader(d.Lines[i]) {
			continue
		}
		if n := len(d.Hunks); n > 0 {
			d.Hunks[n-1].End = i - 1
		}
		d.Hunks = append(d.Hunks, models.DiffHunk{
			HeaderLine: i,
			Start:      i,
			End:        i,
		})
	}
	if n := len(d.Hunks); n > 0 {
		d.Hunks[n-1].End = len(d.Lines) - 1
	}

	return d
}
