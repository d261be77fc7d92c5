// Package models defines the data objects shared across commitview packages.
package models

// Diagnostic records a non-fatal parse finding: a label or row pattern that
// did not match where one was expected. The record it is attached to is still
// usable; the affected field is left empty.
type Diagnostic struct {
	Line  int    // zero-based line index in the parsed input
	Field string // which field the pattern was extracting
	Text  string // the offending input line, verbatim
}

// DiffHunk is one contiguous change region within a file diff. All indexes
// point into the owning Diff's Lines slice and are inclusive.
type DiffHunk struct {
	HeaderLine int // index of the "@@ ... @@" line
	Start      int // first line of the hunk (equals HeaderLine)
	End        int // last body line of the hunk
}

// Diff holds one file's unified diff as emitted by git, header line included.
type Diff struct {
	Kind        string // token(s) between "diff" and the file path, verbatim
	File        string
	Lines       []string
	Hunks       []DiffHunk
	Diagnostics []Diagnostic
}

// CommitOverviewFile is one row of a diffstat table. Insertions and Deletions
// keep the literal "+"/"-" glyph runs; their length is the signal, they are
// not counts.
type CommitOverviewFile struct {
	Path       string
	Changes    int
	Insertions string
	Deletions  string
}

// CommitOverview is the diffstat summary for one commit.
type CommitOverview struct {
	Summary     string // trimmed final line, e.g. "3 files changed, ..."
	Files       []CommitOverviewFile
	Diagnostics []Diagnostic
}

// CommitInfo is the full metadata and body for one commit, parsed from
// "git show --format=fuller" output.
type CommitInfo struct {
	OID            string
	AuthorName     string
	AuthorEmail    string
	AuthorDate     string
	CommitterName  string
	CommitterEmail string
	CommitterDate  string
	Description    []string
	Diffs          []Diff
	Diagnostics    []Diagnostic
}

// Abbrev returns the abbreviated object identifier (first 7 characters).
func (c *CommitInfo) Abbrev() string {
	if len(c.OID) < 7 {
		return c.OID
	}
	return c.OID[:7]
}
