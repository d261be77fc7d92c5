package parse

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/chmouel/commitview/internal/models"
)

// preambleLines is the fixed header block of "git show --format=fuller"
// output: oid, author, author date, committer, committer date, blank.
const preambleLines = 6

// StructuralShortageError reports input that ended while a positional field
// was still expected. Parsing cannot continue meaningfully past it.
type StructuralShortageError struct {
	Expected int
	Got      int
}

func (e *StructuralShortageError) Error() string {
	return fmt.Sprintf("commit text too short: expected at least %d lines, got %d", e.Expected, e.Got)
}

var (
	oidRe       = regexp.MustCompile(`^commit (\S+)`)
	authorRe    = regexp.MustCompile(`^Author:\s+(.*?)\s+<(.*)>$`)
	authorDtRe  = regexp.MustCompile(`^AuthorDate:\s+(.*)$`)
	committerRe = regexp.MustCompile(`^Commit:\s+(.*?)\s+<(.*)>$`)
	commitDtRe  = regexp.MustCompile(`^CommitDate:\s+(.*)$`)
)

// ParseCommitInfo parses the full output of "git show --format=fuller" for a
// single commit. The five labelled preamble lines are read positionally; a
// line that does not carry its expected label yields an empty field plus a
// diagnostic. Input shorter than the preamble is a fatal structural error.
func ParseCommitInfo(lines []string) (*models.CommitInfo, error) {
	if len(lines) < preambleLines {
		return nil, &StructuralShortageError{Expected: preambleLines, Got: len(lines)}
	}

	info := &models.CommitInfo{}

	extract := func(idx int, field string, re *regexp.Regexp) []string {
		m := re.FindStringSubmatch(lines[idx])
		if m == nil {
			info.Diagnostics = append(info.Diagnostics, models.Diagnostic{
				Line:  idx,
				Field: field,
				Text:  lines[idx],
			})
			return nil
		}
		return m
	}

	if m := extract(0, "commit", oidRe); m != nil {
		info.OID = m[1]
	}
	if m := extract(1, "Author", authorRe); m != nil {
		info.AuthorName, info.AuthorEmail = m[1], m[2]
	}
	if m := extract(2, "AuthorDate", authorDtRe); m != nil {
		info.AuthorDate = m[1]
	}
	if m := extract(3, "Commit", committerRe); m != nil {
		info.CommitterName, info.CommitterEmail = m[1], m[2]
	}
	if m := extract(4, "CommitDate", commitDtRe); m != nil {
		info.CommitterDate = m[1]
	}
	// lines[5] is the blank separator before the message; discarded.

	// Message body: everything up to the first blank line, trimmed.
	pos := preambleLines
	for ; pos < len(lines); pos++ {
		if strings.TrimSpace(lines[pos]) == "" {
			break
		}
		info.Description = append(info.Description, strings.TrimSpace(lines[pos]))
	}
	if pos < len(lines) {
		pos++ // blank line ending the description
	}

	info.Diffs = splitDiffs(lines[pos:])
	return info, nil
}

// splitDiffs segments the diff region into one slice per file (a new file
// starts at every line beginning with "diff") and parses each.
func splitDiffs(lines []string) []models.Diff {
	var diffs []models.Diff
	start := -1
	for i, line := range lines {
		if !strings.HasPrefix(line, "diff") {
			continue
		}
		if start >= 0 {
			diffs = append(diffs, ParseDiff(lines[start:i]))
		}
		start = i
	}
	if start >= 0 {
		diffs = append(diffs, ParseDiff(lines[start:]))
	}
	return diffs
}
