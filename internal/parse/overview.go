package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/chmouel/commitview/internal/models"
)

// overviewRowRe matches one diffstat row:
//
//	src/foo.lua | 12 +++++++-----
//
// capturing the path, the change count, and the literal plus/minus glyph
// runs. Rows that diverge from this shape (binary files, rename arrows with
// unusual spacing) fail the match and are reported as diagnostics.
var overviewRowRe = regexp.MustCompile(`^\s*(.+?)\s+\|\s+(\d+)\s*(\+*)(-*)\s*$`)

// ParseOverview parses diffstat output into a CommitOverview. The first line
// is skipped (the oneline commit header git prints before the table), the
// trimmed last line becomes the summary, and every line in between is one
// file row. A row that does not match the table shape still occupies its slot
// in Files, with zero values and an attached diagnostic, so row count always
// mirrors the source output. Empty input yields an empty overview.
func ParseOverview(lines []string) *models.CommitOverview {
	ov := &models.CommitOverview{}
	if len(lines) == 0 {
		return ov
	}

	ov.Summary = strings.TrimSpace(lines[len(lines)-1])

	for i := 1; i < len(lines)-1; i++ {
		m := overviewRowRe.FindStringSubmatch(lines[i])
		if m == nil {
			ov.Diagnostics = append(ov.Diagnostics, models.Diagnostic{
				Line:  i,
				Field: "overview row",
				Text:  lines[i],
			})
			ov.Files = append(ov.Files, models.CommitOverviewFile{})
			continue
		}
		changes, _ := strconv.Atoi(m[2])
		ov.Files = append(ov.Files, models.CommitOverviewFile{
			Path:       m[1],
			Changes:    changes,
			Insertions: m[3],
			Deletions:  m[4],
		})
	}

	return ov
}
