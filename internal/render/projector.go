package render

import (
	"fmt"
	"strings"

	"github.com/chmouel/commitview/internal/models"
	"github.com/chmouel/commitview/internal/parse"
)

// metaLabelWidth right-pads the metadata labels so their values align.
const metaLabelWidth = len("CommitDate:")

// overviewSpan is one highlighted segment of a formatted diffstat row.
type overviewSpan struct {
	start int
	end   int
	style string
}

// formatOverviewRow renders one diffstat row and the highlight spans covering
// it. Text and spans come from the same walk over the same substrings; this
// is the single place row text is constructed, so the spans cannot desync
// from the rendered line.
func formatOverviewRow(f models.CommitOverviewFile) (string, []overviewSpan) {
	var sb strings.Builder
	var spans []overviewSpan

	emit := func(text, style string) {
		start := sb.Len()
		sb.WriteString(text)
		spans = append(spans, overviewSpan{start: start, end: sb.Len(), style: style})
	}

	emit(f.Path, StylePath)
	sb.WriteString(" | ")
	emit(fmt.Sprintf("%d", f.Changes), StyleChanges)
	sb.WriteString(" ")
	emit(f.Insertions, StyleInsertions)
	emit(f.Deletions, StyleDeletions)

	return sb.String(), spans
}

// Project walks a parsed commit and its diffstat overview and produces the
// RenderModel the display host consumes. The ref argument fills the
// remote/branch line under the header. Inputs are never mutated.
func Project(info *models.CommitInfo, overview *models.CommitOverview, ref string) (*RenderModel, error) {
	if info == nil || overview == nil {
		return nil, fmt.Errorf("render: nil commit info or overview")
	}

	b := NewBuilder()

	idx := b.AppendLine("Commit " + info.Abbrev())
	b.SetMarker(idx, MarkerHeader)
	b.AppendLine("Ref: " + ref)
	b.AppendLine(info.OID)

	meta := func(label, value string) {
		b.AppendLine(fmt.Sprintf("%-*s %s", metaLabelWidth, label, value))
	}
	meta("Author:", formatIdentity(info.AuthorName, info.AuthorEmail))
	meta("AuthorDate:", info.AuthorDate)
	meta("Commit:", formatIdentity(info.CommitterName, info.CommitterEmail))
	meta("CommitDate:", info.CommitterDate)

	b.AppendLine("")
	for _, line := range info.Description {
		idx = b.AppendLine(line)
		b.SetMarker(idx, MarkerDescription)
	}

	b.AppendLine("")
	b.AppendLine(overview.Summary)

	for _, f := range overview.Files {
		text, spans := formatOverviewRow(f)
		idx = b.AppendLine(text)
		for _, sp := range spans {
			b.AddHighlight(idx, sp.start, sp.end, sp.style)
		}
	}

	for _, d := range info.Diffs {
		b.AppendLine("")
		b.AppendLine(strings.TrimSpace(d.Kind + " " + d.File))
		for _, h := range d.Hunks {
			idx = b.AppendLine(d.Lines[h.HeaderLine])
			b.SetMarker(idx, MarkerHunk)
			for i := h.HeaderLine + 1; i <= h.End; i++ {
				idx = b.AppendLine(d.Lines[i])
				switch parse.ClassifyLine(d.Lines[i]) {
				case parse.LineAddition:
					b.SetMarker(idx, MarkerAddition)
				case parse.LineDeletion:
					b.SetMarker(idx, MarkerDeletion)
				case parse.LineContext:
					// context lines carry no marker
				}
			}
		}
	}

	return b.Model(), nil
}

func formatIdentity(name, email string) string {
	if email == "" {
		return name
	}
	return fmt.Sprintf("%s <%s>", name, email)
}
