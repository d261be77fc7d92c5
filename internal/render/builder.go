// Package render projects parsed commit records into a RenderModel: plain
// text lines plus positional decorations a display host can apply verbatim.
package render

// Marker names attached to whole lines.
const (
	MarkerHeader      = "header"
	MarkerDescription = "description"
	MarkerHunk        = "hunk"
	MarkerAddition    = "addition"
	MarkerDeletion    = "deletion"
)

// Highlight style names attached to column ranges.
const (
	StylePath       = "path"
	StyleChanges    = "changes"
	StyleInsertions = "insertions"
	StyleDeletions  = "deletions"
)

// Highlight is a named decoration over a column range of one line. Columns
// are byte offsets into the raw line text, end exclusive.
type Highlight struct {
	Line  int
	Start int
	End   int
	Style string
}

// RenderModel is the complete display projection of one commit: the text
// lines plus line markers and column highlights, all index-consistent with
// Lines. It is built once and immutable once returned.
type RenderModel struct {
	Lines      []string
	Markers    map[int]string
	Highlights []Highlight
}

// Builder assembles a RenderModel incrementally. Line indexes are assigned by
// AppendLine at the instant of emission and decorations always reference a
// line that already exists, so text and decorations cannot drift apart.
type Builder struct {
	model RenderModel
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		model: RenderModel{
			Markers: make(map[int]string),
		},
	}
}

// AppendLine adds one line of text and returns its index.
func (b *Builder) AppendLine(text string) int {
	b.model.Lines = append(b.model.Lines, text)
	return len(b.model.Lines) - 1
}

// SetMarker attaches a marker to an already-emitted line. A line holds at
// most one marker; the last write wins. Out-of-range lines are ignored.
func (b *Builder) SetMarker(line int, name string) {
	if line < 0 || line >= len(b.model.Lines) {
		return
	}
	b.model.Markers[line] = name
}

// AddHighlight attaches a named highlight over [start, end) of an
// already-emitted line. Requests outside the line's text are ignored.
func (b *Builder) AddHighlight(line, start, end int, style string) {
	if line < 0 || line >= len(b.model.Lines) {
		return
	}
	if start < 0 || end < start || end > len(b.model.Lines[line]) {
		return
	}
	b.model.Highlights = append(b.model.Highlights, Highlight{
		Line:  line,
		Start: start,
		End:   end,
		Style: style,
	})
}

// Model returns the assembled RenderModel. The Builder must not be reused
// afterwards.
func (b *Builder) Model() *RenderModel {
	return &b.model
}
