package app

import (
	"os"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/chmouel/commitview/internal/render"
	"github.com/chmouel/commitview/internal/theme"
	devicons "github.com/epilande/go-devicons"
	"github.com/muesli/reflow/truncate"
)

// styles maps marker and highlight names onto lipgloss styles for the
// active theme.
type styles struct {
	title  lipgloss.Style
	status lipgloss.Style
	errBox lipgloss.Style
	text   lipgloss.Style

	markers    map[string]lipgloss.Style
	highlights map[string]lipgloss.Style
	signs      map[string]string
}

func newStyles(th *theme.Theme) *styles {
	return &styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(th.Accent),
		status: lipgloss.NewStyle().Foreground(th.MutedFg),
		errBox: lipgloss.NewStyle().Foreground(th.ErrorFg).Bold(true),
		text:   lipgloss.NewStyle().Foreground(th.TextFg),
		markers: map[string]lipgloss.Style{
			render.MarkerHeader:      lipgloss.NewStyle().Bold(true).Foreground(th.Accent),
			render.MarkerDescription: lipgloss.NewStyle().Foreground(th.Yellow),
			render.MarkerHunk:        lipgloss.NewStyle().Foreground(th.Cyan),
			render.MarkerAddition:    lipgloss.NewStyle().Foreground(th.SuccessFg),
			render.MarkerDeletion:    lipgloss.NewStyle().Foreground(th.ErrorFg),
		},
		highlights: map[string]lipgloss.Style{
			render.StylePath:       lipgloss.NewStyle().Foreground(th.Cyan),
			render.StyleChanges:    lipgloss.NewStyle().Foreground(th.WarnFg),
			render.StyleInsertions: lipgloss.NewStyle().Foreground(th.SuccessFg),
			render.StyleDeletions:  lipgloss.NewStyle().Foreground(th.ErrorFg),
		},
		signs: map[string]string{
			render.MarkerHeader:   "●",
			render.MarkerHunk:     "@",
			render.MarkerAddition: "+",
			render.MarkerDeletion: "-",
		},
	}
}

type iconFileInfo struct {
	name string
}

func (i iconFileInfo) Name() string       { return i.name }
func (i iconFileInfo) Size() int64        { return 0 }
func (i iconFileInfo) Mode() os.FileMode  { return 0 }
func (i iconFileInfo) ModTime() time.Time { return time.Time{} }
func (i iconFileInfo) IsDir() bool        { return false }
func (i iconFileInfo) Sys() any           { return nil }

func deviconForPath(path string) string {
	if path == "" {
		return ""
	}
	return devicons.IconForInfo(iconFileInfo{name: path}).Icon
}

// renderLines turns a RenderModel into styled terminal lines. Each line gets
// a two-cell gutter driven by its marker (or a file icon for diffstat rows),
// its highlight spans styled in place, and is clipped to width.
func renderLines(m *render.RenderModel, st *styles, width int, showIcons bool) []string {
	byLine := make(map[int][]render.Highlight, len(m.Highlights))
	for _, h := range m.Highlights {
		byLine[h.Line] = append(byLine[h.Line], h)
	}

	out := make([]string, 0, len(m.Lines))
	for i, line := range m.Lines {
		marker := m.Markers[i]
		base, ok := st.markers[marker]
		if !ok {
			base = st.text
		}

		text := styleSpans(line, byLine[i], base, st)
		sign := st.signs[marker]
		if showIcons {
			if path := pathOfRow(line, byLine[i]); path != "" {
				sign = deviconForPath(path)
			}
		}
		if sign == "" {
			sign = " "
		}
		styled := base.Render(sign) + " " + text
		if width > 0 {
			styled = truncate.String(styled, uint(width)) //nolint:gosec
		}
		out = append(out, styled)
	}
	return out
}

// styleSpans renders line with its highlight spans styled individually and
// the gaps in the base style. Spans are applied left-to-right; a span that
// overlaps an earlier one is skipped.
func styleSpans(line string, spans []render.Highlight, base lipgloss.Style, st *styles) string {
	if len(spans) == 0 {
		return base.Render(line)
	}

	sorted := append([]render.Highlight(nil), spans...)
	sort.Slice(sorted, func(a, b int) bool { return sorted[a].Start < sorted[b].Start })

	var sb strings.Builder
	pos := 0
	for _, sp := range sorted {
		if sp.Start < pos || sp.End > len(line) {
			continue
		}
		if sp.Start > pos {
			sb.WriteString(base.Render(line[pos:sp.Start]))
		}
		style, ok := st.highlights[sp.Style]
		if !ok {
			style = base
		}
		sb.WriteString(style.Render(line[sp.Start:sp.End]))
		pos = sp.End
	}
	if pos < len(line) {
		sb.WriteString(base.Render(line[pos:]))
	}
	return sb.String()
}

// pathOfRow extracts the file path from a diffstat row using its path
// highlight span; non-file rows return "".
func pathOfRow(line string, spans []render.Highlight) string {
	for _, sp := range spans {
		if sp.Style == render.StylePath && sp.Start <= sp.End && sp.End <= len(line) {
			return line[sp.Start:sp.End]
		}
	}
	return ""
}
