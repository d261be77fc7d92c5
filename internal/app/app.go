// Package app implements the commitview TUI: a single panel showing one
// commit's metadata, message, diffstat, and diffs.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/commitview/internal/config"
	"github.com/chmouel/commitview/internal/git"
	"github.com/chmouel/commitview/internal/log"
	"github.com/chmouel/commitview/internal/models"
	"github.com/chmouel/commitview/internal/render"
	"github.com/chmouel/commitview/internal/theme"
)

const chromeHeight = 2 // title bar + status bar

// Model is the bubbletea model for the commit panel.
type Model struct {
	config *config.AppConfig
	styles *styles
	git    *git.Service
	ctx    context.Context

	rev      string // revision as requested (HEAD, sha, ref)
	repoName string

	info     *models.CommitInfo
	overview *models.CommitOverview
	rendered *render.RenderModel

	viewport viewport.Model
	watch    *watchService
	ready    bool
	width    int
	height   int
	err      error
}

// NewModel constructs the application model for the given revision.
func NewModel(cfg *config.AppConfig, svc *git.Service, rev string) *Model {
	if rev == "" {
		rev = "HEAD"
	}
	return &Model{
		config: cfg,
		styles: newStyles(theme.GetTheme(cfg.Theme)),
		git:    svc,
		ctx:    context.Background(),
		rev:    rev,
	}
}

// Init loads the commit and starts the git watcher.
func (m *Model) Init() tea.Cmd {
	m.repoName = m.git.ResolveRepoName(m.ctx)

	cmds := []tea.Cmd{m.loadCommit(m.rev)}
	if m.config.AutoRefresh {
		m.watch = startWatch(m.git.GitDir(m.ctx))
		if m.watch != nil {
			cmds = append(cmds, m.waitForChange())
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) loadCommit(rev string) tea.Cmd {
	return func() tea.Msg {
		info, overview, rendered, err := LoadCommit(m.ctx, m.git, rev)
		if err != nil {
			return errMsg{err: err}
		}
		return commitLoadedMsg{rev: rev, info: info, overview: overview, rendered: rendered}
	}
}

func (m *Model) waitForChange() tea.Cmd {
	events := m.watch.events
	return func() tea.Msg {
		if _, ok := <-events; !ok {
			return nil
		}
		return gitChangedMsg{}
	}
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-chromeHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - chromeHeight
		}
		m.refreshContent()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case commitLoadedMsg:
		m.err = nil
		m.rev = msg.rev
		m.info = msg.info
		m.overview = msg.overview
		m.rendered = msg.rendered
		for _, d := range diagnostics(msg.info, msg.overview) {
			log.Printf("diagnostic: line %d: %s: %q", d.Line, d.Field, d.Text)
		}
		m.refreshContent()
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil

	case gitChangedMsg:
		return m, tea.Batch(m.loadCommit(m.rev), m.waitForChange())
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		if m.watch != nil {
			m.watch.Close()
		}
		return m, tea.Quit
	case "r":
		return m, m.loadCommit(m.rev)
	case "p":
		return m, m.loadParent()
	case "g", "home":
		m.viewport.GotoTop()
		return m, nil
	case "G", "end":
		m.viewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) loadParent() tea.Cmd {
	return func() tea.Msg {
		parent, err := m.git.ParentOf(m.ctx, m.rev)
		if err != nil {
			return errMsg{err: fmt.Errorf("no parent for %s: %w", m.rev, err)}
		}
		info, overview, rendered, err := LoadCommit(m.ctx, m.git, parent)
		if err != nil {
			return errMsg{err: err}
		}
		return commitLoadedMsg{rev: parent, info: info, overview: overview, rendered: rendered}
	}
}

func (m *Model) refreshContent() {
	if !m.ready || m.rendered == nil {
		return
	}
	lines := renderLines(m.rendered, m.styles, m.viewport.Width, m.config.ShowIcons)
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

// View renders the panel: title bar, viewport, status bar.
func (m *Model) View() string {
	if !m.ready {
		return "loading..."
	}
	if m.err != nil {
		return m.styles.errBox.Render("commitview: "+m.err.Error()) +
			"\n\n" + m.styles.status.Render("q to quit, r to retry")
	}

	title := m.repoName
	if m.info != nil {
		title = fmt.Sprintf("%s @ %s", m.repoName, m.info.Abbrev())
	}

	status := fmt.Sprintf("q quit  r refresh  p parent  %3.f%%", m.viewport.ScrollPercent()*100)
	return m.styles.title.Render(title) + "\n" +
		m.viewport.View() + "\n" +
		m.styles.status.Render(status)
}

func diagnostics(info *models.CommitInfo, overview *models.CommitOverview) []models.Diagnostic {
	var all []models.Diagnostic
	if info != nil {
		all = append(all, info.Diagnostics...)
		for _, d := range info.Diffs {
			all = append(all, d.Diagnostics...)
		}
	}
	if overview != nil {
		all = append(all, overview.Diagnostics...)
	}
	return all
}
