package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/chmouel/commitview/internal/config"
	"github.com/chmouel/commitview/internal/git"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.AppConfig {
	cfg := config.DefaultConfig()
	cfg.AutoRefresh = false
	cfg.ShowIcons = false
	return cfg
}

func TestNewModel(t *testing.T) {
	svc := git.NewService(t.TempDir(), nil)
	m := NewModel(testConfig(), svc, "")

	require.NotNil(t, m)
	assert.Equal(t, "HEAD", m.rev, "empty revision defaults to HEAD")
	assert.NotNil(t, m.styles)
}

func TestModelErrMsgShowsError(t *testing.T) {
	svc := git.NewService(t.TempDir(), nil)
	m := NewModel(testConfig(), svc, "HEAD")
	m.width = 80
	m.height = 24
	m.ready = true

	updated, _ := m.Update(errMsg{err: assert.AnError})
	model, ok := updated.(*Model)
	require.True(t, ok)
	assert.Contains(t, model.View(), "commitview:")
}

func TestModelQuitsOnQ(t *testing.T) {
	if _, err := git.LookupPath("git"); err != nil {
		t.Skip("git not installed")
	}

	svc := git.NewService(t.TempDir(), nil)
	tm := teatest.NewTestModel(
		t,
		NewModel(testConfig(), svc, "HEAD"),
		teatest.WithInitialTermSize(120, 40),
	)

	// The temp dir is not a repository, so the load fails; the panel must
	// still accept q and exit cleanly instead of rendering partial output.
	time.Sleep(100 * time.Millisecond)
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))
}

func TestDiagnosticsCollection(t *testing.T) {
	assert.Empty(t, diagnostics(nil, nil))
}
