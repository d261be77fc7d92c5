package app

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chmouel/commitview/internal/git"
	"github.com/chmouel/commitview/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initTestRepo creates a repository with two commits touching two files.
func initTestRepo(t *testing.T) string {
	t.Helper()
	if _, err := git.LookupPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()
	runGit := func(args ...string) {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=Test Author",
			"GIT_AUTHOR_EMAIL=author@example.com",
			"GIT_COMMITTER_NAME=Test Committer",
			"GIT_COMMITTER_EMAIL=committer@example.com",
		)
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, "git %v: %s", args, out)
	}
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	runGit("init", "-b", "main")
	write("hello.txt", "hello\n")
	write("other.txt", "other\n")
	runGit("add", ".")
	runGit("commit", "-m", "Initial import")

	write("hello.txt", "hello\nworld\n")
	write("other.txt", "changed\n")
	runGit("add", ".")
	runGit("commit", "-m", "Update both files")
	return dir
}

func TestLoadCommitEndToEnd(t *testing.T) {
	dir := initTestRepo(t)
	svc := git.NewService(dir, nil)
	ctx := context.Background()

	info, overview, rendered, err := LoadCommit(ctx, svc, "HEAD")
	require.NoError(t, err)

	assert.Len(t, info.OID, 40)
	assert.Equal(t, "Test Author", info.AuthorName)
	assert.Equal(t, "committer@example.com", info.CommitterEmail)
	assert.Equal(t, []string{"Update both files"}, info.Description)
	assert.Len(t, info.Diffs, 2)

	require.Len(t, overview.Files, 2)
	assert.Equal(t, "hello.txt", overview.Files[0].Path)
	assert.Contains(t, overview.Summary, "2 files changed")

	require.NotEmpty(t, rendered.Lines)
	assert.Equal(t, "Commit "+info.Abbrev(), rendered.Lines[0])
	assert.Contains(t, strings.Join(rendered.Lines, "\n"), overview.Summary)

	// Every decoration points at an existing line.
	for line := range rendered.Markers {
		assert.Less(t, line, len(rendered.Lines))
	}
	for _, h := range rendered.Highlights {
		require.Less(t, h.Line, len(rendered.Lines))
		assert.LessOrEqual(t, h.End, len(rendered.Lines[h.Line]))
	}
}

func TestLoadCommitParentNavigation(t *testing.T) {
	dir := initTestRepo(t)
	svc := git.NewService(dir, nil)
	ctx := context.Background()

	parent, err := svc.ParentOf(ctx, "HEAD")
	require.NoError(t, err)

	info, _, _, err := LoadCommit(ctx, svc, parent)
	require.NoError(t, err)
	assert.Equal(t, []string{"Initial import"}, info.Description)
}

func TestLoadCommitUnknownRevision(t *testing.T) {
	dir := initTestRepo(t)
	svc := git.NewService(dir, nil)

	_, _, _, err := LoadCommit(context.Background(), svc, "does-not-exist")
	assert.Error(t, err)
}

func TestLoadCommitBadRepo(t *testing.T) {
	if _, err := git.LookupPath("git"); err != nil {
		t.Skip("git not installed")
	}
	svc := git.NewService(t.TempDir(), nil)
	_, _, _, err := LoadCommit(context.Background(), svc, "HEAD")
	assert.Error(t, err)
}

func TestRenderedHighlightStylesPresent(t *testing.T) {
	dir := initTestRepo(t)
	svc := git.NewService(dir, nil)

	_, _, rendered, err := LoadCommit(context.Background(), svc, "HEAD")
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, h := range rendered.Highlights {
		seen[h.Style] = true
	}
	assert.True(t, seen[render.StylePath])
	assert.True(t, seen[render.StyleChanges])
}
