// Package git wraps the git command invocations commitview reads from.
package git

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	log "github.com/chmouel/commitview/internal/log"
)

// LookupPath is used to find executables in PATH. It's exposed as a package
// variable so tests can mock it and avoid depending on system binaries.
var LookupPath = exec.LookPath

// NotifyFn receives ongoing notifications.
type NotifyFn func(message string, severity string)

// Service runs git commands and hands their raw output to the parsers.
type Service struct {
	notify  NotifyFn
	repoDir string
}

// NewService constructs a Service rooted at repoDir (empty means the current
// directory).
func NewService(repoDir string, notify NotifyFn) *Service {
	if notify == nil {
		notify = func(string, string) {}
	}
	return &Service{notify: notify, repoDir: repoDir}
}

func (s *Service) debugf(format string, args ...any) {
	log.Printf(format, args...)
}

func prepareAllowedCommand(ctx context.Context, args []string) (*exec.Cmd, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no command provided")
	}
	if args[0] != "git" {
		return nil, fmt.Errorf("unsupported command %q", args[0])
	}
	// #nosec G204 -- arguments come from internal logic and are not shell interpolated
	return exec.CommandContext(ctx, "git", args[1:]...), nil
}

// RunGit executes a git command and returns its stdout.
func (s *Service) RunGit(ctx context.Context, args []string, strip bool) (string, error) {
	command := strings.Join(args, " ")
	s.debugf("run: %s (cwd=%s)", command, s.repoDir)

	cmd, err := prepareAllowedCommand(ctx, args)
	if err != nil {
		return "", err
	}
	if s.repoDir != "" {
		cmd.Dir = s.repoDir
	}

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr := strings.TrimSpace(string(exitErr.Stderr))
			if stderr != "" {
				s.debugf("error: %s: %s", command, stderr)
				s.notify(fmt.Sprintf("Command failed: %s: %s", command, stderr), "error")
				return "", fmt.Errorf("%s: %s", command, stderr)
			}
			s.debugf("error: %s (exit %d)", command, exitErr.ExitCode())
			s.notify(fmt.Sprintf("Command failed: %s (exit %d)", command, exitErr.ExitCode()), "error")
			return "", fmt.Errorf("%s: exit %d", command, exitErr.ExitCode())
		}
		s.debugf("error: command not found: git")
		s.notify("Command not found: git", "error")
		return "", fmt.Errorf("git not found: %w", err)
	}

	out := string(output)
	if strip {
		out = strings.TrimSpace(out)
	}
	s.debugf("ok: %s", command)
	return out, nil
}

// ShowCommit returns the full "fuller" format output for rev, split into
// lines: preamble, message, and unified diffs.
func (s *Service) ShowCommit(ctx context.Context, rev string) ([]string, error) {
	out, err := s.RunGit(ctx, []string{
		"git", "show", "--format=fuller", "--patch", "--no-color", "--no-ext-diff", rev,
	}, false)
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// ShowStat returns the diffstat output for rev, split into lines. The
// leading oneline header is the filler row the overview parser skips.
func (s *Service) ShowStat(ctx context.Context, rev string) ([]string, error) {
	out, err := s.RunGit(ctx, []string{
		"git", "show", "--oneline", "--stat", "--no-color", rev,
	}, false)
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// ResolveRef returns a human-readable name for the current HEAD: the branch
// name, or the abbreviated commit for a detached HEAD.
func (s *Service) ResolveRef(ctx context.Context) string {
	out, err := s.RunGit(ctx, []string{"git", "rev-parse", "--abbrev-ref", "HEAD"}, true)
	if err != nil || out == "" || out == "HEAD" {
		short, err := s.RunGit(ctx, []string{"git", "rev-parse", "--short", "HEAD"}, true)
		if err != nil {
			return ""
		}
		return short
	}
	return out
}

// ParentOf returns the first parent of rev, or an error for a root commit.
func (s *Service) ParentOf(ctx context.Context, rev string) (string, error) {
	return s.RunGit(ctx, []string{"git", "rev-parse", rev + "^"}, true)
}

// GitDir returns the repository's .git directory, used by the file watcher.
func (s *Service) GitDir(ctx context.Context) string {
	out, err := s.RunGit(ctx, []string{"git", "rev-parse", "--absolute-git-dir"}, true)
	if err != nil {
		return ""
	}
	return out
}

// ResolveRepoName returns a short repository identifier for the title bar,
// derived from the origin URL when available.
func (s *Service) ResolveRepoName(ctx context.Context) string {
	remoteURL, err := s.RunGit(ctx, []string{"git", "remote", "get-url", "origin"}, true)
	if err == nil && remoteURL != "" {
		re := regexp.MustCompile(`[:/]([^/]+/[^/]+?)(?:\.git)?$`)
		if m := re.FindStringSubmatch(remoteURL); len(m) > 1 {
			return m[1]
		}
	}
	top, err := s.RunGit(ctx, []string{"git", "rev-parse", "--show-toplevel"}, true)
	if err == nil && top != "" {
		parts := strings.Split(top, "/")
		return parts[len(parts)-1]
	}
	return "unknown"
}

// splitLines splits command output on newlines, dropping the trailing empty
// element a final newline produces.
func splitLines(out string) []string {
	lines := strings.Split(out, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
