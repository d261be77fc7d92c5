// Package main is the entry point for the commitview application.
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/commitview/internal/app"
	"github.com/chmouel/commitview/internal/buildinfo"
	"github.com/chmouel/commitview/internal/config"
	"github.com/chmouel/commitview/internal/git"
	"github.com/chmouel/commitview/internal/log"
	"github.com/chmouel/commitview/internal/theme"
	urfavecli "github.com/urfave/cli/v2"
	"golang.org/x/term"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	buildinfo.Set(version, commit, date)
	buildinfo.Enrich()

	cliApp := &urfavecli.App{
		Name:      "commitview",
		Usage:     "Show a git commit in a decorated terminal panel",
		ArgsUsage: "[revision]",
		Version:   buildinfo.Version(),
		Flags:     globalFlags(),
		Action:    run,
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(c *urfavecli.Context) error {
	if debugLog := c.String("debug-log"); debugLog != "" {
		expanded, err := config.ExpandPath(debugLog)
		if err != nil {
			expanded = debugLog
		}
		if err := log.SetFile(expanded); err != nil {
			fmt.Fprintf(os.Stderr, "Error opening debug log file %q: %v\n", expanded, err)
		}
	}

	cfg, err := config.LoadConfig(c.String("config-file"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	if c.String("debug-log") == "" {
		if cfg.DebugLog != "" {
			path := cfg.DebugLog
			if expanded, err := config.ExpandPath(path); err == nil {
				path = expanded
			}
			if err := log.SetFile(path); err != nil {
				fmt.Fprintf(os.Stderr, "Error opening debug log file from config %q: %v\n", path, err)
			}
		} else {
			_ = log.SetFile("")
		}
	}
	defer func() { _ = log.Close() }()

	if t := c.String("theme"); t != "" {
		cfg.Theme = t
	}
	if !validTheme(cfg.Theme) {
		return fmt.Errorf("unknown theme %q", cfg.Theme)
	}
	if c.Bool("no-icons") {
		cfg.ShowIcons = false
	}

	if _, err := git.LookupPath("git"); err != nil {
		return fmt.Errorf("git not found in PATH: %w", err)
	}

	rev := c.Args().First()
	if rev == "" {
		rev = "HEAD"
	}
	svc := git.NewService(c.String("repo"), func(message, severity string) {
		log.Printf("[%s] %s", severity, message)
	})

	if c.Bool("plain") || !term.IsTerminal(int(os.Stdout.Fd())) {
		return runPlain(svc, rev)
	}

	program := tea.NewProgram(app.NewModel(cfg, svc, rev), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

// runPlain prints the rendered lines without decorations, for pipes and
// scripts.
func runPlain(svc *git.Service, rev string) error {
	_, _, rendered, err := app.LoadCommit(context.Background(), svc, rev)
	if err != nil {
		return err
	}
	for _, line := range rendered.Lines {
		fmt.Println(line)
	}
	return nil
}

func validTheme(name string) bool {
	for _, t := range theme.AvailableThemes() {
		if t == name {
			return true
		}
	}
	return false
}
