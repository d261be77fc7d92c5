// Package main provides CLI flag definitions for commitview.
package main

import (
	"fmt"
	"strings"

	"github.com/chmouel/commitview/internal/theme"
	urfavecli "github.com/urfave/cli/v2"
)

// globalFlags returns all global flags for the application.
// Note: --version is provided automatically by urfave/cli via App.Version
func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.StringFlag{
			Name:    "repo",
			Aliases: []string{"C"},
			Usage:   "Run as if started in the given repository directory",
		},
		&urfavecli.StringFlag{
			Name:    "theme",
			Aliases: []string{"t"},
			Usage:   fmt.Sprintf("UI theme (%s)", strings.Join(theme.AvailableThemes(), ", ")),
		},
		&urfavecli.StringFlag{
			Name:  "config-file",
			Usage: "Path to configuration file",
		},
		&urfavecli.StringFlag{
			Name:  "debug-log",
			Usage: "Path to debug log file",
		},
		&urfavecli.BoolFlag{
			Name:  "plain",
			Usage: "Print the rendered commit to stdout without the TUI",
		},
		&urfavecli.BoolFlag{
			Name:  "no-icons",
			Usage: "Disable file icons in the diffstat gutter",
		},
	}
}
