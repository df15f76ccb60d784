// Copyright (c) ThomWright 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"os"

	"github.com/ThomWright/color-nope/cmd/check"
	"github.com/ThomWright/color-nope/cmd/demo"
	"github.com/urfave/cli/v3"
)

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		check.CheckCmd,
		demo.DemoCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "color-nope",
	Description: `Color-nope decides whether colored terminal output should be enabled,
per output stream. It implements the NO_COLOR convention and honors TERM=dumb,
CLICOLOR_FORCE and per-stream TTY detection, with explicit --color/--no-color
overrides winning over everything else.`,
	Usage:     "color-nope check [--json]",
	Copyright: "Copyright (c) ThomWright 2025. All rights reserved.",
	Authors: []any{
		"Thom Wright (ThomWright)",
	},
	EnableShellCompletion: true,
}
