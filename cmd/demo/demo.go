// Copyright (c) ThomWright 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	colornope "github.com/ThomWright/color-nope"
	"github.com/ThomWright/color-nope/cmd/cmdflags"
	"github.com/ThomWright/color-nope/envdetect"
	"github.com/ThomWright/color-nope/internal/ansi"
	"github.com/urfave/cli/v3"
)

// ErrWriteSample is returned when a sample line cannot be written.
var ErrWriteSample = errors.New("failed to write sample output")

// Stubbed in tests.
var isTerminal = envdetect.IsTerminal

// DemoCmd writes sample lines to stdout and stderr, colorized per each
// stream's own verdict. Redirecting one stream and not the other shows the
// per-stream decisions diverging.
var DemoCmd = New()

// New constructs a fresh demo command. Commands hold flag state once run,
// so each run needs its own instance.
func New() *cli.Command {
	return &cli.Command{
		Name:        "demo",
		Description: "Write sample lines to stdout and stderr, colorized per stream.",
		Flags:       cmdflags.Flags(),
		Action:      action,
	}
}

func action(_ context.Context, cmd *cli.Command) error {
	force, err := cmdflags.Force(cmd)
	if err != nil {
		return err
	}

	signals := colornope.New(envdetect.TermValue(), envdetect.NoColorPresent(), force)

	stdout := ansi.NewPrinter(signals.EnableColorFor(colornope.Stdout, isTerminal(os.Stdout)))
	stderr := ansi.NewPrinter(signals.EnableColorFor(colornope.Stderr, isTerminal(os.Stderr)))

	if err := writeSamples(cmd.Writer, colornope.Stdout, stdout); err != nil {
		return err
	}

	return writeSamples(cmd.ErrWriter, colornope.Stderr, stderr)
}

func writeSamples(w io.Writer, stream colornope.Stream, p ansi.Printer) error {
	lines := []string{
		fmt.Sprintf("%s color is %s", stream, verdictWord(p.Enabled())),
		p.Colorize(fmt.Sprintf("%s: success looks like this", stream), ansi.FgGreen),
		p.Colorize(fmt.Sprintf("%s: warnings look like this", stream), ansi.FgYellow),
		p.Colorize(fmt.Sprintf("%s: errors look like this", stream), ansi.Bold, ansi.FgRed),
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.Join(ErrWriteSample, err)
		}
	}

	return nil
}

func verdictWord(enabled bool) string {
	if enabled {
		return "enabled"
	}

	return "disabled"
}
