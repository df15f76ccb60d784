// Copyright (c) ThomWright 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package check

import (
	"context"
	"errors"
	"fmt"
	"os"

	colornope "github.com/ThomWright/color-nope"
	"github.com/ThomWright/color-nope/cmd/cmdflags"
	"github.com/ThomWright/color-nope/envdetect"
	"github.com/ThomWright/color-nope/internal/ctxlog"
	"github.com/TylerBrock/colorjson"
	"github.com/urfave/cli/v3"
)

const (
	jsonFlag = "json"

	jsonIndent = 2
)

var (
	// ErrMarshalVerdicts is returned when the verdicts cannot be marshaled to JSON.
	ErrMarshalVerdicts = errors.New("failed to marshal verdicts")
	// ErrWriteVerdicts is returned when the verdicts cannot be written to stdout.
	ErrWriteVerdicts = errors.New("failed to write verdicts to stdout")
)

// Stubbed in tests.
var isTerminal = envdetect.IsTerminal

// CheckCmd is the command that prints the color verdict for each stream,
// given the current environment, TTY state and any force flags.
var CheckCmd = New()

// New constructs a fresh check command. Commands hold flag state once run,
// so each run needs its own instance.
func New() *cli.Command {
	return &cli.Command{
		Name:        "check",
		Description: "Print whether color output is enabled for stdout and stderr.",
		Flags: append(cmdflags.Flags(),
			&cli.BoolFlag{
				Name:  jsonFlag,
				Usage: "Emit the verdicts as JSON",
			},
		),
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	force, err := cmdflags.Force(cmd)
	if err != nil {
		return err
	}

	term := envdetect.TermValue()
	noColor := envdetect.NoColorPresent()
	signals := colornope.New(term, noColor, force)

	stdoutOn := signals.EnableColorFor(colornope.Stdout, isTerminal(os.Stdout))
	stderrOn := signals.EnableColorFor(colornope.Stderr, isTerminal(os.Stderr))

	ctxlog.Debug(ctx, "check",
		"term", term,
		"no_color", noColor,
		"force", force.String(),
		"stdout", stdoutOn,
		"stderr", stderrOn)

	if cmd.Bool(jsonFlag) {
		return writeJSON(cmd, term, noColor, force, stdoutOn, stderrOn)
	}

	return writeText(cmd, stdoutOn, stderrOn)
}

func writeText(cmd *cli.Command, stdoutOn, stderrOn bool) error {
	_, err := fmt.Fprintf(cmd.Writer, "stdout: %s\nstderr: %s\n",
		verdictWord(stdoutOn), verdictWord(stderrOn))
	if err != nil {
		return errors.Join(ErrWriteVerdicts, err)
	}

	return nil
}

func writeJSON(cmd *cli.Command, term string, noColor bool, force colornope.Force, stdoutOn, stderrOn bool) error {
	formatter := colorjson.NewFormatter()
	formatter.Indent = jsonIndent
	formatter.DisabledColor = !stdoutOn

	out, err := formatter.Marshal(map[string]any{
		"signals": map[string]any{
			"term":     term,
			"no_color": noColor,
			"force":    force.String(),
		},
		"verdicts": map[string]any{
			colornope.Stdout.String(): stdoutOn,
			colornope.Stderr.String(): stderrOn,
		},
	})
	if err != nil {
		return errors.Join(ErrMarshalVerdicts, err)
	}

	if _, err := fmt.Fprintf(cmd.Writer, "%s\n", out); err != nil {
		return errors.Join(ErrWriteVerdicts, err)
	}

	return nil
}

func verdictWord(enabled bool) string {
	if enabled {
		return "enabled"
	}

	return "disabled"
}
