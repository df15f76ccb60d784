// Copyright (c) ThomWright 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmdflags holds the force-override flags shared by the
// subcommands, and translates them into a colornope.Force.
package cmdflags

import (
	"errors"

	colornope "github.com/ThomWright/color-nope"
	"github.com/ThomWright/color-nope/envdetect"
	"github.com/urfave/cli/v3"
)

const (
	// ColorFlag forces color output on.
	ColorFlag = "color"
	// NoColorFlag forces color output off.
	NoColorFlag = "no-color"
)

// ErrConflictingFlags is returned when both force flags are given.
var ErrConflictingFlags = errors.New("--color and --no-color are mutually exclusive")

// Flags returns the force-override flag set for a subcommand.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  ColorFlag,
			Usage: "Force color output on, overriding every other signal",
		},
		&cli.BoolFlag{
			Name:  NoColorFlag,
			Usage: "Force color output off, overriding every other signal",
		},
	}
}

// Force resolves the override for the command: an explicit flag wins,
// otherwise a truthy CLICOLOR_FORCE applies.
func Force(cmd *cli.Command) (colornope.Force, error) {
	on := cmd.Bool(ColorFlag)
	off := cmd.Bool(NoColorFlag)

	switch {
	case on && off:
		return colornope.ForceUnset, ErrConflictingFlags
	case off:
		return colornope.ForceOff, nil
	case on:
		return colornope.ForceOn, nil
	default:
		return envdetect.ForceFromEnv(), nil
	}
}
