// Copyright (c) ThomWright 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package envdetect gathers color signals from the real process environment
// and command line, keeping all global-state access out of the colornope
// core. It maps:
//
//   - TERM to the terminal-type signal,
//   - presence of NO_COLOR (any value, including empty) to the NO_COLOR
//     signal,
//   - a --color/--no-color argument or a truthy CLICOLOR_FORCE variable to
//     the force override,
//   - golang.org/x/term terminal detection to the per-stream TTY state.
package envdetect

import (
	"os"
	"strings"

	colornope "github.com/ThomWright/color-nope"
	"golang.org/x/term"
)

const (
	// TermEnv is the terminal-type environment variable.
	TermEnv = "TERM"
	// NoColorEnv is the environment variable that disables color when set to
	// any value. See https://no-color.org/.
	NoColorEnv = "NO_COLOR"
	// CliColorForceEnv is the environment variable that forces color on when
	// set to a truthy value.
	CliColorForceEnv = "CLICOLOR_FORCE"

	colorFlag   = "--color"
	noColorFlag = "--no-color"
)

// Stubbed in tests.
var (
	lookupEnv   = os.LookupEnv
	processArgs = func() []string { return os.Args }
	isTerminal  = term.IsTerminal
)

// Signals builds a colornope.ColorNope from the process environment and
// command line. Explicit --color/--no-color arguments win over
// CLICOLOR_FORCE.
func Signals() colornope.ColorNope {
	return colornope.New(TermValue(), NoColorPresent(), DetectForce())
}

// For reports whether color should be enabled for the given stream,
// combining Signals with terminal detection on the real stdout or stderr.
func For(stream colornope.Stream) bool {
	f := os.Stdout
	if stream == colornope.Stderr {
		f = os.Stderr
	}

	return Signals().EnableColorFor(stream, IsTerminal(f))
}

// TermValue returns the raw TERM value, or the empty string when unset.
func TermValue() string {
	v, _ := lookupEnv(TermEnv)
	return v
}

// NoColorPresent reports whether NO_COLOR is set to any value, including
// empty. Per the standard, presence alone disables color.
func NoColorPresent() bool {
	_, ok := lookupEnv(NoColorEnv)
	return ok
}

// DetectForce returns the explicit override from the command line, falling
// back to CLICOLOR_FORCE.
func DetectForce() colornope.Force {
	if f := ForceFromArgs(processArgs()); f != colornope.ForceUnset {
		return f
	}

	return ForceFromEnv()
}

// ForceFromArgs scans argv for --color and --no-color. When both appear the
// last one wins. Hosts with a real flag parser should map their parsed flags
// to a colornope.Force directly instead.
func ForceFromArgs(argv []string) colornope.Force {
	force := colornope.ForceUnset

	for _, arg := range argv {
		switch arg {
		case colorFlag:
			force = colornope.ForceOn
		case noColorFlag:
			force = colornope.ForceOff
		}
	}

	return force
}

// ForceFromEnv maps a truthy CLICOLOR_FORCE to ForceOn. A falsy value such
// as "0" is not an explicit preference and maps to ForceUnset.
func ForceFromEnv() colornope.Force {
	v, ok := lookupEnv(CliColorForceEnv)
	if !ok || !isTruthy(v) {
		return colornope.ForceUnset
	}

	return colornope.ForceOn
}

// IsTerminal reports whether f is connected to an interactive terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}

	return isTerminal(int(f.Fd()))
}

func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
