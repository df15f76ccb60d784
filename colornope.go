// Copyright (c) ThomWright 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package colornope decides whether colored terminal output should be enabled
// for a given output stream. It implements the NO_COLOR convention
// (https://no-color.org/), following the Command Line Interface Guidelines
// (https://clig.dev/#output).
//
// The package is pure: it never reads environment variables, command-line
// arguments, or file descriptors. The caller collects the raw signals (the
// terminal-type value, whether a NO_COLOR-style variable is present, and an
// explicit force override) and passes them in as plain values, together with
// the per-stream TTY state at query time. The envdetect package provides a
// convenience layer that gathers these signals from the real process
// environment.
//
// Color is assumed enabled by default, unless a signal indicates otherwise.
package colornope

// Stream identifies one of the two output channels a verdict applies to.
type Stream int

const (
	// Stdout is the primary output stream.
	Stdout Stream = iota
	// Stderr is the secondary (error) output stream.
	Stderr
)

// String returns the conventional name of the stream.
func (s Stream) String() string {
	if s == Stderr {
		return "stderr"
	}

	return "stdout"
}

// Force is an explicit user instruction, such as a --color or --no-color
// command-line flag, that overrides every other signal.
type Force int

const (
	// ForceUnset means no explicit instruction was given.
	ForceUnset Force = iota
	// ForceOn enables color unconditionally.
	ForceOn
	// ForceOff disables color unconditionally.
	ForceOff
)

// String returns a human-readable name for the override state.
func (f Force) String() string {
	switch f {
	case ForceOn:
		return "on"
	case ForceOff:
		return "off"
	default:
		return "unset"
	}
}

// TermDumb is the terminal-type value declaring a terminal incapable of
// color. Only this exact value disables color; an unset or empty terminal
// type is treated as color-capable.
const TermDumb = "dumb"

// ColorNope is an immutable bundle of environment-derived signals from which
// per-stream color verdicts are computed. The zero value enables color for
// any interactive stream.
//
// A single instance may be shared freely between goroutines; it holds no
// mutable state.
type ColorNope struct {
	term       string
	noColorSet bool
	force      Force
}

// New creates a ColorNope from the given signals without touching the
// environment.
//
//   - term is the raw value of the terminal-type variable (TERM); pass the
//     empty string when it is unset.
//   - noColorSet indicates whether a NO_COLOR-style variable is set to any
//     value. Per the standard, presence alone disables color; the value is
//     irrelevant.
//   - force is an explicit user override, which wins over everything else.
//
// Every input combination is valid; there are no error conditions.
func New(term string, noColorSet bool, force Force) ColorNope {
	return ColorNope{
		term:       term,
		noColorSet: noColorSet,
		force:      force,
	}
}

// EnableColorFor reports whether color should be enabled for the given
// stream. isTTY indicates whether that stream is connected to an interactive
// terminal, as opposed to a pipe or file.
//
// The signals are evaluated in strict precedence order, first match wins:
//
//  1. ForceOff disables color.
//  2. ForceOn enables color, even on a dumb terminal or a non-TTY.
//  3. A terminal type of exactly "dumb" disables color.
//  4. A present NO_COLOR-style variable disables color.
//  5. A non-interactive stream disables color.
//  6. Otherwise color is enabled.
//
// An explicit human instruction outranks the standards-based environment
// hints, which outrank automatic terminal detection.
// The stream parameter identifies which channel the verdict applies to; the
// verdict depends on it only through its TTY state.
func (c ColorNope) EnableColorFor(stream Stream, isTTY bool) bool {
	switch {
	case c.force == ForceOff:
		return false
	case c.force == ForceOn:
		return true
	case c.term == TermDumb:
		return false
	case c.noColorSet:
		return false
	case !isTTY:
		return false
	default:
		return true
	}
}
