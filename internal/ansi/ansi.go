// Copyright (c) ThomWright 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ansi

import (
	"strconv"
	"strings"
)

const (
	sbPadding = 16 // padding for the strings.Builder

	reset  = "\033[0m"
	prefix = "\033["
	suffix = "m"
)

// Code represents an ANSI control code for text formatting.
type Code int

// Control codes for text formatting.
const (
	Reset Code = iota
	Bold
	Faint
	Italic
	Underline
	BlinkSlow
	BlinkRapid
	ReverseVideo
	Concealed
	CrossedOut
)

// Foreground text colors.
const (
	FgBlack Code = iota + 30
	FgRed
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
	FgWhite
)

// Foreground Hi-Intensity text colors.
const (
	FgHiBlack Code = iota + 90
	FgHiRed
	FgHiGreen
	FgHiYellow
	FgHiBlue
	FgHiMagenta
	FgHiCyan
	FgHiWhite
)

// Background text colors.
const (
	BgBlack Code = iota + 40
	BgRed
	BgGreen
	BgYellow
	BgBlue
	BgMagenta
	BgCyan
	BgWhite
)

// Background Hi-Intensity text colors.
const (
	BgHiBlack Code = iota + 100
	BgHiRed
	BgHiGreen
	BgHiYellow
	BgHiBlue
	BgHiMagenta
	BgHiCyan
	BgHiWhite
)

// ControlString generates a string with ANSI control codes for text
// formatting.
func ControlString(c ...Code) string {
	sb := strings.Builder{}
	sb.Grow(len(prefix) + len(suffix) + sbPadding)
	writeCodes(&sb, c)

	return sb.String()
}

// Printer renders ANSI-colored strings when enabled and plain strings
// otherwise. The zero value never colors.
type Printer struct {
	enabled bool
}

// NewPrinter returns a Printer honoring the given color verdict.
func NewPrinter(enabled bool) Printer {
	return Printer{enabled: enabled}
}

// Enabled reports whether the printer applies color.
func (p Printer) Enabled() bool {
	return p.enabled
}

// Colorize returns str with the given ANSI codes applied. It appends the
// reset code at the end of the string to reset the color.
func (p Printer) Colorize(str string, codes ...Code) string {
	if !p.enabled {
		return str
	}

	sb := strings.Builder{}
	sb.Grow(len(str) + len(prefix) + len(suffix) + len(reset) + sbPadding)
	writeCodes(&sb, codes)
	sb.WriteString(str)
	sb.WriteString(reset)

	return sb.String()
}

// ColorizeNoReset returns str with the given ANSI codes applied, without a
// trailing reset code.
func (p Printer) ColorizeNoReset(str string, codes ...Code) string {
	if !p.enabled {
		return str
	}

	sb := strings.Builder{}
	sb.Grow(len(str) + len(prefix) + len(suffix) + sbPadding)
	writeCodes(&sb, codes)
	sb.WriteString(str)

	return sb.String()
}

func writeCodes(sb *strings.Builder, codes []Code) {
	sb.WriteString(prefix)

	for i, code := range codes {
		if i > 0 {
			sb.WriteString(";")
		}

		sb.WriteString(strconv.Itoa(int(code)))
	}

	sb.WriteString(suffix)
}
