// Copyright (c) ThomWright 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	colornope "github.com/ThomWright/color-nope"
	"github.com/ThomWright/color-nope/envdetect"
	"github.com/ThomWright/color-nope/internal/ansi"
	"github.com/TylerBrock/colorjson"
)

var (
	// ErrMarshalAttribute is returned when an error occurs while marshaling an attribute.
	ErrMarshalAttribute = errors.New("error when marshaling attribute")
	// ErrIoWrite is returned when an error occurs while writing to the output.
	ErrIoWrite = errors.New("error when writing to output")
)

const (
	// TimeFormat is the format used for timestamps in log messages.
	TimeFormat = "[15:04:05.000]"

	jsonIndent = 2
)

// PrettyHandler is a custom slog handler that formats log messages to the
// console in a pretty way. Whether it emits ANSI color is decided once at
// construction, from an explicit verdict or from the destination stream's
// color decision; there is no hidden global state.
type PrettyHandler struct {
	h                slog.Handler
	r                func([]string, slog.Attr) slog.Attr
	b                *bytes.Buffer
	m                *sync.Mutex
	writer           io.Writer
	printer          ansi.Printer
	json             *colorjson.Formatter
	autoColor        bool
	verdictSet       bool
	outputEmptyAttrs bool
}

// Enabled checks if the handler is enabled for the given level.
func (h *PrettyHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.h.Enabled(ctx, level)
}

// WithAttrs creates a new handler with the given attributes.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &PrettyHandler{
		h:                h.h.WithAttrs(attrs),
		b:                h.b,
		r:                h.r,
		m:                h.m,
		writer:           h.writer,
		printer:          h.printer,
		json:             h.json,
		outputEmptyAttrs: h.outputEmptyAttrs,
	}
}

// WithGroup creates a new handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	return &PrettyHandler{
		h:                h.h.WithGroup(name),
		b:                h.b,
		r:                h.r,
		m:                h.m,
		writer:           h.writer,
		printer:          h.printer,
		json:             h.json,
		outputEmptyAttrs: h.outputEmptyAttrs,
	}
}

func (h *PrettyHandler) computeAttrs(
	ctx context.Context,
	r slog.Record,
) (map[string]any, error) {
	h.m.Lock()
	defer func() {
		h.b.Reset()
		h.m.Unlock()
	}()

	if err := h.h.Handle(ctx, r); err != nil {
		return nil, fmt.Errorf("error when calling inner handler's Handle: %w", err)
	}

	var attrs map[string]any

	err := json.Unmarshal(h.b.Bytes(), &attrs)
	if err != nil {
		return nil, fmt.Errorf("error when unmarshaling inner handler's Handle result: %w", err)
	}

	return attrs, nil
}

// Handle implements the slog.Handler interface for PrettyHandler.
func (h *PrettyHandler) Handle(ctx context.Context, r slog.Record) error {
	var level string

	levelAttr := slog.Attr{
		Key:   slog.LevelKey,
		Value: slog.AnyValue(r.Level),
	}
	if h.r != nil {
		levelAttr = h.r([]string{}, levelAttr)
	}

	if !levelAttr.Equal(slog.Attr{}) {
		level = levelAttr.Value.String() + ":"

		switch {
		case r.Level <= slog.LevelDebug:
			level = h.printer.Colorize(level, ansi.FgWhite)
		case r.Level <= slog.LevelInfo:
			level = h.printer.Colorize(level, ansi.FgCyan)
		case r.Level < slog.LevelWarn:
			level = h.printer.Colorize(level, ansi.FgBlue)
		case r.Level < slog.LevelError:
			level = h.printer.Colorize(level, ansi.FgYellow)
		case r.Level <= slog.LevelError+1:
			level = h.printer.Colorize(level, ansi.FgRed)
		default: // r.Level > slog.LevelError+1
			level = h.printer.Colorize(level, ansi.FgHiMagenta)
		}
	}

	var timestamp string

	timeAttr := slog.Attr{
		Key:   slog.TimeKey,
		Value: slog.StringValue(r.Time.Format(TimeFormat)),
	}
	if h.r != nil {
		timeAttr = h.r([]string{}, timeAttr)
	}

	if !timeAttr.Equal(slog.Attr{}) {
		timestamp = h.printer.Colorize(timeAttr.Value.String(), ansi.FgWhite)
	}

	var msg string

	msgAttr := slog.Attr{
		Key:   slog.MessageKey,
		Value: slog.StringValue(r.Message),
	}
	if h.r != nil {
		msgAttr = h.r([]string{}, msgAttr)
	}

	if !msgAttr.Equal(slog.Attr{}) {
		msg = h.printer.Colorize(msgAttr.Value.String(), ansi.FgHiWhite)
	}

	attrs, err := h.computeAttrs(ctx, r)
	if err != nil {
		return err
	}

	var attrsAsBytes []byte

	if h.outputEmptyAttrs || len(attrs) > 0 {
		attrsAsBytes, err = h.json.Marshal(attrs)
		if err != nil {
			return errors.Join(ErrMarshalAttribute, err)
		}
	}

	out := strings.Builder{}
	if len(timestamp) > 0 {
		out.WriteString(timestamp)
		out.WriteString(" ")
	}

	if len(level) > 0 {
		out.WriteString(level)
		out.WriteString(" ")
	}

	if len(msg) > 0 {
		out.WriteString(msg)
		out.WriteString(" ")
	}

	if len(attrsAsBytes) > 0 {
		out.WriteString(h.printer.Colorize(string(attrsAsBytes), ansi.FgHiWhite))
	}

	out.WriteString("\n")

	_, err = io.WriteString(h.writer, out.String())
	if err != nil {
		return errors.Join(ErrIoWrite, err)
	}

	return nil
}

func suppressDefaults(next func([]string, slog.Attr) slog.Attr,
) func([]string, slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey ||
			a.Key == slog.LevelKey ||
			a.Key == slog.MessageKey {
			return slog.Attr{}
		}

		if next == nil {
			return a
		}

		return next(groups, a)
	}
}

// NewPretty creates a new PrettyHandler with the given options. Without a
// WithColor or WithColorVerdict option the handler never colors.
func NewPretty(handlerOptions *slog.HandlerOptions, options ...Option) *PrettyHandler {
	if handlerOptions == nil {
		handlerOptions = &slog.HandlerOptions{}
	}

	buf := &bytes.Buffer{}
	handler := &PrettyHandler{
		b: buf,
		h: slog.NewJSONHandler(buf, &slog.HandlerOptions{
			Level:       handlerOptions.Level,
			AddSource:   handlerOptions.AddSource,
			ReplaceAttr: suppressDefaults(handlerOptions.ReplaceAttr),
		}),
		r: handlerOptions.ReplaceAttr,
		m: &sync.Mutex{},
	}

	for _, opt := range options {
		opt(handler)
	}

	if handler.writer == nil {
		handler.writer = os.Stdout
	}

	if handler.autoColor && !handler.verdictSet {
		handler.printer = ansi.NewPrinter(writerVerdict(handler.writer))
	}

	handler.json = colorjson.NewFormatter()
	handler.json.Indent = jsonIndent
	handler.json.DisabledColor = !handler.printer.Enabled()

	return handler
}

// writerVerdict resolves the color decision for the stream behind w. Writers
// other than the process stdout and stderr are never colored.
func writerVerdict(w io.Writer) bool {
	switch w {
	case os.Stdout:
		return envdetect.For(colornope.Stdout)
	case os.Stderr:
		return envdetect.For(colornope.Stderr)
	default:
		return false
	}
}

// Option implements a functional options pattern for PrettyHandler.
type Option func(h *PrettyHandler)

// WithDestinationWriter sets the destination writer for the PrettyHandler.
func WithDestinationWriter(writer io.Writer) Option {
	return func(h *PrettyHandler) {
		h.writer = writer
	}
}

// WithColor enables color output when the destination stream's color
// decision allows it, honoring NO_COLOR, TERM and TTY state.
func WithColor() Option {
	return func(h *PrettyHandler) {
		h.autoColor = true
	}
}

// WithColorVerdict applies an explicit color verdict, overriding WithColor.
func WithColorVerdict(enabled bool) Option {
	return func(h *PrettyHandler) {
		h.printer = ansi.NewPrinter(enabled)
		h.verdictSet = true
	}
}

// WithOutputEmptyAttrs enables output of empty attributes for the PrettyHandler.
func WithOutputEmptyAttrs() Option {
	return func(h *PrettyHandler) {
		h.outputEmptyAttrs = true
	}
}
