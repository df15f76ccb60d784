// Copyright (c) ThomWright 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPretty(t *testing.T) {
	tests := []struct {
		name    string
		options *slog.HandlerOptions
		opts    []Option
	}{
		{
			name:    "with nil options",
			options: nil,
			opts:    []Option{},
		},
		{
			name: "with custom options",
			options: &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			},
			opts: []Option{},
		},
		{
			name:    "with functional options",
			options: &slog.HandlerOptions{},
			opts: []Option{
				WithColorVerdict(true),
				WithOutputEmptyAttrs(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewPretty(tt.options, tt.opts...)
			require.NotNil(t, handler)
			assert.NotNil(t, handler.h, "inner handler must be set")
			assert.NotNil(t, handler.b, "buffer must be set")
			assert.NotNil(t, handler.m, "mutex must be set")
			assert.NotNil(t, handler.writer, "writer must default to stdout")
			assert.NotNil(t, handler.json, "json formatter must be set")
		})
	}
}

func TestPrettyHandlerEnabled(t *testing.T) {
	tests := []struct {
		name    string
		level   slog.Level
		options *slog.HandlerOptions
		want    bool
	}{
		{
			name:    "debug level with debug handler",
			level:   slog.LevelDebug,
			options: &slog.HandlerOptions{Level: slog.LevelDebug},
			want:    true,
		},
		{
			name:    "debug level with info handler",
			level:   slog.LevelDebug,
			options: &slog.HandlerOptions{Level: slog.LevelInfo},
			want:    false,
		},
		{
			name:    "error level with warn handler",
			level:   slog.LevelError,
			options: &slog.HandlerOptions{Level: slog.LevelWarn},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewPretty(tt.options)

			assert.Equal(t, tt.want, handler.Enabled(context.Background(), tt.level))
		})
	}
}

func TestPrettyHandlerWithAttrs(t *testing.T) {
	handler := NewPretty(&slog.HandlerOptions{}, WithColorVerdict(true))

	newHandler := handler.WithAttrs([]slog.Attr{
		slog.String("key1", "value1"),
		slog.Int("key2", 42),
	})

	prettyHandler, ok := newHandler.(*PrettyHandler)
	require.True(t, ok, "WithAttrs() must return *PrettyHandler")

	assert.Same(t, handler.b, prettyHandler.b, "buffer must be shared")
	assert.Same(t, handler.m, prettyHandler.m, "mutex must be shared")
	assert.Equal(t, handler.printer, prettyHandler.printer, "color verdict must carry over")
	assert.Same(t, handler.json, prettyHandler.json, "json formatter must carry over")
}

func TestPrettyHandlerWithGroup(t *testing.T) {
	handler := NewPretty(&slog.HandlerOptions{})

	newHandler := handler.WithGroup("test_group")

	prettyHandler, ok := newHandler.(*PrettyHandler)
	require.True(t, ok, "WithGroup() must return *PrettyHandler")

	assert.Same(t, handler.b, prettyHandler.b, "buffer must be shared")
	assert.Same(t, handler.m, prettyHandler.m, "mutex must be shared")
}

func TestPrettyHandlerHandle(t *testing.T) {
	tests := []struct {
		name           string
		level          slog.Level
		message        string
		attrs          []slog.Attr
		expectInOutput []string
	}{
		{
			name:           "basic info message",
			level:          slog.LevelInfo,
			message:        "test message",
			expectInOutput: []string{"INFO:", "test message"},
		},
		{
			name:           "warning with attributes",
			level:          slog.LevelWarn,
			message:        "something odd",
			attrs:          []slog.Attr{slog.String("stream", "stderr")},
			expectInOutput: []string{"WARN:", "something odd", "stream", "stderr"},
		},
		{
			name:           "error message",
			level:          slog.LevelError,
			message:        "it broke",
			expectInOutput: []string{"ERROR:", "it broke"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			handler := NewPretty(
				&slog.HandlerOptions{Level: slog.LevelDebug},
				WithDestinationWriter(buf),
			)

			r := slog.NewRecord(time.Now(), tt.level, tt.message, 0)
			r.AddAttrs(tt.attrs...)

			require.NoError(t, handler.Handle(context.Background(), r))

			out := buf.String()
			for _, want := range tt.expectInOutput {
				assert.Contains(t, out, want)
			}

			assert.True(t, strings.HasSuffix(out, "\n"), "output must end with a newline")
		})
	}
}

func TestPrettyHandlerColorVerdict(t *testing.T) {
	record := slog.NewRecord(time.Now(), slog.LevelInfo, "colored maybe", 0)

	t.Run("verdict true emits escape codes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		handler := NewPretty(nil, WithDestinationWriter(buf), WithColorVerdict(true))

		require.NoError(t, handler.Handle(context.Background(), record))

		assert.Contains(t, buf.String(), "\033[", "colored output must contain ANSI escapes")
	})

	t.Run("verdict false emits plain text", func(t *testing.T) {
		buf := &bytes.Buffer{}
		handler := NewPretty(nil, WithDestinationWriter(buf), WithColorVerdict(false))

		require.NoError(t, handler.Handle(context.Background(), record))

		assert.NotContains(t, buf.String(), "\033[", "plain output must not contain ANSI escapes")
	})

	t.Run("default is plain", func(t *testing.T) {
		buf := &bytes.Buffer{}
		handler := NewPretty(nil, WithDestinationWriter(buf))

		require.NoError(t, handler.Handle(context.Background(), record))

		assert.NotContains(t, buf.String(), "\033[")
	})
}

func TestPrettyHandlerAutoColorOnBuffer(t *testing.T) {
	// A non-file destination is never a terminal, so WithColor must
	// resolve to plain output.
	buf := &bytes.Buffer{}
	handler := NewPretty(nil, WithDestinationWriter(buf), WithColor())

	record := slog.NewRecord(time.Now(), slog.LevelWarn, "redirected", 0)
	require.NoError(t, handler.Handle(context.Background(), record))

	assert.NotContains(t, buf.String(), "\033[")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestPrettyHandlerWriteError(t *testing.T) {
	handler := NewPretty(nil, WithDestinationWriter(failingWriter{}))

	record := slog.NewRecord(time.Now(), slog.LevelInfo, "doomed", 0)
	err := handler.Handle(context.Background(), record)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIoWrite)
}

func TestPrettyHandlerOutputEmptyAttrs(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := NewPretty(nil, WithDestinationWriter(buf), WithOutputEmptyAttrs())

	record := slog.NewRecord(time.Now(), slog.LevelInfo, "no attrs", 0)
	require.NoError(t, handler.Handle(context.Background(), record))

	assert.Contains(t, buf.String(), "{", "empty attrs must still render a JSON object")
}

func TestPrettyHandlerConcurrentUse(t *testing.T) {
	buf := &bytes.Buffer{}
	var mu syncWriter

	mu.w = buf

	handler := NewPretty(&slog.HandlerOptions{Level: slog.LevelDebug}, WithDestinationWriter(&mu))
	logger := slog.New(handler)

	done := make(chan struct{})

	for i := 0; i < 4; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()

			for j := 0; j < 25; j++ {
				logger.Info("concurrent", "goroutine", n, "iteration", j)
			}
		}(i)
	}

	for i := 0; i < 4; i++ {
		<-done
	}

	assert.Equal(t, 100, strings.Count(buf.String(), "concurrent"))
}

type syncWriter struct {
	m sync.Mutex
	w io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.m.Lock()
	defer s.m.Unlock()

	return s.w.Write(p)
}
