// Copyright (c) ThomWright 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-aware logger that can be used to log messages.
// It uses the slog package for structured logging and supports different log levels.
//
// The default is a pretty console handler that formats log messages in a
// human-readable way, colorized only when the destination stream's color
// decision allows it.
//
// The log level is read from an environment variable derived from the
// executable name: for an executable named "myapp" the variable is
// "MYAPP_LOG_LEVEL", accepting "DEBUG", "INFO", "WARN" or "ERROR". Any other
// value defaults to "WARN".
package ctxlog
