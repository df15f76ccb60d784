// Copyright (c) ThomWright 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the entry point for the color-nope command-line application.
package main

import (
	"context"
	"fmt"
	"os"

	colornope "github.com/ThomWright/color-nope"
	"github.com/ThomWright/color-nope/cmd"
	"github.com/ThomWright/color-nope/internal/ctxlog"
	"github.com/ThomWright/color-nope/internal/signalbroker"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	cmd.RootCmd.Version = fmt.Sprintf("%s (commit: %s)", colornope.Version, colornope.Commit)

	if err := cmd.RootCmd.Run(ctx, os.Args); err != nil {
		ctxlog.Error(ctx, "command failed", "error", err)
		os.Exit(1)
	}
}
