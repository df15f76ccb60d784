// Copyright (c) ThomWright 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/ThomWright/color-nope/internal/ctxlog"
)

// Watch monitors the signal channel and handles signals.
// It will cancel the context on the second signal of a given type that is
// received, letting a first interrupt finish cleanly.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	sigMap := make(map[os.Signal]struct{})
	for sig := range sigCh {
		if _, ok := sigMap[sig]; ok {
			ctxlog.Info(ctx, "watchdog",
				"detail", "received second signal of type, forcefully terminating",
				"signal", sig.String())
			close(sigCh)
			cancel()

			return
		}

		ctxlog.Info(ctx, "watchdog",
			"detail", "received first signal of type, no-op",
			"signal", sig.String())

		sigMap[sig] = struct{}{}
	}
}
