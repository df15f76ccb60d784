// Copyright (c) ThomWright 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package colornope

var (
	// Version is set during the build process.
	Version = "dev"
	// Commit is set during the build process.
	Commit = "unknown"
)
