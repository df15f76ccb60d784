// Copyright (c) ThomWright 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ansi renders strings with ANSI escape codes. It holds no global
// on/off state: callers construct a Printer from a color verdict (usually a
// colornope decision for the target stream) and the Printer either applies
// the codes or returns the string unchanged.
package ansi
