// Copyright (c) ThomWright 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package colornope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnableColorFor(t *testing.T) {
	tests := []struct {
		name       string
		term       string
		noColorSet bool
		force      Force
		isTTY      bool
		want       bool
	}{
		{
			name:  "defaults with TTY enable color",
			term:  "xterm-256color",
			isTTY: true,
			want:  true,
		},
		{
			name:  "non-TTY disables color",
			term:  "xterm-256color",
			isTTY: false,
			want:  false,
		},
		{
			name:  "absent TERM with TTY enables color",
			term:  "",
			isTTY: true,
			want:  true,
		},
		{
			name:  "dumb terminal disables color",
			term:  "dumb",
			isTTY: true,
			want:  false,
		},
		{
			name:       "NO_COLOR disables color on a TTY",
			term:       "xterm-256color",
			noColorSet: true,
			isTTY:      true,
			want:       false,
		},
		{
			name:       "force off beats everything",
			term:       "xterm-256color",
			noColorSet: false,
			force:      ForceOff,
			isTTY:      true,
			want:       false,
		},
		{
			name:  "force on beats non-TTY",
			term:  "xterm-256color",
			force: ForceOn,
			isTTY: false,
			want:  true,
		},
		{
			name:       "force on beats NO_COLOR",
			term:       "xterm-256color",
			noColorSet: true,
			force:      ForceOn,
			isTTY:      true,
			want:       true,
		},
		{
			name:  "force on beats dumb terminal",
			term:  "dumb",
			force: ForceOn,
			isTTY: true,
			want:  true,
		},
		{
			name:       "force off beats force-friendly signals",
			term:       "",
			noColorSet: false,
			force:      ForceOff,
			isTTY:      true,
			want:       false,
		},
		{
			name:       "dumb terminal beats NO_COLOR absence",
			term:       "dumb",
			noColorSet: false,
			isTTY:      true,
			want:       false,
		},
		{
			name:       "NO_COLOR with non-TTY still disabled",
			term:       "xterm-256color",
			noColorSet: true,
			isTTY:      false,
			want:       false,
		},
		{
			name:  "unexpected TERM value is not dumb",
			term:  "dumb\x00ish",
			isTTY: true,
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.term, tt.noColorSet, tt.force)

			assert.Equal(t, tt.want, c.EnableColorFor(Stdout, tt.isTTY), "stdout verdict")
			assert.Equal(t, tt.want, c.EnableColorFor(Stderr, tt.isTTY), "stderr verdict")
		})
	}
}

func TestEnableColorForIsPure(t *testing.T) {
	c := New("xterm-256color", false, ForceUnset)

	first := c.EnableColorFor(Stdout, true)
	second := c.EnableColorFor(Stdout, true)

	assert.Equal(t, first, second, "identical inputs must yield identical verdicts")
	assert.True(t, first)
}

func TestStreamsAreIndependent(t *testing.T) {
	c := New("xterm-256color", false, ForceUnset)

	assert.True(t, c.EnableColorFor(Stdout, true), "interactive stdout should be colored")
	assert.False(t, c.EnableColorFor(Stderr, false), "redirected stderr should not be colored")
}

func TestZeroValueEnablesColorOnTTY(t *testing.T) {
	var c ColorNope

	assert.True(t, c.EnableColorFor(Stdout, true))
	assert.False(t, c.EnableColorFor(Stdout, false))
}

func TestStreamString(t *testing.T) {
	assert.Equal(t, "stdout", Stdout.String())
	assert.Equal(t, "stderr", Stderr.String())
}

func TestForceString(t *testing.T) {
	assert.Equal(t, "unset", ForceUnset.String())
	assert.Equal(t, "on", ForceOn.String())
	assert.Equal(t, "off", ForceOff.String())
}
