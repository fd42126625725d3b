// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// TruncateWidth truncates s to a display width, counting wide (CJK, emoji)
// characters as two columns.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// WrapText wraps plain text to width columns. Words are kept whole where
// possible; words longer than a line are hard-wrapped. Existing line breaks
// are preserved.
func WrapText(text string, width int) string {
	if width < 1 {
		width = 1
	}
	wrapped := wordwrap.String(text, width)
	return wrap.String(wrapped, width)
}

// Lines splits text on newlines, normalising CRLF first.
func Lines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}
