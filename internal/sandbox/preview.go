// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package sandbox

import (
	"path"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"

	"github.com/jeranaias/workbench-tui/internal/ui/styles"
	"github.com/jeranaias/workbench-tui/internal/util"
)

// =============================================================================
// PREVIEW RENDERING
// =============================================================================

// renderPreview renders one file for the preview pane. Markdown goes through
// glamour, everything else through chroma. Nothing is executed.
func renderPreview(theme *styles.Theme, filePath, code string, width int, wrap bool) string {
	if width < 10 {
		width = 10
	}
	switch strings.ToLower(path.Ext(filePath)) {
	case ".md", ".markdown":
		return renderMarkdown(theme, code, width)
	default:
		return fitLines(highlight(theme, filePath, code), width, wrap)
	}
}

// renderMarkdown falls back to the raw text if glamour fails.
func renderMarkdown(theme *styles.Theme, code string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme.GlamourStyle()),
		glamour.WithColorProfile(theme.ColorProfile),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return code
	}
	out, err := r.Render(code)
	if err != nil {
		return code
	}
	return strings.TrimRight(out, "\n")
}

// highlight applies chroma highlighting for the file's language at the
// theme's color depth.
func highlight(theme *styles.Theme, filePath, code string) string {
	lexer := lexers.Match(path.Base(filePath))
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get(theme.ChromaStyle())
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatter := formatters.Get(formatterFor(theme.ColorProfile))
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}
	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	out := buf.String()
	if !strings.HasSuffix(code, "\n") {
		out = strings.TrimSuffix(out, "\n")
	}
	return out
}

func formatterFor(profile termenv.Profile) string {
	switch profile {
	case termenv.TrueColor:
		return "terminal16m"
	case termenv.ANSI256:
		return "terminal256"
	case termenv.ANSI:
		return "terminal16"
	default:
		return "noop"
	}
}

// fitLines wraps or truncates every line to width. Both are ANSI aware.
func fitLines(s string, width int, wrap bool) string {
	if wrap {
		return util.WrapText(s, width)
	}
	lines := util.Lines(s)
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = truncate.StringWithTail(line, uint(width), "...")
		}
	}
	return strings.Join(lines, "\n")
}
