// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/workbench-tui/internal/model"
	"github.com/jeranaias/workbench-tui/internal/ui/styles"
	"github.com/jeranaias/workbench-tui/internal/util"
)

// minBodyWidth keeps message bodies readable in very narrow panels.
const minBodyWidth = 10

// emptyTranscript is shown when the history has no messages.
const emptyTranscript = "No messages yet."

// RenderOptions carries the per-message UI state that is not part of the
// message itself.
type RenderOptions struct {
	Selected  bool
	MenuOpen  bool
	MenuIndex int
}

// =============================================================================
// MESSAGE RENDERING
// =============================================================================

// RenderMessage renders one message: avatar badge and label, the body as
// wrapped plain text and, for assistant messages only, the action row.
func RenderMessage(theme *styles.Theme, msg model.Message, width int, opts RenderOptions) string {
	avatarStyle, labelStyle, bodyStyle := theme.UserAvatar, theme.UserLabel, theme.UserBody
	if msg.IsBot() {
		avatarStyle, labelStyle, bodyStyle = theme.AssistantAvatar, theme.AssistantLabel, theme.AssistantBody
	}

	avatar := avatarStyle.Render(msg.Sender.Initial())
	header := lipgloss.JoinHorizontal(lipgloss.Top, avatar, " ", labelStyle.Render(msg.Sender.DisplayName()))

	// One column goes to the selection gutter.
	indent := lipgloss.Width(avatar) + 1
	bodyWidth := width - indent - 1
	if bodyWidth < minBodyWidth {
		bodyWidth = minBodyWidth
	}

	parts := []string{bodyStyle.Render(util.WrapText(msg.Content, bodyWidth))}
	if actions := ActionsFor(msg); actions != nil {
		parts = append(parts, renderActionRow(theme, actions))
		if opts.MenuOpen {
			parts = append(parts, renderMenu(theme, opts.MenuIndex))
		}
	}

	body := lipgloss.NewStyle().PaddingLeft(indent).Render(strings.Join(parts, "\n"))
	block := header + "\n" + body

	if opts.Selected {
		return theme.Selected.Render(block)
	}
	return lipgloss.NewStyle().PaddingLeft(1).Render(block)
}

// renderActionRow renders the assistant controls.
func renderActionRow(theme *styles.Theme, actions []Action) string {
	labels := ActionLabels(actions)
	buttons := make([]string, len(actions))
	for i, a := range actions {
		style := theme.ActionButton
		switch a {
		case ActionHelpful:
			style = theme.ActionHelpful
		case ActionNotHelpful:
			style = theme.ActionNotHelpful
		}
		buttons[i] = style.Render(labels[i])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

// renderMenu renders the overflow menu with the highlighted entry.
func renderMenu(theme *styles.Theme, index int) string {
	items := MenuActions()
	lines := make([]string, len(items))
	for i, a := range items {
		if i == index {
			lines[i] = theme.MenuItemSelected.Render("> " + a.Label())
		} else {
			lines[i] = theme.MenuItem.Render("  " + a.Label())
		}
	}
	return theme.Menu.Render(strings.Join(lines, "\n"))
}

// =============================================================================
// TRANSCRIPT RENDERING
// =============================================================================

// transcriptView is the rendered history plus the first line of each
// message, used to keep the selection visible.
type transcriptView struct {
	content string
	offsets []int
	lines   int
}

// renderTranscript renders msgs in order, separated by blank lines.
func renderTranscript(theme *styles.Theme, msgs []model.Message, width int, selected int, menuOpen bool, menuIndex int) transcriptView {
	if len(msgs) == 0 {
		return transcriptView{content: theme.Muted.Render(emptyTranscript), lines: 1}
	}

	var b strings.Builder
	offsets := make([]int, len(msgs))
	line := 0
	for i, msg := range msgs {
		if i > 0 {
			b.WriteString("\n\n")
			line++
		}
		offsets[i] = line
		rendered := RenderMessage(theme, msg, width, RenderOptions{
			Selected:  i == selected,
			MenuOpen:  menuOpen && i == selected,
			MenuIndex: menuIndex,
		})
		b.WriteString(rendered)
		line += lipgloss.Height(rendered)
	}

	return transcriptView{content: b.String(), offsets: offsets, lines: line}
}
