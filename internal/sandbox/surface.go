// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package sandbox

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/workbench-tui/internal/ui/styles"
)

// Surface is what the workbench needs from a sandbox: a file map in and a
// rendered surface out. The workbench never looks inside.
type Surface interface {
	SetSize(width, height int)
	SetTheme(theme *styles.Theme)
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Update(msg tea.Msg) (Surface, tea.Cmd)
	View() string
	Files() map[string]string
	Help() []key.Binding
}

var _ Surface = (*Workspace)(nil)
