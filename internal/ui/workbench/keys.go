// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package workbench

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the global bindings. They are checked before any pane sees
// the key.
type KeyMap struct {
	FocusNext   key.Binding
	FocusPrev   key.Binding
	ToggleTheme key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default global bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next pane"),
		),
		FocusPrev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "previous pane"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("F2", "theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("C-q", "quit"),
		),
	}
}

// Global returns the bindings shown in every footer.
func (k KeyMap) Global() []key.Binding {
	return []key.Binding{k.FocusNext, k.ToggleTheme, k.Help, k.Quit}
}
