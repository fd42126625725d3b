// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package sandbox

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the workspace bindings. Everything else goes to the editor
// or the preview viewport.
type KeyMap struct {
	ToggleTab key.Binding
	PrevFile  key.Binding
	NextFile  key.Binding
	PrevTab   key.Binding
	NextTab   key.Binding
	CloseTab  key.Binding
	Run       key.Binding
}

// DefaultKeyMap returns the default workspace bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ToggleTab: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "editor/preview"),
		),
		PrevFile: key.NewBinding(
			key.WithKeys("alt+up"),
			key.WithHelp("M-up", "previous file"),
		),
		NextFile: key.NewBinding(
			key.WithKeys("alt+down"),
			key.WithHelp("M-down", "next file"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("ctrl+pgup"),
			key.WithHelp("C-PgUp", "previous tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("ctrl+pgdown"),
			key.WithHelp("C-PgDn", "next tab"),
		),
		CloseTab: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("C-w", "close tab"),
		),
		Run: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "run"),
		),
	}
}

// EditorHelp returns the bindings shown on the editor tab.
func (k KeyMap) EditorHelp() []key.Binding {
	return []key.Binding{k.ToggleTab, k.PrevFile, k.NextFile, k.CloseTab, k.Run}
}

// PreviewHelp returns the bindings shown on the preview tab.
func (k KeyMap) PreviewHelp() []key.Binding {
	run := k.Run
	run.SetHelp(run.Help().Key, "refresh")
	return []key.Binding{k.ToggleTab, k.PrevFile, k.NextFile, run}
}
