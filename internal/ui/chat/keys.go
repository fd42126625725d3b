// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings for the chat panel.
type KeyMap struct {
	// Composer
	Submit  key.Binding
	Newline key.Binding
	Attach  key.Binding

	// Transcript navigation
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Message actions (assistant messages only)
	Copy       key.Binding
	Helpful    key.Binding
	NotHelpful key.Binding
	More       key.Binding

	// Overflow menu
	Report     key.Binding
	Share      key.Binding
	MenuSelect key.Binding
	MenuClose  key.Binding
}

// DefaultKeyMap returns the default key bindings for the chat panel.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send"),
		),
		Newline: key.NewBinding(
			key.WithKeys("alt+enter", "ctrl+j"),
			key.WithHelp("alt+enter", "new line"),
		),
		Attach: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("C-o", "attach"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "previous message"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next message"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("PgUp/C-u", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("PgDn/C-d", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("Home/g", "first message"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("End/G", "latest message"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy"),
		),
		Helpful: key.NewBinding(
			key.WithKeys("+"),
			key.WithHelp("+", "helpful"),
		),
		NotHelpful: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "not helpful"),
		),
		More: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "more"),
		),
		Report: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "report"),
		),
		Share: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "share"),
		),
		MenuSelect: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "choose"),
		),
		MenuClose: key.NewBinding(
			key.WithKeys("esc", "m"),
			key.WithHelp("esc", "close menu"),
		),
	}
}

// =============================================================================
// KEY BINDING HELPERS
// =============================================================================

// ComposerHelp returns the bindings shown while the composer has focus.
func (k KeyMap) ComposerHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Newline, k.Attach}
}

// TranscriptHelp returns the bindings shown while the transcript has focus.
func (k KeyMap) TranscriptHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Copy, k.Helpful, k.NotHelpful, k.More}
}

// MenuHelp returns the bindings shown while the overflow menu is open.
func (k KeyMap) MenuHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.MenuSelect, k.Report, k.Share, k.MenuClose}
}

// ShortHelp returns a slice of key bindings to show in the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return k.ComposerHelp()
}

// FullHelp returns a slice of key bindings to show in the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.ComposerHelp(),
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Copy, k.Helpful, k.NotHelpful, k.More},
		{k.Report, k.Share, k.MenuSelect, k.MenuClose},
	}
}
