// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// SCROLL MESSAGES
// =============================================================================

// scrollToLatestMsg is the deferred effect of an append. It carries the
// history length observed when the append committed.
type scrollToLatestMsg struct {
	Len int
}

// scrollFrameMsg advances the smooth-scroll animation with the given id.
type scrollFrameMsg struct {
	ID int
}

// scrollToLatest returns the command that requests a scroll for length n.
func scrollToLatest(n int) tea.Cmd {
	return func() tea.Msg {
		return scrollToLatestMsg{Len: n}
	}
}

// =============================================================================
// COMPOSER MESSAGES
// =============================================================================

// AttachRequestedMsg is emitted when the user asks to attach a file.
// Nothing handles it yet.
type AttachRequestedMsg struct{}

// =============================================================================
// ACTION MESSAGES
// =============================================================================

// CopyResultMsg reports the outcome of a clipboard write.
type CopyResultMsg struct {
	MessageID string
	Err       error
}
