// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package chat provides the chat column of the workbench TUI.

# Key Components

## Panel (panel.go)

Panel composes a Transcript above a Composer and owns the message Store.
Enter submits the draft; the newline bindings insert a line break.

## Transcript (transcript.go)

Renders the history in a bubbles viewport. Scrolling to the latest message
is keyed by history length: each successful append requests one scroll and
re-renders at the same length never move the viewport. With smooth scrolling
enabled the offset is animated with a harmonica spring.

## Actions (actions.go)

Assistant messages carry a row of controls:
  - Copy writes the raw content to the clipboard
  - Helpful / Not helpful forward a rating to the ActionSink
  - The overflow menu offers Report message and Share message

Human messages have no actions.

# Usage

	p := chat.New(chat.Options{
		Store: model.NewStore(model.WithSeed(model.SeedMessages()...)),
		Theme: styles.NewTheme(styles.ThemeDark),
	})
	cmd := p.SetFocus(chat.FocusComposer)
*/
package chat
