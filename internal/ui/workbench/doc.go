// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package workbench is the root Bubble Tea model: the chat panel on the left
// two fifths, the sandbox surface on the right, and a help footer.
//
// Tab cycles focus Composer -> Transcript -> Sandbox. F2 toggles the theme
// through the styles.Provider, which persists the choice. A ConfigReloadedMsg
// from the config watcher re-applies the live settings.
package workbench
