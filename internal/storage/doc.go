// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides preference persistence for the workbench TUI.
//
// Preferences are a flat TOML table of string values stored next to the
// config file. The theme provider keeps its selected theme here under its
// storage key:
//
//	prefs, err := storage.OpenPreferences(path)
//	theme, ok := prefs.Get("workbench-ui-theme")
//	err = prefs.Set("workbench-ui-theme", "light")
//
// Messages are never persisted.
package storage
