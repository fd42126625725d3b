// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the workbench packages.
//
// String helpers are width-aware (go-runewidth) and wrap with reflow so
// transcript and editor rendering never splits a multi-byte character.
// AtomicWriteFile backs config and preference persistence.
package util
