// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the workbench TUI.

# Color System (colors.go)

Colors are Lip Gloss AdaptiveColor pairs. A Theme resolves every pair to its
light or dark side once, so an explicit theme choice wins over terminal
background detection.

	Purple, Cyan, Emerald, Rose, Amber - accents
	Surface, SurfaceDim, SurfaceBright - layered backgrounds
	TextPrimary, TextSecondary, TextMuted - text hierarchy

# Theme System (theme.go, provider.go)

Theme ids are dark, light and system. The Provider reads the persisted id for
its storage key on start and writes it back on every change:

	provider := styles.NewProvider(styles.ThemeDark, styles.DefaultStorageKey, prefs)
	theme := provider.Theme()
	theme, err := provider.Toggle() // dark -> light, persisted

# Motion (motion.go)

NewScrollSpring returns the harmonica spring used for smooth transcript
scrolling; FrameInterval is its tick rate.
*/
package styles
