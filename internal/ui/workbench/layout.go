// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package workbench

// Layout is the horizontal split of the workbench.
type Layout struct {
	Left  int
	Gap   int
	Right int
}

// gapWidth separates the two regions.
const gapWidth = 1

// Split divides width into the chat region (two fifths), a one-column gap
// and the sandbox region (the rest). The split is fixed.
func Split(width int) Layout {
	if width <= gapWidth {
		return Layout{Left: max(width, 0)}
	}
	left := width * 2 / 5
	return Layout{
		Left:  left,
		Gap:   gapWidth,
		Right: width - left - gapWidth,
	}
}
