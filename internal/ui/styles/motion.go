// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"time"

	"github.com/charmbracelet/harmonica"
)

// =============================================================================
// SCROLL MOTION
// =============================================================================

// ScrollFPS is the frame rate of the transcript scroll animation.
const ScrollFPS = 60

// FrameInterval is the delay between two animation frames.
var FrameInterval = time.Second / ScrollFPS

// NewScrollSpring returns the spring that drives smooth scrolling. It is
// critically damped so the viewport settles on the target without bouncing.
func NewScrollSpring() harmonica.Spring {
	return harmonica.NewSpring(harmonica.FPS(ScrollFPS), 6.0, 1.0)
}

// =============================================================================
// TREE CHARACTERS
// =============================================================================

// TreeChars for rendering the sandbox file explorer (ASCII-safe).
var TreeChars = struct {
	Pipe   string
	Tee    string
	Corner string
	Dash   string
}{
	Pipe:   "|",
	Tee:    "+",
	Corner: "`",
	Dash:   "-",
}

// RenderTreeLine creates a tree line prefix.
// isLast: true if this is the last item in the list
func RenderTreeLine(isLast bool) string {
	if isLast {
		return TreeChars.Corner + TreeChars.Dash + " "
	}
	return TreeChars.Tee + TreeChars.Dash + " "
}
