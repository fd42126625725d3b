// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jeranaias/workbench-tui/internal/model"
	"github.com/jeranaias/workbench-tui/internal/ui/styles"
)

// DefaultPlaceholder is shown in the empty composer.
const DefaultPlaceholder = "Type your message..."

// composerHeight is the number of visible draft lines.
const composerHeight = 3

// =============================================================================
// DRAFT STATE
// =============================================================================

// DraftState says whether the composer holds something sendable.
type DraftState int

const (
	// DraftEmpty: the buffer is empty or whitespace only. Send is disabled.
	DraftEmpty DraftState = iota
	// DraftDrafting: the buffer has non-whitespace content. Send is enabled.
	DraftDrafting
)

// String returns the string representation of the state.
func (s DraftState) String() string {
	if s == DraftDrafting {
		return "drafting"
	}
	return "empty"
}

func draftStateOf(value string) DraftState {
	if model.IsBlank(value) {
		return DraftEmpty
	}
	return DraftDrafting
}

// =============================================================================
// COMPOSER
// =============================================================================

// ComposerOptions configures a Composer.
type ComposerOptions struct {
	Placeholder string
	CharLimit   int
	Keys        KeyMap
	Logger      *zap.Logger
}

// Composer owns the draft buffer. Enter is handled by the caller through
// Submit; the modifier bindings insert a line break.
type Composer struct {
	input  textarea.Model
	state  DraftState
	keys   KeyMap
	theme  *styles.Theme
	logger *zap.Logger
	width  int
}

// NewComposer creates an empty, unfocused composer.
func NewComposer(theme *styles.Theme, opts ComposerOptions) Composer {
	if opts.Placeholder == "" {
		opts.Placeholder = DefaultPlaceholder
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if len(opts.Keys.Submit.Keys()) == 0 {
		opts.Keys = DefaultKeyMap()
	}

	ta := textarea.New()
	ta.Placeholder = opts.Placeholder
	ta.CharLimit = opts.CharLimit
	ta.ShowLineNumbers = false
	ta.Prompt = "> "
	ta.SetHeight(composerHeight)
	ta.KeyMap.InsertNewline = opts.Keys.Newline

	c := Composer{
		input:  ta,
		state:  DraftEmpty,
		keys:   opts.Keys,
		theme:  theme,
		logger: opts.Logger,
	}
	c.applyTheme()
	return c
}

func (c *Composer) applyTheme() {
	if c.theme == nil {
		return
	}
	focused, blurred := textarea.DefaultStyles()
	focused.Placeholder = c.theme.Placeholder
	focused.Text = c.theme.App
	focused.Prompt = c.theme.SelectedMarker
	focused.CursorLine = lipgloss.NewStyle()
	blurred.Placeholder = c.theme.Placeholder
	blurred.Text = c.theme.Muted
	blurred.Prompt = c.theme.Muted
	c.input.FocusedStyle = focused
	c.input.BlurredStyle = blurred
}

// SetTheme swaps the theme.
func (c *Composer) SetTheme(theme *styles.Theme) {
	c.theme = theme
	c.applyTheme()
}

// SetWidth sets the rendered width.
func (c *Composer) SetWidth(width int) {
	c.width = width
	inputWidth := width - 2
	if inputWidth < 10 {
		inputWidth = 10
	}
	c.input.SetWidth(inputWidth)
}

// Height returns the number of lines View renders.
func (c Composer) Height() int {
	// border + draft lines + control row
	return 1 + composerHeight + 1
}

// Focus gives the composer keyboard focus.
func (c *Composer) Focus() tea.Cmd {
	return c.input.Focus()
}

// Blur removes keyboard focus.
func (c *Composer) Blur() {
	c.input.Blur()
}

// Focused reports whether the composer has focus.
func (c Composer) Focused() bool {
	return c.input.Focused()
}

// Value returns the draft.
func (c Composer) Value() string {
	return c.input.Value()
}

// SetValue replaces the draft.
func (c *Composer) SetValue(s string) {
	c.input.SetValue(s)
	c.state = draftStateOf(c.input.Value())
}

// State returns the draft state.
func (c Composer) State() DraftState {
	return c.state
}

// CanSend reports whether the send control is enabled.
func (c Composer) CanSend() bool {
	return c.state == DraftDrafting
}

// Submit returns the draft and clears the buffer. With an empty or
// whitespace-only draft it does nothing and returns false.
func (c *Composer) Submit() (string, bool) {
	if c.state != DraftDrafting {
		return "", false
	}
	text := c.input.Value()
	c.input.Reset()
	c.state = DraftEmpty
	return text, true
}

// Attach is the file-attachment hook. It only announces the request.
func (c *Composer) Attach() tea.Cmd {
	c.logger.Debug("attach requested")
	return func() tea.Msg {
		return AttachRequestedMsg{}
	}
}

// Update handles editing keys. Submit is not handled here.
func (c Composer) Update(msg tea.Msg) (Composer, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, c.keys.Attach) {
			return c, c.Attach()
		}
		if key.Matches(keyMsg, c.keys.Submit) {
			return c, nil
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	c.state = draftStateOf(c.input.Value())
	return c, cmd
}

// View renders the draft area and the attach/send controls.
func (c Composer) View() string {
	send := c.theme.SendDisabled.Render("Send")
	if c.CanSend() {
		send = c.theme.SendEnabled.Render("Send")
	}
	attach := c.theme.AttachButton.Render("Attach")

	controls := lipgloss.JoinHorizontal(lipgloss.Top, attach, " ", send)
	row := lipgloss.PlaceHorizontal(c.width, lipgloss.Right, controls)

	frame := c.theme.Composer
	if c.Focused() {
		frame = c.theme.ComposerFocused
	}
	return frame.Width(c.width).Render(c.input.View() + "\n" + row)
}
