// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"go.uber.org/zap"

	"github.com/jeranaias/workbench-tui/internal/clipboard"
	"github.com/jeranaias/workbench-tui/internal/model"
	"github.com/jeranaias/workbench-tui/internal/ui/styles"
)

// noSelection marks "follow the latest message".
const noSelection = -1

// TranscriptOptions configures a Transcript.
type TranscriptOptions struct {
	Keys         KeyMap
	Clipboard    clipboard.Writer
	Sink         ActionSink
	Logger       *zap.Logger
	SmoothScroll bool
}

// Transcript renders the history in a viewport, tracks the selected message
// and runs the per-message actions.
//
// Auto-scroll is length keyed: it happens when a scrollToLatestMsg arrives
// whose length matches the rendered history and differs from the length last
// scrolled for. Re-renders at the same length never scroll.
type Transcript struct {
	viewport viewport.Model
	theme    *styles.Theme
	keys     KeyMap
	clip     clipboard.Writer
	sink     ActionSink
	logger   *zap.Logger

	messages []model.Message
	view     transcriptView
	width    int
	height   int
	focused  bool

	selected  int
	menuOpen  bool
	menuIndex int

	lastScrolledLen int
	scrolls         int

	smooth    bool
	spring    harmonica.Spring
	pos, vel  float64
	target    int
	animating bool
	frameID   int
}

// NewTranscript creates an empty transcript.
func NewTranscript(theme *styles.Theme, opts TranscriptOptions) Transcript {
	if len(opts.Keys.Copy.Keys()) == 0 {
		opts.Keys = DefaultKeyMap()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.NewMemory()
	}
	if opts.Sink == nil {
		opts.Sink = NewLogSink(opts.Logger)
	}

	vp := viewport.New(80, 20)
	vp.KeyMap = viewport.KeyMap{}

	return Transcript{
		viewport: vp,
		theme:    theme,
		keys:     opts.Keys,
		clip:     opts.Clipboard,
		sink:     opts.Sink,
		logger:   opts.Logger,
		selected: noSelection,
		smooth:   opts.SmoothScroll,
		spring:   styles.NewScrollSpring(),
	}
}

// =============================================================================
// STATE
// =============================================================================

// SetMessages replaces the rendered history.
func (t *Transcript) SetMessages(msgs []model.Message) {
	t.messages = msgs
	if t.selected >= len(msgs) {
		t.selected = len(msgs) - 1
	}
	t.refresh()
}

// SetSize sets the viewport dimensions and re-renders. A transcript showing
// its latest line keeps it in view.
func (t *Transcript) SetSize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	pinned := t.viewport.Height > 0 && t.viewport.AtBottom()
	t.width, t.height = width, height
	t.viewport.Width = width
	t.viewport.Height = height
	t.refresh()
	if pinned {
		t.viewport.GotoBottom()
	}
}

// SetTheme swaps the theme and re-renders.
func (t *Transcript) SetTheme(theme *styles.Theme) {
	t.theme = theme
	t.refresh()
}

// SetSmoothScroll toggles the scroll animation.
func (t *Transcript) SetSmoothScroll(on bool) {
	t.smooth = on
}

// Focus marks the transcript as focused and selects the latest message when
// nothing is selected yet.
func (t *Transcript) Focus() {
	t.focused = true
	if t.selected == noSelection && len(t.messages) > 0 {
		t.selected = len(t.messages) - 1
	}
	t.refresh()
}

// Blur removes focus, clears the selection and closes the menu.
func (t *Transcript) Blur() {
	t.focused = false
	t.selected = noSelection
	t.menuOpen = false
	t.refresh()
}

// Focused reports whether the transcript has focus.
func (t Transcript) Focused() bool {
	return t.focused
}

// Selected returns the selected message.
func (t Transcript) Selected() (model.Message, bool) {
	if t.selected < 0 || t.selected >= len(t.messages) {
		return model.Message{}, false
	}
	return t.messages[t.selected], true
}

// MenuOpen reports whether the overflow menu is showing.
func (t Transcript) MenuOpen() bool {
	return t.menuOpen
}

// YOffset returns the viewport scroll offset.
func (t Transcript) YOffset() int {
	return t.viewport.YOffset
}

// AtBottom reports whether the latest line is visible.
func (t Transcript) AtBottom() bool {
	return t.viewport.AtBottom()
}

// ScrollCount returns how many auto-scrolls have been performed.
func (t Transcript) ScrollCount() int {
	return t.scrolls
}

// Animating reports whether a smooth scroll is in flight.
func (t Transcript) Animating() bool {
	return t.animating
}

// Help returns the bindings relevant to the current state.
func (t Transcript) Help() []key.Binding {
	if t.menuOpen {
		return t.keys.MenuHelp()
	}
	return t.keys.TranscriptHelp()
}

func (t *Transcript) refresh() {
	if t.theme == nil {
		return
	}
	t.view = renderTranscript(t.theme, t.messages, t.width, t.selected, t.menuOpen, t.menuIndex)
	t.viewport.SetContent(t.view.content)
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles scroll effects, animation frames and, while focused, the
// navigation and action keys.
func (t Transcript) Update(msg tea.Msg) (Transcript, tea.Cmd) {
	switch msg := msg.(type) {
	case scrollToLatestMsg:
		return t.handleScrollToLatest(msg)

	case scrollFrameMsg:
		return t.handleFrame(msg)

	case tea.MouseMsg:
		t.stopAnimation()
		var cmd tea.Cmd
		t.viewport, cmd = t.viewport.Update(msg)
		return t, cmd

	case tea.KeyMsg:
		if !t.focused {
			return t, nil
		}
		if t.menuOpen {
			return t.handleMenuKey(msg)
		}
		return t.handleKey(msg)
	}
	return t, nil
}

func (t Transcript) handleScrollToLatest(msg scrollToLatestMsg) (Transcript, tea.Cmd) {
	if msg.Len != len(t.messages) || msg.Len == t.lastScrolledLen {
		return t, nil
	}
	t.lastScrolledLen = msg.Len
	t.scrolls++

	target := t.maxOffset()
	if !t.smooth {
		t.viewport.GotoBottom()
		return t, nil
	}
	return t, t.animateTo(target)
}

func (t Transcript) handleFrame(msg scrollFrameMsg) (Transcript, tea.Cmd) {
	if !t.animating || msg.ID != t.frameID {
		return t, nil
	}

	t.pos, t.vel = t.spring.Update(t.pos, t.vel, float64(t.target))
	if math.Abs(t.pos-float64(t.target)) < 0.5 && math.Abs(t.vel) < 0.5 {
		t.viewport.SetYOffset(t.target)
		t.animating = false
		return t, nil
	}
	t.viewport.SetYOffset(int(math.Round(t.pos)))
	return t, t.nextFrame()
}

func (t *Transcript) animateTo(target int) tea.Cmd {
	t.frameID++
	t.target = target
	if !t.animating {
		t.pos = float64(t.viewport.YOffset)
		t.vel = 0
	}
	t.animating = true
	return t.nextFrame()
}

func (t *Transcript) nextFrame() tea.Cmd {
	id := t.frameID
	return tea.Tick(styles.FrameInterval, func(time.Time) tea.Msg {
		return scrollFrameMsg{ID: id}
	})
}

func (t *Transcript) stopAnimation() {
	if t.animating {
		t.animating = false
		t.frameID++
	}
}

func (t Transcript) maxOffset() int {
	offset := t.view.lines - t.viewport.Height
	if offset < 0 {
		return 0
	}
	return offset
}

func (t Transcript) handleKey(msg tea.KeyMsg) (Transcript, tea.Cmd) {
	switch {
	case key.Matches(msg, t.keys.Up):
		t.moveSelection(-1)
	case key.Matches(msg, t.keys.Down):
		t.moveSelection(1)
	case key.Matches(msg, t.keys.Home):
		t.selectIndex(0)
	case key.Matches(msg, t.keys.End):
		t.selectIndex(len(t.messages) - 1)
	case key.Matches(msg, t.keys.PageUp):
		t.stopAnimation()
		t.viewport.HalfViewUp()
	case key.Matches(msg, t.keys.PageDown):
		t.stopAnimation()
		t.viewport.HalfViewDown()
	case key.Matches(msg, t.keys.Copy):
		return t, t.trigger(ActionCopy)
	case key.Matches(msg, t.keys.Helpful):
		return t, t.trigger(ActionHelpful)
	case key.Matches(msg, t.keys.NotHelpful):
		return t, t.trigger(ActionNotHelpful)
	case key.Matches(msg, t.keys.More):
		return t, t.trigger(ActionMore)
	}
	return t, nil
}

func (t Transcript) handleMenuKey(msg tea.KeyMsg) (Transcript, tea.Cmd) {
	items := MenuActions()
	switch {
	case key.Matches(msg, t.keys.MenuClose):
		t.closeMenu()
	case key.Matches(msg, t.keys.Up):
		t.menuIndex = (t.menuIndex - 1 + len(items)) % len(items)
		t.refresh()
	case key.Matches(msg, t.keys.Down):
		t.menuIndex = (t.menuIndex + 1) % len(items)
		t.refresh()
	case key.Matches(msg, t.keys.MenuSelect):
		return t, t.trigger(items[t.menuIndex])
	case key.Matches(msg, t.keys.Report):
		return t, t.trigger(ActionReport)
	case key.Matches(msg, t.keys.Share):
		return t, t.trigger(ActionShare)
	}
	return t, nil
}

// trigger runs action on the selected message. Human messages have no
// actions, so the call is ignored for them.
func (t *Transcript) trigger(action Action) tea.Cmd {
	msg, ok := t.Selected()
	if !ok || !msg.IsBot() {
		return nil
	}
	t.logger.Debug("message action",
		zap.Stringer("action", action),
		zap.String("message_id", msg.ID))

	switch action {
	case ActionCopy:
		return copyCmd(t.clip, msg)
	case ActionHelpful:
		t.sink.Feedback(msg, FeedbackHelpful)
	case ActionNotHelpful:
		t.sink.Feedback(msg, FeedbackNotHelpful)
	case ActionMore:
		t.menuOpen = true
		t.menuIndex = 0
		t.refresh()
		t.ensureVisible()
	case ActionReport:
		t.sink.Report(msg)
		t.closeMenu()
	case ActionShare:
		t.sink.Share(msg)
		t.closeMenu()
	}
	return nil
}

func (t *Transcript) closeMenu() {
	t.menuOpen = false
	t.menuIndex = 0
	t.refresh()
}

func (t *Transcript) moveSelection(delta int) {
	if len(t.messages) == 0 {
		return
	}
	next := t.selected + delta
	if t.selected == noSelection {
		next = len(t.messages) - 1
	}
	t.selectIndex(next)
}

func (t *Transcript) selectIndex(i int) {
	if len(t.messages) == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(t.messages) {
		i = len(t.messages) - 1
	}
	t.selected = i
	t.refresh()
	t.ensureVisible()
}

// ensureVisible scrolls just enough to show the selected message.
func (t *Transcript) ensureVisible() {
	if t.selected < 0 || t.selected >= len(t.view.offsets) {
		return
	}
	t.stopAnimation()

	start := t.view.offsets[t.selected]
	end := t.view.lines
	if t.selected+1 < len(t.view.offsets) {
		end = t.view.offsets[t.selected+1] - 1
	}

	top, bottom := t.viewport.YOffset, t.viewport.YOffset+t.viewport.Height
	switch {
	case start < top:
		t.viewport.SetYOffset(start)
	case end > bottom:
		offset := end - t.viewport.Height
		if offset > start {
			offset = start
		}
		t.viewport.SetYOffset(offset)
	}
}

// View renders the viewport.
func (t Transcript) View() string {
	return t.viewport.View()
}
