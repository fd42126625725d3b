// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jeranaias/workbench-tui/internal/clipboard"
	"github.com/jeranaias/workbench-tui/internal/model"
	"github.com/jeranaias/workbench-tui/internal/ui/styles"
)

// =============================================================================
// HELPERS
// =============================================================================

type recordingSink struct {
	feedback []Feedback
	reports  []string
	shares   []string
}

func (s *recordingSink) Feedback(_ model.Message, rating Feedback) {
	s.feedback = append(s.feedback, rating)
}

func (s *recordingSink) Report(msg model.Message) {
	s.reports = append(s.reports, msg.ID)
}

func (s *recordingSink) Share(msg model.Message) {
	s.shares = append(s.shares, msg.ID)
}

type fixture struct {
	panel Panel
	clip  *clipboard.Memory
	sink  *recordingSink
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := model.NewStore(
		model.WithIDSource(model.CounterIDs("m")),
		model.WithSeed(model.SeedMessages()...),
	)
	f := &fixture{
		clip: clipboard.NewMemory(),
		sink: &recordingSink{},
	}
	f.panel = New(Options{
		Store:     store,
		Theme:     styles.NewTheme(styles.ThemeDark),
		Clipboard: f.clip,
		Sink:      f.sink,
	})
	f.panel.SetSize(60, 30)
	return f
}

func (f *fixture) send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.panel, cmd = f.panel.Update(msg)
	return cmd
}

func (f *fixture) typeText(s string) {
	for _, r := range s {
		f.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testTheme() *styles.Theme {
	return styles.NewTheme(styles.ThemeDark)
}

func manyMessages(n int) []model.Message {
	seeds := make([]model.Seed, n)
	for i := range seeds {
		sender := model.SenderHuman
		if i%2 == 1 {
			sender = model.SenderBot
		}
		seeds[i] = model.Seed{Sender: sender, Content: fmt.Sprintf("message number %d", i)}
	}
	store := model.NewStore(model.WithIDSource(model.CounterIDs("m")), model.WithSeed(seeds...))
	return store.List()
}

// =============================================================================
// SUBMIT TESTS
// =============================================================================

func TestPanel_InitRequestsScrollForSeed(t *testing.T) {
	f := newFixture(t)

	cmd := f.panel.Init()
	require.NotNil(t, cmd)
	assert.Equal(t, scrollToLatestMsg{Len: 2}, cmd())
}

func TestPanel_SubmitAppendsHumanMessage(t *testing.T) {
	f := newFixture(t)
	f.panel.SetFocus(FocusComposer)

	f.typeText("hello")
	assert.Equal(t, DraftDrafting, f.panel.Composer().State())

	cmd := f.send(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	store := f.panel.Store()
	assert.Equal(t, 3, store.Len())
	last, ok := store.Last()
	require.True(t, ok)
	assert.Equal(t, "hello", last.Content)
	assert.Equal(t, model.SenderHuman, last.Sender)

	assert.Empty(t, f.panel.Composer().Value())
	assert.Equal(t, DraftEmpty, f.panel.Composer().State())
	assert.Equal(t, scrollToLatestMsg{Len: 3}, cmd())
}

func TestPanel_SubmitWhitespaceIsIgnored(t *testing.T) {
	f := newFixture(t)
	f.panel.SetFocus(FocusComposer)

	f.typeText("   ")
	assert.Equal(t, DraftEmpty, f.panel.Composer().State())
	assert.False(t, f.panel.Composer().CanSend())

	cmd := f.send(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, 2, f.panel.Store().Len())
}

func TestPanel_SubmitEmptyIsIgnored(t *testing.T) {
	f := newFixture(t)
	f.panel.SetFocus(FocusComposer)

	assert.Nil(t, f.send(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, 2, f.panel.Store().Len())
}

func TestPanel_NewlineBindingsDoNotSubmit(t *testing.T) {
	newlines := map[string]tea.KeyMsg{
		"alt+enter": {Type: tea.KeyEnter, Alt: true},
		"ctrl+j":    {Type: tea.KeyCtrlJ},
	}

	for name, nl := range newlines {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			f.panel.SetFocus(FocusComposer)

			f.typeText("a")
			f.send(nl)
			f.typeText("b")

			assert.Equal(t, 2, f.panel.Store().Len())
			assert.Equal(t, "a\nb", f.panel.Composer().Value())

			f.send(tea.KeyMsg{Type: tea.KeyEnter})
			last, _ := f.panel.Store().Last()
			assert.Equal(t, "a\nb", last.Content)
		})
	}
}

func TestPanel_KeysIgnoredWithoutFocus(t *testing.T) {
	f := newFixture(t)

	f.typeText("hello")
	f.send(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Empty(t, f.panel.Composer().Value())
	assert.Equal(t, 2, f.panel.Store().Len())
}

func TestComposer_Attach(t *testing.T) {
	f := newFixture(t)
	f.panel.SetFocus(FocusComposer)

	cmd := f.send(tea.KeyMsg{Type: tea.KeyCtrlO})
	require.NotNil(t, cmd)
	assert.Equal(t, AttachRequestedMsg{}, cmd())
}

func TestComposer_ViewShowsControls(t *testing.T) {
	c := NewComposer(testTheme(), ComposerOptions{})
	c.SetWidth(40)

	view := c.View()
	assert.Contains(t, view, "Send")
	assert.Contains(t, view, "Attach")
	assert.Contains(t, view, DefaultPlaceholder)
}

// =============================================================================
// FOCUS TESTS
// =============================================================================

func TestPanel_SetFocus(t *testing.T) {
	f := newFixture(t)

	f.panel.SetFocus(FocusComposer)
	assert.True(t, f.panel.Composer().Focused())
	assert.False(t, f.panel.Transcript().Focused())
	assert.Equal(t, f.panel.keys.ComposerHelp(), f.panel.Help())

	f.panel.SetFocus(FocusTranscript)
	assert.False(t, f.panel.Composer().Focused())
	assert.True(t, f.panel.Transcript().Focused())
	assert.Equal(t, f.panel.keys.TranscriptHelp(), f.panel.Help())

	f.panel.SetFocus(FocusNone)
	assert.Nil(t, f.panel.Help())
}

func TestTranscript_FocusSelectsLatest(t *testing.T) {
	f := newFixture(t)
	f.panel.SetFocus(FocusTranscript)

	sel, ok := f.panel.Transcript().Selected()
	require.True(t, ok)
	assert.Equal(t, "m-2", sel.ID)

	f.send(runes("k"))
	sel, _ = f.panel.Transcript().Selected()
	assert.Equal(t, "m-1", sel.ID)

	f.send(runes("G"))
	sel, _ = f.panel.Transcript().Selected()
	assert.Equal(t, "m-2", sel.ID)

	f.panel.SetFocus(FocusComposer)
	_, ok = f.panel.Transcript().Selected()
	assert.False(t, ok)
}

// =============================================================================
// ACTION TESTS
// =============================================================================

func TestActionsFor(t *testing.T) {
	bot := model.Message{Sender: model.SenderBot, Content: "x"}
	human := model.Message{Sender: model.SenderHuman, Content: "x"}

	assert.Equal(t, []string{"Copy", "Helpful", "Not helpful", "⋯"}, ActionLabels(ActionsFor(bot)))
	assert.Nil(t, ActionsFor(human))
	assert.Equal(t, []string{"Report message", "Share message"}, ActionLabels(MenuActions()))
}

func TestRenderMessage_ActionsOnlyForBot(t *testing.T) {
	theme := testTheme()
	bot := model.Message{ID: "b", Sender: model.SenderBot, Content: "bot says hi"}
	human := model.Message{ID: "h", Sender: model.SenderHuman, Content: "human says hi"}

	botView := RenderMessage(theme, bot, 60, RenderOptions{})
	assert.Contains(t, botView, "Assistant")
	assert.Contains(t, botView, "bot says hi")
	assert.Contains(t, botView, "Copy")
	assert.Contains(t, botView, "Not helpful")

	humanView := RenderMessage(theme, human, 60, RenderOptions{})
	assert.Contains(t, humanView, "You")
	assert.Contains(t, humanView, "human says hi")
	assert.NotContains(t, humanView, "Copy")
	assert.NotContains(t, humanView, "Helpful")
}

func TestRenderMessage_MenuOpen(t *testing.T) {
	bot := model.Message{ID: "b", Sender: model.SenderBot, Content: "reply"}

	view := RenderMessage(testTheme(), bot, 60, RenderOptions{MenuOpen: true, MenuIndex: 1})
	assert.Contains(t, view, "  Report message")
	assert.Contains(t, view, "> Share message")
}

func TestRenderTranscript_Empty(t *testing.T) {
	view := renderTranscript(testTheme(), nil, 40, noSelection, false, 0)
	assert.Contains(t, view.content, "No messages yet.")
}

func TestTranscript_CopyBotMessage(t *testing.T) {
	f := newFixture(t)
	f.panel.SetFocus(FocusTranscript)
	bot, _ := f.panel.Store().Last()

	cmd := f.send(runes("c"))
	require.NotNil(t, cmd)
	result := cmd()
	assert.Equal(t, CopyResultMsg{MessageID: bot.ID}, result)
	assert.Nil(t, f.send(result))

	assert.Equal(t, bot.Content, f.clip.Text())
	assert.Equal(t, 2, f.panel.Store().Len())
}

func TestTranscript_CopyFailureIsReported(t *testing.T) {
	failing := clipboard.WriterFunc(func(string) error { return errors.New("no clipboard") })
	tr := NewTranscript(testTheme(), TranscriptOptions{Clipboard: failing})
	tr.SetMessages([]model.Message{{ID: "b", Sender: model.SenderBot, Content: "x"}})
	tr.Focus()

	_, cmd := tr.Update(runes("c"))
	require.NotNil(t, cmd)
	result, ok := cmd().(CopyResultMsg)
	require.True(t, ok)
	assert.EqualError(t, result.Err, "no clipboard")
}

func TestTranscript_FeedbackGoesToSink(t *testing.T) {
	f := newFixture(t)
	f.panel.SetFocus(FocusTranscript)

	f.send(runes("+"))
	f.send(runes("-"))

	assert.Equal(t, []Feedback{FeedbackHelpful, FeedbackNotHelpful}, f.sink.feedback)
	assert.Equal(t, 2, f.panel.Store().Len())
}

func TestTranscript_HumanMessageIgnoresActions(t *testing.T) {
	f := newFixture(t)
	f.panel.SetFocus(FocusTranscript)
	f.send(runes("g"))

	sel, _ := f.panel.Transcript().Selected()
	require.Equal(t, model.SenderHuman, sel.Sender)

	for _, k := range []string{"c", "+", "-", "m"} {
		assert.Nil(t, f.send(runes(k)), k)
	}
	assert.Zero(t, f.clip.Writes())
	assert.Empty(t, f.sink.feedback)
	assert.False(t, f.panel.Transcript().MenuOpen())
}

func TestTranscript_Menu(t *testing.T) {
	f := newFixture(t)
	f.panel.SetFocus(FocusTranscript)
	bot, _ := f.panel.Store().Last()

	f.send(runes("m"))
	require.True(t, f.panel.Transcript().MenuOpen())
	assert.Equal(t, f.panel.keys.MenuHelp(), f.panel.Help())

	// down then enter picks the second entry
	f.send(runes("j"))
	f.send(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{bot.ID}, f.sink.shares)
	assert.False(t, f.panel.Transcript().MenuOpen())

	f.send(runes("m"))
	f.send(runes("r"))
	assert.Equal(t, []string{bot.ID}, f.sink.reports)
	assert.False(t, f.panel.Transcript().MenuOpen())

	f.send(runes("m"))
	f.send(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, f.panel.Transcript().MenuOpen())
	assert.Len(t, f.sink.reports, 1)
	assert.Len(t, f.sink.shares, 1)
}

func TestLogSink_DoesNotPanic(t *testing.T) {
	sink := NewLogSink(nil)
	msg := model.Message{ID: "x", Sender: model.SenderBot}

	assert.NotPanics(t, func() {
		sink.Feedback(msg, FeedbackHelpful)
		sink.Report(msg)
		sink.Share(msg)
	})
}

func TestLogSink_LogsPreview(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sink := NewLogSink(zap.New(core))
	msg := model.Message{ID: "m1", Sender: model.SenderBot, Content: "first line\n" + strings.Repeat("x", 60)}

	sink.Feedback(msg, FeedbackNotHelpful)
	sink.Report(msg)
	sink.Share(msg)

	entries := logs.All()
	require.Len(t, entries, 3)
	for _, e := range entries {
		fields := e.ContextMap()
		assert.Equal(t, "m1", fields["message_id"])
		preview, _ := fields["preview"].(string)
		assert.True(t, strings.HasPrefix(preview, "first line x"), preview)
		assert.Len(t, []rune(preview), logPreviewLen)
	}
	assert.Equal(t, "not_helpful", entries[0].ContextMap()["rating"])
}

// =============================================================================
// SCROLL TESTS
// =============================================================================

func newScrollTranscript(smooth bool, n int) Transcript {
	tr := NewTranscript(testTheme(), TranscriptOptions{SmoothScroll: smooth})
	tr.SetSize(40, 5)
	tr.SetMessages(manyMessages(n))
	return tr
}

func TestTranscript_ScrollsOncePerLength(t *testing.T) {
	tr := newScrollTranscript(false, 10)
	require.Zero(t, tr.YOffset())

	tr, _ = tr.Update(scrollToLatestMsg{Len: 10})
	assert.Equal(t, 1, tr.ScrollCount())
	assert.True(t, tr.AtBottom())
	assert.Positive(t, tr.YOffset())

	tr, _ = tr.Update(scrollToLatestMsg{Len: 10})
	assert.Equal(t, 1, tr.ScrollCount())
}

func TestTranscript_StaleLengthIsIgnored(t *testing.T) {
	tr := newScrollTranscript(false, 10)

	tr, _ = tr.Update(scrollToLatestMsg{Len: 9})
	assert.Zero(t, tr.ScrollCount())
	assert.Zero(t, tr.YOffset())
}

func TestTranscript_RerenderDoesNotScroll(t *testing.T) {
	msgs := manyMessages(10)
	tr := newScrollTranscript(false, 10)
	tr, _ = tr.Update(scrollToLatestMsg{Len: 10})

	tr.Focus()
	tr, _ = tr.Update(runes("g"))
	require.Zero(t, tr.YOffset())

	tr.SetMessages(msgs)
	tr.SetTheme(styles.NewTheme(styles.ThemeLight))
	tr, _ = tr.Update(scrollToLatestMsg{Len: 10})

	assert.Zero(t, tr.YOffset())
	assert.Equal(t, 1, tr.ScrollCount())
}

func TestTranscript_NewLengthScrollsAgain(t *testing.T) {
	tr := newScrollTranscript(false, 10)
	tr, _ = tr.Update(scrollToLatestMsg{Len: 10})

	tr.SetMessages(manyMessages(11))
	tr, _ = tr.Update(scrollToLatestMsg{Len: 11})
	assert.Equal(t, 2, tr.ScrollCount())
	assert.True(t, tr.AtBottom())
}

func TestTranscript_SmoothScrollAnimates(t *testing.T) {
	tr := newScrollTranscript(true, 10)

	tr, cmd := tr.Update(scrollToLatestMsg{Len: 10})
	require.NotNil(t, cmd)
	assert.True(t, tr.Animating())
	assert.Zero(t, tr.YOffset())

	frames := 0
	for tr.Animating() && frames < 1000 {
		tr, _ = tr.Update(scrollFrameMsg{ID: tr.frameID})
		frames++
	}

	assert.False(t, tr.Animating())
	assert.Greater(t, frames, 1)
	assert.True(t, tr.AtBottom())
	assert.Equal(t, 1, tr.ScrollCount())
}

func TestTranscript_StaleFrameIsIgnored(t *testing.T) {
	tr := newScrollTranscript(true, 10)
	tr, _ = tr.Update(scrollToLatestMsg{Len: 10})

	tr, cmd := tr.Update(scrollFrameMsg{ID: tr.frameID - 1})
	assert.Nil(t, cmd)
	assert.Zero(t, tr.YOffset())
	assert.True(t, tr.Animating())
}

func TestTranscript_ManualScrollStopsAnimation(t *testing.T) {
	tr := newScrollTranscript(true, 10)
	tr, _ = tr.Update(scrollToLatestMsg{Len: 10})
	tr.Focus()

	tr, _ = tr.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	assert.False(t, tr.Animating())
}

func TestTranscript_ResizeKeepsLatestInView(t *testing.T) {
	tr := NewTranscript(testTheme(), TranscriptOptions{})
	tr.SetSize(60, 30)
	tr.SetMessages(manyMessages(8))
	tr, _ = tr.Update(scrollToLatestMsg{Len: 8})
	require.True(t, tr.AtBottom())

	tr.SetSize(60, 6)
	assert.True(t, tr.AtBottom())
	assert.Positive(t, tr.YOffset())
	assert.Equal(t, 1, tr.ScrollCount())
}

func TestTranscript_ResizeKeepsScrolledBackPosition(t *testing.T) {
	tr := newScrollTranscript(false, 10)
	require.Zero(t, tr.YOffset())
	require.False(t, tr.AtBottom())

	tr.SetSize(40, 4)
	assert.Zero(t, tr.YOffset())
}

func TestPanel_SubmitScrollsTranscript(t *testing.T) {
	f := newFixture(t)
	f.panel.SetSize(60, 12)
	f.panel.SetFocus(FocusComposer)

	for i := 0; i < 5; i++ {
		f.typeText(strings.Repeat("word ", 12))
		cmd := f.send(tea.KeyMsg{Type: tea.KeyEnter})
		require.NotNil(t, cmd)
		f.send(cmd())
	}

	assert.Equal(t, 7, f.panel.Store().Len())
	assert.Equal(t, 5, f.panel.Transcript().ScrollCount())
	assert.True(t, f.panel.Transcript().AtBottom())
}
