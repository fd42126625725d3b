// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jeranaias/workbench-tui/internal/clipboard"
	"github.com/jeranaias/workbench-tui/internal/model"
	"github.com/jeranaias/workbench-tui/internal/ui/styles"
)

// Focus identifies which part of the panel receives keys.
type Focus int

const (
	FocusNone Focus = iota
	FocusComposer
	FocusTranscript
)

// String returns the string representation of the focus.
func (f Focus) String() string {
	switch f {
	case FocusComposer:
		return "composer"
	case FocusTranscript:
		return "transcript"
	default:
		return "none"
	}
}

// Options configures a Panel.
type Options struct {
	Store        *model.Store
	Theme        *styles.Theme
	Placeholder  string
	CharLimit    int
	SmoothScroll bool
	Clipboard    clipboard.Writer
	Sink         ActionSink
	Logger       *zap.Logger
	Keys         *KeyMap
}

// =============================================================================
// PANEL
// =============================================================================

// Panel is the chat column: transcript above, composer below. It is the only
// writer of its Store.
type Panel struct {
	store      *model.Store
	composer   Composer
	transcript Transcript
	theme      *styles.Theme
	keys       KeyMap
	logger     *zap.Logger

	width  int
	height int
	focus  Focus
}

// New creates a panel. A nil store starts an empty history.
func New(opts Options) Panel {
	if opts.Store == nil {
		opts.Store = model.NewStore()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}

	p := Panel{
		store: opts.Store,
		composer: NewComposer(opts.Theme, ComposerOptions{
			Placeholder: opts.Placeholder,
			CharLimit:   opts.CharLimit,
			Keys:        keys,
			Logger:      opts.Logger,
		}),
		transcript: NewTranscript(opts.Theme, TranscriptOptions{
			Keys:         keys,
			Clipboard:    opts.Clipboard,
			Sink:         opts.Sink,
			Logger:       opts.Logger,
			SmoothScroll: opts.SmoothScroll,
		}),
		theme:  opts.Theme,
		keys:   keys,
		logger: opts.Logger,
	}
	p.transcript.SetMessages(p.store.List())
	return p
}

// Init scrolls to the latest seeded message.
func (p Panel) Init() tea.Cmd {
	return scrollToLatest(p.store.Len())
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Store returns the message history.
func (p Panel) Store() *model.Store {
	return p.store
}

// Composer returns the composer.
func (p Panel) Composer() Composer {
	return p.composer
}

// Transcript returns the transcript.
func (p Panel) Transcript() Transcript {
	return p.transcript
}

// Focus returns the focused part.
func (p Panel) Focus() Focus {
	return p.focus
}

// Help returns the key bindings for the focused part.
func (p Panel) Help() []key.Binding {
	switch p.focus {
	case FocusComposer:
		return p.keys.ComposerHelp()
	case FocusTranscript:
		return p.transcript.Help()
	default:
		return nil
	}
}

// =============================================================================
// STATE
// =============================================================================

// SetFocus moves keyboard focus within the panel.
func (p *Panel) SetFocus(f Focus) tea.Cmd {
	p.focus = f
	var cmd tea.Cmd
	switch f {
	case FocusComposer:
		p.transcript.Blur()
		cmd = p.composer.Focus()
	case FocusTranscript:
		p.composer.Blur()
		p.transcript.Focus()
	default:
		p.composer.Blur()
		p.transcript.Blur()
	}
	return cmd
}

// SetSize sets the panel dimensions.
func (p *Panel) SetSize(width, height int) {
	p.width, p.height = width, height
	p.composer.SetWidth(width)
	p.transcript.SetSize(width, height-p.composer.Height()-1)
}

// SetTheme swaps the theme on both children.
func (p *Panel) SetTheme(theme *styles.Theme) {
	p.theme = theme
	p.composer.SetTheme(theme)
	p.transcript.SetTheme(theme)
}

// SetSmoothScroll toggles the scroll animation.
func (p *Panel) SetSmoothScroll(on bool) {
	p.transcript.SetSmoothScroll(on)
}

// Submit sends the current draft. The composer and the store both reject
// blank content. On success the transcript re-renders and the returned
// command requests the scroll for the new length.
func (p *Panel) Submit() tea.Cmd {
	text, ok := p.composer.Submit()
	if !ok {
		return nil
	}
	msg, ok := p.store.Append(text)
	if !ok {
		return nil
	}

	p.logger.Debug("message submitted",
		zap.String("message_id", msg.ID),
		zap.Int("seq", msg.Seq))

	p.transcript.SetMessages(p.store.List())
	return scrollToLatest(p.store.Len())
}

// =============================================================================
// UPDATE
// =============================================================================

// Update routes keys to the focused part and effects to the transcript.
func (p Panel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch p.focus {
		case FocusComposer:
			if key.Matches(msg, p.keys.Submit) {
				return p, p.Submit()
			}
			p.composer, cmd = p.composer.Update(msg)
		case FocusTranscript:
			p.transcript, cmd = p.transcript.Update(msg)
		}
		return p, cmd

	case scrollToLatestMsg, scrollFrameMsg, tea.MouseMsg:
		p.transcript, cmd = p.transcript.Update(msg)
		return p, cmd

	case CopyResultMsg:
		if msg.Err != nil {
			p.logger.Warn("clipboard write failed",
				zap.String("message_id", msg.MessageID),
				zap.Error(msg.Err))
		} else {
			p.logger.Debug("copied message", zap.String("message_id", msg.MessageID))
		}
		return p, nil

	case AttachRequestedMsg:
		return p, nil
	}

	// Cursor blink and other textarea internals.
	p.composer, cmd = p.composer.Update(msg)
	return p, cmd
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the panel.
func (p Panel) View() string {
	title := p.theme.PanelTitle.Render("Chat")
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		p.transcript.View(),
		p.composer.View(),
	)
}
