// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package workbench

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jeranaias/workbench-tui/internal/config"
	"github.com/jeranaias/workbench-tui/internal/sandbox"
	"github.com/jeranaias/workbench-tui/internal/ui/chat"
	"github.com/jeranaias/workbench-tui/internal/ui/styles"
)

// footerHeight is the help line under both regions.
const footerHeight = 1

// =============================================================================
// PANES
// =============================================================================

// Pane identifies the focused region.
type Pane int

const (
	PaneComposer Pane = iota
	PaneTranscript
	PaneSandbox
	paneCount
)

// String returns the string representation of the pane.
func (p Pane) String() string {
	switch p {
	case PaneComposer:
		return "composer"
	case PaneTranscript:
		return "transcript"
	case PaneSandbox:
		return "sandbox"
	default:
		return "unknown"
	}
}

// =============================================================================
// MODEL
// =============================================================================

// Options configures the workbench.
type Options struct {
	Chat     chat.Options
	Sandbox  sandbox.Surface
	Provider *styles.Provider
	Config   *config.Config
	Keys     *KeyMap
	Logger   *zap.Logger
}

// Model is the root Bubble Tea model. It lays out the chat panel and the
// sandbox surface, routes focus, and owns the theme toggle. It holds no
// domain state.
type Model struct {
	chat     chat.Panel
	sandbox  sandbox.Surface
	provider *styles.Provider
	theme    *styles.Theme
	help     help.Model
	keys     KeyMap
	logger   *zap.Logger

	configTheme string
	focus       Pane
	width       int
	height      int
	initCmd     tea.Cmd
}

// New creates the workbench with the composer focused.
func New(opts Options) *Model {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Provider == nil {
		opts.Provider = styles.NewProvider(styles.DefaultThemeID, styles.DefaultStorageKey, nil)
	}
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}

	theme := opts.Provider.Theme()
	opts.Chat.Theme = theme
	if opts.Chat.Logger == nil {
		opts.Chat.Logger = opts.Logger
	}

	m := &Model{
		chat:     chat.New(opts.Chat),
		sandbox:  opts.Sandbox,
		provider: opts.Provider,
		theme:    theme,
		help:     help.New(),
		keys:     keys,
		logger:   opts.Logger,
	}
	if opts.Config != nil {
		m.configTheme = opts.Config.UI.Theme
	}
	if m.sandbox != nil {
		m.sandbox.SetTheme(theme)
	}
	m.applyHelpStyles()
	m.initCmd = m.setFocus(PaneComposer)
	return m
}

// Init starts the cursor blink and the initial scroll.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.initCmd, m.chat.Init())
}

// Focus returns the focused pane.
func (m *Model) Focus() Pane {
	return m.focus
}

// Theme returns the active theme.
func (m *Model) Theme() *styles.Theme {
	return m.theme
}

// Chat returns the chat panel.
func (m *Model) Chat() chat.Panel {
	return m.chat
}

// Sandbox returns the sandbox surface.
func (m *Model) Sandbox() sandbox.Surface {
	return m.sandbox
}

// =============================================================================
// STATE
// =============================================================================

func (m *Model) setFocus(p Pane) tea.Cmd {
	if p == PaneSandbox && m.sandbox == nil {
		p = PaneComposer
	}
	m.focus = p

	var cmds []tea.Cmd
	switch p {
	case PaneComposer:
		cmds = append(cmds, m.chat.SetFocus(chat.FocusComposer))
	case PaneTranscript:
		cmds = append(cmds, m.chat.SetFocus(chat.FocusTranscript))
	case PaneSandbox:
		cmds = append(cmds, m.chat.SetFocus(chat.FocusNone))
	}
	if m.sandbox != nil {
		if p == PaneSandbox {
			cmds = append(cmds, m.sandbox.Focus())
		} else {
			m.sandbox.Blur()
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) cycleFocus(delta int) tea.Cmd {
	next := Pane((int(m.focus) + delta + int(paneCount)) % int(paneCount))
	if next == PaneSandbox && m.sandbox == nil {
		next = Pane((int(next) + delta + int(paneCount)) % int(paneCount))
	}
	return m.setFocus(next)
}

func (m *Model) applyTheme(theme *styles.Theme) {
	theme.SetSize(m.width, m.height)
	m.theme = theme
	m.chat.SetTheme(theme)
	if m.sandbox != nil {
		m.sandbox.SetTheme(theme)
	}
	m.applyHelpStyles()
}

func (m *Model) applyHelpStyles() {
	m.help.Styles.ShortKey = m.theme.ShortcutKey
	m.help.Styles.ShortDesc = m.theme.ShortcutDesc
	m.help.Styles.ShortSeparator = m.theme.Muted
	m.help.Styles.FullKey = m.theme.ShortcutKey
	m.help.Styles.FullDesc = m.theme.ShortcutDesc
	m.help.Styles.FullSeparator = m.theme.Muted
	m.help.Styles.Ellipsis = m.theme.Muted
}

func (m *Model) toggleTheme() {
	theme, err := m.provider.Toggle()
	if err != nil {
		m.logger.Warn("theme preference not saved", zap.Error(err))
	}
	m.logger.Info("theme changed", zap.Stringer("theme", theme.ID))
	m.applyTheme(theme)
}

// applyConfig re-applies the parts of a reloaded config the UI can change
// live. The theme is only switched when the file's theme itself changed, so
// a toggled preference survives unrelated edits.
func (m *Model) applyConfig(msg ConfigReloadedMsg) {
	if msg.Err != nil {
		m.logger.Warn("config reload failed", zap.Error(msg.Err))
		return
	}
	cfg := msg.Config
	m.chat.SetSmoothScroll(cfg.UI.SmoothScroll)

	if cfg.UI.Theme == m.configTheme {
		m.logger.Info("config reloaded")
		return
	}
	m.configTheme = cfg.UI.Theme

	id, err := styles.ParseThemeID(cfg.UI.Theme)
	if err != nil {
		m.logger.Warn("config reload: bad theme", zap.Error(err))
		return
	}
	theme, err := m.provider.Set(id)
	if err != nil {
		m.logger.Warn("theme preference not saved", zap.Error(err))
	}
	m.applyTheme(theme)
	m.logger.Info("config reloaded", zap.Stringer("theme", id))
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.theme.SetSize(width, height)
	m.help.Width = width

	layout := Split(width)
	bodyHeight := max(height-footerHeight, 1)

	// Each region is framed by a one-cell border.
	m.chat.SetSize(max(layout.Left-2, 1), max(bodyHeight-2, 1))
	if m.sandbox != nil {
		m.sandbox.SetSize(max(layout.Right-2, 1), max(bodyHeight-2, 1))
	}
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles global keys and routes everything else.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case ConfigReloadedMsg:
		m.applyConfig(msg)
		return m, nil

	case chat.AttachRequestedMsg:
		m.logger.Debug("attachment hook invoked")
		return m, nil
	}

	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	cmds = append(cmds, cmd)

	if m.sandbox != nil && m.focus == PaneSandbox {
		_, cmd = m.sandbox.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.ToggleTheme):
		m.toggleTheme()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.FocusNext):
		return m, m.cycleFocus(1)
	case key.Matches(msg, m.keys.FocusPrev):
		return m, m.cycleFocus(-1)
	}

	var cmd tea.Cmd
	if m.focus == PaneSandbox && m.sandbox != nil {
		_, cmd = m.sandbox.Update(msg)
		return m, cmd
	}
	m.chat, cmd = m.chat.Update(msg)
	return m, cmd
}

// =============================================================================
// VIEW
// =============================================================================

// Help returns the bindings for the footer: the focused pane first, then the
// global ones.
func (m *Model) Help() []key.Binding {
	var pane []key.Binding
	if m.focus == PaneSandbox && m.sandbox != nil {
		pane = m.sandbox.Help()
	} else {
		pane = m.chat.Help()
	}
	return append(pane, m.keys.Global()...)
}

// View renders both regions and the footer.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	layout := Split(m.width)
	bodyHeight := max(m.height-footerHeight, 1)

	left := m.frame(m.focus != PaneSandbox, layout.Left, bodyHeight).Render(m.chat.View())

	row := left
	if layout.Right > 0 {
		right := ""
		if m.sandbox != nil {
			right = m.sandbox.View()
		}
		right = m.frame(m.focus == PaneSandbox, layout.Right, bodyHeight).Render(right)
		row = lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", layout.Gap), right)
	}

	return lipgloss.JoinVertical(lipgloss.Left, row, m.renderFooter())
}

func (m *Model) frame(focused bool, width, height int) lipgloss.Style {
	style := m.theme.Panel
	if focused {
		style = m.theme.PanelFocused
	}
	return style.
		Width(max(width-2, 1)).
		Height(max(height-2, 1)).
		MaxHeight(height)
}

func (m *Model) renderFooter() string {
	if m.help.ShowAll {
		groups := [][]key.Binding{m.Help()}
		return m.theme.Footer.Render(m.help.FullHelpView(groups))
	}
	return m.theme.Footer.Render(m.help.ShortHelpView(m.Help()))
}
