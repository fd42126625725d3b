// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package sandbox

import (
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/jeranaias/workbench-tui/internal/ui/styles"
	"github.com/jeranaias/workbench-tui/internal/util"
)

const noFileOpen = "No file open. Pick one with M-up / M-down."

// Workspace is the terminal sandbox: a file explorer, an editable code pane
// with closable file tabs, and a preview refreshed by the run key.
type Workspace struct {
	files   map[string]string
	entries []treeEntry
	paths   []string
	cursor  int

	open   []string
	active string

	editor  textarea.Model
	preview viewport.Model

	snapshot       map[string]string
	previewPath    string
	previewContent string
	runs           int

	tab        Tab
	template   Template
	bundlerURL string
	resources  []string
	wrap       bool

	theme   *styles.Theme
	keys    KeyMap
	logger  *zap.Logger
	width   int
	height  int
	focused bool
}

// New composes the file map for opts and opens the template entry plus every
// user file.
func New(opts Options) (*Workspace, error) {
	if opts.Template == "" {
		opts.Template = DefaultTemplate
	}
	if opts.BundlerURL == "" {
		opts.BundlerURL = DefaultBundlerURL
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}

	files, err := ComposeFiles(opts.Template, opts.Files, opts.Dependencies)
	if err != nil {
		return nil, err
	}

	editor := textarea.New()
	editor.ShowLineNumbers = opts.ShowLineNumbers
	editor.CharLimit = 0
	editor.MaxHeight = 0
	editor.Prompt = ""

	vp := viewport.New(40, 10)

	w := &Workspace{
		files:      files,
		editor:     editor,
		preview:    vp,
		tab:        opts.DefaultTab,
		template:   opts.Template,
		bundlerURL: strings.TrimRight(opts.BundlerURL, "/"),
		resources:  append([]string(nil), opts.ExternalResources...),
		wrap:       opts.WrapContent,
		theme:      opts.Theme,
		keys:       keys,
		logger:     opts.Logger,
	}
	w.reindex()

	userPaths := make([]string, 0, len(opts.Files))
	for p := range opts.Files {
		clean, _ := NormalizePath(p)
		userPaths = append(userPaths, clean)
	}
	sort.Strings(userPaths)
	w.open = lo.Uniq(append([]string{opts.Template.Entry()}, userPaths...))

	w.applyTheme()
	w.openFile(opts.Template.Entry())
	w.refreshPreview()
	return w, nil
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Files returns the current file map, edits included.
func (w *Workspace) Files() map[string]string {
	w.commit()
	return lo.Assign(w.files)
}

// Paths returns the file paths in explorer order.
func (w *Workspace) Paths() []string {
	return append([]string(nil), w.paths...)
}

// Active returns the path in the editor, or "" when every tab is closed.
func (w *Workspace) Active() string {
	return w.active
}

// OpenTabs returns the open file tabs in order.
func (w *Workspace) OpenTabs() []string {
	return append([]string(nil), w.open...)
}

// Tab returns the visible pane.
func (w *Workspace) Tab() Tab {
	return w.tab
}

// Runs returns how many times the preview was refreshed by the run key.
func (w *Workspace) Runs() int {
	return w.runs
}

// PreviewPath returns the file the preview shows.
func (w *Workspace) PreviewPath() string {
	return w.previewPath
}

// PreviewContent returns the rendered preview.
func (w *Workspace) PreviewContent() string {
	return w.previewContent
}

// BundlerURL returns the URL shown in the navigator.
func (w *Workspace) BundlerURL() string {
	return w.bundlerURL
}

// Focused reports whether the workspace has focus.
func (w *Workspace) Focused() bool {
	return w.focused
}

// Help returns the bindings for the visible pane.
func (w *Workspace) Help() []key.Binding {
	if w.tab == TabPreview {
		return w.keys.PreviewHelp()
	}
	return w.keys.EditorHelp()
}

// =============================================================================
// STATE
// =============================================================================

// SetSize lays out the explorer at a fifth of the width and the tabs in the
// rest.
func (w *Workspace) SetSize(width, height int) {
	w.width, w.height = width, height

	paneWidth := w.mainWidth()
	w.editor.SetWidth(paneWidth)
	w.editor.SetHeight(max(height-2, 1))
	w.preview.Width = paneWidth
	w.preview.Height = max(height-3, 1)
	w.renderPreview()
}

// SetTheme swaps the theme.
func (w *Workspace) SetTheme(theme *styles.Theme) {
	w.theme = theme
	w.applyTheme()
	w.renderPreview()
}

// Focus gives the workspace keyboard focus.
func (w *Workspace) Focus() tea.Cmd {
	w.focused = true
	if w.tab == TabEditor && w.active != "" {
		return w.editor.Focus()
	}
	return nil
}

// Blur removes keyboard focus.
func (w *Workspace) Blur() {
	w.focused = false
	w.editor.Blur()
}

func (w *Workspace) explorerWidth() int {
	return w.width / 5
}

func (w *Workspace) mainWidth() int {
	return max(w.width-w.explorerWidth()-1, 10)
}

func (w *Workspace) applyTheme() {
	if w.theme == nil {
		return
	}
	focused, blurred := textarea.DefaultStyles()
	focused.LineNumber = w.theme.LineNumber
	focused.CursorLineNumber = w.theme.SelectedMarker
	focused.Text = w.theme.Code
	focused.CursorLine = w.theme.Code
	blurred.LineNumber = w.theme.LineNumber
	blurred.Text = w.theme.Code
	w.editor.FocusedStyle = focused
	w.editor.BlurredStyle = blurred
}

func (w *Workspace) reindex() {
	w.entries = buildTree(lo.Keys(w.files))
	w.paths = filePaths(w.entries)
}

// =============================================================================
// FILE TABS
// =============================================================================

// commit writes the editor buffer back to the active file.
func (w *Workspace) commit() {
	if w.active != "" {
		w.files[w.active] = w.editor.Value()
	}
}

// openFile makes p the active tab, opening it if needed.
func (w *Workspace) openFile(p string) {
	if _, ok := w.files[p]; !ok {
		return
	}
	w.commit()
	if !lo.Contains(w.open, p) {
		w.open = append(w.open, p)
	}
	w.active = p
	w.cursor = max(lo.IndexOf(w.paths, p), 0)
	w.loadEditor()
}

// loadEditor puts the active file in the editor with the cursor at the top.
func (w *Workspace) loadEditor() {
	if w.active == "" {
		w.editor.Reset()
		w.editor.Blur()
		return
	}
	w.editor.SetValue(w.files[w.active])

	// The textarea only moves its cursor while focused.
	w.editor.Focus()
	w.editor, _ = w.editor.Update(tea.KeyMsg{Type: tea.KeyCtrlHome})
	if !w.focused || w.tab != TabEditor {
		w.editor.Blur()
	}
}

// closeActive closes the active tab and activates its left neighbour.
func (w *Workspace) closeActive() {
	if w.active == "" {
		return
	}
	w.commit()
	i := lo.IndexOf(w.open, w.active)
	w.open = append(w.open[:i], w.open[i+1:]...)
	w.logger.Debug("sandbox tab closed", zap.String("path", w.active))

	w.active = ""
	if len(w.open) > 0 {
		w.active = w.open[max(i-1, 0)]
		w.cursor = max(lo.IndexOf(w.paths, w.active), 0)
	}
	w.loadEditor()
}

// cycleTab activates the open tab delta steps away.
func (w *Workspace) cycleTab(delta int) {
	if len(w.open) == 0 {
		return
	}
	i := lo.IndexOf(w.open, w.active)
	next := (i + delta + len(w.open)) % len(w.open)
	w.openFile(w.open[next])
}

// moveCursor selects the file delta rows away in the explorer and opens it.
func (w *Workspace) moveCursor(delta int) {
	if len(w.paths) == 0 {
		return
	}
	w.cursor = min(max(w.cursor+delta, 0), len(w.paths)-1)
	w.openFile(w.paths[w.cursor])
}

// =============================================================================
// RUN / PREVIEW
// =============================================================================

// Run snapshots the files and re-renders the preview. It is the only thing
// that changes what the preview shows.
func (w *Workspace) Run() {
	w.runs++
	w.refreshPreview()
	w.logger.Debug("sandbox run",
		zap.Int("runs", w.runs),
		zap.String("path", w.previewPath))
}

func (w *Workspace) refreshPreview() {
	w.commit()
	w.snapshot = lo.Assign(w.files)
	w.previewPath = w.active
	if w.previewPath == "" {
		w.previewPath = w.template.Entry()
	}
	w.renderPreview()
}

func (w *Workspace) renderPreview() {
	if w.theme == nil || w.snapshot == nil {
		return
	}
	w.previewContent = renderPreview(w.theme, w.previewPath, w.snapshot[w.previewPath], w.preview.Width, w.wrap)
	w.preview.SetContent(w.previewContent)
}

func (w *Workspace) setTab(t Tab) {
	w.tab = t
	if t == TabPreview {
		w.commit()
		w.editor.Blur()
		return
	}
	if w.focused && w.active != "" {
		w.editor.Focus()
	}
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles the workspace keys and forwards the rest to the visible
// pane.
func (w *Workspace) Update(msg tea.Msg) (Surface, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !w.focused {
			return w, nil
		}
		switch {
		case key.Matches(msg, w.keys.ToggleTab):
			if w.tab == TabEditor {
				w.setTab(TabPreview)
			} else {
				w.setTab(TabEditor)
			}
			return w, nil
		case key.Matches(msg, w.keys.PrevFile):
			w.moveCursor(-1)
			return w, nil
		case key.Matches(msg, w.keys.NextFile):
			w.moveCursor(1)
			return w, nil
		case key.Matches(msg, w.keys.PrevTab):
			w.cycleTab(-1)
			return w, nil
		case key.Matches(msg, w.keys.NextTab):
			w.cycleTab(1)
			return w, nil
		case key.Matches(msg, w.keys.CloseTab):
			if w.tab == TabEditor {
				w.closeActive()
			}
			return w, nil
		case key.Matches(msg, w.keys.Run):
			w.Run()
			return w, nil
		}

	case tea.MouseMsg:
		if w.tab == TabPreview {
			w.preview, cmd = w.preview.Update(msg)
		}
		return w, cmd
	}

	if w.tab == TabPreview {
		if _, ok := msg.(tea.KeyMsg); ok {
			w.preview, cmd = w.preview.Update(msg)
		}
		return w, cmd
	}
	if w.active != "" {
		w.editor, cmd = w.editor.Update(msg)
	}
	return w, cmd
}

// =============================================================================
// VIEW
// =============================================================================

// View renders explorer and tabs side by side.
func (w *Workspace) View() string {
	ew := w.explorerWidth()
	explorer := w.theme.Explorer.
		Width(ew).
		Height(max(w.height, 1)).
		Render(w.renderExplorer(max(ew-1, 1)))

	var pane string
	if w.tab == TabPreview {
		pane = lipgloss.JoinVertical(lipgloss.Left,
			w.renderTabs(),
			w.renderNavigator(),
			w.renderResources(),
			w.preview.View(),
		)
	} else {
		body := w.editor.View()
		if w.active == "" {
			body = w.theme.Muted.Render(noFileOpen)
		}
		pane = lipgloss.JoinVertical(lipgloss.Left,
			w.renderTabs(),
			w.renderFileTabs(),
			body,
		)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, explorer, pane)
}

func (w *Workspace) renderExplorer(width int) string {
	lines := make([]string, 0, len(w.entries))
	for _, e := range w.entries {
		name := e.Name
		if e.Dir {
			name += "/"
		}
		row := util.TruncateWidth(strings.Repeat("   ", e.Depth)+styles.RenderTreeLine(e.Last)+name, width)
		switch {
		case e.Dir:
			row = w.theme.Muted.Render(row)
		case e.Path == w.active:
			row = w.theme.ExplorerActive.Render(row)
		default:
			row = w.theme.ExplorerItem.Render(row)
		}
		lines = append(lines, row)
	}
	return strings.Join(lines, "\n")
}

func (w *Workspace) renderTabs() string {
	render := func(t Tab) string {
		if t == w.tab {
			return w.theme.TabActive.Render(t.String())
		}
		return w.theme.TabInactive.Render(t.String())
	}
	tabs := lipgloss.JoinHorizontal(lipgloss.Top, render(TabEditor), render(TabPreview))
	hint := "C-r run"
	if w.tab == TabPreview {
		hint = "C-r refresh"
	}
	run := w.theme.Muted.Render(hint)
	gap := max(w.mainWidth()-lipgloss.Width(tabs)-lipgloss.Width(run), 1)
	return tabs + strings.Repeat(" ", gap) + run
}

func (w *Workspace) renderFileTabs() string {
	tabs := lo.Map(w.open, func(p string, _ int) string {
		label := path.Base(p) + " x"
		if p == w.active {
			return w.theme.FileTabActive.Render(label)
		}
		return w.theme.FileTab.Render(label)
	})
	return truncate.StringWithTail(strings.Join(tabs, " "), uint(w.mainWidth()), "...")
}

func (w *Workspace) renderNavigator() string {
	url := w.theme.NavigatorURL.Render(w.bundlerURL + "/")
	return w.theme.Navigator.Render("<- -> ⟳ " + url + "  " + w.previewPath)
}

func (w *Workspace) renderResources() string {
	if len(w.resources) == 0 {
		return w.theme.Muted.Render("resources: none")
	}
	return w.theme.Muted.Render(util.TruncateWidth("resources: "+strings.Join(w.resources, ", "), w.mainWidth()))
}
