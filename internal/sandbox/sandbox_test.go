// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package sandbox

import (
	"encoding/json"
	"sort"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/muesli/termenv"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/workbench-tui/internal/ui/styles"
)

// =============================================================================
// TEMPLATE / PATH TESTS
// =============================================================================

func TestParseTemplate(t *testing.T) {
	tests := []struct {
		input   string
		want    Template
		wantErr bool
	}{
		{"react-ts", TemplateReactTS, false},
		{"REACT", TemplateReact, false},
		{" vanilla ", TemplateVanilla, false},
		{"static", TemplateStatic, false},
		{"angular", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseTemplate(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseTemplate_ErrorListsTemplates(t *testing.T) {
	_, err := ParseTemplate("svelte")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "react-ts, react, vanilla, static")
	assert.Equal(t, "react-ts, react, vanilla, static", TemplateNames())
}

func TestTemplates_HaveEntryFiles(t *testing.T) {
	for _, tmpl := range Templates() {
		t.Run(tmpl.String(), func(t *testing.T) {
			files, err := ComposeFiles(tmpl, nil, nil)
			require.NoError(t, err)
			assert.Contains(t, files, tmpl.Entry())
			assert.Contains(t, files, PackageJSONPath)
		})
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"components/Button.tsx", "/components/Button.tsx", false},
		{"/App.tsx", "/App.tsx", false},
		{"./a/../b.js", "/b.js", false},
		{`a\b.js`, "/a/b.js", false},
		{"", "", true},
		{"   ", "", true},
		{"dir/", "", true},
		{"/", "", true},
		{"..", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := NormalizePath(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseTab(t *testing.T) {
	tab, err := ParseTab("Preview")
	require.NoError(t, err)
	assert.Equal(t, TabPreview, tab)

	tab, err = ParseTab("")
	require.NoError(t, err)
	assert.Equal(t, TabEditor, tab)

	_, err = ParseTab("console")
	assert.Error(t, err)
}

// =============================================================================
// COMPOSITION TESTS
// =============================================================================

func TestComposeFiles_TemplateDefaults(t *testing.T) {
	files, err := ComposeFiles(TemplateReactTS, nil, nil)
	require.NoError(t, err)

	want := []string{
		"/App.tsx",
		"/index.tsx",
		"/package.json",
		"/public/index.html",
		"/styles.css",
		"/tsconfig.json",
	}
	got := lo.Keys(files)
	sort.Strings(got)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
}

func TestComposeFiles_UserFilesOverride(t *testing.T) {
	files, err := ComposeFiles(TemplateReactTS, map[string]string{
		"App.tsx":               "custom",
		"components/Button.tsx": "button",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "custom", files["/App.tsx"])
	assert.Equal(t, "button", files["/components/Button.tsx"])
	assert.Contains(t, templateSpecs[TemplateReactTS].files["/App.tsx"], "Hello world")
}

func TestComposeFiles_UserPackageJSONWins(t *testing.T) {
	files, err := ComposeFiles(TemplateStatic, map[string]string{"package.json": "{}"}, map[string]string{"x": "1"})
	require.NoError(t, err)
	assert.Equal(t, "{}", files[PackageJSONPath])
}

func TestComposeFiles_Errors(t *testing.T) {
	_, err := ComposeFiles("angular", nil, nil)
	assert.Error(t, err)

	_, err = ComposeFiles(TemplateReact, map[string]string{"dir/": "x"}, nil)
	assert.Error(t, err)
}

func TestPackageJSON_MergesDependencies(t *testing.T) {
	data, err := PackageJSON(TemplateReactTS, map[string]string{
		"react-markdown": "latest",
		"react":          "17.0.2",
	})
	require.NoError(t, err)

	var manifest packageJSON
	require.NoError(t, json.Unmarshal([]byte(data), &manifest))

	assert.Equal(t, "/index.tsx", manifest.Main)
	assert.Equal(t, "latest", manifest.Dependencies["react-markdown"])
	assert.Equal(t, "17.0.2", manifest.Dependencies["react"])
	assert.Equal(t, "^18.0.0", manifest.Dependencies["react-dom"])
	assert.Equal(t, "^18.0.0", templateSpecs[TemplateReactTS].dependencies["react"])
}

// =============================================================================
// EXPLORER TREE TESTS
// =============================================================================

func TestBuildTree(t *testing.T) {
	entries := buildTree([]string{
		"/styles.css",
		"/components/Button.tsx",
		"/App.tsx",
		"/public/index.html",
	})

	got := lo.Map(entries, func(e treeEntry, _ int) string {
		return strings.Repeat(" ", e.Depth) + e.Name
	})
	assert.Equal(t, []string{
		"components",
		" Button.tsx",
		"public",
		" index.html",
		"App.tsx",
		"styles.css",
	}, got)

	assert.True(t, entries[0].Dir)
	assert.True(t, entries[1].Last)
	assert.False(t, entries[4].Last)
	assert.True(t, entries[5].Last)

	assert.Equal(t, []string{
		"/components/Button.tsx",
		"/public/index.html",
		"/App.tsx",
		"/styles.css",
	}, filePaths(entries))
}

// =============================================================================
// PREVIEW TESTS
// =============================================================================

func TestFormatterFor(t *testing.T) {
	assert.Equal(t, "terminal16m", formatterFor(termenv.TrueColor))
	assert.Equal(t, "terminal256", formatterFor(termenv.ANSI256))
	assert.Equal(t, "terminal16", formatterFor(termenv.ANSI))
	assert.Equal(t, "noop", formatterFor(termenv.Ascii))
}

func TestFitLines(t *testing.T) {
	assert.Equal(t, "ab...\nxy", fitLines("abcdefghij\nxy", 5, false))
	assert.Equal(t, "aaaa\nbbbb", fitLines("aaaa bbbb", 4, true))
}

func TestRenderPreview_PlainProfileKeepsSource(t *testing.T) {
	theme := asciiTheme()
	code := "const answer = 42;"

	out := renderPreview(theme, "/index.js", code, 80, true)
	assert.Equal(t, code, out)
}

func TestRenderPreview_Markdown(t *testing.T) {
	out := renderPreview(asciiTheme(), "/README.md", "# Title\n\nbody text", 60, true)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "body text")
}

// =============================================================================
// WORKSPACE TESTS
// =============================================================================

func asciiTheme() *styles.Theme {
	theme := styles.NewTheme(styles.ThemeDark)
	theme.ColorProfile = termenv.Ascii
	return theme
}

func newWorkspace(t *testing.T, mutate ...func(*Options)) *Workspace {
	t.Helper()
	opts := DefaultOptions()
	opts.Theme = asciiTheme()
	for _, m := range mutate {
		m(&opts)
	}
	w, err := New(opts)
	require.NoError(t, err)
	w.SetSize(100, 30)
	w.Focus()
	return w
}

func press(w *Workspace, msgs ...tea.KeyMsg) {
	for _, m := range msgs {
		w.Update(m)
	}
}

func typeText(w *Workspace, s string) {
	for _, r := range s {
		w.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

var (
	keyNextFile = tea.KeyMsg{Type: tea.KeyDown, Alt: true}
	keyPrevFile = tea.KeyMsg{Type: tea.KeyUp, Alt: true}
	keyToggle   = tea.KeyMsg{Type: tea.KeyCtrlT}
	keyClose    = tea.KeyMsg{Type: tea.KeyCtrlW}
	keyRun      = tea.KeyMsg{Type: tea.KeyCtrlR}
	keyNextTab  = tea.KeyMsg{Type: tea.KeyCtrlPgDown}
)

func TestNew_OpensEntryAndUserFiles(t *testing.T) {
	w := newWorkspace(t)

	assert.Equal(t, "/App.tsx", w.Active())
	assert.Equal(t, []string{"/App.tsx", "/components/Button.tsx"}, w.OpenTabs())
	assert.Equal(t, TabEditor, w.Tab())
	assert.Equal(t, "http://localhost:8080", w.BundlerURL())
	assert.Zero(t, w.Runs())
}

func TestNew_Errors(t *testing.T) {
	_, err := New(Options{Template: "angular"})
	assert.Error(t, err)

	_, err = New(Options{Files: map[string]string{"": "x"}})
	assert.Error(t, err)
}

func TestWorkspace_FilesUnchangedWithoutEdits(t *testing.T) {
	w := newWorkspace(t)

	want, err := ComposeFiles(TemplateReactTS, StarterFiles(), DefaultDependencies())
	require.NoError(t, err)
	assert.Equal(t, want, w.Files())
}

func TestWorkspace_PreviewChangesOnlyOnRun(t *testing.T) {
	w := newWorkspace(t)
	assert.Equal(t, "/App.tsx", w.PreviewPath())
	assert.Contains(t, w.PreviewContent(), "Hello world")

	typeText(w, "QQQ")
	assert.Contains(t, w.Files()["/App.tsx"], "QQQ")
	assert.NotContains(t, w.PreviewContent(), "QQQ")

	press(w, keyRun)
	assert.Equal(t, 1, w.Runs())
	assert.Contains(t, w.PreviewContent(), "QQQ")
}

func TestWorkspace_ToggleTab(t *testing.T) {
	w := newWorkspace(t)
	before := w.Files()

	press(w, keyToggle)
	assert.Equal(t, TabPreview, w.Tab())
	assert.Equal(t, w.keys.PreviewHelp(), w.Help())

	typeText(w, "zzz")
	assert.Equal(t, before, w.Files())

	view := w.View()
	assert.Contains(t, view, "http://localhost:8080/")
	assert.Contains(t, view, "https://cdn.tailwindcss.com")

	press(w, keyToggle)
	assert.Equal(t, TabEditor, w.Tab())
	assert.Equal(t, w.keys.EditorHelp(), w.Help())
}

func TestWorkspace_ExplorerNavigation(t *testing.T) {
	w := newWorkspace(t)
	require.Equal(t, []string{
		"/components/Button.tsx",
		"/public/index.html",
		"/App.tsx",
		"/index.tsx",
		"/package.json",
		"/styles.css",
		"/tsconfig.json",
	}, w.Paths())

	press(w, keyNextFile)
	assert.Equal(t, "/index.tsx", w.Active())
	assert.Equal(t, []string{"/App.tsx", "/components/Button.tsx", "/index.tsx"}, w.OpenTabs())

	press(w, keyPrevFile, keyPrevFile, keyPrevFile)
	assert.Equal(t, "/components/Button.tsx", w.Active())
	assert.Len(t, w.OpenTabs(), 4)

	// clamps at the top
	press(w, keyPrevFile)
	assert.Equal(t, "/components/Button.tsx", w.Active())
}

func TestWorkspace_EditsSurviveTabSwitch(t *testing.T) {
	w := newWorkspace(t)

	typeText(w, "QQQ")
	press(w, keyNextTab)
	assert.Equal(t, "/components/Button.tsx", w.Active())
	press(w, keyNextTab)
	assert.Equal(t, "/App.tsx", w.Active())

	assert.Contains(t, w.Files()["/App.tsx"], "QQQ")
	assert.NotContains(t, w.Files()["/components/Button.tsx"], "QQQ")
}

func TestWorkspace_CloseTabs(t *testing.T) {
	w := newWorkspace(t)

	press(w, keyClose)
	assert.Equal(t, []string{"/components/Button.tsx"}, w.OpenTabs())
	assert.Equal(t, "/components/Button.tsx", w.Active())

	press(w, keyClose)
	assert.Empty(t, w.OpenTabs())
	assert.Empty(t, w.Active())
	assert.Contains(t, w.View(), noFileOpen)

	// closing a tab never removes the file
	assert.Contains(t, w.Files(), "/App.tsx")

	press(w, keyRun)
	assert.Equal(t, "/App.tsx", w.PreviewPath())
}

func TestWorkspace_MarkdownPreview(t *testing.T) {
	w := newWorkspace(t, func(o *Options) {
		o.Files = map[string]string{"README.md": "# Title\n\nSome text"}
	})
	require.Equal(t, []string{"/App.tsx", "/README.md"}, w.OpenTabs())

	press(w, keyNextTab, keyRun)
	assert.Equal(t, "/README.md", w.PreviewPath())
	assert.Contains(t, w.PreviewContent(), "Title")
}

func TestWorkspace_IgnoresKeysWithoutFocus(t *testing.T) {
	w := newWorkspace(t)
	w.Blur()

	press(w, keyToggle, keyNextFile, keyRun)
	typeText(w, "QQQ")

	assert.Equal(t, TabEditor, w.Tab())
	assert.Equal(t, "/App.tsx", w.Active())
	assert.Zero(t, w.Runs())
	assert.NotContains(t, w.Files()["/App.tsx"], "QQQ")
}

func TestWorkspace_ViewShowsExplorer(t *testing.T) {
	w := newWorkspace(t)
	view := w.View()

	assert.Contains(t, view, "components/")
	assert.Contains(t, view, "Button.tsx")
	assert.Contains(t, view, "Editor")
	assert.Contains(t, view, "Preview")
}

func TestWorkspace_DefaultTabPreview(t *testing.T) {
	w := newWorkspace(t, func(o *Options) { o.DefaultTab = TabPreview })
	assert.Equal(t, TabPreview, w.Tab())
	assert.False(t, w.editor.Focused())
}
