// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package sandbox

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jeranaias/workbench-tui/internal/ui/styles"
)

// DefaultBundlerURL is the bundler the navigator points at.
const DefaultBundlerURL = "http://localhost:8080"

// =============================================================================
// TABS
// =============================================================================

// Tab is the visible pane of the workspace.
type Tab int

const (
	TabEditor Tab = iota
	TabPreview
)

// ParseTab converts "editor" or "preview" to a Tab.
func ParseTab(s string) (Tab, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "editor", "":
		return TabEditor, nil
	case "preview":
		return TabPreview, nil
	default:
		return TabEditor, fmt.Errorf("unknown sandbox tab %q", s)
	}
}

// String returns the label of the tab.
func (t Tab) String() string {
	if t == TabPreview {
		return "Preview"
	}
	return "Editor"
}

// =============================================================================
// OPTIONS
// =============================================================================

// Options configures a Workspace.
type Options struct {
	Template          Template
	Files             map[string]string
	Theme             *styles.Theme
	Dependencies      map[string]string
	ExternalResources []string
	BundlerURL        string

	ShowLineNumbers bool
	WrapContent     bool
	DefaultTab      Tab

	Keys   *KeyMap
	Logger *zap.Logger
}

// StarterFiles returns the user files a fresh workbench opens with.
func StarterFiles() map[string]string {
	return map[string]string{
		"components/Button.tsx": "export default () => {\n  return <button>Hello</button>\n};",
	}
}

// DefaultDependencies returns the custom dependencies added to every template.
func DefaultDependencies() map[string]string {
	return map[string]string{"react-markdown": "latest"}
}

// DefaultExternalResources returns the resources injected into the preview.
func DefaultExternalResources() []string {
	return []string{"https://cdn.tailwindcss.com"}
}

// DefaultOptions returns the stock workbench sandbox.
func DefaultOptions() Options {
	return Options{
		Template:          DefaultTemplate,
		Files:             StarterFiles(),
		Dependencies:      DefaultDependencies(),
		ExternalResources: DefaultExternalResources(),
		BundlerURL:        DefaultBundlerURL,
		ShowLineNumbers:   true,
		WrapContent:       true,
		DefaultTab:        TabEditor,
	}
}
