// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// =============================================================================
// THEME IDS
// =============================================================================

// ThemeID names a theme preference.
type ThemeID string

const (
	ThemeDark   ThemeID = "dark"
	ThemeLight  ThemeID = "light"
	ThemeSystem ThemeID = "system"
)

// DefaultThemeID is used when nothing else is configured.
const DefaultThemeID = ThemeDark

// ParseThemeID converts a string to a ThemeID. Matching is case-insensitive.
func ParseThemeID(s string) (ThemeID, error) {
	switch ThemeID(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeDark:
		return ThemeDark, nil
	case ThemeLight:
		return ThemeLight, nil
	case ThemeSystem:
		return ThemeSystem, nil
	default:
		return "", fmt.Errorf("unknown theme %q (expected dark, light or system)", s)
	}
}

// String returns the string representation of the theme id.
func (id ThemeID) String() string {
	return string(id)
}

// Next returns the id the toggle key switches to. System resolves to its
// concrete side first so the toggle always produces a visible change.
func (id ThemeID) Next(systemIsDark bool) ThemeID {
	switch id {
	case ThemeLight:
		return ThemeDark
	case ThemeSystem:
		if systemIsDark {
			return ThemeLight
		}
		return ThemeDark
	default:
		return ThemeLight
	}
}

// =============================================================================
// THEME
// =============================================================================

// Theme holds all the styled components for the application.
type Theme struct {
	ID           ThemeID
	IsDark       bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// PANEL STYLES
	// ==========================================================================

	App          lipgloss.Style
	Panel        lipgloss.Style
	PanelFocused lipgloss.Style
	PanelTitle   lipgloss.Style

	// ==========================================================================
	// MESSAGE STYLES
	// ==========================================================================

	UserLabel       lipgloss.Style
	AssistantLabel  lipgloss.Style
	UserAvatar      lipgloss.Style
	AssistantAvatar lipgloss.Style
	UserBody        lipgloss.Style
	AssistantBody   lipgloss.Style
	Selected        lipgloss.Style
	SelectedMarker  lipgloss.Style

	// ==========================================================================
	// ACTION STYLES
	// ==========================================================================

	ActionButton     lipgloss.Style
	ActionHelpful    lipgloss.Style
	ActionNotHelpful lipgloss.Style
	Menu             lipgloss.Style
	MenuItem         lipgloss.Style
	MenuItemSelected lipgloss.Style

	// ==========================================================================
	// COMPOSER STYLES
	// ==========================================================================

	Composer        lipgloss.Style
	ComposerFocused lipgloss.Style
	Placeholder     lipgloss.Style
	SendEnabled     lipgloss.Style
	SendDisabled    lipgloss.Style
	AttachButton    lipgloss.Style

	// ==========================================================================
	// SANDBOX STYLES
	// ==========================================================================

	Explorer       lipgloss.Style
	ExplorerItem   lipgloss.Style
	ExplorerActive lipgloss.Style
	TabActive      lipgloss.Style
	TabInactive    lipgloss.Style
	FileTab        lipgloss.Style
	FileTabActive  lipgloss.Style
	LineNumber     lipgloss.Style
	Code           lipgloss.Style
	Navigator      lipgloss.Style
	NavigatorURL   lipgloss.Style

	// ==========================================================================
	// FOOTER STYLES
	// ==========================================================================

	Footer       lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
	Muted        lipgloss.Style
	Warning      lipgloss.Style
}

// NewTheme creates a theme for id. ThemeSystem follows the terminal
// background as reported by termenv.
func NewTheme(id ThemeID) *Theme {
	return newTheme(id, termenv.HasDarkBackground)
}

func newTheme(id ThemeID, systemIsDark func() bool) *Theme {
	if _, err := ParseThemeID(string(id)); err != nil {
		id = DefaultThemeID
	}

	isDark := true
	switch id {
	case ThemeLight:
		isDark = false
	case ThemeSystem:
		isDark = systemIsDark()
	}

	t := &Theme{
		ID:           id,
		IsDark:       isDark,
		ColorProfile: termenv.ColorProfile(),
	}
	t.initStyles()
	return t
}

// Color resolves an adaptive color against the theme's background.
func (t *Theme) Color(c lipgloss.AdaptiveColor) lipgloss.Color {
	return resolve(c, t.IsDark)
}

// GlamourStyle returns the glamour standard style matching the theme.
func (t *Theme) GlamourStyle() string {
	if t.IsDark {
		return "dark"
	}
	return "light"
}

// ChromaStyle returns the chroma style name matching the theme.
func (t *Theme) ChromaStyle() string {
	if t.IsDark {
		return "dracula"
	}
	return "github"
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	c := t.Color

	t.App = lipgloss.NewStyle().Foreground(c(TextPrimary))

	t.Panel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(c(OverlayDim))

	t.PanelFocused = t.Panel.
		BorderForeground(c(FocusRing))

	t.PanelTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(c(Purple)).
		Padding(0, 1)

	// Messages
	t.UserLabel = lipgloss.NewStyle().
		Bold(true).
		Foreground(c(Cyan))

	t.AssistantLabel = lipgloss.NewStyle().
		Bold(true).
		Foreground(c(Purple))

	t.UserAvatar = lipgloss.NewStyle().
		Bold(true).
		Foreground(c(TextInverse)).
		Background(c(UserAvatarBg)).
		Padding(0, 1)

	t.AssistantAvatar = lipgloss.NewStyle().
		Bold(true).
		Foreground(c(TextInverse)).
		Background(c(AssistantAvatarBg)).
		Padding(0, 1)

	t.UserBody = lipgloss.NewStyle().Foreground(c(UserBodyFg))
	t.AssistantBody = lipgloss.NewStyle().Foreground(c(AssistantBodyFg))

	t.Selected = lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(c(FocusRing))

	t.SelectedMarker = lipgloss.NewStyle().
		Foreground(c(FocusRing)).
		Bold(true)

	// Actions
	t.ActionButton = lipgloss.NewStyle().
		Foreground(c(TextSecondary)).
		Padding(0, 1)

	t.ActionHelpful = t.ActionButton.Foreground(c(Emerald))
	t.ActionNotHelpful = t.ActionButton.Foreground(c(Rose))

	t.Menu = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(c(Overlay)).
		Padding(0, 1)

	t.MenuItem = lipgloss.NewStyle().
		Foreground(c(TextPrimary))

	t.MenuItemSelected = lipgloss.NewStyle().
		Foreground(c(TextPrimary)).
		Background(c(SelectionBg)).
		Bold(true)

	// Composer
	t.Composer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(c(Overlay))

	t.ComposerFocused = t.Composer.
		BorderForeground(c(FocusRing))

	t.Placeholder = lipgloss.NewStyle().
		Foreground(c(TextMuted)).
		Italic(true)

	t.SendEnabled = lipgloss.NewStyle().
		Bold(true).
		Foreground(c(TextInverse)).
		Background(c(Purple)).
		Padding(0, 1)

	t.SendDisabled = lipgloss.NewStyle().
		Foreground(c(TextMuted)).
		Background(c(SurfaceDim)).
		Padding(0, 1)

	t.AttachButton = lipgloss.NewStyle().
		Foreground(c(TextSecondary)).
		Padding(0, 1)

	// Sandbox
	t.Explorer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(c(Overlay)).
		PaddingRight(1)

	t.ExplorerItem = lipgloss.NewStyle().
		Foreground(c(TextSecondary))

	t.ExplorerActive = lipgloss.NewStyle().
		Foreground(c(TextPrimary)).
		Background(c(SurfaceBright)).
		Bold(true)

	t.TabActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(c(Purple)).
		Underline(true).
		Padding(0, 1)

	t.TabInactive = lipgloss.NewStyle().
		Foreground(c(TextMuted)).
		Padding(0, 1)

	t.FileTab = lipgloss.NewStyle().
		Foreground(c(TextSecondary)).
		Background(c(SurfaceDim)).
		Padding(0, 1)

	t.FileTabActive = lipgloss.NewStyle().
		Foreground(c(TextPrimary)).
		Background(c(SurfaceBright)).
		Bold(true).
		Padding(0, 1)

	t.LineNumber = lipgloss.NewStyle().
		Foreground(c(TextMuted)).
		Align(lipgloss.Right)

	t.Code = lipgloss.NewStyle().
		Foreground(c(TextPrimary))

	t.Navigator = lipgloss.NewStyle().
		Foreground(c(TextSecondary)).
		Background(c(SurfaceDim)).
		Padding(0, 1)

	t.NavigatorURL = lipgloss.NewStyle().
		Foreground(c(Cyan)).
		Underline(true)

	// Footer
	t.Footer = lipgloss.NewStyle().
		Foreground(c(TextSecondary)).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(c(Cyan)).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(c(TextMuted))

	t.Muted = lipgloss.NewStyle().
		Foreground(c(TextMuted))

	t.Warning = lipgloss.NewStyle().
		Foreground(c(Amber))
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}
