// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"fmt"

	"github.com/muesli/termenv"
)

// DefaultStorageKey is the preference key the theme is persisted under.
const DefaultStorageKey = "workbench-ui-theme"

// PreferenceStore reads and writes persisted string preferences.
// storage.Preferences is the file-backed implementation.
type PreferenceStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Provider owns the active theme. It starts from the stored preference for
// its key, falling back to the default id when nothing valid is stored.
type Provider struct {
	defaultID    ThemeID
	storageKey   string
	store        PreferenceStore
	systemIsDark func() bool
	theme        *Theme
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithSystemDetector overrides background detection for ThemeSystem.
func WithSystemDetector(isDark func() bool) ProviderOption {
	return func(p *Provider) {
		if isDark != nil {
			p.systemIsDark = isDark
		}
	}
}

// NewProvider creates a provider. A nil store keeps the preference in memory.
func NewProvider(defaultID ThemeID, storageKey string, store PreferenceStore, opts ...ProviderOption) *Provider {
	if _, err := ParseThemeID(string(defaultID)); err != nil {
		defaultID = DefaultThemeID
	}
	if storageKey == "" {
		storageKey = DefaultStorageKey
	}

	p := &Provider{
		defaultID:    defaultID,
		storageKey:   storageKey,
		store:        store,
		systemIsDark: termenv.HasDarkBackground,
	}
	for _, opt := range opts {
		opt(p)
	}

	id := defaultID
	if store != nil {
		if stored, ok := store.Get(storageKey); ok {
			if parsed, err := ParseThemeID(stored); err == nil {
				id = parsed
			}
		}
	}
	p.theme = newTheme(id, p.systemIsDark)
	return p
}

// Theme returns the active theme.
func (p *Provider) Theme() *Theme {
	return p.theme
}

// ID returns the active theme id.
func (p *Provider) ID() ThemeID {
	return p.theme.ID
}

// StorageKey returns the preference key.
func (p *Provider) StorageKey() string {
	return p.storageKey
}

// Set switches to id and persists it. The in-memory theme changes even when
// persisting fails; the error is returned for logging.
func (p *Provider) Set(id ThemeID) (*Theme, error) {
	if _, err := ParseThemeID(string(id)); err != nil {
		return p.theme, err
	}

	width, height := p.theme.Width, p.theme.Height
	p.theme = newTheme(id, p.systemIsDark)
	p.theme.SetSize(width, height)

	if p.store == nil {
		return p.theme, nil
	}
	if err := p.store.Set(p.storageKey, id.String()); err != nil {
		return p.theme, fmt.Errorf("failed to persist theme: %w", err)
	}
	return p.theme, nil
}

// Toggle flips between light and dark.
func (p *Provider) Toggle() (*Theme, error) {
	return p.Set(p.theme.ID.Next(p.theme.IsDark))
}
