// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides preference persistence for the workbench TUI.
package storage

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/workbench-tui/internal/util"
)

// PreferencesFileName is the file name used under the config directory.
const PreferencesFileName = "preferences.toml"

// =============================================================================
// PREFERENCE STORE
// =============================================================================

// Preferences is a small key/value store persisted as a flat TOML table.
// Every Set rewrites the file atomically.
type Preferences struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// DefaultPreferencesPath returns ~/.workbench/preferences.toml.
func DefaultPreferencesPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".workbench", PreferencesFileName), nil
}

// OpenPreferences loads the store at path. A missing file yields an empty
// store; the file is created on the first Set.
func OpenPreferences(path string) (*Preferences, error) {
	p := &Preferences{
		path:   path,
		values: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}

	if _, err := toml.Decode(string(data), &p.values); err != nil {
		return nil, fmt.Errorf("failed to parse preferences %s: %w", path, err)
	}
	return p, nil
}

// Path returns the backing file path.
func (p *Preferences) Path() string {
	return p.path
}

// Get returns the stored value for key.
func (p *Preferences) Get(key string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.values[key]
	return v, ok
}

// Set stores value under key and writes the file.
func (p *Preferences) Set(key, value string) error {
	if key == "" {
		return errors.New("preference key must not be empty")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	prev, had := p.values[key]
	p.values[key] = value
	if err := p.flush(); err != nil {
		if had {
			p.values[key] = prev
		} else {
			delete(p.values, key)
		}
		return err
	}
	return nil
}

func (p *Preferences) flush() error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(p.values); err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	if err := util.AtomicWriteFile(p.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return nil
}
