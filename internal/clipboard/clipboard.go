// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package clipboard provides write-only access to the system clipboard.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"
)

// Writer writes text to a clipboard.
type Writer interface {
	WriteText(text string) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(text string) error

// WriteText calls f.
func (f WriterFunc) WriteText(text string) error {
	return f(text)
}

// System returns the writer backed by the OS clipboard.
func System() Writer {
	return WriterFunc(clipboard.WriteAll)
}

// Unsupported reports whether the OS clipboard is unavailable, for example
// on a headless Linux box without xclip, xsel or wl-copy.
func Unsupported() bool {
	return clipboard.Unsupported
}

// Memory is an in-process clipboard. It is used in tests and as the fallback
// when the OS clipboard is unsupported.
type Memory struct {
	mu     sync.Mutex
	text   string
	writes int
}

// NewMemory creates an empty in-memory clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// WriteText replaces the clipboard contents.
func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.writes++
	return nil
}

// Text returns the current clipboard contents.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Writes returns how many times WriteText was called.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// Default returns System, or a Memory clipboard when the OS has none.
func Default() Writer {
	if Unsupported() {
		return NewMemory()
	}
	return System()
}
