// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat transcript.
package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// SENDER TYPE
// =============================================================================

// Sender identifies who authored a message. Only two roles exist.
type Sender string

const (
	SenderHuman Sender = "human"
	SenderBot   Sender = "bot"
)

// String returns the string representation of the sender.
func (s Sender) String() string {
	return string(s)
}

// DisplayName returns the transcript label for the sender.
func (s Sender) DisplayName() string {
	if s == SenderBot {
		return "Assistant"
	}
	return "You"
}

// Initial returns the single-letter avatar fallback for the sender.
func (s Sender) Initial() string {
	if s == SenderBot {
		return "B"
	}
	return "U"
}

// IsBot reports whether the sender is the assistant.
func (s Sender) IsBot() bool {
	return s == SenderBot
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is a single immutable unit of chat content.
// Messages are handed out by value so stored copies never change.
type Message struct {
	ID        string    `json:"id"`
	Seq       int       `json:"seq"`
	Sender    Sender    `json:"sender"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// IsZero reports whether m is the zero Message.
func (m Message) IsZero() bool {
	return m.ID == "" && m.Seq == 0
}

// IsBot reports whether the message was authored by the assistant.
func (m Message) IsBot() bool {
	return m.Sender.IsBot()
}

// Preview returns a single-line, rune-safe preview of the content.
func (m Message) Preview(maxLen int) string {
	content := strings.Join(strings.Fields(m.Content), " ")
	runes := []rune(content)
	if maxLen <= 0 || len(runes) <= maxLen {
		return content
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// IsBlank reports whether content is empty or whitespace only.
func IsBlank(content string) bool {
	return strings.TrimSpace(content) == ""
}

// =============================================================================
// ID SOURCES
// =============================================================================

// IDSource produces message identifiers. Implementations must never repeat
// an id within one session.
type IDSource interface {
	NextID() string
}

// IDSourceFunc adapts a plain function to IDSource.
type IDSourceFunc func() string

// NextID calls f.
func (f IDSourceFunc) NextID() string {
	return f()
}

// RandomIDs returns the default source: random v4 UUIDs prefixed with "msg_".
func RandomIDs() IDSource {
	return IDSourceFunc(func() string {
		return "msg_" + uuid.NewString()
	})
}

// CounterIDs returns a source that emits prefix-1, prefix-2, ...
// It is handy for deterministic tests and for seeded history.
func CounterIDs(prefix string) IDSource {
	n := 0
	return IDSourceFunc(func() string {
		n++
		return prefix + "-" + strconv.Itoa(n)
	})
}
