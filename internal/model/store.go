// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat transcript.
package model

import (
	"time"
)

// =============================================================================
// MESSAGE STORE
// =============================================================================

// Store holds the ordered, append-only message history of one session.
//
// Store is not safe for concurrent use. The Bubble Tea event loop is its only
// writer, so every transition runs to completion before the next one starts.
type Store struct {
	messages []Message
	ids      IDSource
	now      func() time.Time
	seed     []Seed
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithIDSource overrides the id source (default: RandomIDs).
func WithIDSource(src IDSource) StoreOption {
	return func(s *Store) {
		if src != nil {
			s.ids = src
		}
	}
}

// WithClock overrides the timestamp source (default: time.Now).
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithSeed pre-populates the history. Seed entries keep their sender and
// content; blank entries are skipped. This is the only way a bot-authored
// message enters the store. Seeds are applied after every other option, so
// they use the configured id source and clock.
func WithSeed(seed ...Seed) StoreOption {
	return func(s *Store) {
		s.seed = append(s.seed, seed...)
	}
}

// NewStore creates an empty store, then applies opts in order.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		messages: make([]Message, 0, 16),
		ids:      RandomIDs(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, entry := range s.seed {
		if IsBlank(entry.Content) {
			continue
		}
		s.push(entry.Sender, entry.Content)
	}
	s.seed = nil
	return s
}

// =============================================================================
// OPERATIONS
// =============================================================================

// Append records a new human message at the end of the history and returns
// it. Empty or whitespace-only content is rejected: the history is left
// untouched and ok is false.
func (s *Store) Append(content string) (msg Message, ok bool) {
	if IsBlank(content) {
		return Message{}, false
	}
	return s.push(SenderHuman, content), true
}

// List returns the history in insertion order. The slice is a copy.
func (s *Store) List() []Message {
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of messages.
func (s *Store) Len() int {
	return len(s.messages)
}

// Last returns the most recent message.
func (s *Store) Last() (Message, bool) {
	if len(s.messages) == 0 {
		return Message{}, false
	}
	return s.messages[len(s.messages)-1], true
}

// At returns the message at display position i (0-based).
func (s *Store) At(i int) (Message, bool) {
	if i < 0 || i >= len(s.messages) {
		return Message{}, false
	}
	return s.messages[i], true
}

// Get returns the message with the given id.
func (s *Store) Get(id string) (Message, bool) {
	for _, msg := range s.messages {
		if msg.ID == id {
			return msg, true
		}
	}
	return Message{}, false
}

func (s *Store) push(sender Sender, content string) Message {
	msg := Message{
		ID:        s.ids.NextID(),
		Seq:       len(s.messages) + 1,
		Sender:    sender,
		Content:   content,
		Timestamp: s.now(),
	}
	s.messages = append(s.messages, msg)
	return msg
}
