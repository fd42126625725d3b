// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat transcript.
//
// # Key Types
//
//   - Message: immutable unit of chat content with a sender and position
//   - Sender: author role enumeration (human, bot)
//   - Store: append-only ordered history for one session
//   - IDSource: pluggable message id generation
//
// # Usage
//
// Create a seeded store and append user input:
//
//	store := model.NewStore(model.WithSeed(model.SeedMessages()...))
//	if msg, ok := store.Append("hello"); ok {
//	    fmt.Println(msg.ID, msg.Sender.DisplayName())
//	}
//
// Blank input is rejected without touching the history:
//
//	_, ok := store.Append("   ") // ok == false, store.Len() unchanged
package model
