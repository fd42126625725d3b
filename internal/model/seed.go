// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// Seed is one entry of a session's initial history.
type Seed struct {
	Sender  Sender
	Content string
}

// SeedMessages returns the demo conversation a fresh workbench opens with:
// one human question followed by one assistant reply.
func SeedMessages() []Seed {
	return []Seed{
		{
			Sender:  SenderHuman,
			Content: "I have a question about React hooks.",
		},
		{
			Sender: SenderBot,
			Content: "The component maintains its own message state, but you could easily " +
				"modify it to accept messages as props if you need to manage the state elsewhere.",
		},
	}
}
